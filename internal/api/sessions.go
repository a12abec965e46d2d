package api

import (
	"time"

	"github.com/amet-alumni/network-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type slotInput struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type addAvailabilityRequest struct {
	Slots []slotInput `json:"slots"`
}

// AddAvailability bulk-creates the caller's open slots.
func (h *Handlers) AddAvailability(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req addAvailabilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	inputs := make([]service.SlotInput, 0, len(req.Slots))
	for _, s := range req.Slots {
		date, err := time.Parse(dateLayout, s.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid slot date")
		}
		start, err := time.Parse(time.RFC3339, s.StartTime)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid slot start time")
		}
		end, err := time.Parse(time.RFC3339, s.EndTime)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid slot end time")
		}
		inputs = append(inputs, service.SlotInput{Date: date, StartTime: start, EndTime: end})
	}

	slots, err := h.availability.AddSlots(ctx.Context(), userID, inputs)
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"slots": slots})
}

// ListOpenDates returns a mentor's dates with open slots.
func (h *Handlers) ListOpenDates(ctx *fiber.Ctx) error {
	if _, err := currentUser(ctx); err != nil {
		return fiber.ErrUnauthorized
	}

	mentorID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid mentor id")
	}

	from := time.Now().Truncate(24 * time.Hour)
	if q := ctx.Query("from"); q != "" {
		from, err = time.Parse(dateLayout, q)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid from date")
		}
	}

	dates, err := h.availability.OpenDates(ctx.Context(), mentorID, from)
	if err != nil {
		return h.fail(ctx, err)
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(dateLayout))
	}
	return ctx.JSON(fiber.Map{"dates": out})
}

// ListOpenSlots returns a mentor's open slots for one date.
func (h *Handlers) ListOpenSlots(ctx *fiber.Ctx) error {
	if _, err := currentUser(ctx); err != nil {
		return fiber.ErrUnauthorized
	}

	mentorID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid mentor id")
	}

	date, err := time.Parse(dateLayout, ctx.Query("date"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date query parameter is required")
	}

	slots, err := h.availability.OpenSlots(ctx.Context(), mentorID, date)
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.JSON(fiber.Map{"slots": slots})
}

type bookRequest struct {
	MentorID    string `json:"mentor_id"`
	SlotID      string `json:"slot_id"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
	MeetingLink string `json:"meeting_link"`
}

// BookSession books an open slot for the caller.
func (h *Handlers) BookSession(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req bookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	mentorID, err := uuid.Parse(req.MentorID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid mentor id")
	}
	slotID, err := uuid.Parse(req.SlotID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid slot id")
	}

	session, err := h.booking.Book(ctx.Context(), mentorID, userID, slotID, req.Topic, req.Description, req.MeetingLink)
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(session)
}

// ListSessions returns the caller's sessions on either side.
func (h *Handlers) ListSessions(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	sessions, err := h.booking.ListSessions(ctx.Context(), userID)
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.JSON(fiber.Map{"sessions": sessions})
}

type updateSessionRequest struct {
	Notes       string `json:"notes"`
	MeetingLink string `json:"meeting_link"`
}

// UpdateSession lets the mentor set notes and the meeting link.
func (h *Handlers) UpdateSession(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	sessionID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	var req updateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	if err := h.booking.UpdateSessionDetails(ctx.Context(), sessionID, userID, req.Notes, req.MeetingLink); err != nil {
		return h.fail(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// CancelSession cancels a scheduled session and reopens its slot.
func (h *Handlers) CancelSession(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	sessionID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	if err := h.booking.CancelSession(ctx.Context(), sessionID, userID); err != nil {
		return h.fail(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

// CompleteSession marks a scheduled session completed.
func (h *Handlers) CompleteSession(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	sessionID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid session id")
	}

	if err := h.booking.CompleteSession(ctx.Context(), sessionID, userID); err != nil {
		return h.fail(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
