package api

import (
	"errors"

	"github.com/amet-alumni/network-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	mentors       *service.MentorService
	matching      *service.MatchingService
	relationships *service.RelationshipService
	availability  *service.AvailabilityService
	booking       *service.BookingService
	alerts        *service.AlertService
	logger        *zap.Logger
}

func NewHandlers(
	mentors *service.MentorService,
	matching *service.MatchingService,
	relationships *service.RelationshipService,
	availability *service.AvailabilityService,
	booking *service.BookingService,
	alerts *service.AlertService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		mentors:       mentors,
		matching:      matching,
		relationships: relationships,
		availability:  availability,
		booking:       booking,
		alerts:        alerts,
		logger:        logger,
	}
}

// NewServer builds the fiber app with every route registered. The caller
// owns Listen and Shutdown.
func NewServer(h *Handlers, jwtSecret, allowOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return ctx.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	auth := RequireUser(jwtSecret)
	api := app.Group("/api", auth)

	api.Post("/mentees", h.RegisterMentee)
	api.Post("/mentors", h.OptInMentor)
	api.Get("/mentors/me", h.GetOwnMentorProfile)
	api.Put("/mentors/me", h.UpdateMentorProfile)

	api.Post("/mentorship/match", h.MatchMentors)

	api.Post("/mentorship/requests", h.CreateRequest)
	api.Get("/mentorship/requests", h.ListRequests)
	api.Post("/mentorship/requests/:id/respond", h.RespondToRequest)
	api.Post("/mentorship/requests/:id/complete", h.CompleteRelationship)
	api.Delete("/mentorship/requests/:id", h.CancelRequest)

	api.Post("/mentors/me/availability", h.AddAvailability)
	api.Get("/mentors/:id/availability/dates", h.ListOpenDates)
	api.Get("/mentors/:id/availability", h.ListOpenSlots)

	api.Post("/mentorship/sessions", h.BookSession)
	api.Get("/mentorship/sessions", h.ListSessions)
	api.Patch("/mentorship/sessions/:id", h.UpdateSession)
	api.Post("/mentorship/sessions/:id/cancel", h.CancelSession)
	api.Post("/mentorship/sessions/:id/complete", h.CompleteSession)

	api.Post("/jobs", h.CreateJob)
	api.Post("/job-alerts", h.CreateJobAlert)
	api.Get("/job-alerts", h.ListJobAlerts)

	return app
}

// statusForError maps service failures onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrNotAllowed), errors.Is(err, service.ErrNotRegistered):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrDuplicateRequest),
		errors.Is(err, service.ErrSlotUnavailable),
		errors.Is(err, service.ErrAlreadyBooked):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// fail renders a service error. Store errors get a generic body so the
// wrapped SQL detail never leaks to clients.
func (h *Handlers) fail(ctx *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status == fiber.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", ctx.Path()), zap.Error(err))
		return ctx.Status(status).JSON(fiber.Map{"error": "internal error"})
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
