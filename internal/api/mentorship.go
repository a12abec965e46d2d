package api

import (
	"github.com/amet-alumni/network-backend/internal/matching"
	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type registerMenteeRequest struct {
	CareerGoals string `json:"career_goals"`
}

// RegisterMentee creates the caller's mentee role record.
func (h *Handlers) RegisterMentee(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req registerMenteeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	mentee, err := h.booking.RegisterMentee(ctx.Context(), userID, req.CareerGoals)
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(mentee)
}

type mentorProfileRequest struct {
	Industry        string   `json:"industry"`
	MentorTopics    []string `json:"mentor_topics"`
	Bio             string   `json:"bio"`
	ExperienceYears int      `json:"experience_years"`
	MaxMentees      int      `json:"max_mentees"`
	IsActive        *bool    `json:"is_active"`
}

// OptInMentor creates the caller's mentor profile.
func (h *Handlers) OptInMentor(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req mentorProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	profile, err := h.mentors.OptIn(ctx.Context(), &model.MentorProfile{
		UserID:          userID,
		Industry:        req.Industry,
		MentorTopics:    req.MentorTopics,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		MaxMentees:      req.MaxMentees,
	})
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(profile)
}

// GetOwnMentorProfile returns the caller's mentor profile.
func (h *Handlers) GetOwnMentorProfile(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	profile, err := h.mentors.Profile(ctx.Context(), userID)
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.JSON(profile)
}

// UpdateMentorProfile rewrites the caller's mentor profile.
func (h *Handlers) UpdateMentorProfile(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req mentorProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	profile, err := h.mentors.UpdateProfile(ctx.Context(), userID, &model.MentorProfile{
		Industry:        req.Industry,
		MentorTopics:    req.MentorTopics,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		MaxMentees:      req.MaxMentees,
		IsActive:        active,
	})
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.JSON(profile)
}

type matchRequest struct {
	CareerGoals               string   `json:"career_goals"`
	SkillsToDevelop           string   `json:"skills_to_develop"`
	IndustriesInterested      []string `json:"industries_interested"`
	Topics                    []string `json:"topics"`
	CommunicationPreference   string   `json:"communication_preference"`
	ExperienceLevelPreference string   `json:"experience_level_preference"`
	DurationPreference        string   `json:"duration_preference"`
	Limit                     int      `json:"limit"`
}

// MatchMentors ranks active mentors against the posted preferences.
func (h *Handlers) MatchMentors(ctx *fiber.Ctx) error {
	if _, err := currentUser(ctx); err != nil {
		return fiber.ErrUnauthorized
	}

	var req matchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	prefs := &model.MenteePreferences{
		CareerGoals:               req.CareerGoals,
		SkillsToDevelop:           req.SkillsToDevelop,
		IndustriesInterested:      req.IndustriesInterested,
		Topics:                    req.Topics,
		CommunicationPreference:   req.CommunicationPreference,
		ExperienceLevelPreference: req.ExperienceLevelPreference,
		DurationPreference:        req.DurationPreference,
	}

	limit := req.Limit
	if limit <= 0 {
		limit = matching.DefaultTopMatches
	}

	ranked, err := h.matching.FindMatches(ctx.Context(), prefs, limit)
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.JSON(fiber.Map{"matches": ranked})
}

type createRequestBody struct {
	MentorID string `json:"mentor_id"`
	Field    string `json:"field"`
	Goals    string `json:"goals"`
}

// CreateRequest sends a mentorship request to a mentor.
func (h *Handlers) CreateRequest(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req createRequestBody
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	mentorID, err := uuid.Parse(req.MentorID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid mentor id")
	}

	rel, err := h.relationships.Request(ctx.Context(), mentorID, userID, req.Field, req.Goals)
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(rel)
}

// ListRequests lists the caller's relationships as mentor or mentee.
func (h *Handlers) ListRequests(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	status := model.RelationshipStatus(ctx.Query("status"))

	var rels []*model.MentorshipRelationship
	if ctx.Query("role") == "mentor" {
		rels, err = h.relationships.ListForMentor(ctx.Context(), userID, status)
	} else {
		rels, err = h.relationships.ListForMentee(ctx.Context(), userID, status)
	}
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.JSON(fiber.Map{"relationships": rels})
}

type respondBody struct {
	Decision string `json:"decision"`
}

// RespondToRequest lets the mentor accept or reject a pending request.
func (h *Handlers) RespondToRequest(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	relID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid relationship id")
	}

	var req respondBody
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	err = h.relationships.Respond(ctx.Context(), relID, userID, model.RelationshipStatus(req.Decision))
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.JSON(fiber.Map{"status": req.Decision})
}

// CompleteRelationship marks an accepted relationship completed.
func (h *Handlers) CompleteRelationship(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	relID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid relationship id")
	}

	if err := h.relationships.Complete(ctx.Context(), relID, userID); err != nil {
		return h.fail(ctx, err)
	}

	return ctx.JSON(fiber.Map{"status": string(model.RelationshipStatusCompleted)})
}

// CancelRequest deletes the caller's own pending request.
func (h *Handlers) CancelRequest(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	relID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid relationship id")
	}

	if err := h.relationships.Cancel(ctx.Context(), relID, userID); err != nil {
		return h.fail(ctx, err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
