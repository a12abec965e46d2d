package api

import (
	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/gofiber/fiber/v2"
)

type createJobRequest struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	JobType      string `json:"job_type"`
	Industry     string `json:"industry"`
	SalaryRange  string `json:"salary_range"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
}

// CreateJob saves a posting and fires the immediate alert pass.
// Approval moderation lives outside the core, so postings land approved.
func (h *Handlers) CreateJob(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req createJobRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	job := &model.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		JobType:      req.JobType,
		Industry:     req.Industry,
		SalaryRange:  req.SalaryRange,
		Description:  req.Description,
		Requirements: req.Requirements,
		IsApproved:   true,
		PostedBy:     userID,
	}

	if err := h.alerts.CreateJob(ctx.Context(), job); err != nil {
		return h.fail(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(job)
}

type createAlertRequest struct {
	AlertName  string   `json:"alert_name"`
	JobTitles  []string `json:"job_titles"`
	Industries []string `json:"industries"`
	Locations  []string `json:"locations"`
	JobTypes   []string `json:"job_types"`
	MinSalary  int      `json:"min_salary"`
	Keywords   []string `json:"keywords"`
	Frequency  string   `json:"frequency"`
}

// CreateJobAlert saves the caller's alert.
func (h *Handlers) CreateJobAlert(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req createAlertRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	alert := &model.JobAlert{
		UserID:     userID,
		AlertName:  req.AlertName,
		JobTitles:  req.JobTitles,
		Industries: req.Industries,
		Locations:  req.Locations,
		JobTypes:   req.JobTypes,
		MinSalary:  req.MinSalary,
		Keywords:   req.Keywords,
		Frequency:  model.AlertFrequency(req.Frequency),
		Enabled:    true,
	}

	if err := h.alerts.CreateAlert(ctx.Context(), alert); err != nil {
		return h.fail(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(alert)
}

// ListJobAlerts returns the caller's saved alerts.
func (h *Handlers) ListJobAlerts(ctx *fiber.Ctx) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	alerts, err := h.alerts.ListAlerts(ctx.Context(), userID)
	if err != nil {
		return h.fail(ctx, err)
	}

	return ctx.JSON(fiber.Map{"alerts": alerts})
}
