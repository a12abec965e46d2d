package service

import (
	"context"
	"fmt"
	"time"

	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvailabilityService manages a mentor's bookable slots.
type AvailabilityService struct {
	slots  SlotLedger
	logger *zap.Logger
}

func NewAvailabilityService(slots SlotLedger, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		slots:  slots,
		logger: logger,
	}
}

// SlotInput is one requested slot in a bulk-create call.
type SlotInput struct {
	Date      time.Time
	StartTime time.Time
	EndTime   time.Time
}

// AddSlots creates the mentor's slots, skipping any start time the
// mentor already published for that date.
func (s *AvailabilityService) AddSlots(ctx context.Context, mentorID uuid.UUID, inputs []SlotInput) ([]*model.AvailabilitySlot, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("at least one slot is required: %w", ErrValidation)
	}

	var slots []*model.AvailabilitySlot
	for _, in := range inputs {
		if !in.EndTime.After(in.StartTime) {
			return nil, fmt.Errorf("slot end must be after start: %w", ErrValidation)
		}

		exists, err := s.slots.ExistsAt(ctx, mentorID, in.Date, in.StartTime)
		if err != nil {
			return nil, fmt.Errorf("check slot exists: %w", err)
		}
		if exists {
			continue
		}

		slots = append(slots, &model.AvailabilitySlot{
			MentorID:  mentorID,
			Date:      in.Date,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
	}

	if len(slots) == 0 {
		return []*model.AvailabilitySlot{}, nil
	}

	if err := s.slots.CreateBatch(ctx, slots); err != nil {
		return nil, fmt.Errorf("create slots: %w", err)
	}

	s.logger.Info("availability published",
		zap.String("mentor_id", mentorID.String()),
		zap.Int("slots", len(slots)),
	)

	return slots, nil
}

// OpenDates returns the dates on or after from with at least one open
// slot for the mentor.
func (s *AvailabilityService) OpenDates(ctx context.Context, mentorID uuid.UUID, from time.Time) ([]time.Time, error) {
	return s.slots.ListOpenDates(ctx, mentorID, from)
}

// OpenSlots returns the mentor's open slots for a date, earliest first.
func (s *AvailabilityService) OpenSlots(ctx context.Context, mentorID uuid.UUID, date time.Time) ([]*model.AvailabilitySlot, error) {
	return s.slots.ListOpenSlots(ctx, mentorID, date)
}
