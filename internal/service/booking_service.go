package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MenteeDirectory looks up mentee role records.
type MenteeDirectory interface {
	Create(ctx context.Context, mentee *model.Mentee) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Mentee, error)
}

// SlotLedger is the availability ledger. Claim must be atomic with
// respect to concurrent claims of the same slot.
type SlotLedger interface {
	CreateBatch(ctx context.Context, slots []*model.AvailabilitySlot) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.AvailabilitySlot, error)
	ListOpenDates(ctx context.Context, mentorID uuid.UUID, from time.Time) ([]time.Time, error)
	ListOpenSlots(ctx context.Context, mentorID uuid.UUID, date time.Time) ([]*model.AvailabilitySlot, error)
	ExistsAt(ctx context.Context, mentorID uuid.UUID, date, startTime time.Time) (bool, error)
	Claim(ctx context.Context, slotID, mentorID uuid.UUID) (bool, error)
	Release(ctx context.Context, slotID uuid.UUID) error
}

// SessionStore persists mentorship sessions.
type SessionStore interface {
	Create(ctx context.Context, session *model.MentorshipSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.MentorshipSession, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*model.MentorshipSession, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, notes, meetingLink string) error
	MarkCancelled(ctx context.Context, id, cancelledBy uuid.UUID) (bool, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error)
}

// BookingService composes the availability ledger and the session store.
// Booking claims the slot first and creates the session second; if the
// insert fails the claim is released, so a slot is never left booked
// without a scheduled session.
type BookingService struct {
	mentees  MenteeDirectory
	slots    SlotLedger
	sessions SessionStore
	logger   *zap.Logger
}

func NewBookingService(mentees MenteeDirectory, slots SlotLedger, sessions SessionStore, logger *zap.Logger) *BookingService {
	return &BookingService{
		mentees:  mentees,
		slots:    slots,
		sessions: sessions,
		logger:   logger,
	}
}

// Book schedules a session for the mentee on one of the mentor's open
// slots.
func (s *BookingService) Book(ctx context.Context, mentorID, menteeUserID, slotID uuid.UUID, topic, description, meetingLink string) (*model.MentorshipSession, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, fmt.Errorf("topic is required: %w", ErrValidation)
	}

	mentee, err := s.mentees.GetByUserID(ctx, menteeUserID)
	if err != nil {
		return nil, fmt.Errorf("get mentee: %w", err)
	}
	if mentee == nil {
		return nil, ErrNotRegistered
	}

	slot, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if slot == nil || slot.MentorID != mentorID || slot.IsBooked {
		return nil, ErrSlotUnavailable
	}

	// Claim first; the conditional update arbitrates concurrent bookings.
	claimed, err := s.slots.Claim(ctx, slotID, mentorID)
	if err != nil {
		return nil, fmt.Errorf("claim slot: %w", err)
	}
	if !claimed {
		// The slot was open a moment ago; a concurrent booking won.
		return nil, ErrAlreadyBooked
	}

	session := &model.MentorshipSession{
		MentorID:    mentorID,
		MenteeID:    menteeUserID,
		SlotID:      slotID,
		Date:        slot.Date,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Topic:       topic,
		Description: description,
		MeetingLink: meetingLink,
		Status:      model.SessionStatusScheduled,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		// Compensate: reopen the slot so it is not lost.
		if relErr := s.slots.Release(ctx, slotID); relErr != nil {
			s.logger.Error("failed to release slot after session insert failure",
				zap.String("slot_id", slotID.String()),
				zap.Error(relErr),
			)
		}
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session booked",
		zap.String("session_id", session.ID.String()),
		zap.String("mentor_id", mentorID.String()),
		zap.String("mentee_id", menteeUserID.String()),
		zap.String("slot_id", slotID.String()),
	)

	return session, nil
}

// CancelSession cancels a scheduled session and reopens its slot. Either
// participant may cancel.
func (s *BookingService) CancelSession(ctx context.Context, sessionID, actingUserID uuid.UUID) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return ErrNotFound
	}

	if actingUserID != session.MentorID && actingUserID != session.MenteeID {
		return ErrNotAllowed
	}

	cancelled, err := s.sessions.MarkCancelled(ctx, sessionID, actingUserID)
	if err != nil {
		return fmt.Errorf("cancel session: %w", err)
	}
	if !cancelled {
		return ErrInvalidState
	}

	if err := s.slots.Release(ctx, session.SlotID); err != nil {
		return fmt.Errorf("release slot: %w", err)
	}

	s.logger.Info("session cancelled",
		zap.String("session_id", sessionID.String()),
		zap.String("cancelled_by", actingUserID.String()),
	)

	return nil
}

// CompleteSession marks a scheduled session completed. Mentor only.
func (s *BookingService) CompleteSession(ctx context.Context, sessionID, actingUserID uuid.UUID) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return ErrNotFound
	}

	if actingUserID != session.MentorID {
		return ErrNotAllowed
	}

	completed, err := s.sessions.MarkCompleted(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if !completed {
		return ErrInvalidState
	}

	return nil
}

// UpdateSessionDetails lets the mentor set notes and the meeting link.
func (s *BookingService) UpdateSessionDetails(ctx context.Context, sessionID, actingUserID uuid.UUID, notes, meetingLink string) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return ErrNotFound
	}

	if actingUserID != session.MentorID {
		return ErrNotAllowed
	}

	if err := s.sessions.UpdateDetails(ctx, sessionID, notes, meetingLink); err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	return nil
}

// ListSessions returns every session the user participates in.
func (s *BookingService) ListSessions(ctx context.Context, userID uuid.UUID) ([]*model.MentorshipSession, error) {
	return s.sessions.ListByParticipant(ctx, userID)
}

// RegisterMentee creates the mentee role record booking requires.
func (s *BookingService) RegisterMentee(ctx context.Context, userID uuid.UUID, careerGoals string) (*model.Mentee, error) {
	existing, err := s.mentees.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get mentee: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	mentee := &model.Mentee{UserID: userID, CareerGoals: careerGoals}
	if err := s.mentees.Create(ctx, mentee); err != nil {
		return nil, fmt.Errorf("create mentee: %w", err)
	}

	s.logger.Info("mentee registered", zap.String("user_id", userID.String()))
	return mentee, nil
}
