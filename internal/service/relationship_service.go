package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RelationshipStore is the persistence surface of the relationship state
// machine. Status-guarded updates report whether a row was actually
// moved, which is how concurrent transitions are arbitrated.
type RelationshipStore interface {
	Create(ctx context.Context, rel *model.MentorshipRelationship) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.MentorshipRelationship, error)
	HasActive(ctx context.Context, mentorID, menteeID uuid.UUID) (bool, error)
	MarkResponded(ctx context.Context, id uuid.UUID, status model.RelationshipStatus) (bool, error)
	MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error)
	DeletePending(ctx context.Context, id uuid.UUID) (bool, error)
	ListByMentor(ctx context.Context, mentorID uuid.UUID, status model.RelationshipStatus) ([]*model.MentorshipRelationship, error)
	ListByMentee(ctx context.Context, menteeID uuid.UUID, status model.RelationshipStatus) ([]*model.MentorshipRelationship, error)
}

// RelationshipService governs the mentorship request lifecycle:
// pending -> accepted | rejected (mentor only), accepted -> completed
// (either party). Rejected and completed are terminal. A pending request
// may instead be deleted by its mentee.
type RelationshipService struct {
	relationships RelationshipStore
	logger        *zap.Logger
}

func NewRelationshipService(relationships RelationshipStore, logger *zap.Logger) *RelationshipService {
	return &RelationshipService{
		relationships: relationships,
		logger:        logger,
	}
}

// Request creates a pending relationship from mentee to mentor. A pair
// may hold at most one active (pending or accepted) relationship; a new
// request after rejection or completion creates a fresh record.
func (s *RelationshipService) Request(ctx context.Context, mentorID, menteeID uuid.UUID, field, goals string) (*model.MentorshipRelationship, error) {
	if strings.TrimSpace(field) == "" || strings.TrimSpace(goals) == "" {
		return nil, fmt.Errorf("field and goals are required: %w", ErrValidation)
	}

	active, err := s.relationships.HasActive(ctx, mentorID, menteeID)
	if err != nil {
		return nil, fmt.Errorf("check active relationship: %w", err)
	}
	if active {
		return nil, ErrDuplicateRequest
	}

	rel := &model.MentorshipRelationship{
		MentorID: mentorID,
		MenteeID: menteeID,
		Status:   model.RelationshipStatusPending,
		Field:    field,
		Goals:    goals,
	}

	if err := s.relationships.Create(ctx, rel); err != nil {
		return nil, fmt.Errorf("create relationship: %w", err)
	}

	s.logger.Info("mentorship requested",
		zap.String("relationship_id", rel.ID.String()),
		zap.String("mentor_id", mentorID.String()),
		zap.String("mentee_id", menteeID.String()),
	)

	return rel, nil
}

// Respond accepts or rejects a pending request. Only the relationship's
// mentor may respond.
func (s *RelationshipService) Respond(ctx context.Context, relationshipID, actingMentorID uuid.UUID, decision model.RelationshipStatus) error {
	if decision != model.RelationshipStatusAccepted && decision != model.RelationshipStatusRejected {
		return fmt.Errorf("decision must be accepted or rejected: %w", ErrValidation)
	}

	rel, err := s.relationships.GetByID(ctx, relationshipID)
	if err != nil {
		return fmt.Errorf("get relationship: %w", err)
	}
	if rel == nil {
		return ErrNotFound
	}

	if rel.MentorID != actingMentorID {
		return ErrNotAllowed
	}
	if rel.Status != model.RelationshipStatusPending {
		return ErrInvalidState
	}

	// Guarded update: loses cleanly if the mentee cancelled in between.
	moved, err := s.relationships.MarkResponded(ctx, relationshipID, decision)
	if err != nil {
		return fmt.Errorf("respond to relationship: %w", err)
	}
	if !moved {
		return ErrInvalidState
	}

	s.logger.Info("mentorship request answered",
		zap.String("relationship_id", relationshipID.String()),
		zap.String("decision", string(decision)),
	)

	return nil
}

// Complete moves an accepted relationship to completed. Either the
// mentor or the mentee of record may complete.
func (s *RelationshipService) Complete(ctx context.Context, relationshipID, actingUserID uuid.UUID) error {
	rel, err := s.relationships.GetByID(ctx, relationshipID)
	if err != nil {
		return fmt.Errorf("get relationship: %w", err)
	}
	if rel == nil {
		return ErrNotFound
	}

	if actingUserID != rel.MentorID && actingUserID != rel.MenteeID {
		return ErrNotAllowed
	}
	if rel.Status != model.RelationshipStatusAccepted {
		return ErrInvalidState
	}

	moved, err := s.relationships.MarkCompleted(ctx, relationshipID)
	if err != nil {
		return fmt.Errorf("complete relationship: %w", err)
	}
	if !moved {
		return ErrInvalidState
	}

	s.logger.Info("mentorship completed",
		zap.String("relationship_id", relationshipID.String()),
		zap.String("completed_by", actingUserID.String()),
	)

	return nil
}

// Cancel deletes a request that is still pending. Only the requesting
// mentee may cancel.
func (s *RelationshipService) Cancel(ctx context.Context, relationshipID, actingMenteeID uuid.UUID) error {
	rel, err := s.relationships.GetByID(ctx, relationshipID)
	if err != nil {
		return fmt.Errorf("get relationship: %w", err)
	}
	if rel == nil {
		return ErrNotFound
	}

	if rel.MenteeID != actingMenteeID {
		return ErrNotAllowed
	}
	if rel.Status != model.RelationshipStatusPending {
		return ErrInvalidState
	}

	deleted, err := s.relationships.DeletePending(ctx, relationshipID)
	if err != nil {
		return fmt.Errorf("cancel relationship: %w", err)
	}
	if !deleted {
		return ErrInvalidState
	}

	s.logger.Info("mentorship request cancelled",
		zap.String("relationship_id", relationshipID.String()),
		zap.String("mentee_id", actingMenteeID.String()),
	)

	return nil
}

// ListForMentor returns the mentor's relationships, optionally filtered
// by status.
func (s *RelationshipService) ListForMentor(ctx context.Context, mentorID uuid.UUID, status model.RelationshipStatus) ([]*model.MentorshipRelationship, error) {
	return s.relationships.ListByMentor(ctx, mentorID, status)
}

// ListForMentee returns the mentee's relationships, optionally filtered
// by status.
func (s *RelationshipService) ListForMentee(ctx context.Context, menteeID uuid.UUID, status model.RelationshipStatus) ([]*model.MentorshipRelationship, error) {
	return s.relationships.ListByMentee(ctx, menteeID, status)
}
