package model

import (
	"time"

	"github.com/google/uuid"
)

type RelationshipStatus string

const (
	RelationshipStatusPending   RelationshipStatus = "pending"
	RelationshipStatusAccepted  RelationshipStatus = "accepted"
	RelationshipStatusRejected  RelationshipStatus = "rejected"
	RelationshipStatusCompleted RelationshipStatus = "completed"
)

// MentorshipRelationship tracks a mentee's request to a mentor and its
// lifecycle. MentorID and MenteeID are user ids. At most one active
// (pending or accepted) relationship may exist per (mentor, mentee) pair;
// rejected and completed are terminal.
type MentorshipRelationship struct {
	ID          uuid.UUID          `json:"id"`
	MentorID    uuid.UUID          `json:"mentor_id"`
	MenteeID    uuid.UUID          `json:"mentee_id"`
	Status      RelationshipStatus `json:"status"`
	Field       string             `json:"field"`
	Goals       string             `json:"goals"`
	RequestedAt time.Time          `json:"requested_at"`
	RespondedAt *time.Time         `json:"responded_at"`
	CompletedAt *time.Time         `json:"completed_at"`
}

// IsActive reports whether the relationship still blocks a new request
// for the same pair.
func (r *MentorshipRelationship) IsActive() bool {
	return r.Status == RelationshipStatusPending || r.Status == RelationshipStatusAccepted
}

// IsTerminal reports whether no further transition may leave this status.
func (r *MentorshipRelationship) IsTerminal() bool {
	return r.Status == RelationshipStatusRejected || r.Status == RelationshipStatusCompleted
}
