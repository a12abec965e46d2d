package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// MentorshipSession is created by booking an availability slot. Exactly
// one non-cancelled session may reference a given slot.
type MentorshipSession struct {
	ID          uuid.UUID     `json:"id"`
	MentorID    uuid.UUID     `json:"mentor_id"`
	MenteeID    uuid.UUID     `json:"mentee_id"`
	SlotID      uuid.UUID     `json:"slot_id"`
	Date        time.Time     `json:"date"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Topic       string        `json:"topic"`
	Description string        `json:"description"`
	MeetingLink string        `json:"meeting_link"`
	Notes       string        `json:"notes"`
	Status      SessionStatus `json:"status"`
	CancelledAt *time.Time    `json:"cancelled_at"`
	CancelledBy *uuid.UUID    `json:"cancelled_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
