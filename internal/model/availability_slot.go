package model

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is a bookable window published by a mentor. Slots are
// immutable except for IsBooked, which flips from false to true when a
// session claims the slot and back only when that session is cancelled.
type AvailabilitySlot struct {
	ID        uuid.UUID `json:"id"`
	MentorID  uuid.UUID `json:"mentor_id"`
	Date      time.Time `json:"date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	IsBooked  bool      `json:"is_booked"`
	CreatedAt time.Time `json:"created_at"`
}
