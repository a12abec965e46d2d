package model

import (
	"time"

	"github.com/google/uuid"
)

// MentorProfile is created when a user opts into mentoring. Profiles are
// never hard-deleted; a mentor steps back by setting IsActive to false.
type MentorProfile struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Industry        string    `json:"industry"`
	MentorTopics    []string  `json:"mentor_topics"`
	Bio             string    `json:"bio"`
	ExperienceYears int       `json:"experience_years"`
	MaxMentees      int       `json:"max_mentees"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// Mentee is the role record required before booking a session.
type Mentee struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CareerGoals string    `json:"career_goals"`
	CreatedAt   time.Time `json:"created_at"`
}
