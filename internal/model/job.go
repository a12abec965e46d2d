package model

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting scored against saved alerts. Only approved postings
// are considered for notifications.
type Job struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	JobType      string    `json:"job_type"`
	Industry     string    `json:"industry"`
	SalaryRange  string    `json:"salary_range"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	IsApproved   bool      `json:"is_approved"`
	PostedBy     uuid.UUID `json:"posted_by"`
	CreatedAt    time.Time `json:"created_at"`
}

type AlertFrequency string

const (
	FrequencyDaily     AlertFrequency = "daily"
	FrequencyWeekly    AlertFrequency = "weekly"
	FrequencyImmediate AlertFrequency = "immediate"
)

// JobAlert is a user's saved search. Criteria lists are matched loosely
// (substring containment) against postings.
type JobAlert struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	AlertName  string         `json:"alert_name"`
	JobTitles  []string       `json:"job_titles"`
	Industries []string       `json:"industries"`
	Locations  []string       `json:"locations"`
	JobTypes   []string       `json:"job_types"`
	MinSalary  int            `json:"min_salary"`
	Keywords   []string       `json:"keywords"`
	Frequency  AlertFrequency `json:"frequency"`
	Enabled    bool           `json:"enabled"`
	CreatedAt  time.Time      `json:"created_at"`
}

// AlertNotification records one delivered job alert. The unique
// (user_id, job_id) pair guarantees a user is never notified twice
// about the same posting.
type AlertNotification struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	JobID           uuid.UUID `json:"job_id"`
	AlertID         uuid.UUID `json:"alert_id"`
	MatchScore      int       `json:"match_score"`
	MatchedCriteria []string  `json:"matched_criteria"`
	SentAt          time.Time `json:"sent_at"`
}
