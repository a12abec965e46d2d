package repository

import (
	"context"
	"fmt"

	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Exists reports whether the user was already notified about the job.
// Checked before every send so a (user, job) pair never gets two emails.
func (r *NotificationRepository) Exists(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM job_alert_notifications
			WHERE user_id = $1 AND job_id = $2
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, jobID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check notification exists: %w", err)
	}

	return exists, nil
}

// Create records a delivered notification.
func (r *NotificationRepository) Create(ctx context.Context, n *model.AlertNotification) error {
	query := `
		INSERT INTO job_alert_notifications (user_id, job_id, alert_id, match_score, matched_criteria)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, sent_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		n.UserID,
		n.JobID,
		n.AlertID,
		n.MatchScore,
		n.MatchedCriteria,
	).Scan(&n.ID, &n.SentAt)

	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	return nil
}

// ProfileRepository reads contact details from the identity provider's
// profile table. The core never writes it.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// GetEmail returns the email address for an auth user id, or "" when the
// profile is missing. Profiles are keyed by user_id; the row's own id is
// internal to the profile table.
func (r *ProfileRepository) GetEmail(ctx context.Context, userID uuid.UUID) (string, error) {
	query := `
		SELECT email
		FROM profiles
		WHERE user_id = $1
	`

	var email string
	err := r.pool.QueryRow(ctx, query, userID).Scan(&email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("get profile email: %w", err)
	}

	return email, nil
}
