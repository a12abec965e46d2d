package repository

import (
	"context"
	"fmt"

	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenteeRepository struct {
	pool *pgxpool.Pool
}

func NewMenteeRepository(pool *pgxpool.Pool) *MenteeRepository {
	return &MenteeRepository{pool: pool}
}

// Create registers a user as a mentee.
func (r *MenteeRepository) Create(ctx context.Context, mentee *model.Mentee) error {
	query := `
		INSERT INTO mentees (user_id, career_goals)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query, mentee.UserID, mentee.CareerGoals).
		Scan(&mentee.ID, &mentee.CreatedAt)
	if err != nil {
		return fmt.Errorf("create mentee: %w", err)
	}

	return nil
}

// GetByUserID returns the mentee record for a user, or nil when the user
// never registered as a mentee.
func (r *MenteeRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Mentee, error) {
	query := `
		SELECT id, user_id, career_goals, created_at
		FROM mentees
		WHERE user_id = $1
	`

	var mentee model.Mentee
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&mentee.ID,
		&mentee.UserID,
		&mentee.CareerGoals,
		&mentee.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get mentee by user id: %w", err)
	}

	return &mentee, nil
}
