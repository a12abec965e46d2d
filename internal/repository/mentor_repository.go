package repository

import (
	"context"
	"fmt"

	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MentorRepository struct {
	pool *pgxpool.Pool
}

func NewMentorRepository(pool *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{pool: pool}
}

// Create inserts a mentor profile. Topics are stored comma-joined.
func (r *MentorRepository) Create(ctx context.Context, profile *model.MentorProfile) error {
	query := `
		INSERT INTO mentors (user_id, industry, mentor_topics, bio, experience_years, max_mentees, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		profile.UserID,
		profile.Industry,
		model.JoinList(profile.MentorTopics),
		profile.Bio,
		profile.ExperienceYears,
		profile.MaxMentees,
		profile.IsActive,
	).Scan(&profile.ID, &profile.CreatedAt)

	if err != nil {
		return fmt.Errorf("create mentor profile: %w", err)
	}

	return nil
}

// GetByUserID gets the mentor profile owned by a user.
func (r *MentorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.MentorProfile, error) {
	query := `
		SELECT id, user_id, industry, mentor_topics, bio, experience_years, max_mentees, is_active, created_at
		FROM mentors
		WHERE user_id = $1
	`

	profile, err := scanMentor(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get mentor by user id: %w", err)
	}

	return profile, nil
}

// ListActive returns every active mentor profile in insertion order. The
// matching service scores this list in memory.
func (r *MentorRepository) ListActive(ctx context.Context) ([]*model.MentorProfile, error) {
	query := `
		SELECT id, user_id, industry, mentor_topics, bio, experience_years, max_mentees, is_active, created_at
		FROM mentors
		WHERE is_active = true
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active mentors: %w", err)
	}
	defer rows.Close()

	var mentors []*model.MentorProfile
	for rows.Next() {
		profile, err := scanMentor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mentor: %w", err)
		}
		mentors = append(mentors, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mentors: %w", err)
	}

	return mentors, nil
}

// Update rewrites the mutable profile fields of the user's own profile.
func (r *MentorRepository) Update(ctx context.Context, profile *model.MentorProfile) error {
	query := `
		UPDATE mentors
		SET industry = $1, mentor_topics = $2, bio = $3, experience_years = $4, max_mentees = $5, is_active = $6
		WHERE user_id = $7
	`

	result, err := r.pool.Exec(
		ctx, query,
		profile.Industry,
		model.JoinList(profile.MentorTopics),
		profile.Bio,
		profile.ExperienceYears,
		profile.MaxMentees,
		profile.IsActive,
		profile.UserID,
	)
	if err != nil {
		return fmt.Errorf("update mentor profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("mentor profile not found")
	}

	return nil
}

func scanMentor(row pgx.Row) (*model.MentorProfile, error) {
	var profile model.MentorProfile
	var topics string

	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Industry,
		&topics,
		&profile.Bio,
		&profile.ExperienceYears,
		&profile.MaxMentees,
		&profile.IsActive,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.MentorTopics = model.SplitList(topics)
	return &profile, nil
}
