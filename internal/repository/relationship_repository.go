package repository

import (
	"context"
	"fmt"

	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RelationshipRepository struct {
	pool *pgxpool.Pool
}

func NewRelationshipRepository(pool *pgxpool.Pool) *RelationshipRepository {
	return &RelationshipRepository{pool: pool}
}

// Create inserts a new pending relationship.
func (r *RelationshipRepository) Create(ctx context.Context, rel *model.MentorshipRelationship) error {
	query := `
		INSERT INTO mentorship_relationships (mentor_id, mentee_id, status, field, goals)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, requested_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		rel.MentorID,
		rel.MenteeID,
		rel.Status,
		rel.Field,
		rel.Goals,
	).Scan(&rel.ID, &rel.RequestedAt)

	if err != nil {
		return fmt.Errorf("create relationship: %w", err)
	}

	return nil
}

// GetByID gets a relationship by ID.
func (r *RelationshipRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MentorshipRelationship, error) {
	query := `
		SELECT id, mentor_id, mentee_id, status, field, goals, requested_at, responded_at, completed_at
		FROM mentorship_relationships
		WHERE id = $1
	`

	rel, err := scanRelationship(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get relationship by id: %w", err)
	}

	return rel, nil
}

// HasActive reports whether a pending or accepted relationship already
// exists for the pair.
func (r *RelationshipRepository) HasActive(ctx context.Context, mentorID, menteeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM mentorship_relationships
			WHERE mentor_id = $1 AND mentee_id = $2 AND status IN ($3, $4)
		)
	`

	var exists bool
	err := r.pool.QueryRow(
		ctx, query,
		mentorID,
		menteeID,
		model.RelationshipStatusPending,
		model.RelationshipStatusAccepted,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check active relationship: %w", err)
	}

	return exists, nil
}

// MarkResponded moves a pending relationship to accepted or rejected.
// The status guard makes the transition a compare-and-set: a concurrent
// transition by another actor leaves zero rows affected.
func (r *RelationshipRepository) MarkResponded(ctx context.Context, id uuid.UUID, status model.RelationshipStatus) (bool, error) {
	query := `
		UPDATE mentorship_relationships
		SET status = $1, responded_at = now()
		WHERE id = $2 AND status = $3
	`

	result, err := r.pool.Exec(ctx, query, status, id, model.RelationshipStatusPending)
	if err != nil {
		return false, fmt.Errorf("mark relationship responded: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// MarkCompleted moves an accepted relationship to completed, guarded the
// same way as MarkResponded.
func (r *RelationshipRepository) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE mentorship_relationships
		SET status = $1, completed_at = now()
		WHERE id = $2 AND status = $3
	`

	result, err := r.pool.Exec(ctx, query, model.RelationshipStatusCompleted, id, model.RelationshipStatusAccepted)
	if err != nil {
		return false, fmt.Errorf("mark relationship completed: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// DeletePending removes a request that is still pending. Cancelling is a
// deletion, not a status.
func (r *RelationshipRepository) DeletePending(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		DELETE FROM mentorship_relationships
		WHERE id = $1 AND status = $2
	`

	result, err := r.pool.Exec(ctx, query, id, model.RelationshipStatusPending)
	if err != nil {
		return false, fmt.Errorf("delete pending relationship: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ListByMentor returns a mentor's relationships, optionally filtered by
// status, newest first.
func (r *RelationshipRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID, status model.RelationshipStatus) ([]*model.MentorshipRelationship, error) {
	return r.list(ctx, "mentor_id", mentorID, status)
}

// ListByMentee returns a mentee's relationships, optionally filtered by
// status, newest first.
func (r *RelationshipRepository) ListByMentee(ctx context.Context, menteeID uuid.UUID, status model.RelationshipStatus) ([]*model.MentorshipRelationship, error) {
	return r.list(ctx, "mentee_id", menteeID, status)
}

func (r *RelationshipRepository) list(ctx context.Context, column string, id uuid.UUID, status model.RelationshipStatus) ([]*model.MentorshipRelationship, error) {
	query := fmt.Sprintf(`
		SELECT id, mentor_id, mentee_id, status, field, goals, requested_at, responded_at, completed_at
		FROM mentorship_relationships
		WHERE %s = $1 AND ($2 = '' OR status = $2)
		ORDER BY requested_at DESC
	`, column)

	rows, err := r.pool.Query(ctx, query, id, string(status))
	if err != nil {
		return nil, fmt.Errorf("list relationships: %w", err)
	}
	defer rows.Close()

	var rels []*model.MentorshipRelationship
	for rows.Next() {
		rel, err := scanRelationship(rows)
		if err != nil {
			return nil, fmt.Errorf("scan relationship: %w", err)
		}
		rels = append(rels, rel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate relationships: %w", err)
	}

	return rels, nil
}

func scanRelationship(row pgx.Row) (*model.MentorshipRelationship, error) {
	var rel model.MentorshipRelationship
	err := row.Scan(
		&rel.ID,
		&rel.MentorID,
		&rel.MenteeID,
		&rel.Status,
		&rel.Field,
		&rel.Goals,
		&rel.RequestedAt,
		&rel.RespondedAt,
		&rel.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rel, nil
}
