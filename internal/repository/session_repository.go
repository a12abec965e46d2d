package repository

import (
	"context"
	"fmt"

	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// Create inserts a scheduled session referencing a claimed slot.
func (r *SessionRepository) Create(ctx context.Context, session *model.MentorshipSession) error {
	query := `
		INSERT INTO mentorship_sessions
			(mentor_id, mentee_id, slot_id, date, start_time, end_time, topic, description, meeting_link, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		session.MentorID,
		session.MenteeID,
		session.SlotID,
		session.Date,
		session.StartTime,
		session.EndTime,
		session.Topic,
		session.Description,
		session.MeetingLink,
		session.Notes,
		session.Status,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

// GetByID gets a session by ID.
func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MentorshipSession, error) {
	query := `
		SELECT id, mentor_id, mentee_id, slot_id, date, start_time, end_time, topic, description,
		       meeting_link, notes, status, cancelled_at, cancelled_by, created_at, updated_at
		FROM mentorship_sessions
		WHERE id = $1
	`

	session, err := scanSession(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get session by id: %w", err)
	}

	return session, nil
}

// ListByParticipant returns every session where the user is the mentor
// or the mentee, soonest first.
func (r *SessionRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*model.MentorshipSession, error) {
	query := `
		SELECT id, mentor_id, mentee_id, slot_id, date, start_time, end_time, topic, description,
		       meeting_link, notes, status, cancelled_at, cancelled_by, created_at, updated_at
		FROM mentorship_sessions
		WHERE mentor_id = $1 OR mentee_id = $1
		ORDER BY date, start_time
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*model.MentorshipSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

// UpdateDetails sets the mentor-editable fields.
func (r *SessionRepository) UpdateDetails(ctx context.Context, id uuid.UUID, notes, meetingLink string) error {
	query := `
		UPDATE mentorship_sessions
		SET notes = $1, meeting_link = $2, updated_at = now()
		WHERE id = $3
	`

	result, err := r.pool.Exec(ctx, query, notes, meetingLink, id)
	if err != nil {
		return fmt.Errorf("update session details: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found")
	}

	return nil
}

// MarkCancelled moves a scheduled session to cancelled, recording who
// cancelled it. The status guard rejects double cancellation.
func (r *SessionRepository) MarkCancelled(ctx context.Context, id, cancelledBy uuid.UUID) (bool, error) {
	query := `
		UPDATE mentorship_sessions
		SET status = $1, cancelled_at = now(), cancelled_by = $2, updated_at = now()
		WHERE id = $3 AND status = $4
	`

	result, err := r.pool.Exec(ctx, query, model.SessionStatusCancelled, cancelledBy, id, model.SessionStatusScheduled)
	if err != nil {
		return false, fmt.Errorf("mark session cancelled: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// MarkCompleted moves a scheduled session to completed.
func (r *SessionRepository) MarkCompleted(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE mentorship_sessions
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`

	result, err := r.pool.Exec(ctx, query, model.SessionStatusCompleted, id, model.SessionStatusScheduled)
	if err != nil {
		return false, fmt.Errorf("mark session completed: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func scanSession(row pgx.Row) (*model.MentorshipSession, error) {
	var session model.MentorshipSession
	err := row.Scan(
		&session.ID,
		&session.MentorID,
		&session.MenteeID,
		&session.SlotID,
		&session.Date,
		&session.StartTime,
		&session.EndTime,
		&session.Topic,
		&session.Description,
		&session.MeetingLink,
		&session.Notes,
		&session.Status,
		&session.CancelledAt,
		&session.CancelledBy,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}
