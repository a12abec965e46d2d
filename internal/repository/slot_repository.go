package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

// CreateBatch inserts a mentor's slots in one round trip.
func (r *SlotRepository) CreateBatch(ctx context.Context, slots []*model.AvailabilitySlot) error {
	query := `
		INSERT INTO mentor_availability (mentor_id, date, start_time, end_time, is_booked)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id, created_at
	`

	batch := &pgx.Batch{}
	for _, slot := range slots {
		batch.Queue(query, slot.MentorID, slot.Date, slot.StartTime, slot.EndTime)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for _, slot := range slots {
		if err := results.QueryRow().Scan(&slot.ID, &slot.CreatedAt); err != nil {
			return fmt.Errorf("create availability slot: %w", err)
		}
	}

	return nil
}

// GetByID gets a slot by ID.
func (r *SlotRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.AvailabilitySlot, error) {
	query := `
		SELECT id, mentor_id, date, start_time, end_time, is_booked, created_at
		FROM mentor_availability
		WHERE id = $1
	`

	var slot model.AvailabilitySlot
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.MentorID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.IsBooked,
		&slot.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot by id: %w", err)
	}

	return &slot, nil
}

// ListOpenDates returns the distinct dates on or after from with at
// least one unbooked slot for the mentor.
func (r *SlotRepository) ListOpenDates(ctx context.Context, mentorID uuid.UUID, from time.Time) ([]time.Time, error) {
	query := `
		SELECT DISTINCT date
		FROM mentor_availability
		WHERE mentor_id = $1
		  AND is_booked = false
		  AND date >= $2
		ORDER BY date
	`

	rows, err := r.pool.Query(ctx, query, mentorID, from)
	if err != nil {
		return nil, fmt.Errorf("list open dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan open date: %w", err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate open dates: %w", err)
	}

	return dates, nil
}

// ListOpenSlots returns the mentor's unbooked slots for one date,
// ordered by start time.
func (r *SlotRepository) ListOpenSlots(ctx context.Context, mentorID uuid.UUID, date time.Time) ([]*model.AvailabilitySlot, error) {
	query := `
		SELECT id, mentor_id, date, start_time, end_time, is_booked, created_at
		FROM mentor_availability
		WHERE mentor_id = $1
		  AND date = $2
		  AND is_booked = false
		ORDER BY start_time
	`

	rows, err := r.pool.Query(ctx, query, mentorID, date)
	if err != nil {
		return nil, fmt.Errorf("list open slots: %w", err)
	}
	defer rows.Close()

	var slots []*model.AvailabilitySlot
	for rows.Next() {
		var slot model.AvailabilitySlot
		err := rows.Scan(
			&slot.ID,
			&slot.MentorID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsBooked,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slots: %w", err)
	}

	return slots, nil
}

// Claim flips is_booked exactly once. The guard makes concurrent claims
// of the same slot mutually exclusive: the second one affects zero rows.
func (r *SlotRepository) Claim(ctx context.Context, slotID, mentorID uuid.UUID) (bool, error) {
	query := `
		UPDATE mentor_availability
		SET is_booked = true
		WHERE id = $1 AND mentor_id = $2 AND is_booked = false
	`

	result, err := r.pool.Exec(ctx, query, slotID, mentorID)
	if err != nil {
		return false, fmt.Errorf("claim slot: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Release reopens a claimed slot. Used only when a claimed slot's
// session was never created or was cancelled.
func (r *SlotRepository) Release(ctx context.Context, slotID uuid.UUID) error {
	query := `
		UPDATE mentor_availability
		SET is_booked = false
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, slotID)
	if err != nil {
		return fmt.Errorf("release slot: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("slot not found")
	}

	return nil
}

// ExistsAt reports whether the mentor already has a slot starting at the
// given time on the given date.
func (r *SlotRepository) ExistsAt(ctx context.Context, mentorID uuid.UUID, date, startTime time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM mentor_availability
			WHERE mentor_id = $1 AND date = $2 AND start_time = $3
		)
	`

	var exists bool
	err := r.pool.QueryRow(ctx, query, mentorID, date, startTime).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slot exists: %w", err)
	}

	return exists, nil
}
