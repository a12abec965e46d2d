package repository

import (
	"context"
	"fmt"

	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type JobAlertRepository struct {
	pool *pgxpool.Pool
}

func NewJobAlertRepository(pool *pgxpool.Pool) *JobAlertRepository {
	return &JobAlertRepository{pool: pool}
}

// Create inserts a saved alert. Criteria lists use Postgres text arrays.
func (r *JobAlertRepository) Create(ctx context.Context, alert *model.JobAlert) error {
	query := `
		INSERT INTO job_alerts (user_id, alert_name, job_titles, industries, locations, job_types, min_salary, keywords, frequency, enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		alert.UserID,
		alert.AlertName,
		alert.JobTitles,
		alert.Industries,
		alert.Locations,
		alert.JobTypes,
		alert.MinSalary,
		alert.Keywords,
		alert.Frequency,
		alert.Enabled,
	).Scan(&alert.ID, &alert.CreatedAt)

	if err != nil {
		return fmt.Errorf("create job alert: %w", err)
	}

	return nil
}

// ListByUser returns a user's alerts, newest first.
func (r *JobAlertRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.JobAlert, error) {
	query := `
		SELECT id, user_id, alert_name, job_titles, industries, locations, job_types, min_salary, keywords, frequency, enabled, created_at
		FROM job_alerts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	return r.queryAlerts(ctx, query, userID)
}

// ListEnabledByFrequency returns every enabled alert for one delivery
// frequency.
func (r *JobAlertRepository) ListEnabledByFrequency(ctx context.Context, frequency model.AlertFrequency) ([]*model.JobAlert, error) {
	query := `
		SELECT id, user_id, alert_name, job_titles, industries, locations, job_types, min_salary, keywords, frequency, enabled, created_at
		FROM job_alerts
		WHERE enabled = true AND frequency = $1
		ORDER BY created_at
	`

	return r.queryAlerts(ctx, query, frequency)
}

func (r *JobAlertRepository) queryAlerts(ctx context.Context, query string, args ...any) ([]*model.JobAlert, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query job alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*model.JobAlert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate job alerts: %w", err)
	}

	return alerts, nil
}

func scanAlert(row pgx.Row) (*model.JobAlert, error) {
	var alert model.JobAlert
	err := row.Scan(
		&alert.ID,
		&alert.UserID,
		&alert.AlertName,
		&alert.JobTitles,
		&alert.Industries,
		&alert.Locations,
		&alert.JobTypes,
		&alert.MinSalary,
		&alert.Keywords,
		&alert.Frequency,
		&alert.Enabled,
		&alert.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &alert, nil
}
