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

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

// Create inserts a job posting.
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	query := `
		INSERT INTO jobs (title, company, location, job_type, industry, salary_range, description, requirements, is_approved, posted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		job.Title,
		job.Company,
		job.Location,
		job.JobType,
		job.Industry,
		job.SalaryRange,
		job.Description,
		job.Requirements,
		job.IsApproved,
		job.PostedBy,
	).Scan(&job.ID, &job.CreatedAt)

	if err != nil {
		return fmt.Errorf("create job: %w", err)
	}

	return nil
}

// GetByID gets a job by ID.
func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	query := `
		SELECT id, title, company, location, job_type, industry, salary_range, description, requirements, is_approved, posted_by, created_at
		FROM jobs
		WHERE id = $1
	`

	job, err := scanJob(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get job by id: %w", err)
	}

	return job, nil
}

// ListApprovedSince returns approved postings created on or after since,
// newest first.
func (r *JobRepository) ListApprovedSince(ctx context.Context, since time.Time) ([]*model.Job, error) {
	query := `
		SELECT id, title, company, location, job_type, industry, salary_range, description, requirements, is_approved, posted_by, created_at
		FROM jobs
		WHERE is_approved = true
		  AND created_at >= $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list approved jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*model.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}

	return jobs, nil
}

func scanJob(row pgx.Row) (*model.Job, error) {
	var job model.Job
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.JobType,
		&job.Industry,
		&job.SalaryRange,
		&job.Description,
		&job.Requirements,
		&job.IsApproved,
		&job.PostedBy,
		&job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}
