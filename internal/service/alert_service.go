package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/amet-alumni/network-backend/internal/matching"
	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/amet-alumni/network-backend/internal/queue"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AlertStore reads saved job alerts.
type AlertStore interface {
	Create(ctx context.Context, alert *model.JobAlert) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.JobAlert, error)
	ListEnabledByFrequency(ctx context.Context, frequency model.AlertFrequency) ([]*model.JobAlert, error)
}

// JobStore reads and writes job postings.
type JobStore interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	ListApprovedSince(ctx context.Context, since time.Time) ([]*model.Job, error)
}

// ProfileDirectory resolves an auth user id to an email address.
type ProfileDirectory interface {
	GetEmail(ctx context.Context, userID uuid.UUID) (string, error)
}

// NotificationLog records delivered alerts and answers the dedup check.
type NotificationLog interface {
	Exists(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
	Create(ctx context.Context, n *model.AlertNotification) error
}

// AlertPublisher hands a job-alert email to the delivery pipeline.
type AlertPublisher interface {
	PublishJobAlert(ctx context.Context, event queue.JobAlertEvent) error
}

// AlertSummary reports one processing run.
type AlertSummary struct {
	Processed int `json:"processed"`
	Matched   int `json:"matched"`
	Sent      int `json:"sent"`
}

// AlertService scores job postings against saved alerts and publishes
// email events for matches. Runs synchronously top to bottom; the batch
// path is triggered by an external scheduler.
type AlertService struct {
	alerts        AlertStore
	jobs          JobStore
	profiles      ProfileDirectory
	notifications NotificationLog
	publisher     AlertPublisher
	siteURL       string
	now           func() time.Time
	logger        *zap.Logger
}

func NewAlertService(
	alerts AlertStore,
	jobs JobStore,
	profiles ProfileDirectory,
	notifications NotificationLog,
	publisher AlertPublisher,
	siteURL string,
	logger *zap.Logger,
) *AlertService {
	return &AlertService{
		alerts:        alerts,
		jobs:          jobs,
		profiles:      profiles,
		notifications: notifications,
		publisher:     publisher,
		siteURL:       siteURL,
		now:           time.Now,
		logger:        logger,
	}
}

// ProcessAlerts runs one batch pass for a delivery frequency: daily
// looks at the last 24 hours of postings, weekly at the last 7 days,
// immediate at the last hour.
func (s *AlertService) ProcessAlerts(ctx context.Context, frequency model.AlertFrequency) (*AlertSummary, error) {
	alerts, err := s.alerts.ListEnabledByFrequency(ctx, frequency)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}

	summary := &AlertSummary{Processed: len(alerts)}
	if len(alerts) == 0 {
		return summary, nil
	}

	var window time.Duration
	switch frequency {
	case model.FrequencyDaily:
		window = 24 * time.Hour
	case model.FrequencyWeekly:
		window = 7 * 24 * time.Hour
	default:
		window = time.Hour
	}

	jobs, err := s.jobs.ListApprovedSince(ctx, s.now().Add(-window))
	if err != nil {
		return nil, fmt.Errorf("list recent jobs: %w", err)
	}
	if len(jobs) == 0 {
		return summary, nil
	}

	for _, alert := range alerts {
		matched, sent := s.processAlert(ctx, alert, jobs)
		summary.Matched += matched
		summary.Sent += sent
	}

	s.logger.Info("job alerts processed",
		zap.String("frequency", string(frequency)),
		zap.Int("alerts", summary.Processed),
		zap.Int("matched", summary.Matched),
		zap.Int("sent", summary.Sent),
	)

	return summary, nil
}

// ProcessJobPosting runs the immediate pass for one newly created job.
func (s *AlertService) ProcessJobPosting(ctx context.Context, jobID uuid.UUID) (*AlertSummary, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job == nil {
		return nil, ErrNotFound
	}

	alerts, err := s.alerts.ListEnabledByFrequency(ctx, model.FrequencyImmediate)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}

	summary := &AlertSummary{Processed: len(alerts)}
	for _, alert := range alerts {
		matched, sent := s.processAlert(ctx, alert, []*model.Job{job})
		summary.Matched += matched
		summary.Sent += sent
	}

	return summary, nil
}

// processAlert scores the jobs for one alert and notifies on matches.
// Delivery failures are logged and skipped, never fatal for the run.
func (s *AlertService) processAlert(ctx context.Context, alert *model.JobAlert, jobs []*model.Job) (matched, sent int) {
	email, err := s.profiles.GetEmail(ctx, alert.UserID)
	if err != nil || email == "" {
		s.logger.Warn("no email for alert owner, skipping",
			zap.String("user_id", alert.UserID.String()),
			zap.Error(err),
		)
		return 0, 0
	}

	type scoredJob struct {
		job   *model.Job
		match matching.JobMatch
	}

	var matches []scoredJob
	for _, job := range jobs {
		if m := matching.MatchJob(job, alert); m.IsMatch() {
			matches = append(matches, scoredJob{job: job, match: m})
		}
	}
	matched = len(matches)

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].match.Score > matches[j].match.Score
	})

	for _, m := range matches {
		exists, err := s.notifications.Exists(ctx, alert.UserID, m.job.ID)
		if err != nil {
			s.logger.Warn("notification dedup check failed",
				zap.String("job_id", m.job.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if exists {
			continue
		}

		event := queue.JobAlertEvent{
			To:       email,
			JobTitle: m.job.Title,
			Company:  m.job.Company,
			URL:      fmt.Sprintf("%s/jobs/%s", s.siteURL, m.job.ID),
		}

		if err := s.publisher.PublishJobAlert(ctx, event); err != nil {
			s.logger.Warn("job alert publish failed",
				zap.String("job_id", m.job.ID.String()),
				zap.Error(err),
			)
			continue
		}

		n := &model.AlertNotification{
			UserID:          alert.UserID,
			JobID:           m.job.ID,
			AlertID:         alert.ID,
			MatchScore:      m.match.Score,
			MatchedCriteria: m.match.MatchedOn,
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			s.logger.Error("failed to record notification",
				zap.String("job_id", m.job.ID.String()),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	return matched, sent
}

// CreateAlert saves a user's alert after basic validation.
func (s *AlertService) CreateAlert(ctx context.Context, alert *model.JobAlert) error {
	if alert.AlertName == "" {
		return fmt.Errorf("alert name is required: %w", ErrValidation)
	}
	switch alert.Frequency {
	case model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyImmediate:
	default:
		return fmt.Errorf("frequency must be daily, weekly or immediate: %w", ErrValidation)
	}

	if err := s.alerts.Create(ctx, alert); err != nil {
		return fmt.Errorf("create alert: %w", err)
	}

	return nil
}

// ListAlerts returns the user's saved alerts.
func (s *AlertService) ListAlerts(ctx context.Context, userID uuid.UUID) ([]*model.JobAlert, error) {
	return s.alerts.ListByUser(ctx, userID)
}

// CreateJob saves a posting and fires the immediate alert pass for it.
func (s *AlertService) CreateJob(ctx context.Context, job *model.Job) error {
	if job.Title == "" || job.Company == "" {
		return fmt.Errorf("title and company are required: %w", ErrValidation)
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return fmt.Errorf("create job: %w", err)
	}

	if job.IsApproved {
		if _, err := s.ProcessJobPosting(ctx, job.ID); err != nil {
			// Notification is best effort; the posting itself succeeded.
			s.logger.Warn("immediate alert pass failed",
				zap.String("job_id", job.ID.String()),
				zap.Error(err),
			)
		}
	}

	return nil
}
