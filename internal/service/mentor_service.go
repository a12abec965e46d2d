package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/amet-alumni/network-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MentorDirectory persists mentor profiles.
type MentorDirectory interface {
	Create(ctx context.Context, profile *model.MentorProfile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.MentorProfile, error)
	Update(ctx context.Context, profile *model.MentorProfile) error
}

// MentorService handles mentor opt-in and profile maintenance. Profiles
// are never deleted; stepping back sets IsActive false.
type MentorService struct {
	mentors MentorDirectory
	logger  *zap.Logger
}

func NewMentorService(mentors MentorDirectory, logger *zap.Logger) *MentorService {
	return &MentorService{
		mentors: mentors,
		logger:  logger,
	}
}

// OptIn creates the user's mentor profile.
func (s *MentorService) OptIn(ctx context.Context, profile *model.MentorProfile) (*model.MentorProfile, error) {
	if strings.TrimSpace(profile.Industry) == "" {
		return nil, fmt.Errorf("industry is required: %w", ErrValidation)
	}
	if profile.MaxMentees <= 0 {
		profile.MaxMentees = 3
	}

	existing, err := s.mentors.GetByUserID(ctx, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("get mentor profile: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("mentor profile already exists: %w", ErrDuplicateRequest)
	}

	profile.IsActive = true
	if err := s.mentors.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create mentor profile: %w", err)
	}

	s.logger.Info("mentor opted in",
		zap.String("user_id", profile.UserID.String()),
		zap.String("industry", profile.Industry),
	)

	return profile, nil
}

// UpdateProfile rewrites the caller's own profile fields.
func (s *MentorService) UpdateProfile(ctx context.Context, userID uuid.UUID, update *model.MentorProfile) (*model.MentorProfile, error) {
	existing, err := s.mentors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get mentor profile: %w", err)
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	update.UserID = userID
	if err := s.mentors.Update(ctx, update); err != nil {
		return nil, fmt.Errorf("update mentor profile: %w", err)
	}

	return update, nil
}

// Profile returns the user's own mentor profile.
func (s *MentorService) Profile(ctx context.Context, userID uuid.UUID) (*model.MentorProfile, error) {
	profile, err := s.mentors.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get mentor profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}
