package service

import (
	"context"
	"fmt"

	"github.com/amet-alumni/network-backend/internal/matching"
	"github.com/amet-alumni/network-backend/internal/model"
	"go.uber.org/zap"
)

// MentorPool supplies the candidate list the scorer ranks.
type MentorPool interface {
	ListActive(ctx context.Context) ([]*model.MentorProfile, error)
}

// MatchingService ranks active mentors against a mentee's preferences.
type MatchingService struct {
	mentors MentorPool
	logger  *zap.Logger
}

func NewMatchingService(mentors MentorPool, logger *zap.Logger) *MatchingService {
	return &MatchingService{
		mentors: mentors,
		logger:  logger,
	}
}

// FindMatches fetches the mentor pool and returns the top matches for
// the preferences. An empty pool is an empty result, not an error.
func (s *MatchingService) FindMatches(ctx context.Context, prefs *model.MenteePreferences, limit int) ([]matching.ScoredMentor, error) {
	mentors, err := s.mentors.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}

	ranked := matching.Rank(mentors, prefs, limit)

	s.logger.Info("mentor matching computed",
		zap.Int("candidates", len(mentors)),
		zap.Int("returned", len(ranked)),
	)

	return ranked, nil
}
