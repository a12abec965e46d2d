package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amet-alumni/network-backend/internal/model"
)

type fakeMentorPool struct {
	mentors []*model.MentorProfile
}

func (f *fakeMentorPool) ListActive(_ context.Context) ([]*model.MentorProfile, error) {
	return f.mentors, nil
}

func TestFindMatches(t *testing.T) {
	ctx := context.Background()

	strong := &model.MentorProfile{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Industry:     "Technology",
		MentorTopics: []string{"Leadership", "Networking"},
	}
	weak := &model.MentorProfile{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Industry: "Healthcare",
	}

	pool := &fakeMentorPool{mentors: []*model.MentorProfile{weak, strong}}
	svc := NewMatchingService(pool, zap.NewNop())

	matches, err := svc.FindMatches(ctx, &model.MenteePreferences{
		IndustriesInterested: []string{"Technology"},
		Topics:               []string{"Leadership", "Networking"},
	}, 0)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, strong.ID, matches[0].Mentor.ID)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestFindMatchesEmptyPool(t *testing.T) {
	svc := NewMatchingService(&fakeMentorPool{}, zap.NewNop())

	matches, err := svc.FindMatches(context.Background(), &model.MenteePreferences{}, 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
