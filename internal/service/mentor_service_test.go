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

type fakeMentorDirectory struct {
	profiles map[uuid.UUID]*model.MentorProfile
}

func newFakeMentorDirectory() *fakeMentorDirectory {
	return &fakeMentorDirectory{profiles: make(map[uuid.UUID]*model.MentorProfile)}
}

func (f *fakeMentorDirectory) Create(_ context.Context, profile *model.MentorProfile) error {
	profile.ID = uuid.New()
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeMentorDirectory) GetByUserID(_ context.Context, userID uuid.UUID) (*model.MentorProfile, error) {
	return f.profiles[userID], nil
}

func (f *fakeMentorDirectory) Update(_ context.Context, profile *model.MentorProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func TestOptIn(t *testing.T) {
	ctx := context.Background()
	svc := NewMentorService(newFakeMentorDirectory(), zap.NewNop())

	profile, err := svc.OptIn(ctx, &model.MentorProfile{
		UserID:       uuid.New(),
		Industry:     "Technology",
		MentorTopics: []string{"Leadership"},
	})
	require.NoError(t, err)

	assert.True(t, profile.IsActive)
	assert.Equal(t, 3, profile.MaxMentees)
}

func TestOptInRequiresIndustry(t *testing.T) {
	svc := NewMentorService(newFakeMentorDirectory(), zap.NewNop())

	_, err := svc.OptIn(context.Background(), &model.MentorProfile{UserID: uuid.New()})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOptInTwice(t *testing.T) {
	ctx := context.Background()
	svc := NewMentorService(newFakeMentorDirectory(), zap.NewNop())

	userID := uuid.New()
	_, err := svc.OptIn(ctx, &model.MentorProfile{UserID: userID, Industry: "Technology"})
	require.NoError(t, err)

	_, err = svc.OptIn(ctx, &model.MentorProfile{UserID: userID, Industry: "Finance"})
	assert.ErrorIs(t, err, ErrDuplicateRequest)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	dir := newFakeMentorDirectory()
	svc := NewMentorService(dir, zap.NewNop())

	userID := uuid.New()
	_, err := svc.OptIn(ctx, &model.MentorProfile{UserID: userID, Industry: "Technology"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, userID, &model.MentorProfile{
		Industry:     "Finance",
		MentorTopics: []string{"Investing"},
		MaxMentees:   5,
		IsActive:     false,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, updated.UserID)
	assert.Equal(t, "Finance", updated.Industry)
	assert.False(t, updated.IsActive)

	_, err = svc.UpdateProfile(ctx, uuid.New(), &model.MentorProfile{Industry: "Finance"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewMentorService(newFakeMentorDirectory(), zap.NewNop())

	userID := uuid.New()
	_, err := svc.OptIn(ctx, &model.MentorProfile{UserID: userID, Industry: "Technology"})
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Technology", profile.Industry)

	_, err = svc.Profile(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
