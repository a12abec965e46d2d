package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amet-alumni/network-backend/internal/model"
)

// fakeRelationshipStore keeps relationships in memory and mimics the
// status-guarded updates of the real repository.
type fakeRelationshipStore struct {
	rels map[uuid.UUID]*model.MentorshipRelationship
}

func newFakeRelationshipStore() *fakeRelationshipStore {
	return &fakeRelationshipStore{rels: make(map[uuid.UUID]*model.MentorshipRelationship)}
}

func (f *fakeRelationshipStore) Create(_ context.Context, rel *model.MentorshipRelationship) error {
	rel.ID = uuid.New()
	rel.RequestedAt = time.Now()
	f.rels[rel.ID] = rel
	return nil
}

func (f *fakeRelationshipStore) GetByID(_ context.Context, id uuid.UUID) (*model.MentorshipRelationship, error) {
	rel, ok := f.rels[id]
	if !ok {
		return nil, nil
	}
	clone := *rel
	return &clone, nil
}

func (f *fakeRelationshipStore) HasActive(_ context.Context, mentorID, menteeID uuid.UUID) (bool, error) {
	for _, rel := range f.rels {
		if rel.MentorID == mentorID && rel.MenteeID == menteeID && rel.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRelationshipStore) MarkResponded(_ context.Context, id uuid.UUID, status model.RelationshipStatus) (bool, error) {
	rel, ok := f.rels[id]
	if !ok || rel.Status != model.RelationshipStatusPending {
		return false, nil
	}
	now := time.Now()
	rel.Status = status
	rel.RespondedAt = &now
	return true, nil
}

func (f *fakeRelationshipStore) MarkCompleted(_ context.Context, id uuid.UUID) (bool, error) {
	rel, ok := f.rels[id]
	if !ok || rel.Status != model.RelationshipStatusAccepted {
		return false, nil
	}
	now := time.Now()
	rel.Status = model.RelationshipStatusCompleted
	rel.CompletedAt = &now
	return true, nil
}

func (f *fakeRelationshipStore) DeletePending(_ context.Context, id uuid.UUID) (bool, error) {
	rel, ok := f.rels[id]
	if !ok || rel.Status != model.RelationshipStatusPending {
		return false, nil
	}
	delete(f.rels, id)
	return true, nil
}

func (f *fakeRelationshipStore) ListByMentor(_ context.Context, mentorID uuid.UUID, status model.RelationshipStatus) ([]*model.MentorshipRelationship, error) {
	var out []*model.MentorshipRelationship
	for _, rel := range f.rels {
		if rel.MentorID == mentorID && (status == "" || rel.Status == status) {
			out = append(out, rel)
		}
	}
	return out, nil
}

func (f *fakeRelationshipStore) ListByMentee(_ context.Context, menteeID uuid.UUID, status model.RelationshipStatus) ([]*model.MentorshipRelationship, error) {
	var out []*model.MentorshipRelationship
	for _, rel := range f.rels {
		if rel.MenteeID == menteeID && (status == "" || rel.Status == status) {
			out = append(out, rel)
		}
	}
	return out, nil
}

func newRelationshipService(store RelationshipStore) *RelationshipService {
	return NewRelationshipService(store, zap.NewNop())
}

func TestRequest(t *testing.T) {
	ctx := context.Background()
	store := newFakeRelationshipStore()
	svc := newRelationshipService(store)

	mentorID := uuid.New()
	menteeID := uuid.New()

	rel, err := svc.Request(ctx, mentorID, menteeID, "Technology", "Grow into a lead role")
	require.NoError(t, err)
	assert.Equal(t, model.RelationshipStatusPending, rel.Status)
	assert.NotEqual(t, uuid.Nil, rel.ID)
	assert.False(t, rel.RequestedAt.IsZero())
}

func TestRequestValidation(t *testing.T) {
	ctx := context.Background()
	svc := newRelationshipService(newFakeRelationshipStore())

	_, err := svc.Request(ctx, uuid.New(), uuid.New(), "", "goals")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Request(ctx, uuid.New(), uuid.New(), "Technology", "   ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRequestDuplicatePolicy(t *testing.T) {
	ctx := context.Background()
	store := newFakeRelationshipStore()
	svc := newRelationshipService(store)

	mentorID := uuid.New()
	menteeID := uuid.New()

	rel, err := svc.Request(ctx, mentorID, menteeID, "Technology", "goals")
	require.NoError(t, err)

	// Second request while the first is still pending.
	_, err = svc.Request(ctx, mentorID, menteeID, "Technology", "goals")
	assert.ErrorIs(t, err, ErrDuplicateRequest)

	// Still blocked once accepted.
	require.NoError(t, svc.Respond(ctx, rel.ID, mentorID, model.RelationshipStatusAccepted))
	_, err = svc.Request(ctx, mentorID, menteeID, "Technology", "goals")
	assert.ErrorIs(t, err, ErrDuplicateRequest)

	// Allowed again after the relationship completes.
	require.NoError(t, svc.Complete(ctx, rel.ID, menteeID))
	_, err = svc.Request(ctx, mentorID, menteeID, "Technology", "new goals")
	assert.NoError(t, err)
}

func TestRespond(t *testing.T) {
	ctx := context.Background()
	store := newFakeRelationshipStore()
	svc := newRelationshipService(store)

	mentorID := uuid.New()
	menteeID := uuid.New()

	rel, err := svc.Request(ctx, mentorID, menteeID, "Technology", "goals")
	require.NoError(t, err)

	require.NoError(t, svc.Respond(ctx, rel.ID, mentorID, model.RelationshipStatusAccepted))

	got, err := store.GetByID(ctx, rel.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RelationshipStatusAccepted, got.Status)
	assert.NotNil(t, got.RespondedAt)
}

func TestRespondRejections(t *testing.T) {
	ctx := context.Background()
	store := newFakeRelationshipStore()
	svc := newRelationshipService(store)

	mentorID := uuid.New()
	rel, err := svc.Request(ctx, mentorID, uuid.New(), "Technology", "goals")
	require.NoError(t, err)

	// Only accepted or rejected are legal decisions.
	err = svc.Respond(ctx, rel.ID, mentorID, model.RelationshipStatusCompleted)
	assert.ErrorIs(t, err, ErrValidation)

	// Only the relationship's mentor may respond.
	err = svc.Respond(ctx, rel.ID, uuid.New(), model.RelationshipStatusAccepted)
	assert.ErrorIs(t, err, ErrNotAllowed)

	// Unknown relationship.
	err = svc.Respond(ctx, uuid.New(), mentorID, model.RelationshipStatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)

	// Responding twice hits the status guard.
	require.NoError(t, svc.Respond(ctx, rel.ID, mentorID, model.RelationshipStatusRejected))
	err = svc.Respond(ctx, rel.ID, mentorID, model.RelationshipStatusAccepted)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestComplete(t *testing.T) {
	ctx := context.Background()
	store := newFakeRelationshipStore()
	svc := newRelationshipService(store)

	mentorID := uuid.New()
	menteeID := uuid.New()

	rel, err := svc.Request(ctx, mentorID, menteeID, "Technology", "goals")
	require.NoError(t, err)

	// Pending cannot complete.
	err = svc.Complete(ctx, rel.ID, mentorID)
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, svc.Respond(ctx, rel.ID, mentorID, model.RelationshipStatusAccepted))

	// A stranger cannot complete.
	err = svc.Complete(ctx, rel.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotAllowed)

	// The mentee of record can.
	require.NoError(t, svc.Complete(ctx, rel.ID, menteeID))

	got, err := store.GetByID(ctx, rel.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RelationshipStatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)

	// Completed is terminal.
	err = svc.Complete(ctx, rel.ID, mentorID)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	store := newFakeRelationshipStore()
	svc := newRelationshipService(store)

	mentorID := uuid.New()
	menteeID := uuid.New()

	rel, err := svc.Request(ctx, mentorID, menteeID, "Technology", "goals")
	require.NoError(t, err)

	// Only the requesting mentee may cancel.
	err = svc.Cancel(ctx, rel.ID, mentorID)
	assert.ErrorIs(t, err, ErrNotAllowed)

	require.NoError(t, svc.Cancel(ctx, rel.ID, menteeID))

	got, err := store.GetByID(ctx, rel.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCancelOnlyWhilePending(t *testing.T) {
	ctx := context.Background()
	store := newFakeRelationshipStore()
	svc := newRelationshipService(store)

	mentorID := uuid.New()
	menteeID := uuid.New()

	rel, err := svc.Request(ctx, mentorID, menteeID, "Technology", "goals")
	require.NoError(t, err)
	require.NoError(t, svc.Respond(ctx, rel.ID, mentorID, model.RelationshipStatusAccepted))

	err = svc.Cancel(ctx, rel.ID, menteeID)
	assert.ErrorIs(t, err, ErrInvalidState)
}
