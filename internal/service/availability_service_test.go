package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func slotInput(day, hour int) SlotInput {
	return SlotInput{
		Date:      time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC),
		StartTime: time.Date(2026, 9, day, hour, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, day, hour+1, 0, 0, 0, time.UTC),
	}
}

func TestAddSlots(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeSlotLedger()
	svc := NewAvailabilityService(ledger, zap.NewNop())

	mentorID := uuid.New()
	slots, err := svc.AddSlots(ctx, mentorID, []SlotInput{slotInput(10, 14), slotInput(10, 15), slotInput(11, 9)})
	require.NoError(t, err)
	require.Len(t, slots, 3)

	for _, slot := range slots {
		assert.NotEqual(t, uuid.Nil, slot.ID)
		assert.Equal(t, mentorID, slot.MentorID)
		assert.False(t, slot.IsBooked)
	}
}

func TestAddSlotsSkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeSlotLedger()
	svc := NewAvailabilityService(ledger, zap.NewNop())

	mentorID := uuid.New()
	_, err := svc.AddSlots(ctx, mentorID, []SlotInput{slotInput(10, 14)})
	require.NoError(t, err)

	// The same start time again, plus one new slot.
	slots, err := svc.AddSlots(ctx, mentorID, []SlotInput{slotInput(10, 14), slotInput(10, 16)})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, slotInput(10, 16).StartTime, slots[0].StartTime)

	// All duplicates yields an empty result, not an error.
	slots, err = svc.AddSlots(ctx, mentorID, []SlotInput{slotInput(10, 14)})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAddSlotsValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewAvailabilityService(newFakeSlotLedger(), zap.NewNop())

	_, err := svc.AddSlots(ctx, uuid.New(), nil)
	assert.ErrorIs(t, err, ErrValidation)

	inverted := slotInput(10, 14)
	inverted.EndTime = inverted.StartTime.Add(-time.Hour)
	_, err = svc.AddSlots(ctx, uuid.New(), []SlotInput{inverted})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOpenDatesAndSlots(t *testing.T) {
	ctx := context.Background()
	ledger := newFakeSlotLedger()
	svc := NewAvailabilityService(ledger, zap.NewNop())

	mentorID := uuid.New()
	created, err := svc.AddSlots(ctx, mentorID, []SlotInput{slotInput(10, 14), slotInput(10, 15), slotInput(12, 9)})
	require.NoError(t, err)
	require.Len(t, created, 3)

	dates, err := svc.OpenDates(ctx, mentorID, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, dates, 2)

	slots, err := svc.OpenSlots(ctx, mentorID, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, slots, 2)

	// Booked slots drop out of the open listings.
	claimed, err := ledger.Claim(ctx, created[0].ID, mentorID)
	require.NoError(t, err)
	require.True(t, claimed)

	slots, err = svc.OpenSlots(ctx, mentorID, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}
