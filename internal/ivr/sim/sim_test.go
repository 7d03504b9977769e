package sim

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/ivr"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func TestRandomSlots_SeededAndParsable(t *testing.T) {
	a := NewRandomSlots(rand.New(rand.NewSource(42)), 3)
	b := NewRandomSlots(rand.New(rand.NewSource(42)), 3)

	slotsA, err := a.SuggestSlots(context.Background(), "standard")
	require.NoError(t, err)
	slotsB, err := b.SuggestSlots(context.Background(), "standard")
	require.NoError(t, err)

	assert.Len(t, slotsA, 3)
	assert.Equal(t, slotsA, slotsB)

	for _, s := range slotsA {
		label, err := domain.ParseSlotLabel(s)
		require.NoError(t, err, s)
		assert.Less(t, label.DayIndex, 5)
	}
}

func TestFixedSlots_ReturnsCopy(t *testing.T) {
	fixed := FixedSlots{"Måndag 10:00", "Tisdag 14:30", "Onsdag 09:00"}
	got, err := fixed.SuggestSlots(context.Background(), "quick")
	require.NoError(t, err)
	got[0] = "changed"
	assert.Equal(t, "Måndag 10:00", fixed[0])
}

func TestMemoryHolds(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryHolds()
	req := ivr.HoldRequest{CallID: "c1", CallerPhone: "+4670", OfferingID: "quick", SlotLabel: "Måndag 10:00"}

	holdID, err := m.PlaceHold(ctx, req)
	require.NoError(t, err)
	assert.Contains(t, holdID, "hold-")

	_, err = m.PlaceHold(ctx, ivr.HoldRequest{CallID: "c2", OfferingID: "quick", SlotLabel: "Måndag 10:00"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	other, err := m.PlaceHold(ctx, ivr.HoldRequest{CallID: "c2", OfferingID: "long", SlotLabel: "Måndag 10:00"})
	require.NoError(t, err)
	require.NoError(t, m.ReleaseHold(ctx, other))
	require.NoError(t, m.ReleaseHold(ctx, "unknown"))

	bookingID, err := m.Confirm(ctx, holdID)
	require.NoError(t, err)
	assert.Contains(t, bookingID, "booking-")
	assert.Equal(t, 0, m.ActiveHolds())

	stored, ok := m.Booking(bookingID)
	require.True(t, ok)
	assert.Equal(t, req, stored)

	_, err = m.Confirm(ctx, holdID)
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestEngineWithSimulator(t *testing.T) {
	ctx := context.Background()
	holds := NewMemoryHolds()
	engine := ivr.NewEngine(
		ivr.NewRegistry(),
		FixedSlots{"Måndag 10:00", "Tisdag 14:30", "Onsdag 09:00"},
		holds,
		holds,
		logger.NewNop(),
	)

	catalog, err := StaticCatalog{}.ListOfferings(ctx)
	require.NoError(t, err)

	first, err := engine.StartCall(ctx, "+46701234567", catalog)
	require.NoError(t, err)
	second, err := engine.StartCall(ctx, "+46707654321", catalog)
	require.NoError(t, err)

	for _, d := range []string{"2", "1"} {
		_, err = engine.HandleDigit(ctx, first.CallID, d)
		require.NoError(t, err)
	}

	_, err = engine.HandleDigit(ctx, second.CallID, "2")
	require.NoError(t, err)
	r, err := engine.HandleDigit(ctx, second.CallID, "1")
	require.ErrorIs(t, err, ivr.ErrHoldUnavailable)
	assert.Equal(t, ivr.StateSelectTime, r.State)

	r, err = engine.HandleDigit(ctx, first.CallID, "1")
	require.NoError(t, err)
	assert.Equal(t, ivr.StateDone, r.State)

	booked, ok := holds.Booking(r.BookingID)
	require.True(t, ok)
	assert.Equal(t, "standard", booked.OfferingID)
	assert.Equal(t, "Måndag 10:00", booked.SlotLabel)
	assert.Equal(t, "+46701234567", booked.CallerPhone)

	r, err = engine.HandleDigit(ctx, second.CallID, "1")
	require.NoError(t, err)
	assert.Equal(t, ivr.StateConfirm, r.State)
}
