package hold

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var testStart = time.Date(2026, time.October, 20, 10, 30, 0, 0, time.UTC)

func newStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb), mr
}

func testHold(id string) *domain.Hold {
	return &domain.Hold{
		ID:          id,
		CallID:      "call-1",
		CallerPhone: "+46701234567",
		ServiceID:   "svc-standard",
		StaffID:     "anna",
		SlotLabel:   "Tisdag 10:30",
		StartDT:     testStart,
		EndDT:       testStart.Add(30 * time.Minute),
		ExpiresAt:   testStart.Add(-time.Hour),
		CreatedAt:   testStart.Add(-2 * time.Hour),
	}
}

func TestPlaceAndGet(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Place(ctx, testHold("hold-1"), 5*time.Minute))

	got, err := store.Get(ctx, "hold-1")
	require.NoError(t, err)
	assert.Equal(t, "Tisdag 10:30", got.SlotLabel)
	assert.Equal(t, "anna", got.StaffID)
	assert.True(t, got.StartDT.Equal(testStart))

	active, err := store.Active(ctx, testStart, testStart.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "hold-1", active[0].ID)

	_, err = store.Get(ctx, "unknown")
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestPlace_RequiresStaff(t *testing.T) {
	store, _ := newStore(t)
	h := testHold("hold-1")
	h.StaffID = ""
	assert.ErrorIs(t, store.Place(context.Background(), h, time.Minute), ErrInvalidHold)
}

func TestPlace_SameStaffOverlapRejected(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Place(ctx, testHold("hold-1"), 5*time.Minute))

	// та же услуга, то же время
	assert.ErrorIs(t, store.Place(ctx, testHold("hold-2"), 5*time.Minute), ErrSlotHeld)

	// другая услуга, начало внутри занятого интервала
	longer := testHold("hold-3")
	longer.ServiceID = "svc-long"
	longer.StartDT = testStart.Add(-15 * time.Minute)
	longer.EndDT = testStart.Add(45 * time.Minute)
	assert.ErrorIs(t, store.Place(ctx, longer, 5*time.Minute), ErrSlotHeld)
}

func TestPlace_OtherStaffOrTouchingAllowed(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Place(ctx, testHold("hold-1"), 5*time.Minute))

	erik := testHold("hold-2")
	erik.StaffID = "erik"
	assert.NoError(t, store.Place(ctx, erik, 5*time.Minute))

	next := testHold("hold-3")
	next.StartDT = testStart.Add(30 * time.Minute)
	next.EndDT = testStart.Add(time.Hour)
	assert.NoError(t, store.Place(ctx, next, 5*time.Minute))
}

func TestPlace_StaffLockedByAnotherCall(t *testing.T) {
	store, mr := newStore(t)
	require.NoError(t, mr.Set(staffLockKey("anna"), "hold-other"))

	err := store.Place(context.Background(), testHold("hold-1"), time.Minute)
	assert.ErrorIs(t, err, ErrStaffBusy)

	// чужая блокировка не снимается
	owner, err := mr.Get(staffLockKey("anna"))
	require.NoError(t, err)
	assert.Equal(t, "hold-other", owner)
}

func TestPlace_ReleasesOwnLock(t *testing.T) {
	store, mr := newStore(t)
	require.NoError(t, store.Place(context.Background(), testHold("hold-1"), time.Minute))
	assert.False(t, mr.Exists(staffLockKey("anna")))
}

func TestHoldExpires(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Place(ctx, testHold("hold-1"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "hold-1")
	assert.ErrorIs(t, err, ErrHoldNotFound)
	assert.NoError(t, store.Place(ctx, testHold("hold-2"), time.Minute))

	members, err := mr.ZMembers(holdsIndexKey)
	require.NoError(t, err)
	assert.Equal(t, []string{"hold-2"}, members)
}

func TestActive_FiltersByInterval(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Place(ctx, testHold("hold-1"), 5*time.Minute))

	active, err := store.Active(ctx, testStart.Add(30*time.Minute), testStart.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, active)

	active, err = store.Active(ctx, testStart.Add(-time.Hour), testStart)
	require.NoError(t, err)
	assert.Empty(t, active)

	active, err = store.Active(ctx, testStart.Add(-time.Hour), testStart.Add(time.Minute))
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestRelease(t *testing.T) {
	store, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Place(ctx, testHold("hold-1"), 5*time.Minute))
	require.NoError(t, store.Release(ctx, "hold-1"))
	assert.False(t, mr.Exists(holdKey("hold-1")))

	active, err := store.Active(ctx, testStart, testStart.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.NoError(t, store.Release(ctx, "hold-1"))
	assert.NoError(t, store.Place(ctx, testHold("hold-2"), 5*time.Minute))
}
