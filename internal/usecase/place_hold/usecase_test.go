package place_hold

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	holdStore "github.com/m04kA/SMC-SalonService/internal/infra/cache/hold"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Понедельник, 19 октября 2026, 08:00
var now = time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeServices map[string]*domain.Service

func (f fakeServices) GetByID(_ context.Context, id string) (*domain.Service, error) {
	if s, ok := f[id]; ok {
		return s, nil
	}
	return nil, serviceRepo.ErrServiceNotFound
}

type fakeStaff []*domain.Staff

func (f fakeStaff) List(context.Context, bool) ([]*domain.Staff, error) { return f, nil }

type fakeHours []*domain.WorkingHour

func (f fakeHours) List(context.Context, *string, bool) ([]*domain.WorkingHour, error) { return f, nil }

type fakeBookings struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookings) GetActiveInRange(context.Context, time.Time, time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeBlocks []*domain.Block

func (f fakeBlocks) List(context.Context, domain.BlocksFilter) ([]*domain.Block, error) { return f, nil }

type fixture struct {
	uc       *UseCase
	bookings *fakeBookings
	store    *holdStore.Store
	mr       *miniredis.Miniredis
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithStaff(t, "anna")
}

func newFixtureWithStaff(t *testing.T, staffIDs ...string) *fixture {
	t.Helper()
	staff := make(fakeStaff, 0, len(staffIDs))
	hours := make(fakeHours, 0, len(staffIDs))
	for _, id := range staffIDs {
		staff = append(staff, &domain.Staff{ID: id, Name: id, IsActive: true})
		hours = append(hours, &domain.WorkingHour{ID: "h-" + id, StaffID: id, DayOfWeek: 0,
			StartTime: types.TimeString("09:00"), EndTime: types.TimeString("17:00"), IsActive: true})
	}

	mr := miniredis.RunT(t)
	store := holdStore.NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	bookings := &fakeBookings{}
	uc := NewUseCase(
		fakeServices{
			"standard": {ID: "standard", NamePublic: "Standard", DurationMin: 30, IsActive: true},
			"long":     {ID: "long", NamePublic: "Lång", DurationMin: 60, IsActive: true},
		},
		staff,
		hours,
		bookings,
		fakeBlocks{},
		store,
		Config{HoldTTL: 2 * time.Minute, MinNoticeMinutes: 30, Location: time.UTC},
		logger.NewNop(),
	)
	uc.timeProvider = fixedTime{now}
	return &fixture{uc: uc, bookings: bookings, store: store, mr: mr}
}

func request(label string) *Request {
	return &Request{CallID: "call-1", CallerPhone: "+46701234567", ServiceID: "standard", SlotLabel: label}
}

func TestExecute_PlacesHold(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), request("Måndag 09:00"))
	require.NoError(t, err)
	assert.Contains(t, resp.HoldID, "hold-")
	assert.Equal(t, time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC), resp.StartDT)
	assert.Equal(t, time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC), resp.EndDT)
	assert.Equal(t, now.Add(2*time.Minute), resp.ExpiresAt)

	h, err := f.store.Get(context.Background(), resp.HoldID)
	require.NoError(t, err)
	assert.Equal(t, "+46701234567", h.CallerPhone)
	assert.Equal(t, "Måndag 09:00", h.SlotLabel)
	assert.Equal(t, "anna", h.StaffID)
	assert.Equal(t, "anna", resp.StaffID)
}

func TestExecute_SecondHoldOnSameSlotRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), request("Måndag 10:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), request("måndag 10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_BookedSlotRejected(t *testing.T) {
	f := newFixture(t)
	f.bookings.bookings = []*domain.Booking{{
		ID: "b1", StaffID: "anna", Status: domain.StatusBooked,
		StartDT: time.Date(2026, 10, 19, 9, 15, 0, 0, time.UTC),
		EndDT:   time.Date(2026, 10, 19, 9, 45, 0, 0, time.UTC),
	}}

	_, err := f.uc.Execute(context.Background(), request("Måndag 09:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), request("Tisdag 09:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_TooLate(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), request("Måndag 08:15"))
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), request("Someday 09:00"))
	assert.ErrorIs(t, err, ErrInvalidSlot)

	_, err = f.uc.Execute(context.Background(), &Request{CallerPhone: "+46", SlotLabel: "Måndag 09:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	req := request("Måndag 09:00")
	req.ServiceID = "missing"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	f.bookings.err = errors.New("db down")
	_, err = f.uc.Execute(context.Background(), request("Måndag 09:00"))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestRelease_FreesSlot(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), request("Måndag 11:00"))
	require.NoError(t, err)
	require.NoError(t, f.uc.Release(context.Background(), resp.HoldID))

	_, err = f.uc.Execute(context.Background(), request("Måndag 11:00"))
	assert.NoError(t, err)
}

func TestExecute_ExpiredHoldFreesSlot(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), request("Måndag 12:00"))
	require.NoError(t, err)
	f.mr.FastForward(3 * time.Minute)

	_, err = f.uc.Execute(context.Background(), request("Måndag 12:00"))
	assert.NoError(t, err)
}

func TestExecute_OverlappingHoldOnOtherServiceRejected(t *testing.T) {
	f := newFixture(t)

	long := request("Måndag 10:00")
	long.ServiceID = "long"
	_, err := f.uc.Execute(context.Background(), long)
	require.NoError(t, err)

	// единственный мастер уже держит 10:00-11:00
	_, err = f.uc.Execute(context.Background(), request("Måndag 10:30"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	_, err = f.uc.Execute(context.Background(), request("Måndag 11:00"))
	assert.NoError(t, err)
}

func TestExecute_SecondStaffTakesSameSlot(t *testing.T) {
	f := newFixtureWithStaff(t, "anna", "erik")

	first, err := f.uc.Execute(context.Background(), request("Måndag 10:00"))
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), request("Måndag 10:00"))
	require.NoError(t, err)
	assert.Equal(t, "anna", first.StaffID)
	assert.Equal(t, "erik", second.StaffID)

	_, err = f.uc.Execute(context.Background(), request("Måndag 10:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
}
