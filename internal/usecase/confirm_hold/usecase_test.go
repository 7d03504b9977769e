package confirm_hold

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

var (
	now   = time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	start = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeBookings struct {
	existing []*domain.Booking
	created  []*domain.Booking
	err      error
}

func (f *fakeBookings) GetActiveInRange(context.Context, time.Time, time.Time) ([]*domain.Booking, error) {
	return f.existing, f.err
}

func (f *fakeBookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	cp := *b
	cp.ID = "booking-1"
	cp.CreatedAt = now
	f.created = append(f.created, &cp)
	return &cp, nil
}

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

type fakeBlocks []*domain.Block

func (f fakeBlocks) List(context.Context, domain.BlocksFilter) ([]*domain.Block, error) { return f, nil }

// inlineTx выполняет функцию без настоящей транзакции
type inlineTx struct{ calls int }

func (tx *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookings
	store    *holdStore.Store
	tx       *inlineTx
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	store := holdStore.NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	hours := func(staffID string) *domain.WorkingHour {
		return &domain.WorkingHour{ID: "h-" + staffID, StaffID: staffID, DayOfWeek: 0,
			StartTime: types.TimeString("09:00"), EndTime: types.TimeString("17:00"), IsActive: true}
	}

	f := &fixture{bookings: &fakeBookings{}, store: store, tx: &inlineTx{}}
	f.uc = NewUseCase(
		f.bookings,
		fakeServices{"standard": {ID: "standard", NamePublic: "Standard", DurationMin: 30, IsActive: true}},
		fakeStaff{{ID: "anna", Name: "Anna", IsActive: true}, {ID: "erik", Name: "Erik", IsActive: true}},
		fakeHours{hours("anna"), hours("erik")},
		fakeBlocks{},
		store,
		f.tx,
		logger.NewNop(),
	)
	f.uc.timeProvider = fixedTime{now}
	return f
}

func (f *fixture) placeHold(t *testing.T, id string) {
	t.Helper()
	f.placeHoldFor(t, id, "anna")
}

func (f *fixture) placeHoldFor(t *testing.T, id, staffID string) {
	t.Helper()
	require.NoError(t, f.store.Place(context.Background(), &domain.Hold{
		ID:          id,
		CallID:      "call-" + id,
		CallerPhone: "+46701234567",
		ServiceID:   "standard",
		StaffID:     staffID,
		SlotLabel:   "Måndag 09:00",
		StartDT:     start,
		EndDT:       start.Add(30 * time.Minute),
		ExpiresAt:   now.Add(5 * time.Minute),
		CreatedAt:   now,
	}, 5*time.Minute))
}

func TestExecute_CreatesPhoneBooking(t *testing.T) {
	f := newFixture(t)
	f.placeHold(t, "hold-1")

	resp, err := f.uc.Execute(context.Background(), &Request{HoldID: "hold-1"})
	require.NoError(t, err)

	assert.Equal(t, "booking-1", resp.BookingID)
	assert.Equal(t, domain.PhoneBookingCustomerName, resp.CustomerName)
	assert.Equal(t, "+46701234567", resp.CustomerPhone)
	assert.Equal(t, "Standard", resp.ServiceName)
	assert.Equal(t, "anna", resp.StaffID)
	assert.Equal(t, "Anna", resp.StaffName)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	assert.Equal(t, 1, f.tx.calls)

	// бронь снята после записи
	_, err = f.store.Get(context.Background(), "hold-1")
	assert.ErrorIs(t, err, holdStore.ErrHoldNotFound)
	active, err := f.store.Active(context.Background(), start, start.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestExecute_BooksHeldStaff(t *testing.T) {
	f := newFixture(t)
	f.placeHoldFor(t, "hold-1", "erik")

	resp, err := f.uc.Execute(context.Background(), &Request{HoldID: "hold-1"})
	require.NoError(t, err)
	assert.Equal(t, "erik", resp.StaffID)
	assert.Equal(t, "Erik", resp.StaffName)
}

func TestExecute_DoesNotTakeStaffHeldByAnotherCall(t *testing.T) {
	f := newFixture(t)
	f.placeHoldFor(t, "hold-1", "anna")
	f.placeHoldFor(t, "hold-2", "erik")
	// Анну записали через админку, Эрика держит другой звонок
	f.bookings.existing = []*domain.Booking{{
		ID: "b0", StaffID: "anna", Status: domain.StatusBooked,
		StartDT: start, EndDT: start.Add(time.Hour),
	}}

	_, err := f.uc.Execute(context.Background(), &Request{HoldID: "hold-1"})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.bookings.created)

	resp, err := f.uc.Execute(context.Background(), &Request{HoldID: "hold-2"})
	require.NoError(t, err)
	assert.Equal(t, "erik", resp.StaffID)
}

func TestExecute_PicksNextFreeStaff(t *testing.T) {
	f := newFixture(t)
	f.placeHold(t, "hold-1")
	f.bookings.existing = []*domain.Booking{{
		ID: "b0", StaffID: "anna", Status: domain.StatusBooked,
		StartDT: start, EndDT: start.Add(time.Hour),
	}}

	resp, err := f.uc.Execute(context.Background(), &Request{HoldID: "hold-1"})
	require.NoError(t, err)
	assert.Equal(t, "erik", resp.StaffID)
}

func TestExecute_SlotTakenMeanwhile(t *testing.T) {
	f := newFixture(t)
	f.placeHold(t, "hold-1")
	f.bookings.existing = []*domain.Booking{
		{ID: "b0", StaffID: "anna", Status: domain.StatusBooked, StartDT: start, EndDT: start.Add(time.Hour)},
		{ID: "b1", StaffID: "erik", Status: domain.StatusBooked, StartDT: start, EndDT: start.Add(time.Hour)},
	}

	_, err := f.uc.Execute(context.Background(), &Request{HoldID: "hold-1"})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.bookings.created)
}

func TestExecute_HoldMissingOrExpired(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{HoldID: "hold-missing"})
	assert.ErrorIs(t, err, ErrHoldExpired)

	f.placeHold(t, "hold-1")
	f.uc.timeProvider = fixedTime{now.Add(6 * time.Minute)}
	_, err = f.uc.Execute(context.Background(), &Request{HoldID: "hold-1"})
	assert.ErrorIs(t, err, ErrHoldExpired)
	assert.Zero(t, f.tx.calls)
}

func TestExecute_InvalidAndInternal(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{HoldID: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	f.placeHold(t, "hold-1")
	f.bookings.err = errors.New("db down")
	_, err = f.uc.Execute(context.Background(), &Request{HoldID: "hold-1"})
	assert.ErrorIs(t, err, ErrInternal)

	// при ошибке бронь остается, звонящий может повторить
	_, err = f.store.Get(context.Background(), "hold-1")
	assert.NoError(t, err)
}
