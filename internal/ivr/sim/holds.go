package sim

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/ivr"
)

var (
	// ErrSlotTaken возвращается, когда на время уже есть бронь
	ErrSlotTaken = errors.New("sim: slot already held")

	// ErrHoldNotFound возвращается, когда бронь снята или уже подтверждена
	ErrHoldNotFound = errors.New("sim: hold not found")
)

type heldSlot struct {
	offeringID string
	label      string
}

// MemoryHolds брони в памяти процесса, реализует ivr.HoldAllocator и ivr.BookingConfirmer
// На одно время одной услуги может быть только одна живая бронь
type MemoryHolds struct {
	mu       sync.Mutex
	holds    map[string]heldSlot
	bySlot   map[heldSlot]string
	bookings map[string]ivr.HoldRequest
	requests map[string]ivr.HoldRequest
}

// NewMemoryHolds создает пустое хранилище броней
func NewMemoryHolds() *MemoryHolds {
	return &MemoryHolds{
		holds:    make(map[string]heldSlot),
		bySlot:   make(map[heldSlot]string),
		bookings: make(map[string]ivr.HoldRequest),
		requests: make(map[string]ivr.HoldRequest),
	}
}

// PlaceHold ставит бронь на время
func (m *MemoryHolds) PlaceHold(_ context.Context, req ivr.HoldRequest) (string, error) {
	key := heldSlot{offeringID: req.OfferingID, label: req.SlotLabel}

	m.mu.Lock()
	defer m.mu.Unlock()
	if holder, taken := m.bySlot[key]; taken {
		return "", fmt.Errorf("%w: %s held by %s", ErrSlotTaken, req.SlotLabel, holder)
	}

	id := "hold-" + uuid.NewString()
	m.holds[id] = key
	m.bySlot[key] = id
	m.requests[id] = req
	return id, nil
}

// ReleaseHold снимает бронь; неизвестная бронь не ошибка
func (m *MemoryHolds) ReleaseHold(_ context.Context, holdID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.release(holdID)
	return nil
}

// Confirm превращает бронь в бронирование
func (m *MemoryHolds) Confirm(_ context.Context, holdID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req, ok := m.requests[holdID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrHoldNotFound, holdID)
	}
	m.release(holdID)

	id := "booking-" + uuid.NewString()
	m.bookings[id] = req
	return id, nil
}

// Booking возвращает запрос, по которому создано бронирование
func (m *MemoryHolds) Booking(bookingID string) (ivr.HoldRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req, ok := m.bookings[bookingID]
	return req, ok
}

// ActiveHolds количество живых броней
func (m *MemoryHolds) ActiveHolds() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.holds)
}

func (m *MemoryHolds) release(holdID string) {
	key, ok := m.holds[holdID]
	if !ok {
		return
	}
	delete(m.holds, holdID)
	delete(m.requests, holdID)
	if m.bySlot[key] == holdID {
		delete(m.bySlot, key)
	}
}
