package ivr

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var errDownstream = errors.New("downstream unavailable")

var testCatalog = []Offering{
	{ID: "quick", Label: "Snabb", DurationMinutes: 15},
	{ID: "standard", Label: "Standard", DurationMinutes: 30},
	{ID: "long", Label: "Lång", DurationMinutes: 60},
}

var testSlots = []string{"Måndag 09:00", "Tisdag 10:30", "Onsdag 13:00"}

// fakeSlots всегда возвращает один и тот же список, либо список с номером вызова
type fakeSlots struct {
	mu       sync.Mutex
	slots    []string
	err      error
	numbered bool
	calls    int
}

func (f *fakeSlots) SuggestSlots(_ context.Context, offeringID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.numbered {
		return []string{
			fmt.Sprintf("Måndag 09:%02d", f.calls%60),
			fmt.Sprintf("Tisdag 10:%02d", f.calls%60),
			fmt.Sprintf("Onsdag 13:%02d", f.calls%60),
		}, nil
	}
	out := make([]string, len(f.slots))
	copy(out, f.slots)
	return out, nil
}

// fakeHolds реализует HoldAllocator и BookingConfirmer
type fakeHolds struct {
	mu          sync.Mutex
	seq         int
	live        map[string]HoldRequest
	released    []string
	holdErr     error
	confirmErrs int // сколько ближайших Confirm завершатся ошибкой
	confirmed   map[string]string
}

func newFakeHolds() *fakeHolds {
	return &fakeHolds{
		live:      make(map[string]HoldRequest),
		confirmed: make(map[string]string),
	}
}

func (f *fakeHolds) PlaceHold(_ context.Context, req HoldRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.holdErr != nil {
		return "", f.holdErr
	}
	f.seq++
	id := fmt.Sprintf("hold-%d", f.seq)
	f.live[id] = req
	return id, nil
}

func (f *fakeHolds) ReleaseHold(_ context.Context, holdID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.live, holdID)
	f.released = append(f.released, holdID)
	return nil
}

func (f *fakeHolds) Confirm(_ context.Context, holdID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.confirmErrs > 0 {
		f.confirmErrs--
		return "", errDownstream
	}
	if _, ok := f.live[holdID]; !ok {
		return "", fmt.Errorf("hold %s expired", holdID)
	}
	delete(f.live, holdID)
	f.seq++
	id := fmt.Sprintf("booking-%d", f.seq)
	f.confirmed[holdID] = id
	return id, nil
}

func (f *fakeHolds) liveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.live)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMetrics struct {
	mu       sync.Mutex
	started  int
	outcomes map[string]int
	failures map[string]int

	onCallEnded func(outcome string)
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{outcomes: make(map[string]int), failures: make(map[string]int)}
}

func (m *fakeMetrics) CallStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started++
}

func (m *fakeMetrics) DigitHandled(string) {}

func (m *fakeMetrics) CallEnded(outcome string) {
	m.mu.Lock()
	m.outcomes[outcome]++
	hook := m.onCallEnded
	m.mu.Unlock()
	if hook != nil {
		hook(outcome)
	}
}

func (m *fakeMetrics) ActiveCalls(int) {}

func (m *fakeMetrics) CollaboratorFailed(c string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[c]++
}

type testEnv struct {
	engine  *Engine
	slots   *fakeSlots
	holds   *fakeHolds
	clock   *fakeClock
	metrics *fakeMetrics
}

func newTestEnv(opts ...Option) *testEnv {
	env := &testEnv{
		slots:   &fakeSlots{slots: testSlots},
		holds:   newFakeHolds(),
		clock:   newFakeClock(),
		metrics: newFakeMetrics(),
	}
	base := []Option{WithClock(env.clock), WithMetrics(env.metrics)}
	env.engine = NewEngine(NewRegistry(), env.slots, env.holds, env.holds, nopLogger{}, append(base, opts...)...)
	return env
}
