package ivr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// MaxMenuOptions кнопка 9 зарезервирована под повтор меню
const MaxMenuOptions = 8

const (
	repeatDigit  = "9"
	confirmDigit = "1"
	cancelDigit  = "0"
)

// Option настройка Engine
type Option func(*Engine)

// WithPrompts задает тексты подсказок
func WithPrompts(p Prompts) Option {
	return func(e *Engine) { e.prompts = p }
}

// WithClock задает источник времени
func WithClock(tp TimeProvider) Option {
	return func(e *Engine) { e.clock = tp }
}

// WithMetrics подключает метрики звонков
func WithMetrics(m Metrics) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithIdleTimeout звонок без нажатий дольше d завершается janitor-ом (0 = никогда)
func WithIdleTimeout(d time.Duration) Option {
	return func(e *Engine) { e.idleTimeout = d }
}

// WithRetention завершенный звонок удаляется из реестра через d (0 = хранить до Reset)
func WithRetention(d time.Duration) Option {
	return func(e *Engine) { e.retention = d }
}

// Engine drives phone calls through the booking menu
// It is purely reactive: one event in, one message and a state transition out
type Engine struct {
	registry  *Registry
	slots     SlotSuggester
	holds     HoldAllocator
	confirmer BookingConfirmer
	prompts   Prompts
	clock     TimeProvider
	metrics   Metrics
	logger    Logger

	idleTimeout time.Duration
	retention   time.Duration
}

// NewEngine создает новый экземпляр движка звонков
func NewEngine(
	registry *Registry,
	slots SlotSuggester,
	holds HoldAllocator,
	confirmer BookingConfirmer,
	logger Logger,
	opts ...Option,
) *Engine {
	e := &Engine{
		registry:  registry,
		slots:     slots,
		holds:     holds,
		confirmer: confirmer,
		prompts:   DefaultPrompts(),
		clock:     &RealTimeProvider{},
		metrics:   noopMetrics{},
		logger:    logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Prompts возвращает тексты, которыми говорит движок
func (e *Engine) Prompts() Prompts {
	return e.prompts
}

// ValidateDigit проверяет, что кнопка из набора 0-9, *, #
func ValidateDigit(digit string) error {
	if len(digit) != 1 {
		return fmt.Errorf("%w: digit must be a single character, got %q", ErrInvalidInput, digit)
	}
	c := digit[0]
	if (c >= '0' && c <= '9') || c == '*' || c == '#' {
		return nil
	}
	return fmt.Errorf("%w: unsupported key %q", ErrInvalidInput, digit)
}

// StartCall creates a session in select_service and returns the welcome message with the service menu
func (e *Engine) StartCall(ctx context.Context, callerPhone string, catalog []Offering) (*Reply, error) {
	callerPhone = strings.TrimSpace(callerPhone)
	if callerPhone == "" {
		e.logger.Warn("IVR StartCall: empty caller phone")
		return nil, fmt.Errorf("%w: caller phone is required", ErrInvalidInput)
	}
	if len(catalog) == 0 {
		e.logger.Warn("IVR StartCall: empty offering catalog, phone=%s", callerPhone)
		return nil, fmt.Errorf("%w: offering catalog is empty", ErrInvalidInput)
	}

	if len(catalog) > MaxMenuOptions {
		e.logger.Warn("IVR StartCall: catalog has %d offerings, menu keeps first %d", len(catalog), MaxMenuOptions)
		catalog = catalog[:MaxMenuOptions]
	}
	menu := make([]Offering, len(catalog))
	copy(menu, catalog)

	now := e.clock.Now()
	s := e.registry.create(callerPhone, menu, now)

	s.mu.Lock()
	defer s.mu.Unlock()

	message := e.prompts.Welcome + " " + e.prompts.ServiceMenu(menu)
	s.record(LogSystem, message, now)

	e.metrics.CallStarted()
	e.metrics.ActiveCalls(e.registry.Len())
	e.logger.Info("IVR StartCall: call=%s, phone=%s, offerings=%d", s.callID, callerPhone, len(menu))

	return e.reply(s, message), nil
}

// HandleDigit processes one key press
// For ErrSessionNotFound, ErrHoldUnavailable and ErrConfirmationFailed the returned Reply
// is non-nil and carries the message to play to the caller
func (e *Engine) HandleDigit(ctx context.Context, callID, digit string) (*Reply, error) {
	if err := ValidateDigit(digit); err != nil {
		return nil, err
	}

	s, ok := e.registry.lookup(callID)
	if !ok {
		return e.notFound(callID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return e.notFound(callID)
	}

	now := e.clock.Now()
	s.updatedAt = now
	s.record(LogUser, "Knapp: "+digit, now)

	before := s.state.name()
	e.metrics.DigitHandled(string(before))

	var (
		message string
		err     error
	)
	switch st := s.state.(type) {
	case selectService:
		message = e.onSelectService(ctx, s, digit)
	case selectTime:
		message, err = e.onSelectTime(ctx, s, st, digit)
	case confirmSlot:
		message, err = e.onConfirm(ctx, s, st, digit)
	case done:
		message = e.prompts.CallEnded
	}

	kind := LogSystem
	if err != nil {
		kind = LogError
	}
	s.record(kind, message, e.clock.Now())

	if before != s.state.name() {
		e.logger.Info("IVR HandleDigit: call=%s, digit=%s, %s -> %s", s.callID, digit, before, s.state.name())
	}

	return e.reply(s, message), err
}

// HangUp ends the call; an outstanding hold is released
func (e *Engine) HangUp(ctx context.Context, callID string) (*Reply, error) {
	s, ok := e.registry.lookup(callID)
	if !ok {
		return e.notFound(callID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return e.notFound(callID)
	}

	now := e.clock.Now()
	s.updatedAt = now
	if _, terminal := s.state.(done); !terminal {
		e.releaseIfHeld(ctx, s)
		s.state = finish(s.state, OutcomeCancelled)
		e.metrics.CallEnded(string(OutcomeCancelled))
		e.logger.Info("IVR HangUp: call=%s", s.callID)
	}

	message := e.prompts.HungUp
	s.record(LogSystem, message, now)
	return e.reply(s, message), nil
}

// Reset removes the call from the registry, releasing an outstanding hold
func (e *Engine) Reset(ctx context.Context, callID string) bool {
	s, ok := e.registry.lookup(callID)
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return false
	}
	if _, terminal := s.state.(done); !terminal {
		e.releaseIfHeld(ctx, s)
		e.metrics.CallEnded(string(OutcomeCancelled))
	}

	removed := e.registry.removeLocked(s)
	if removed {
		e.metrics.ActiveCalls(e.registry.Len())
		e.logger.Info("IVR Reset: call=%s removed", callID)
	}
	return removed
}

// Snapshot read-only состояние звонка
func (e *Engine) Snapshot(callID string) (Snapshot, bool) {
	return e.registry.Get(callID)
}

func (e *Engine) onSelectService(ctx context.Context, s *session, digit string) string {
	if digit == repeatDigit {
		return e.prompts.ServiceMenu(s.catalog)
	}

	idx, ok := choice(digit, len(s.catalog))
	if !ok {
		return fmt.Sprintf(e.prompts.InvalidService, e.prompts.choices(len(s.catalog)))
	}

	offering := s.catalog[idx-1]
	suggested, err := e.slots.SuggestSlots(ctx, offering.ID)
	if err != nil {
		e.metrics.CollaboratorFailed("slots")
		e.logger.Error("IVR HandleDigit: call=%s, failed to suggest slots for offering=%s: %v", s.callID, offering.ID, err)
		return e.prompts.NoSlots + e.prompts.ServiceMenu(s.catalog)
	}
	if len(suggested) == 0 {
		e.logger.Warn("IVR HandleDigit: call=%s, no slots for offering=%s", s.callID, offering.ID)
		return e.prompts.NoSlots + e.prompts.ServiceMenu(s.catalog)
	}
	if len(suggested) > MaxMenuOptions {
		suggested = suggested[:MaxMenuOptions]
	}

	slots := cloneStrings(suggested)
	s.state = selectTime{offering: offering, slots: slots}

	return fmt.Sprintf(e.prompts.SelectedOffering, offering.Label, offering.DurationMinutes) + e.prompts.TimeMenu(slots)
}

func (e *Engine) onSelectTime(ctx context.Context, s *session, st selectTime, digit string) (string, error) {
	if digit == repeatDigit {
		return e.prompts.TimeMenu(st.slots), nil
	}

	idx, ok := choice(digit, len(st.slots))
	if !ok {
		return fmt.Sprintf(e.prompts.InvalidTime, e.prompts.choices(len(st.slots))), nil
	}

	label := st.slots[idx-1]
	holdID, err := e.holds.PlaceHold(ctx, HoldRequest{
		CallID:      s.callID,
		CallerPhone: s.callerPhone,
		OfferingID:  st.offering.ID,
		SlotLabel:   label,
	})
	if err == nil && holdID == "" {
		err = errors.New("empty hold id")
	}
	if err != nil {
		e.metrics.CollaboratorFailed("hold")
		e.logger.Warn("IVR HandleDigit: call=%s, hold for slot=%q failed: %v", s.callID, label, err)
		message := fmt.Sprintf(e.prompts.HoldUnavailable, label) + e.prompts.TimeMenu(st.slots)
		return message, fmt.Errorf("%w: slot %q: %v", ErrHoldUnavailable, label, err)
	}

	s.state = confirmSlot{offering: st.offering, slots: st.slots, selected: idx, holdID: holdID}
	return fmt.Sprintf(e.prompts.HoldPlaced, label), nil
}

func (e *Engine) onConfirm(ctx context.Context, s *session, st confirmSlot, digit string) (string, error) {
	switch digit {
	case confirmDigit:
		bookingID, err := e.confirmer.Confirm(ctx, st.holdID)
		if err == nil && bookingID == "" {
			err = errors.New("empty booking id")
		}
		if err != nil {
			e.metrics.CollaboratorFailed("confirm")
			e.logger.Error("IVR HandleDigit: call=%s, confirm hold=%s failed: %v", s.callID, st.holdID, err)
			return e.prompts.ConfirmationFailed, fmt.Errorf("%w: hold %s: %v", ErrConfirmationFailed, st.holdID, err)
		}

		final := finish(st, OutcomeConfirmed)
		final.bookingID = bookingID
		s.state = final
		e.metrics.CallEnded(string(OutcomeConfirmed))
		e.logger.Info("IVR HandleDigit: call=%s confirmed, booking=%s, slot=%q", s.callID, bookingID, st.slot())
		return fmt.Sprintf(e.prompts.Confirmed, st.slot(), bookingID), nil

	case cancelDigit:
		e.releaseIfHeld(ctx, s)
		s.state = selectTime{offering: st.offering, slots: st.slots}
		return e.prompts.Cancelled + e.prompts.TimeMenu(st.slots), nil

	default:
		return e.prompts.ConfirmPrompt, nil
	}
}

// releaseIfHeld снимает бронь; ошибка не мешает звонку, бронь истечет по TTL
func (e *Engine) releaseIfHeld(ctx context.Context, s *session) {
	st, ok := s.state.(confirmSlot)
	if !ok {
		return
	}
	if err := e.holds.ReleaseHold(ctx, st.holdID); err != nil {
		e.metrics.CollaboratorFailed("release")
		e.logger.Warn("IVR: call=%s, failed to release hold=%s: %v", s.callID, st.holdID, err)
	}
}

func (e *Engine) notFound(callID string) (*Reply, error) {
	e.logger.Warn("IVR: call=%s not found", callID)
	return &Reply{CallID: callID, Message: e.prompts.NoActiveCall}, fmt.Errorf("%w: call_id=%s", ErrSessionNotFound, callID)
}

func (e *Engine) reply(s *session, message string) *Reply {
	r := &Reply{
		CallID:  s.callID,
		Message: message,
		State:   s.state.name(),
	}

	switch st := s.state.(type) {
	case selectService:
		r.Options = e.prompts.offeringItems(s.catalog)
	case selectTime:
		r.Options = cloneStrings(st.slots)
	case confirmSlot:
		r.HoldID = st.holdID
	case done:
		r.BookingID = st.bookingID
		r.Done = true
	}
	return r
}

// choice переводит кнопку в номер пункта меню 1..n
func choice(digit string, n int) (int, bool) {
	if len(digit) != 1 || digit[0] < '1' || digit[0] > '9' {
		return 0, false
	}
	idx := int(digit[0] - '0')
	return idx, idx <= n
}
