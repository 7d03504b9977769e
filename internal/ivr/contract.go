package ivr

import (
	"context"
	"time"
)

// SlotSuggester предлагает время для выбранной услуги
type SlotSuggester interface {
	SuggestSlots(ctx context.Context, offeringID string) ([]string, error)
}

// HoldAllocator ставит и снимает временную бронь на время
type HoldAllocator interface {
	PlaceHold(ctx context.Context, req HoldRequest) (string, error)
	ReleaseHold(ctx context.Context, holdID string) error
}

// BookingConfirmer превращает бронь в окончательное бронирование
type BookingConfirmer interface {
	Confirm(ctx context.Context, holdID string) (string, error)
}

// Metrics счётчики звонков (реализуется pkg/metrics)
type Metrics interface {
	CallStarted()
	DigitHandled(state string)
	CallEnded(outcome string)
	ActiveCalls(n int)
	CollaboratorFailed(collaborator string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) CallStarted()              {}
func (noopMetrics) DigitHandled(string)       {}
func (noopMetrics) CallEnded(string)          {}
func (noopMetrics) ActiveCalls(int)           {}
func (noopMetrics) CollaboratorFailed(string) {}
