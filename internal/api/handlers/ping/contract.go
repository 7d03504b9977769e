package ping

import "context"

// Pinger зависимость, доступность которой проверяется (Postgres, Redis)
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc адаптер для функций вида db.PingContext
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
