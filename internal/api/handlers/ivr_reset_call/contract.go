package ivr_reset_call

import "context"

type Engine interface {
	Reset(ctx context.Context, callID string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
