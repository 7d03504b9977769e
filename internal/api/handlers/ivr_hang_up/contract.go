package ivr_hang_up

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/ivr"
)

type Engine interface {
	HangUp(ctx context.Context, callID string) (*ivr.Reply, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
