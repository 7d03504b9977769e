package ivr_handle_input

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/ivr"
)

type Engine interface {
	HandleDigit(ctx context.Context, callID, digit string) (*ivr.Reply, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
