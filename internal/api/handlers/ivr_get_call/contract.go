package ivr_get_call

import (
	"github.com/m04kA/SMC-SalonService/internal/ivr"
)

type Engine interface {
	Snapshot(callID string) (ivr.Snapshot, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
