package ivr_start_call

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/ivr"
)

type Engine interface {
	StartCall(ctx context.Context, callerPhone string, catalog []ivr.Offering) (*ivr.Reply, error)
}

// CatalogSource список услуг для меню звонка
type CatalogSource interface {
	ListOfferings(ctx context.Context) ([]ivr.Offering, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
