package tui

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/ivr"
)

// Engine движок звонков, с которым работает терминал
type Engine interface {
	StartCall(ctx context.Context, callerPhone string, catalog []ivr.Offering) (*ivr.Reply, error)
	HandleDigit(ctx context.Context, callID, digit string) (*ivr.Reply, error)
	HangUp(ctx context.Context, callID string) (*ivr.Reply, error)
	Reset(ctx context.Context, callID string) bool
	Snapshot(callID string) (ivr.Snapshot, bool)
}

// CatalogSource список услуг для меню
type CatalogSource interface {
	ListOfferings(ctx context.Context) ([]ivr.Offering, error)
}
