package live

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/usecase/confirm_hold"
	"github.com/m04kA/SMC-SalonService/internal/usecase/place_hold"
	"github.com/m04kA/SMC-SalonService/internal/usecase/suggest_slots"
)

// SuggestUseCase подбор времени
type SuggestUseCase interface {
	Execute(ctx context.Context, req *suggest_slots.Request) (*suggest_slots.Response, error)
}

// PlaceHoldUseCase постановка и снятие брони
type PlaceHoldUseCase interface {
	Execute(ctx context.Context, req *place_hold.Request) (*place_hold.Response, error)
	Release(ctx context.Context, holdID string) error
}

// ConfirmHoldUseCase подтверждение брони
type ConfirmHoldUseCase interface {
	Execute(ctx context.Context, req *confirm_hold.Request) (*confirm_hold.Response, error)
}

// ServiceRepository источник услуг для меню звонка
type ServiceRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
}
