// Package live связывает движок звонков с базой салона и Redis
package live

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/ivr"
	"github.com/m04kA/SMC-SalonService/internal/usecase/confirm_hold"
	"github.com/m04kA/SMC-SalonService/internal/usecase/place_hold"
	"github.com/m04kA/SMC-SalonService/internal/usecase/suggest_slots"
)

// Slots реализует ivr.SlotSuggester поверх suggest_slots
type Slots struct {
	uc SuggestUseCase
}

// NewSlots создает адаптер подбора времени
func NewSlots(uc SuggestUseCase) *Slots {
	return &Slots{uc: uc}
}

// SuggestSlots возвращает метки времени для услуги
func (s *Slots) SuggestSlots(ctx context.Context, offeringID string) ([]string, error) {
	resp, err := s.uc.Execute(ctx, &suggest_slots.Request{ServiceID: offeringID})
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		labels = append(labels, slot.Label)
	}
	return labels, nil
}

// Holds реализует ivr.HoldAllocator и ivr.BookingConfirmer
type Holds struct {
	place   PlaceHoldUseCase
	confirm ConfirmHoldUseCase
}

// NewHolds создает адаптер броней
func NewHolds(place PlaceHoldUseCase, confirm ConfirmHoldUseCase) *Holds {
	return &Holds{place: place, confirm: confirm}
}

// PlaceHold ставит бронь и возвращает её ID
func (h *Holds) PlaceHold(ctx context.Context, req ivr.HoldRequest) (string, error) {
	resp, err := h.place.Execute(ctx, &place_hold.Request{
		CallID:      req.CallID,
		CallerPhone: req.CallerPhone,
		ServiceID:   req.OfferingID,
		SlotLabel:   req.SlotLabel,
	})
	if err != nil {
		return "", err
	}
	return resp.HoldID, nil
}

// ReleaseHold снимает бронь
func (h *Holds) ReleaseHold(ctx context.Context, holdID string) error {
	return h.place.Release(ctx, holdID)
}

// Confirm превращает бронь в запись и возвращает ID записи
func (h *Holds) Confirm(ctx context.Context, holdID string) (string, error) {
	resp, err := h.confirm.Execute(ctx, &confirm_hold.Request{HoldID: holdID})
	if err != nil {
		return "", err
	}
	return resp.BookingID, nil
}

// Catalog отдает активные услуги как пункты меню звонка
type Catalog struct {
	services ServiceRepository
}

// NewCatalog создает каталог поверх репозитория услуг
func NewCatalog(services ServiceRepository) *Catalog {
	return &Catalog{services: services}
}

// ListOfferings возвращает активные услуги в порядке репозитория
func (c *Catalog) ListOfferings(ctx context.Context) ([]ivr.Offering, error) {
	services, err := c.services.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("live: list services: %w", err)
	}
	offerings := make([]ivr.Offering, 0, len(services))
	for _, s := range services {
		offerings = append(offerings, ivr.Offering{
			ID:              s.ID,
			Label:           s.NamePublic,
			DurationMinutes: s.DurationMin,
		})
	}
	return offerings, nil
}
