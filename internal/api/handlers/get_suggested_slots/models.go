package get_suggested_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/usecase/suggest_slots"
)

// SlotResponse предложенное время
type SlotResponse struct {
	Label   string    `json:"label"` // "Tisdag 10:30"
	StartDT time.Time `json:"startDt"`
	EndDT   time.Time `json:"endDt"`
}

// SuggestedSlotsResponse HTTP response model
type SuggestedSlotsResponse struct {
	ServiceID   string         `json:"serviceId"`
	ServiceName string         `json:"serviceName"`
	Slots       []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *suggest_slots.Response) *SuggestedSlotsResponse {
	out := &SuggestedSlotsResponse{
		ServiceID:   resp.ServiceID,
		ServiceName: resp.ServiceName,
		Slots:       make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{Label: s.Label, StartDT: s.StartDT, EndDT: s.EndDT})
	}
	return out
}
