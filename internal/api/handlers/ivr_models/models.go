package ivr_models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/ivr"
)

// ReplyResponse ответ движка на событие звонка
type ReplyResponse struct {
	CallID    string   `json:"callId"`
	Message   string   `json:"message"`
	State     string   `json:"state"`
	Options   []string `json:"options,omitempty"`
	HoldID    string   `json:"holdId,omitempty"`
	BookingID string   `json:"bookingId,omitempty"`
	Done      bool     `json:"done"`
}

// OfferingResponse выбранная услуга
type OfferingResponse struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	DurationMinutes int    `json:"durationMinutes"`
}

// LogEntryResponse запись журнала звонка
type LogEntryResponse struct {
	Timestamp string `json:"timestamp"` // RFC 3339
	Kind      string `json:"kind"`
	Message   string `json:"message"`
}

// CallResponse состояние звонка с журналом
type CallResponse struct {
	CallID         string             `json:"callId"`
	CallerPhone    string             `json:"callerPhone"`
	State          string             `json:"state"`
	Outcome        string             `json:"outcome,omitempty"`
	Offering       *OfferingResponse  `json:"offering,omitempty"`
	CandidateSlots []string           `json:"candidateSlots,omitempty"`
	SelectedIndex  int                `json:"selectedIndex"`
	SelectedSlot   string             `json:"selectedSlot,omitempty"`
	HoldID         string             `json:"holdId,omitempty"`
	BookingID      string             `json:"bookingId,omitempty"`
	Transcript     []LogEntryResponse `json:"transcript"`
	CreatedAt      string             `json:"createdAt"`
	UpdatedAt      string             `json:"updatedAt"`
}

// FromReply конвертирует ответ движка в DTO
func FromReply(r *ivr.Reply) *ReplyResponse {
	if r == nil {
		return nil
	}
	return &ReplyResponse{
		CallID:    r.CallID,
		Message:   r.Message,
		State:     string(r.State),
		Options:   r.Options,
		HoldID:    r.HoldID,
		BookingID: r.BookingID,
		Done:      r.Done,
	}
}

// FromSnapshot конвертирует снимок звонка в DTO
func FromSnapshot(s ivr.Snapshot) *CallResponse {
	resp := &CallResponse{
		CallID:         s.CallID,
		CallerPhone:    s.CallerPhone,
		State:          string(s.State),
		Outcome:        string(s.Outcome),
		CandidateSlots: s.CandidateSlots,
		SelectedIndex:  s.SelectedIndex,
		SelectedSlot:   s.SelectedSlot(),
		HoldID:         s.HoldID,
		BookingID:      s.BookingID,
		Transcript:     make([]LogEntryResponse, 0, len(s.Log)),
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}

	if s.Offering != nil {
		resp.Offering = &OfferingResponse{
			ID:              s.Offering.ID,
			Label:           s.Offering.Label,
			DurationMinutes: s.Offering.DurationMinutes,
		}
	}

	for _, e := range s.Log {
		resp.Transcript = append(resp.Transcript, LogEntryResponse{
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Kind:      string(e.Kind),
			Message:   e.Message,
		})
	}
	return resp
}
