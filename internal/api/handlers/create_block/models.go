package create_block

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

// CreateBlockRequest HTTP request model
type CreateBlockRequest struct {
	StaffID string    `json:"staffId"`
	StartDT time.Time `json:"startDt"` // RFC 3339
	EndDT   time.Time `json:"endDt"`
	Reason  string    `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateBlockRequest) ToServiceRequest() *models.CreateBlockRequest {
	return &models.CreateBlockRequest{
		StaffID: r.StaffID,
		StartDT: r.StartDT,
		EndDT:   r.EndDT,
		Reason:  r.Reason,
	}
}
