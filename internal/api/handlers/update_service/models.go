package update_service

import (
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

// UpdateServiceRequest HTTP request model, все поля опциональны
type UpdateServiceRequest struct {
	NamePublic  *string `json:"namePublic,omitempty"`
	DurationMin *int    `json:"durationMin,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateServiceRequest) ToServiceRequest() *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		NamePublic:  r.NamePublic,
		DurationMin: r.DurationMin,
		IsActive:    r.IsActive,
	}
}
