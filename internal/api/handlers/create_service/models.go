package create_service

import (
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	NamePublic  string `json:"namePublic"`
	DurationMin int    `json:"durationMin"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		NamePublic:  r.NamePublic,
		DurationMin: r.DurationMin,
		IsActive:    r.IsActive,
	}
}
