package create_staff

import (
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

// CreateStaffRequest HTTP request model
type CreateStaffRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateStaffRequest) ToServiceRequest() *models.CreateStaffRequest {
	return &models.CreateStaffRequest{Name: r.Name, IsActive: r.IsActive}
}
