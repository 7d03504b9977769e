package update_staff

import (
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

// UpdateStaffRequest HTTP request model
type UpdateStaffRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStaffRequest) ToServiceRequest() *models.UpdateStaffRequest {
	return &models.UpdateStaffRequest{Name: r.Name, IsActive: r.IsActive}
}
