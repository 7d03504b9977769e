package update_admin_user

import (
	"github.com/m04kA/SMC-SalonService/internal/service/admins/models"
)

// UpdateAdminUserRequest HTTP request model; email не меняется
type UpdateAdminUserRequest struct {
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateAdminUserRequest) ToServiceRequest() *models.UpdateAdminUserRequest {
	return &models.UpdateAdminUserRequest{Role: r.Role, IsActive: r.IsActive}
}
