package create_admin_user

import (
	"github.com/m04kA/SMC-SalonService/internal/service/admins/models"
)

// CreateAdminUserRequest HTTP request model
type CreateAdminUserRequest struct {
	Email    string  `json:"email"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateAdminUserRequest) ToServiceRequest() *models.CreateAdminUserRequest {
	return &models.CreateAdminUserRequest{Email: r.Email, Role: r.Role, IsActive: r.IsActive}
}
