package create_admin_user

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/admins/models"
)

type AdminService interface {
	CreateAdminUser(ctx context.Context, actorID string, req *models.CreateAdminUserRequest) (*models.AdminUserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
