package update_admin_user

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/admins/models"
)

type AdminService interface {
	UpdateAdminUser(ctx context.Context, actorID, id string, req *models.UpdateAdminUserRequest) (*models.AdminUserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
