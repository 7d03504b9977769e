package list_admin_users

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/admins/models"
)

type AdminService interface {
	ListAdminUsers(ctx context.Context, actorID string) (*models.AdminUserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
