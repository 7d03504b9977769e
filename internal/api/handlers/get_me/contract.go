package get_me

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/admins/models"
)

type AdminService interface {
	GetMe(ctx context.Context, adminID string) (*models.CurrentUserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
