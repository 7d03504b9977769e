package admins

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AdminUserRepository интерфейс репозитория администраторов
type AdminUserRepository interface {
	List(ctx context.Context) ([]*domain.AdminUser, error)
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
	CountActiveOwners(ctx context.Context) (int, error)
	Create(ctx context.Context, a *domain.AdminUser) (*domain.AdminUser, error)
	Update(ctx context.Context, id string, upd domain.AdminUserUpdate) (*domain.AdminUser, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
