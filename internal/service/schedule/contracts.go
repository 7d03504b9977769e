package schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	List(ctx context.Context, staffID *string, activeOnly bool) ([]*domain.WorkingHour, error)
	GetByID(ctx context.Context, id string) (*domain.WorkingHour, error)
	Create(ctx context.Context, h *domain.WorkingHour) (*domain.WorkingHour, error)
	Update(ctx context.Context, id string, upd domain.WorkingHourUpdate) (*domain.WorkingHour, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	List(ctx context.Context, filter domain.BlocksFilter) ([]*domain.Block, error)
	Create(ctx context.Context, b *domain.Block) (*domain.Block, error)
	Delete(ctx context.Context, id string) error
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
