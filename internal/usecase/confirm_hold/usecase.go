package confirm_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	holdStore "github.com/m04kA/SMC-SalonService/internal/infra/cache/hold"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonService/internal/service/availability"
)

// UseCase use case подтверждения брони и создания записи
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	staffRepo    StaffRepository
	hoursRepo    WorkingHoursRepository
	blockRepo    BlockRepository
	holds        HoldStore
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	hoursRepo WorkingHoursRepository,
	blockRepo BlockRepository,
	holds HoldStore,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		staffRepo:    staffRepo,
		hoursRepo:    hoursRepo,
		blockRepo:    blockRepo,
		holds:        holds,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute превращает бронь в запись
// Использует сериализуемую транзакцию, занятость мастеров проверяется повторно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmHold: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ConfirmHold: hold=%s", req.HoldID)

	// 2. Получаем бронь
	hold, err := uc.holds.Get(ctx, req.HoldID)
	if err != nil {
		if errors.Is(err, holdStore.ErrHoldNotFound) {
			uc.logger.Warn("ConfirmHold: hold=%s not found", req.HoldID)
			return nil, ErrHoldExpired
		}
		uc.logger.Error("ConfirmHold: failed to get hold=%s: %v", req.HoldID, err)
		return nil, fmt.Errorf("%w: failed to get hold: %v", ErrInternal, err)
	}
	if hold.IsExpired(uc.timeProvider.Now()) {
		uc.logger.Warn("ConfirmHold: hold=%s expired at %s", hold.ID, hold.ExpiresAt.Format(time.RFC3339))
		return nil, ErrHoldExpired
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, hold.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("ConfirmHold: service id=%s not found", hold.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("ConfirmHold: failed to get service id=%s: %v", hold.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Брони других звонков на это время
	others, err := uc.holds.Active(ctx, hold.StartDT, hold.EndDT)
	if err != nil {
		uc.logger.Error("ConfirmHold: failed to list holds: %v", err)
		return nil, fmt.Errorf("%w: failed to list holds: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем активные записи на это время с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveInRange(txCtx, hold.StartDT, hold.EndDT)
		if err != nil {
			uc.logger.Error("ConfirmHold: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		staff, err := uc.staffRepo.List(txCtx, true)
		if err != nil {
			uc.logger.Error("ConfirmHold: failed to list staff: %v", err)
			return fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
		}
		hours, err := uc.hoursRepo.List(txCtx, nil, true)
		if err != nil {
			uc.logger.Error("ConfirmHold: failed to list working hours: %v", err)
			return fmt.Errorf("%w: failed to list working hours: %v", ErrInternal, err)
		}
		blocks, err := uc.blockRepo.List(txCtx, domain.BlocksFilter{From: &hold.StartDT, To: &hold.EndDT})
		if err != nil {
			uc.logger.Error("ConfirmHold: failed to list blocks: %v", err)
			return fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
		}

		// 5.2. Записываем мастера из брони; если он занят, берем того, кого никто не держит
		schedules := availability.BuildSchedules(staff, hours, bookings, blocks)
		availability.AttachHolds(schedules, others, hold.ID)
		free := availability.FreeStaff(schedules, hold.StartDT, hold.EndDT)
		if len(free) == 0 {
			uc.logger.Warn("ConfirmHold: no free staff for %s", hold.StartDT.Format(time.RFC3339))
			return ErrSlotTaken
		}
		master := free[0]
		for _, s := range free {
			if s.ID == hold.StaffID {
				master = s
				break
			}
		}
		if master.ID != hold.StaffID {
			uc.logger.Warn("ConfirmHold: held staff=%s is busy, booking staff=%s", hold.StaffID, master.ID)
		}

		// 5.3. Создаем запись с денормализацией названий
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			CustomerName:  domain.PhoneBookingCustomerName,
			CustomerPhone: hold.CallerPhone,
			ServiceID:     service.ID,
			StaffID:       master.ID,
			StartDT:       hold.StartDT,
			EndDT:         hold.EndDT,
			Status:        domain.StatusBooked,
			ServiceName:   service.NamePublic,
			StaffName:     master.Name,
		})
		if err != nil {
			uc.logger.Error("ConfirmHold: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 6. Снимаем бронь, запись уже в базе
	if err := uc.holds.Release(ctx, hold.ID); err != nil {
		uc.logger.Warn("ConfirmHold: failed to release hold=%s: %v", hold.ID, err)
	}

	uc.logger.Info("ConfirmHold: created booking id=%s for staff=%s", result.ID, result.StaffID)

	return &Response{
		BookingID:     result.ID,
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		ServiceID:     result.ServiceID,
		ServiceName:   result.ServiceName,
		StaffID:       result.StaffID,
		StaffName:     result.StaffName,
		StartDT:       result.StartDT,
		EndDT:         result.EndDT,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}, nil
}
