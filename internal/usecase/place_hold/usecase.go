package place_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	holdStore "github.com/m04kA/SMC-SalonService/internal/infra/cache/hold"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonService/internal/service/availability"
)

const defaultHoldTTL = 5 * time.Minute

// UseCase use case временной брони времени для телефонного звонка
type UseCase struct {
	serviceRepo  ServiceRepository
	staffRepo    StaffRepository
	hoursRepo    WorkingHoursRepository
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	holds        HoldStore
	config       Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	hoursRepo WorkingHoursRepository,
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	holds HoldStore,
	config Config,
	logger Logger,
) *UseCase {
	if config.HoldTTL <= 0 {
		config.HoldTTL = defaultHoldTTL
	}
	if config.Location == nil {
		config.Location = time.Local
	}
	return &UseCase{
		serviceRepo:  serviceRepo,
		staffRepo:    staffRepo,
		hoursRepo:    hoursRepo,
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		holds:        holds,
		config:       config,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute ставит бронь на ближайшее время, соответствующее метке
// Бронь ставится только если хотя бы один мастер свободен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PlaceHold: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("PlaceHold: call=%s, service=%s, slot=%q", req.CallID, req.ServiceID, req.SlotLabel)

	label, err := domain.ParseSlotLabel(req.SlotLabel)
	if err != nil {
		uc.logger.Warn("PlaceHold: bad slot label %q: %v", req.SlotLabel, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	// 2. Переводим метку в конкретное время
	now := uc.timeProvider.Now().In(uc.config.Location)
	start, err := label.Resolve(now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}
	if start.Before(now.Add(time.Duration(uc.config.MinNoticeMinutes) * time.Minute)) {
		uc.logger.Warn("PlaceHold: slot %s is too close to now", start.Format(time.RFC3339))
		return nil, ErrTooLateToBook
	}

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("PlaceHold: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("PlaceHold: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// 4. Ищем мастеров без записей, блокировок и чужих броней на это время
	free, err := uc.freeStaff(ctx, start, end)
	if err != nil {
		uc.logger.Error("PlaceHold: failed to check availability: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if len(free) == 0 {
		uc.logger.Warn("PlaceHold: no free staff for %s", start.Format(time.RFC3339))
		return nil, ErrSlotTaken
	}

	// 5. Ставим бронь в Redis на первого мастера, которого удалось занять
	hold := &domain.Hold{
		ID:          "hold-" + uuid.NewString(),
		CallID:      req.CallID,
		CallerPhone: req.CallerPhone,
		ServiceID:   service.ID,
		SlotLabel:   label.String(),
		StartDT:     start,
		EndDT:       end,
		ExpiresAt:   now.Add(uc.config.HoldTTL),
		CreatedAt:   now,
	}
	placed := false
	for _, master := range free {
		hold.StaffID = master.ID
		err := uc.holds.Place(ctx, hold, uc.config.HoldTTL)
		if err == nil {
			placed = true
			break
		}
		if errors.Is(err, holdStore.ErrSlotHeld) || errors.Is(err, holdStore.ErrStaffBusy) {
			uc.logger.Warn("PlaceHold: staff=%s not available for hold: %v", master.ID, err)
			continue
		}
		uc.logger.Error("PlaceHold: failed to place hold: %v", err)
		return nil, fmt.Errorf("%w: failed to place hold: %v", ErrInternal, err)
	}
	if !placed {
		uc.logger.Warn("PlaceHold: every free staff member got held for %s", start.Format(time.RFC3339))
		return nil, ErrSlotTaken
	}

	uc.logger.Info("PlaceHold: hold=%s placed for %s, staff=%s", hold.ID, start.Format(time.RFC3339), hold.StaffID)

	return &Response{
		HoldID:    hold.ID,
		StaffID:   hold.StaffID,
		StartDT:   hold.StartDT,
		EndDT:     hold.EndDT,
		ExpiresAt: hold.ExpiresAt,
	}, nil
}

// Release снимает бронь
func (uc *UseCase) Release(ctx context.Context, holdID string) error {
	if err := uc.holds.Release(ctx, holdID); err != nil {
		uc.logger.Error("PlaceHold: failed to release hold=%s: %v", holdID, err)
		return fmt.Errorf("%w: failed to release hold: %v", ErrInternal, err)
	}
	uc.logger.Info("PlaceHold: hold=%s released", holdID)
	return nil
}

func (uc *UseCase) freeStaff(ctx context.Context, start, end time.Time) ([]*domain.Staff, error) {
	staff, err := uc.staffRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %v", err)
	}
	hours, err := uc.hoursRepo.List(ctx, nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list working hours: %v", err)
	}
	bookings, err := uc.bookingRepo.GetActiveInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %v", err)
	}
	blocks, err := uc.blockRepo.List(ctx, domain.BlocksFilter{From: &start, To: &end})
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %v", err)
	}

	holds, err := uc.holds.Active(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holds: %v", err)
	}

	schedules := availability.BuildSchedules(staff, hours, bookings, blocks)
	availability.AttachHolds(schedules, holds, "")
	return availability.FreeStaff(schedules, start, end), nil
}
