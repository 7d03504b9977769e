package suggest_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonService/internal/service/availability"
)

const maxHorizonDays = 7

// UseCase use case подбора ближайшего свободного времени для услуги
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
// holds может быть nil: тогда брони других звонков не учитываются
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
	if config.HorizonDays <= 0 || config.HorizonDays > maxHorizonDays {
		config.HorizonDays = maxHorizonDays
	}
	if config.SlotCount <= 0 {
		config.SlotCount = 3
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

// Execute выполняет use case подбора времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SuggestSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SuggestSlots: service=%s", req.ServiceID)

	// 2. Получаем текущее время в часовом поясе салона
	now := uc.timeProvider.Now().In(uc.config.Location)

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("SuggestSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("SuggestSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("SuggestSlots: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 4. Загружаем расписание на горизонт поиска
	from := now
	y, m, d := now.Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, uc.config.HorizonDays)

	schedules, err := uc.loadSchedules(ctx, from, to)
	if err != nil {
		uc.logger.Error("SuggestSlots: failed to load schedules: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Мастера, которых держат другие звонки, на это время заняты
	if uc.holds != nil {
		holds, err := uc.holds.Active(ctx, from, to)
		if err != nil {
			uc.logger.Warn("SuggestSlots: failed to load holds, suggesting without them: %v", err)
		} else {
			availability.AttachHolds(schedules, holds, "")
		}
	}

	// 6. Первые свободные начала в горизонте
	starts, err := availability.Suggest(schedules, now, availability.Params{
		DurationMinutes:  service.DurationMin,
		StepMinutes:      uc.config.StepMinutes,
		MinNoticeMinutes: uc.config.MinNoticeMinutes,
		HorizonDays:      uc.config.HorizonDays,
		Count:            uc.config.SlotCount,
	})
	if err != nil {
		uc.logger.Error("SuggestSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	slots := make([]Slot, 0, len(starts))
	for _, start := range starts {
		slots = append(slots, Slot{
			Label:   domain.NewSlotLabel(start).String(),
			StartDT: start,
			EndDT:   start.Add(duration),
		})
	}

	uc.logger.Info("SuggestSlots: service=%s, %d starts suggested", service.ID, len(slots))

	return &Response{
		ServiceID:   service.ID,
		ServiceName: service.NamePublic,
		Slots:       slots,
	}, nil
}

// loadSchedules загружает мастеров, рабочие часы, бронирования и блокировки
func (uc *UseCase) loadSchedules(ctx context.Context, from, to time.Time) ([]availability.StaffSchedule, error) {
	staff, err := uc.staffRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %v", err)
	}

	hours, err := uc.hoursRepo.List(ctx, nil, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list working hours: %v", err)
	}

	bookings, err := uc.bookingRepo.GetActiveInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %v", err)
	}

	blocks, err := uc.blockRepo.List(ctx, domain.BlocksFilter{From: &from, To: &to})
	if err != nil {
		return nil, fmt.Errorf("failed to list blocks: %v", err)
	}

	return availability.BuildSchedules(staff, hours, bookings, blocks), nil
}
