package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	blockRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/block"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	hoursRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

// Service сервис расписания мастеров: рабочие часы и блокировки
type Service struct {
	hoursRepo WorkingHoursRepository
	blockRepo BlockRepository
	staffRepo StaffRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	hoursRepo WorkingHoursRepository,
	blockRepo BlockRepository,
	staffRepo StaffRepository,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		blockRepo: blockRepo,
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// ListWorkingHours возвращает рабочие часы, опционально только одного мастера
func (s *Service) ListWorkingHours(ctx context.Context, staffID *string) (*models.WorkingHourListResponse, error) {
	hours, err := s.hoursRepo.List(ctx, staffID, false)
	if err != nil {
		s.logger.Error("ListWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWorkingHours - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("ListWorkingHours: fetched %d records", len(hours))
	return models.FromDomainWorkingHourList(hours), nil
}

// CreateWorkingHour создает рабочие часы мастера на день недели
func (s *Service) CreateWorkingHour(ctx context.Context, req *models.CreateWorkingHourRequest) (*models.WorkingHourResponse, error) {
	s.logger.Info("CreateWorkingHour: staff=%s, day=%d, %s-%s", req.StaffID, req.DayOfWeek, req.StartTime, req.EndTime)

	// 1. Валидируем входные данные
	if err := validateDayOfWeek(req.DayOfWeek); err != nil {
		s.logger.Warn("CreateWorkingHour: validation failed: %v", err)
		return nil, err
	}
	start, err := parseTime(req.StartTime)
	if err != nil {
		s.logger.Warn("CreateWorkingHour: validation failed: %v", err)
		return nil, err
	}
	end, err := parseTime(req.EndTime)
	if err != nil {
		s.logger.Warn("CreateWorkingHour: validation failed: %v", err)
		return nil, err
	}
	if err := validateHours(start, end); err != nil {
		s.logger.Warn("CreateWorkingHour: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем мастера
	if err := s.checkStaff(ctx, req.StaffID); err != nil {
		return nil, err
	}

	// 3. Создаем запись
	created, err := s.hoursRepo.Create(ctx, &domain.WorkingHour{
		StaffID:   req.StaffID,
		DayOfWeek: req.DayOfWeek,
		StartTime: start,
		EndTime:   end,
		IsActive:  req.IsActive == nil || *req.IsActive,
	})
	if err != nil {
		s.logger.Error("CreateWorkingHour: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateWorkingHour - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateWorkingHour: successfully created id=%s", created.ID)
	return models.FromDomainWorkingHour(created), nil
}

// UpdateWorkingHour частично обновляет рабочие часы
// Итоговый интервал проверяется с учетом текущих значений
func (s *Service) UpdateWorkingHour(ctx context.Context, id string, req *models.UpdateWorkingHourRequest) (*models.WorkingHourResponse, error) {
	s.logger.Info("UpdateWorkingHour: id=%s", id)

	current, err := s.hoursRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrWorkingHourNotFound) {
			s.logger.Warn("UpdateWorkingHour: id=%s not found", id)
			return nil, ErrWorkingHourNotFound
		}
		s.logger.Error("UpdateWorkingHour: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHour - repository error: %v", ErrInternal, err)
	}

	upd := domain.WorkingHourUpdate{DayOfWeek: req.DayOfWeek, IsActive: req.IsActive}
	start, end := current.StartTime, current.EndTime

	if req.DayOfWeek != nil {
		if err := validateDayOfWeek(*req.DayOfWeek); err != nil {
			s.logger.Warn("UpdateWorkingHour: validation failed: %v", err)
			return nil, err
		}
	}
	if req.StartTime != nil {
		if start, err = parseTime(*req.StartTime); err != nil {
			s.logger.Warn("UpdateWorkingHour: validation failed: %v", err)
			return nil, err
		}
		upd.StartTime = &start
	}
	if req.EndTime != nil {
		if end, err = parseTime(*req.EndTime); err != nil {
			s.logger.Warn("UpdateWorkingHour: validation failed: %v", err)
			return nil, err
		}
		upd.EndTime = &end
	}
	if err := validateHours(start, end); err != nil {
		s.logger.Warn("UpdateWorkingHour: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.hoursRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrWorkingHourNotFound) {
			return nil, ErrWorkingHourNotFound
		}
		s.logger.Error("UpdateWorkingHour: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateWorkingHour - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWorkingHour: successfully updated id=%s", id)
	return models.FromDomainWorkingHour(updated), nil
}

// ListBlocks возвращает блокировки, пересекающие период
func (s *Service) ListBlocks(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("ListBlocks: invalid period")
		return nil, ErrInvalidTimeRange
	}

	blocks, err := s.blockRepo.List(ctx, domain.BlocksFilter{From: req.From, To: req.To, StaffID: req.StaffID})
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("ListBlocks: fetched %d blocks", len(blocks))
	return models.FromDomainBlockList(blocks), nil
}

// CreateBlock создает блокировку мастера на период
func (s *Service) CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("CreateBlock: staff=%s, %s - %s", req.StaffID, req.StartDT, req.EndDT)

	reason := strings.TrimSpace(req.Reason)
	if err := validateBlock(req.StartDT, req.EndDT, reason); err != nil {
		s.logger.Warn("CreateBlock: validation failed: %v", err)
		return nil, err
	}
	if err := s.checkStaff(ctx, req.StaffID); err != nil {
		return nil, err
	}

	created, err := s.blockRepo.Create(ctx, &domain.Block{
		StaffID: req.StaffID,
		StartDT: req.StartDT,
		EndDT:   req.EndDT,
		Reason:  reason,
	})
	if err != nil {
		s.logger.Error("CreateBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: successfully created block id=%s", created.ID)
	return models.FromDomainBlock(created), nil
}

// DeleteBlock удаляет блокировку
func (s *Service) DeleteBlock(ctx context.Context, id string) error {
	s.logger.Info("DeleteBlock: id=%s", id)

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%s not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlock: successfully deleted block id=%s", id)
	return nil
}

// checkStaff проверяет, что мастер существует
func (s *Service) checkStaff(ctx context.Context, staffID string) error {
	if strings.TrimSpace(staffID) == "" {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("checkStaff: staff id=%s not found", staffID)
			return ErrStaffNotFound
		}
		s.logger.Error("checkStaff: failed to get staff id=%s: %v", staffID, err)
		return fmt.Errorf("%w: checkStaff - repository error: %v", ErrInternal, err)
	}
	return nil
}
