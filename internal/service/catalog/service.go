package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Service сервис каталога салона: услуги и мастера
type Service struct {
	serviceRepo ServiceRepository
	staffRepo   StaffRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		logger:      logger,
	}
}

// ListServices возвращает услуги; activeOnly скрывает выключенные
func (s *Service) ListServices(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("ListServices: fetched %d services, activeOnly=%t", len(services), activeOnly)
	return models.FromDomainServiceList(services), nil
}

// CreateService создает услугу
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%q, duration=%d", req.NamePublic, req.DurationMin)

	if err := validateName(req.NamePublic, domain.MaxServiceNameLength); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}
	if err := validateDuration(req.DurationMin); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		NamePublic:  strings.TrimSpace(req.NamePublic),
		DurationMin: req.DurationMin,
		IsActive:    req.IsActive == nil || *req.IsActive,
	})
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: successfully created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// UpdateService частично обновляет услугу
func (s *Service) UpdateService(ctx context.Context, id string, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: id=%s", id)

	if req.NamePublic != nil {
		if err := validateName(*req.NamePublic, domain.MaxServiceNameLength); err != nil {
			s.logger.Warn("UpdateService: validation failed: %v", err)
			return nil, err
		}
		req.NamePublic = ptr.Ptr(strings.TrimSpace(*req.NamePublic))
	}
	if req.DurationMin != nil {
		if err := validateDuration(*req.DurationMin); err != nil {
			s.logger.Warn("UpdateService: validation failed: %v", err)
			return nil, err
		}
	}

	updated, err := s.serviceRepo.Update(ctx, id, req.ToDomainUpdate())
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: successfully updated service id=%s", id)
	return models.FromDomainService(updated), nil
}

// ListStaff возвращает мастеров
func (s *Service) ListStaff(ctx context.Context, activeOnly bool) (*models.StaffListResponse, error) {
	staff, err := s.staffRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("ListStaff: fetched %d staff, activeOnly=%t", len(staff), activeOnly)
	return models.FromDomainStaffList(staff), nil
}

// CreateStaff создает мастера
func (s *Service) CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("CreateStaff: name=%q", req.Name)

	if err := validateName(req.Name, domain.MaxStaffNameLength); err != nil {
		s.logger.Warn("CreateStaff: validation failed: %v", err)
		return nil, err
	}

	created, err := s.staffRepo.Create(ctx, &domain.Staff{
		Name:     strings.TrimSpace(req.Name),
		IsActive: req.IsActive == nil || *req.IsActive,
	})
	if err != nil {
		s.logger.Error("CreateStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaff: successfully created staff id=%s", created.ID)
	return models.FromDomainStaff(created), nil
}

// UpdateStaff частично обновляет мастера
func (s *Service) UpdateStaff(ctx context.Context, id string, req *models.UpdateStaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("UpdateStaff: id=%s", id)

	if req.Name != nil {
		if err := validateName(*req.Name, domain.MaxStaffNameLength); err != nil {
			s.logger.Warn("UpdateStaff: validation failed: %v", err)
			return nil, err
		}
		req.Name = ptr.Ptr(strings.TrimSpace(*req.Name))
	}

	updated, err := s.staffRepo.Update(ctx, id, req.ToDomainUpdate())
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("UpdateStaff: staff id=%s not found", id)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateStaff: repository error for staff id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStaff: successfully updated staff id=%s", id)
	return models.FromDomainStaff(updated), nil
}
