package admins

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	adminRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/adminuser"
	"github.com/m04kA/SMC-SalonService/internal/service/admins/models"
)

// Service сервис администраторов дашборда
type Service struct {
	repo      AdminUserRepository
	salonName string
	logger    Logger
}

// NewService создает новый экземпляр сервиса администраторов
func NewService(repo AdminUserRepository, salonName string, logger Logger) *Service {
	return &Service{
		repo:      repo,
		salonName: salonName,
		logger:    logger,
	}
}

// VerifyAdmin проверяет, что ID принадлежит включенному администратору
func (s *Service) VerifyAdmin(ctx context.Context, id string) (*domain.AdminUser, error) {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminUserNotFound) {
			return nil, ErrAdminNotFound
		}
		s.logger.Error("VerifyAdmin: repository error for admin id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: VerifyAdmin - repository error: %v", ErrInternal, err)
	}
	if !admin.IsActive {
		return nil, ErrAdminInactive
	}
	return admin, nil
}

// GetMe возвращает текущего пользователя вместе с названием салона
func (s *Service) GetMe(ctx context.Context, adminID string) (*models.CurrentUserResponse, error) {
	admin, err := s.VerifyAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCurrentUser(admin, s.salonName), nil
}

// ListAdminUsers возвращает всех администраторов; только для владельца
func (s *Service) ListAdminUsers(ctx context.Context, actorID string) (*models.AdminUserListResponse, error) {
	if err := s.requireOwner(ctx, actorID); err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("ListAdminUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAdminUsers - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("ListAdminUsers: fetched %d admin users", len(items))
	return models.FromDomainAdminUserList(items), nil
}

// CreateAdminUser создает администратора; только для владельца
func (s *Service) CreateAdminUser(ctx context.Context, actorID string, req *models.CreateAdminUserRequest) (*models.AdminUserResponse, error) {
	s.logger.Info("CreateAdminUser: actor=%s", actorID)

	if err := s.requireOwner(ctx, actorID); err != nil {
		return nil, err
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		s.logger.Warn("CreateAdminUser: validation failed: %v", err)
		return nil, err
	}
	role := domain.RoleAdmin
	if req.Role != nil {
		role = domain.AdminRole(*req.Role)
		if err := validateRole(role); err != nil {
			s.logger.Warn("CreateAdminUser: validation failed: %v", err)
			return nil, err
		}
	}

	created, err := s.repo.Create(ctx, &domain.AdminUser{
		Email:    email,
		Role:     role,
		IsActive: req.IsActive == nil || *req.IsActive,
	})
	if err != nil {
		if errors.Is(err, adminRepo.ErrEmailTaken) {
			s.logger.Warn("CreateAdminUser: email %s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("CreateAdminUser: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateAdminUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateAdminUser: successfully created admin user id=%s, role=%s", created.ID, created.Role)
	return models.FromDomainAdminUser(created), nil
}

// UpdateAdminUser меняет роль или активность администратора; только для владельца
// Последнего включенного владельца нельзя ни понизить, ни выключить
func (s *Service) UpdateAdminUser(ctx context.Context, actorID, id string, req *models.UpdateAdminUserRequest) (*models.AdminUserResponse, error) {
	s.logger.Info("UpdateAdminUser: actor=%s, id=%s", actorID, id)

	if err := s.requireOwner(ctx, actorID); err != nil {
		return nil, err
	}

	var upd domain.AdminUserUpdate
	if req.Role != nil {
		role := domain.AdminRole(*req.Role)
		if err := validateRole(role); err != nil {
			s.logger.Warn("UpdateAdminUser: validation failed: %v", err)
			return nil, err
		}
		upd.Role = &role
	}
	upd.IsActive = req.IsActive

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminUserNotFound) {
			s.logger.Warn("UpdateAdminUser: admin user id=%s not found", id)
			return nil, ErrAdminNotFound
		}
		s.logger.Error("UpdateAdminUser: repository error for admin id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateAdminUser - repository error: %v", ErrInternal, err)
	}

	if current.IsActiveOwner() && !staysActiveOwner(current, upd) {
		owners, err := s.repo.CountActiveOwners(ctx)
		if err != nil {
			s.logger.Error("UpdateAdminUser: count owners: %v", err)
			return nil, fmt.Errorf("%w: UpdateAdminUser - count owners: %v", ErrInternal, err)
		}
		if owners <= 1 {
			s.logger.Warn("UpdateAdminUser: admin user id=%s is the last active owner", id)
			return nil, ErrLastOwner
		}
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminUserNotFound) {
			return nil, ErrAdminNotFound
		}
		s.logger.Error("UpdateAdminUser: repository error for admin id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateAdminUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateAdminUser: successfully updated admin user id=%s", id)
	return models.FromDomainAdminUser(updated), nil
}

// EnsureOwner создает первого владельца, если администраторов еще нет
func (s *Service) EnsureOwner(ctx context.Context, email string) error {
	if email == "" {
		s.logger.Warn("EnsureOwner: owner email is not configured, skipping")
		return nil
	}
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: EnsureOwner - list admin users: %v", ErrInternal, err)
	}
	if len(items) > 0 {
		return nil
	}

	created, err := s.repo.Create(ctx, &domain.AdminUser{Email: normalized, Role: domain.RoleOwner, IsActive: true})
	if err != nil {
		if errors.Is(err, adminRepo.ErrEmailTaken) {
			return nil
		}
		return fmt.Errorf("%w: EnsureOwner - create owner: %v", ErrInternal, err)
	}
	s.logger.Info("EnsureOwner: created owner id=%s email=%s", created.ID, created.Email)
	return nil
}

func (s *Service) requireOwner(ctx context.Context, actorID string) error {
	actor, err := s.VerifyAdmin(ctx, actorID)
	if err != nil {
		return err
	}
	if actor.Role != domain.RoleOwner {
		s.logger.Warn("requireOwner: admin id=%s has role %s", actorID, actor.Role)
		return ErrOwnerRequired
	}
	return nil
}

func staysActiveOwner(current *domain.AdminUser, upd domain.AdminUserUpdate) bool {
	role := current.Role
	if upd.Role != nil {
		role = *upd.Role
	}
	active := current.IsActive
	if upd.IsActive != nil {
		active = *upd.IsActive
	}
	return active && role == domain.RoleOwner
}
