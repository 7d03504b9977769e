package adminuser

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var adminUserColumns = []string{"id", "email", "role", "is_active", "created_at"}

// Repository репозиторий администраторов салона
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает администраторов в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(adminUserColumns...).
		From("admin_users").
		OrderBy("created_at ASC", "email ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.AdminUser, 0)
	for rows.Next() {
		a, err := scanAdminUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByID получает администратора по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(adminUserColumns...).
		From("admin_users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAdminUser(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAdminUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan admin user: %v", ErrScanRow, err)
	}
	return a, nil
}

// CountActiveOwners количество включенных владельцев
func (r *Repository) CountActiveOwners(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("admin_users").
		Where(squirrel.Eq{"role": string(domain.RoleOwner), "is_active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveOwners - build select query: %v", ErrBuildQuery, err)
	}

	var n int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: CountActiveOwners - scan count: %v", ErrScanRow, err)
	}
	return n, nil
}

// Create создает администратора; занятый email дает ErrEmailTaken
func (r *Repository) Create(ctx context.Context, a *domain.AdminUser) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("admin_users").
		Columns("email", "role", "is_active").
		Values(a.Email, string(a.Role), a.IsActive).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, a.Email)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return a, nil
}

// Update частично обновляет администратора
func (r *Repository) Update(ctx context.Context, id string, upd domain.AdminUserUpdate) (*domain.AdminUser, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("admin_users").Where(squirrel.Eq{"id": id})
	changed := false
	if upd.Role != nil {
		updateBuilder = updateBuilder.Set("role", string(*upd.Role))
		changed = true
	}
	if upd.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *upd.IsActive)
		changed = true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := updateBuilder.Suffix("RETURNING " + strings.Join(adminUserColumns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	a, err := scanAdminUser(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAdminUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	return a, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAdminUser(row rowScanner) (*domain.AdminUser, error) {
	var a domain.AdminUser
	var role string
	var createdAt sql.NullTime
	if err := row.Scan(&a.ID, &a.Email, &role, &a.IsActive, &createdAt); err != nil {
		return nil, err
	}
	a.Role = domain.AdminRole(role)
	a.CreatedAt = createdAt.Time
	return &a, nil
}
