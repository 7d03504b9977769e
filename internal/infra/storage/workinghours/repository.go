package workinghours

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

var workingHourColumns = []string{"id", "staff_id", "day_of_week", "start_time", "end_time", "is_active"}

// Repository репозиторий рабочих часов мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает рабочие часы, опционально одного мастера
func (r *Repository) List(ctx context.Context, staffID *string, activeOnly bool) ([]*domain.WorkingHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(workingHourColumns...).
		From("working_hours").
		OrderBy("staff_id ASC", "day_of_week ASC", "start_time ASC")
	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *staffID})
	}
	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WorkingHour, 0)
	for rows.Next() {
		h, err := scanWorkingHour(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByID получает запись рабочих часов
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.WorkingHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workingHourColumns...).
		From("working_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	h, err := scanWorkingHour(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWorkingHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan working hour: %v", ErrScanRow, err)
	}
	return h, nil
}

// Create создает запись рабочих часов
func (r *Repository) Create(ctx context.Context, h *domain.WorkingHour) (*domain.WorkingHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns("staff_id", "day_of_week", "start_time", "end_time", "is_active").
		Values(h.StaffID, h.DayOfWeek, h.StartTime, h.EndTime, h.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&h.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return h, nil
}

// Update частично обновляет запись рабочих часов
func (r *Repository) Update(ctx context.Context, id string, upd domain.WorkingHourUpdate) (*domain.WorkingHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("working_hours").Where(squirrel.Eq{"id": id})
	changed := false
	if upd.DayOfWeek != nil {
		updateBuilder = updateBuilder.Set("day_of_week", *upd.DayOfWeek)
		changed = true
	}
	if upd.StartTime != nil {
		updateBuilder = updateBuilder.Set("start_time", *upd.StartTime)
		changed = true
	}
	if upd.EndTime != nil {
		updateBuilder = updateBuilder.Set("end_time", *upd.EndTime)
		changed = true
	}
	if upd.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *upd.IsActive)
		changed = true
	}
	if !changed {
		return r.GetByID(ctx, id)
	}

	query, args, err := updateBuilder.Suffix("RETURNING " + strings.Join(workingHourColumns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	h, err := scanWorkingHour(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWorkingHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	return h, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkingHour(row rowScanner) (*domain.WorkingHour, error) {
	var h domain.WorkingHour
	if err := row.Scan(&h.ID, &h.StaffID, &h.DayOfWeek, &h.StartTime, &h.EndTime, &h.IsActive); err != nil {
		return nil, err
	}
	return &h, nil
}
