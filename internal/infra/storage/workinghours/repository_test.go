package workinghours

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestList(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, staff_id, day_of_week, start_time, end_time, is_active FROM working_hours WHERE staff_id = \$1 AND is_active = \$2 ORDER BY staff_id ASC, day_of_week ASC, start_time ASC`).
		WithArgs("staff-1", true).
		WillReturnRows(sqlmock.NewRows(workingHourColumns).
			AddRow("wh-1", "staff-1", 0, []byte("09:00:00"), []byte("17:00:00"), true).
			AddRow("wh-2", "staff-1", 4, "10:00", "15:30", true))

	hours, err := repo.List(context.Background(), ptr.Ptr("staff-1"), true)
	require.NoError(t, err)
	require.Len(t, hours, 2)
	assert.Equal(t, types.TimeString("09:00"), hours[0].StartTime)
	assert.Equal(t, types.TimeString("17:00"), hours[0].EndTime)
	assert.Equal(t, 4, hours[1].DayOfWeek)
	assert.Equal(t, types.TimeString("15:30"), hours[1].EndTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_All(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM working_hours ORDER BY staff_id ASC, day_of_week ASC, start_time ASC`).
		WillReturnRows(sqlmock.NewRows(workingHourColumns))

	hours, err := repo.List(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Empty(t, hours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO working_hours \(staff_id,day_of_week,start_time,end_time,is_active\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING id`).
		WithArgs("staff-1", 2, types.TimeString("08:30"), types.TimeString("12:00"), true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("wh-7"))

	h, err := repo.Create(context.Background(), &domain.WorkingHour{
		StaffID:   "staff-1",
		DayOfWeek: 2,
		StartTime: "08:30",
		EndTime:   "12:00",
		IsActive:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "wh-7", h.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE working_hours SET end_time = \$1, is_active = \$2 WHERE id = \$3 RETURNING id, staff_id, day_of_week, start_time, end_time, is_active`).
		WithArgs(types.TimeString("18:00"), false, "wh-1").
		WillReturnRows(sqlmock.NewRows(workingHourColumns).
			AddRow("wh-1", "staff-1", 0, "09:00:00", "18:00:00", false))

	end := types.TimeString("18:00")
	h, err := repo.Update(context.Background(), "wh-1", domain.WorkingHourUpdate{
		EndTime:  &end,
		IsActive: ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), h.EndTime)
	assert.False(t, h.IsActive)

	mock.ExpectQuery(`UPDATE working_hours SET day_of_week = \$1 WHERE id = \$2`).
		WithArgs(3, "missing").
		WillReturnRows(sqlmock.NewRows(workingHourColumns))

	_, err = repo.Update(context.Background(), "missing", domain.WorkingHourUpdate{DayOfWeek: ptr.Ptr(3)})
	assert.ErrorIs(t, err, ErrWorkingHourNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
