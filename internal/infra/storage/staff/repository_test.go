package staff

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

var created = time.Date(2026, time.October, 1, 8, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestList(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT id, name, is_active, created_at FROM staff ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows(staffColumns).
			AddRow("staff-1", "Anna", true, created).
			AddRow("staff-2", "Erik", false, created))

	staff, err := repo.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, "Anna", staff[0].Name)
	assert.False(t, staff[1].IsActive)

	mock.ExpectQuery(`SELECT (.+) FROM staff WHERE is_active = \$1 ORDER BY name ASC`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(staffColumns).AddRow("staff-1", "Anna", true, created))

	staff, err = repo.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, staff, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM staff WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(staffColumns))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrStaffNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAndUpdate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`INSERT INTO staff \(name,is_active\) VALUES \(\$1,\$2\) RETURNING id, created_at`).
		WithArgs("Sara", true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("staff-3", created))

	s, err := repo.Create(context.Background(), &domain.Staff{Name: "Sara", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "staff-3", s.ID)

	mock.ExpectQuery(`UPDATE staff SET is_active = \$1 WHERE id = \$2 RETURNING id, name, is_active, created_at`).
		WithArgs(false, "staff-3").
		WillReturnRows(sqlmock.NewRows(staffColumns).AddRow("staff-3", "Sara", false, created))

	s, err = repo.Update(context.Background(), "staff-3", domain.StaffUpdate{IsActive: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.False(t, s.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
