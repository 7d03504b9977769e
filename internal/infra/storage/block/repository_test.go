package block

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

var (
	from = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	to   = from.AddDate(0, 0, 7)
)

var blockColumns = []string{"id", "staff_id", "name", "start_dt", "end_dt", "reason", "created_at"}

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestList(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT b.id, b.staff_id, COALESCE\(s.name, ''\), b.start_dt, b.end_dt, b.reason, b.created_at FROM blocks b LEFT JOIN staff s ON s.id = b.staff_id WHERE b.end_dt > \$1 AND b.start_dt < \$2 AND b.staff_id = \$3 ORDER BY b.start_dt ASC`).
		WithArgs(from, to, "staff-1").
		WillReturnRows(sqlmock.NewRows(blockColumns).
			AddRow("blk-1", "staff-1", "Anna", from.Add(9*time.Hour), from.Add(12*time.Hour), "Tandläkare", from).
			AddRow("blk-2", "staff-1", "Anna", from.Add(33*time.Hour), from.Add(34*time.Hour), nil, nil))

	blocks, err := repo.List(context.Background(), domain.BlocksFilter{
		From:    &from,
		To:      &to,
		StaffID: ptr.Ptr("staff-1"),
	})
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Anna", blocks[0].StaffName)
	assert.Equal(t, "Tandläkare", blocks[0].Reason)
	assert.Empty(t, blocks[1].Reason)
	assert.True(t, blocks[1].CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_QueryError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM blocks b`).WillReturnError(errors.New("timeout"))

	_, err := repo.List(context.Background(), domain.BlocksFilter{})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)

	start := from.Add(9 * time.Hour)
	mock.ExpectQuery(`INSERT INTO blocks \(staff_id,start_dt,end_dt,reason\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id, created_at`).
		WithArgs("staff-1", start, start.Add(time.Hour), "Möte").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("blk-3", from))

	b, err := repo.Create(context.Background(), &domain.Block{
		StaffID: "staff-1",
		StartDT: start,
		EndDT:   start.Add(time.Hour),
		Reason:  "Möte",
	})
	require.NoError(t, err)
	assert.Equal(t, "blk-3", b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM blocks WHERE id = \$1`).
		WithArgs("blk-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), "blk-1"))

	mock.ExpectExec(`DELETE FROM blocks WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), ErrBlockNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
