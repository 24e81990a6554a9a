package leave

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock, func() { db.Close() }
}

func TestRepository_WithTxRunsOnTransaction(t *testing.T) {
	gdb, poolMock, closePool := newGormDB(t)
	defer closePool()

	txConn, txMock, err := sqlmock.New()
	require.NoError(t, err)
	defer txConn.Close()

	txMock.ExpectBegin()
	txMock.ExpectQuery(`SELECT \* FROM "leaves" WHERE employee_id = \$1 AND status = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	txMock.ExpectCommit()

	tx, err := txConn.Begin()
	require.NoError(t, err)

	rangeStart := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	leaves, err := NewRepository(gdb).WithTx(tx).
		FindApprovedOverlapping(context.Background(), uuid.NewString(), rangeStart, rangeEnd)
	require.NoError(t, err)
	assert.Empty(t, leaves)
	require.NoError(t, tx.Commit())

	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

func TestBalanceRepository_WithTxRunsOnTransaction(t *testing.T) {
	gdb, poolMock, closePool := newGormDB(t)
	defer closePool()

	txConn, txMock, err := sqlmock.New()
	require.NoError(t, err)
	defer txConn.Close()

	txMock.ExpectBegin()
	txMock.ExpectExec(`UPDATE "leave_balances" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	txMock.ExpectCommit()

	tx, err := txConn.Begin()
	require.NoError(t, err)

	balance := &LeaveBalance{
		ID:              uuid.New(),
		EmployeeID:      uuid.New(),
		Year:            2026,
		CasualRemaining: 8,
		SickRemaining:   7,
	}
	require.NoError(t, NewBalanceRepository(gdb).WithTx(tx).Save(context.Background(), balance))
	require.NoError(t, tx.Commit())

	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}
