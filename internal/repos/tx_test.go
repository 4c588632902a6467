package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/internal/domain"
)

func TestPayRollsBackWhenStatusUpdateFails(t *testing.T) {
	db, mock := mockDB(t, DriverPostgres)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO tb_payment`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE tb_order SET order_status = \$1 WHERE id = \$2`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := NewOrderRepo(db).Pay(context.Background(), &domain.Payment{OrderID: 2, Moment: domain.Now()})
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "update", se.Op)
	assert.Equal(t, "tb_order", se.Table)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPayCommitsPaymentAndStatus(t *testing.T) {
	db, mock := mockDB(t, DriverPostgres)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO tb_payment`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE tb_order`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, NewOrderRepo(db).Pay(context.Background(), &domain.Payment{OrderID: 2, Moment: domain.Now()}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRollsBackOnFailure(t *testing.T) {
	db, mock := mockDB(t, DriverPostgres)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tb_user`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO tb_user`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO tb_user`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	require.Error(t, Seed(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}
