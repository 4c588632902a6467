package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockDB(t *testing.T, driver string) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })
	return sqlx.NewDb(raw, driver), mock
}

func TestApplySchemaRunsStatementsInOrder(t *testing.T) {
	for _, driver := range []string{DriverSQLite, DriverPostgres} {
		t.Run(driver, func(t *testing.T) {
			db, mock := mockDB(t, driver)
			for range schemaFor(driver) {
				mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
			}
			require.NoError(t, ApplySchema(context.Background(), db))
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestApplySchemaStopsOnFailure(t *testing.T) {
	db, mock := mockDB(t, DriverPostgres)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS tb_user").WillReturnError(errors.New("permission denied"))

	err := ApplySchema(context.Background(), db)
	var se *StoreError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "schema", se.Op)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresErrorsAreClassified(t *testing.T) {
	db, mock := mockDB(t, DriverPostgres)
	mock.ExpectExec(`DELETE FROM tb_user WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectExec(`DELETE FROM tb_user WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	users := NewUserRepo(db)
	err := users.DeleteByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrIntegrity)
	var pe *pq.Error
	assert.ErrorAs(t, err, &pe)

	err = users.DeleteByID(context.Background(), 2)
	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, ErrDuplicate, classify(&pq.Error{Code: "23505"}))
	assert.Nil(t, classify(errors.New("boom")))
}
