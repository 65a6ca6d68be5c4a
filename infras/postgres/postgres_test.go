package postgres_test

import (
	"context"
	"errors"
	"hotelbook/infras/postgres"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewFromDB(sqlx.NewDb(db, "postgres")), mock
}

func TestWithTransaction_Commit(t *testing.T) {
	conn, mock := newConnection(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rooms").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := conn.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
		_, err := tx.Exec("UPDATE rooms SET availability_status = 'Booked'")

		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollbackOnError(t *testing.T) {
	conn, mock := newConnection(t)
	errBoom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := conn.WithTransaction(context.Background(), func(*sqlx.Tx) error {
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_BeginFails(t *testing.T) {
	conn, mock := newConnection(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := conn.WithTransaction(context.Background(), func(*sqlx.Tx) error {
		t.Fatal("fn must not run")

		return nil
	})

	assert.Error(t, err)
}
