package repository_test

import (
	"context"
	"errors"
	"hotelbook/infras/otel/mocks"
	"hotelbook/infras/postgres"
	"hotelbook/shared/failure"
	"hotelbook/shared/repository"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func TestRepository_InsertConstraintViolations(t *testing.T) {
	tests := []struct {
		name       string
		driverErr  error
		expectKind failure.Kind
	}{
		{name: "unique violation", driverErr: &pq.Error{Code: "23505"}, expectKind: failure.KindDuplicateEntry},
		{name: "foreign key violation", driverErr: &pq.Error{Code: "23503"}, expectKind: failure.KindInvalidInput},
		{name: "other pq error", driverErr: &pq.Error{Code: "57014"}, expectKind: failure.KindStorageError},
		{name: "driver failure", driverErr: errors.New("connection refused"), expectKind: failure.KindStorageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)

			defer db.Close()

			repo := repository.NewRepository[widget]("widget", "widgets", "id", postgres.NewFromDB(sqlx.NewDb(db, "postgres")), mocks.NewOtel())

			mock.ExpectExec("INSERT INTO widgets").WillReturnError(tt.driverErr)

			err = repo.Insert(context.Background(), widget{ID: "w-1", Name: "gear"})

			require.Error(t, err)
			assert.Equal(t, tt.expectKind, failure.GetKind(err))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
