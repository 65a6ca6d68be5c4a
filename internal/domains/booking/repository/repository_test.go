package repository_test

import (
	"context"
	"testing"
	"time"

	"hotelbook/infras/otel/mocks"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/booking/model"
	"hotelbook/internal/domains/booking/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return repository.New(postgres.NewFromDB(sqlx.NewDb(db, "postgres")), mocks.NewOtel()), mock
}

func sampleBooking() model.Booking {
	return model.Booking{
		ID:           "b-1",
		UserID:       "u-1",
		RoomID:       "r-1",
		CheckInDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Guests:       2,
		TotalCost:    300,
		Status:       model.StatusConfirmed,
	}
}

func TestCreateWithHold(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "holds room and inserts booking",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE rooms SET availability_status = 'Booked'").WithArgs("r-1").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO bookings").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "room already booked",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE rooms SET availability_status = 'Booked'").WithArgs("r-1").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: repository.ErrRoomUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setup(mock)

			err := repo.CreateWithHold(context.Background(), sampleBooking())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		wantChanged bool
		wantErr     error
	}{
		{
			name: "pending becomes confirmed",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE bookings SET status = 'Confirmed'").WithArgs("b-1", sqlmock.AnyArg(), "admin-1").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE rooms SET availability_status = 'Booked'").WithArgs("b-1").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantChanged: true,
		},
		{
			name: "already confirmed is a no-op",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE bookings SET status = 'Confirmed'").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT status FROM bookings").WithArgs("b-1").WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusConfirmed))
				mock.ExpectCommit()
			},
		},
		{
			name: "cancelled cannot be confirmed",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE bookings SET status = 'Confirmed'").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT status FROM bookings").WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(model.StatusCancelled))
				mock.ExpectRollback()
			},
			wantErr: repository.ErrInvalidTransition,
		},
		{
			name: "missing booking",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE bookings SET status = 'Confirmed'").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT status FROM bookings").WillReturnRows(sqlmock.NewRows([]string{"status"}))
				mock.ExpectRollback()
			},
			wantErr: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setup(mock)

			changed, err := repo.Confirm(context.Background(), "b-1", "admin-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantChanged, changed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		wantChanged bool
		wantErr     error
	}{
		{
			name: "active booking is cancelled and room released",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("UPDATE bookings SET status = 'Cancelled'").WithArgs("b-1", sqlmock.AnyArg(), "u-1").WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow("r-1"))
				mock.ExpectExec("UPDATE rooms SET availability_status = 'Available'").WithArgs("r-1").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantChanged: true,
		},
		{
			name: "second cancel leaves availability alone",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("UPDATE bookings SET status = 'Cancelled'").WillReturnRows(sqlmock.NewRows([]string{"room_id"}))
				mock.ExpectQuery("SELECT EXISTS").WithArgs("b-1").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectCommit()
			},
		},
		{
			name: "missing booking",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("UPDATE bookings SET status = 'Cancelled'").WillReturnRows(sqlmock.NewRows([]string{"room_id"}))
				mock.ExpectQuery("SELECT EXISTS").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectRollback()
			},
			wantErr: repository.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setup(mock)

			changed, err := repo.Cancel(context.Background(), "b-1", "u-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantChanged, changed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDelete(t *testing.T) {
	t.Run("releases room", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery("DELETE FROM bookings").WithArgs("b-1").WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow("r-1"))
		mock.ExpectExec("UPDATE rooms SET availability_status = 'Available'").WithArgs("r-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Delete(context.Background(), "b-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing booking", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery("DELETE FROM bookings").WithArgs("b-404").WillReturnRows(sqlmock.NewRows([]string{"room_id"}))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Delete(context.Background(), "b-404"), repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantFixed int64
	}{
		{
			name: "locks drifted rooms before fixing them",
			setup: func(mock sqlmock.Sqlmock) {
				roomIDs := pq.Array([]string{"r-1", "r-2", "r-3"})

				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id FROM rooms(.|\n)*FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r-1").AddRow("r-2").AddRow("r-3"))
				mock.ExpectExec(`UPDATE rooms SET availability_status = 'Booked'\s+WHERE id = ANY\(\$1\)`).
					WithArgs(roomIDs).WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(`UPDATE rooms SET availability_status = 'Available'\s+WHERE id = ANY\(\$1\)`).
					WithArgs(roomIDs).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			wantFixed: 3,
		},
		{
			name: "nothing drifted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id FROM rooms(.|\n)*FOR UPDATE").WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectCommit()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepository(t)
			tt.setup(mock)

			fixed, err := repo.Reconcile(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantFixed, fixed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
