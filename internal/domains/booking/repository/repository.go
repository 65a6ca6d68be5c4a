package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/booking/model"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/logger"
	gRepo "hotelbook/shared/repository"
	"hotelbook/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrNotFound          = errors.New("booking not found")
	ErrRoomUnavailable   = errors.New("room is not available")
	ErrInvalidTransition = errors.New("booking status does not allow this transition")
)

const (
	holdRoomQuery = `UPDATE rooms SET availability_status = 'Booked'
	WHERE id = $1 AND availability_status = 'Available'`

	releaseRoomQuery = `UPDATE rooms SET availability_status = 'Available'
	WHERE id = $1 AND NOT EXISTS (
		SELECT 1 FROM bookings WHERE room_id = $1 AND status IN ('Pending', 'Confirmed')
	)`

	assertBookedQuery = `UPDATE rooms SET availability_status = 'Booked'
	WHERE id = (SELECT room_id FROM bookings WHERE id = $1)`

	confirmQuery = `UPDATE bookings SET status = 'Confirmed', modified_at = $2, modified_by = $3
	WHERE id = $1 AND status = 'Pending'`

	cancelQuery = `UPDATE bookings SET status = 'Cancelled', modified_at = $2, modified_by = $3
	WHERE id = $1 AND status IN ('Pending', 'Confirmed')
	RETURNING room_id`

	statusQuery = `SELECT status FROM bookings WHERE id = $1`
	existQuery  = `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = $1)`
	deleteQuery = `DELETE FROM bookings WHERE id = $1 RETURNING room_id`

	// Locks every room whose status disagrees with its bookings. A create or cancel that already
	// touched one of these rows commits before the lock is granted.
	reconcileLockQuery = `SELECT id FROM rooms
	WHERE (availability_status <> 'Booked' AND EXISTS (
		SELECT 1 FROM bookings WHERE bookings.room_id = rooms.id AND bookings.status IN ('Pending', 'Confirmed')
	)) OR (availability_status <> 'Available' AND NOT EXISTS (
		SELECT 1 FROM bookings WHERE bookings.room_id = rooms.id AND bookings.status IN ('Pending', 'Confirmed')
	))
	ORDER BY id
	FOR UPDATE`

	reconcileBookedQuery = `UPDATE rooms SET availability_status = 'Booked'
	WHERE id = ANY($1) AND availability_status <> 'Booked' AND EXISTS (
		SELECT 1 FROM bookings WHERE bookings.room_id = rooms.id AND bookings.status IN ('Pending', 'Confirmed')
	)`

	reconcileAvailableQuery = `UPDATE rooms SET availability_status = 'Available'
	WHERE id = ANY($1) AND availability_status <> 'Available' AND NOT EXISTS (
		SELECT 1 FROM bookings WHERE bookings.room_id = rooms.id AND bookings.status IN ('Pending', 'Confirmed')
	)`
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CreateWithHold(ctx context.Context, booking model.Booking) error
	Confirm(ctx context.Context, id, actor string) (bool, error)
	Cancel(ctx context.Context, id, actor string) (bool, error)
	Delete(ctx context.Context, id string) error
	Reconcile(ctx context.Context) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateWithHold flips the room from Available to Booked and inserts the booking in the same
// transaction. A room that is not Available yields ErrRoomUnavailable and nothing is written.
func (r *repositoryImpl) CreateWithHold(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithHold")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, holdRoomQuery, booking.RoomID)
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to hold room: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}

		if affected == 0 {
			return ErrRoomUnavailable
		}

		return r.InsertTx(ctx, tx, booking) //nolint:wrapcheck
	})
}

// Confirm moves a Pending booking to Confirmed and re-asserts its room as Booked. It reports false
// without error when the booking is already Confirmed.
func (r *repositoryImpl) Confirm(ctx context.Context, id, actor string) (changed bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, confirmQuery, id, timezone.Now(), actor)
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to confirm booking: %w", err)
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			var status string

			err = tx.GetContext(ctx, &status, statusQuery, id)
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}

			if err != nil {
				logger.ErrorWithStack(err)

				return fmt.Errorf("failed to read booking status: %w", err)
			}

			if status == model.StatusConfirmed {
				return nil
			}

			return ErrInvalidTransition
		}

		if _, err = tx.ExecContext(ctx, assertBookedQuery, id); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to mark room booked: %w", err)
		}

		changed = true

		return nil
	})

	return changed, err //nolint:wrapcheck
}

// Cancel moves an active booking to Cancelled and frees its room unless another active booking holds
// it. Cancelling a booking that is already Cancelled reports false without touching availability.
func (r *repositoryImpl) Cancel(ctx context.Context, id, actor string) (changed bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var roomID string

		err := tx.GetContext(ctx, &roomID, cancelQuery, id, timezone.Now(), actor)
		if errors.Is(err, sql.ErrNoRows) {
			var exist bool

			if err = tx.GetContext(ctx, &exist, existQuery, id); err != nil {
				logger.ErrorWithStack(err)

				return fmt.Errorf("failed to check booking: %w", err)
			}

			if !exist {
				return ErrNotFound
			}

			return nil
		}

		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		if _, err = tx.ExecContext(ctx, releaseRoomQuery, roomID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to release room: %w", err)
		}

		changed = true

		return nil
	})

	return changed, err //nolint:wrapcheck
}

// Delete removes the booking and frees its room unless another active booking holds it.
func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var roomID string

		err := tx.GetContext(ctx, &roomID, deleteQuery, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}

		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to delete booking: %w", err)
		}

		if _, err = tx.ExecContext(ctx, releaseRoomQuery, roomID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to release room: %w", err)
		}

		return nil
	})
}

// Reconcile realigns rooms.availability_status with the active bookings and returns how many rooms changed.
// The drifted rooms are locked first and re-checked by the updates, which read a fresh snapshot, so a booking
// committed while the lock was pending keeps its room.
func (r *repositoryImpl) Reconcile(ctx context.Context) (fixed int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reconcile")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var roomIDs []string

		if err := tx.SelectContext(ctx, &roomIDs, reconcileLockQuery); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock drifted rooms: %w", err)
		}

		if len(roomIDs) == 0 {
			return nil
		}

		for _, query := range []string{reconcileBookedQuery, reconcileAvailableQuery} {
			result, err := tx.ExecContext(ctx, query, pq.Array(roomIDs))
			if err != nil {
				logger.ErrorWithStack(err)

				return fmt.Errorf("failed to reconcile availability: %w", err)
			}

			affected, _ := result.RowsAffected()
			fixed += affected
		}

		return nil
	})
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return fixed, nil
}
