package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/room/model"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/logger"
	gRepo "hotelbook/shared/repository"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("room not found")

const (
	deleteRoomBookingsQuery = `DELETE FROM bookings WHERE room_id = $1`
	deleteRoomQuery         = `DELETE FROM rooms WHERE id = $1`
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteCascade(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// DeleteCascade deletes the room together with every booking that references it.
func (r *repositoryImpl) DeleteCascade(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.DeleteCascade")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteRoomBookingsQuery, id); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to delete room bookings: %w", err)
		}

		result, err := tx.ExecContext(ctx, deleteRoomQuery, id)
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to delete room: %w", err)
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			return ErrNotFound
		}

		return nil
	})
}
