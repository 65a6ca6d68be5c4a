package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/roomcategory/model"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/logger"
	gRepo "hotelbook/shared/repository"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("room category not found")

const (
	deleteCategoryBookingsQuery = `DELETE FROM bookings WHERE room_id IN (SELECT id FROM rooms WHERE category_id = $1)`
	deleteCategoryRoomsQuery    = `DELETE FROM rooms WHERE category_id = $1`
	deleteCategoryQuery         = `DELETE FROM room_categories WHERE id = $1`
)

type RoomCategory interface {
	Insert(ctx context.Context, model model.RoomCategory) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomCategory, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomCategory, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	DeleteCascade(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomCategory]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) RoomCategory {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomCategory](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// DeleteCascade deletes the bookings of the category's rooms, the rooms and then the category.
func (r *repositoryImpl) DeleteCascade(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_category.DeleteCascade")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, query := range []string{deleteCategoryBookingsQuery, deleteCategoryRoomsQuery} {
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				logger.ErrorWithStack(err)

				return fmt.Errorf("failed to delete room category dependents: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, deleteCategoryQuery, id)
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to delete room category: %w", err)
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			return ErrNotFound
		}

		return nil
	})
}
