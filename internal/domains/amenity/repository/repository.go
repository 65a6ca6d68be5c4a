package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/amenity/model"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/logger"
	gRepo "hotelbook/shared/repository"
)

const getByHotelQuery = `SELECT amenities.* FROM amenities
	JOIN hotel_amenities ON hotel_amenities.amenity_id = amenities.id
	WHERE hotel_amenities.hotel_id = $1
	ORDER BY amenities.name`

type Amenity interface {
	Insert(ctx context.Context, model model.Amenity) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Amenity, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Amenity, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetByHotel(ctx context.Context, hotelID string) ([]model.Amenity, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Amenity]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Amenity {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Amenity](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetByHotel(ctx context.Context, hotelID string) (res []model.Amenity, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".amenity.GetByHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, getByHotelQuery)

	if err = r.db.Read.SelectContext(ctx, &res, getByHotelQuery, hotelID); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get hotel amenities: %w", err)
	}

	return res, nil
}
