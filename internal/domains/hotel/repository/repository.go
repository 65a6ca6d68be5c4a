package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/hotel/model"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/logger"
	gRepo "hotelbook/shared/repository"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("hotel not found")

const (
	summarySelect = `SELECT hotels.*,
		COUNT(room_categories.id) AS category_count,
		MIN(room_categories.base_price) AS min_price,
		MAX(room_categories.base_price) AS max_price
	FROM hotels
	LEFT JOIN room_categories ON room_categories.hotel_id = hotels.id`

	insertAmenityQuery  = `INSERT INTO hotel_amenities (hotel_id, amenity_id) VALUES ($1, $2)`
	clearAmenitiesQuery = `DELETE FROM hotel_amenities WHERE hotel_id = $1`

	deleteHotelBookingsQuery = `DELETE FROM bookings WHERE room_id IN (
		SELECT rooms.id FROM rooms
		JOIN room_categories ON room_categories.id = rooms.category_id
		WHERE room_categories.hotel_id = $1
	)`
	deleteHotelRoomsQuery = `DELETE FROM rooms WHERE category_id IN (
		SELECT id FROM room_categories WHERE hotel_id = $1
	)`
	deleteHotelCategoriesQuery = `DELETE FROM room_categories WHERE hotel_id = $1`
	deleteHotelQuery           = `DELETE FROM hotels WHERE id = $1`
)

type Hotel interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotel, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetSummaries(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Summary, error)
	GetSummary(ctx context.Context, id string) (model.Summary, error)
	CreateWithAmenities(ctx context.Context, hotel model.Hotel, amenityIDs []string) error
	UpdateWithAmenities(ctx context.Context, id string, fields map[string]any, amenityIDs *[]string) error
	DeleteCascade(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetSummaries(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []model.Summary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.GetSummaries")
	defer scope.End()
	defer scope.TraceIfError(err)

	where, args := r.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("%s %s GROUP BY hotels.id", summarySelect, where)

	if params.SortBy != "" && params.SortDir != "" {
		query += fmt.Sprintf(" ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = max(params.Page-1, 0) * params.Limit
		query += " LIMIT :limit OFFSET :offset"
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	query, bound, err := sqlx.Named(query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to bind hotel summaries query: %w", err)
	}

	if err = r.db.Read.SelectContext(ctx, &res, r.db.Read.Rebind(query), bound...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get hotel summaries: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) GetSummary(ctx context.Context, id string) (res model.Summary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.GetSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	var rows []model.Summary

	query := summarySelect + " WHERE hotels.id = $1 GROUP BY hotels.id"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &rows, query, id); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get hotel summary: %w", err)
	}

	if len(rows) == 0 {
		return res, nil
	}

	return rows[0], nil
}

// CreateWithAmenities inserts the hotel and its amenity set in one transaction.
func (r *repositoryImpl) CreateWithAmenities(ctx context.Context, hotel model.Hotel, amenityIDs []string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.CreateWithAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.InsertTx(ctx, tx, hotel); err != nil {
			return err //nolint:wrapcheck
		}

		return insertAmenities(ctx, tx, hotel.ID, amenityIDs)
	})
}

// UpdateWithAmenities applies fields and, when amenityIDs is non-nil, replaces the amenity set wholesale.
func (r *repositoryImpl) UpdateWithAmenities(ctx context.Context, id string, fields map[string]any, amenityIDs *[]string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.UpdateWithAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err //nolint:wrapcheck
		}

		if amenityIDs == nil {
			return nil
		}

		if _, err := tx.ExecContext(ctx, clearAmenitiesQuery, id); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to clear hotel amenities: %w", err)
		}

		return insertAmenities(ctx, tx, id, *amenityIDs)
	})
}

// DeleteCascade removes the hotel and everything that hangs off it, children first.
func (r *repositoryImpl) DeleteCascade(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.DeleteCascade")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, query := range []string{deleteHotelBookingsQuery, deleteHotelRoomsQuery, deleteHotelCategoriesQuery, clearAmenitiesQuery} {
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				logger.ErrorWithStack(err)

				return fmt.Errorf("failed to delete hotel dependents: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, deleteHotelQuery, id)
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to delete hotel: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}

		if affected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

func insertAmenities(ctx context.Context, tx *sqlx.Tx, hotelID string, amenityIDs []string) error {
	for _, amenityID := range amenityIDs {
		if _, err := tx.ExecContext(ctx, insertAmenityQuery, hotelID, amenityID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to attach amenity %s: %w", amenityID, err)
		}
	}

	return nil
}
