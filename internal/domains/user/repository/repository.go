package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/user/model"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/logger"
	gRepo "hotelbook/shared/repository"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("user not found")

const (
	summarySelect = `SELECT users.*,
		COUNT(bookings.id) AS booking_count,
		COALESCE(SUM(bookings.total_cost), 0) AS total_spent
	FROM users
	LEFT JOIN bookings ON bookings.user_id = users.id`

	releaseHeldRoomsQuery = `UPDATE rooms SET availability_status = 'Available'
	WHERE rooms.id IN (
		SELECT room_id FROM bookings WHERE user_id = $1 AND status IN ('Pending', 'Confirmed')
	)
	AND NOT EXISTS (
		SELECT 1 FROM bookings other
		WHERE other.room_id = rooms.id AND other.user_id <> $1 AND other.status IN ('Pending', 'Confirmed')
	)`
	deleteUserBookingsQuery = `DELETE FROM bookings WHERE user_id = $1`
	detachUserReviewsQuery  = `UPDATE reviews SET user_id = NULL WHERE user_id = $1`
	deleteUserQuery         = `DELETE FROM users WHERE id = $1`
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetSummaries(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Summary, error)
	GetSummary(ctx context.Context, id string) (model.Summary, error)
	DeleteCascade(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetSummaries lists users together with their booking count and lifetime spend.
func (r *repositoryImpl) GetSummaries(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res []model.Summary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.GetSummaries")
	defer scope.End()
	defer scope.TraceIfError(err)

	where, args := r.BuildWhereClause(ctx, filter)
	query := fmt.Sprintf("%s %s GROUP BY users.id", summarySelect, where)

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

		return nil, fmt.Errorf("failed to bind user summaries query: %w", err)
	}

	if err = r.db.Read.SelectContext(ctx, &res, r.db.Read.Rebind(query), bound...); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get user summaries: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) GetSummary(ctx context.Context, id string) (res model.Summary, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.GetSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	var rows []model.Summary

	query := summarySelect + " WHERE users.id = $1 GROUP BY users.id"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &rows, query, id); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get user summary: %w", err)
	}

	if len(rows) == 0 {
		return res, nil
	}

	return rows[0], nil
}

// DeleteCascade frees the rooms held by the user's active bookings, removes the bookings, detaches
// the user's reviews and deletes the user, all in one transaction.
func (r *repositoryImpl) DeleteCascade(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.DeleteCascade")
	defer scope.End()
	defer scope.TraceIfError(err)

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, query := range []string{releaseHeldRoomsQuery, deleteUserBookingsQuery, detachUserReviewsQuery} {
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				logger.ErrorWithStack(err)

				return fmt.Errorf("failed to delete user dependents: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, deleteUserQuery, id)
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to delete user: %w", err)
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
