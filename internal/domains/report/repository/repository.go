package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/internal/domains/report/model"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/logger"
	gRepo "hotelbook/shared/repository"
	"time"
)

const (
	dashboardQuery = `SELECT
		(SELECT COUNT(*) FROM bookings JOIN users ON users.id = bookings.user_id WHERE users.active) AS total_bookings,
		(SELECT COALESCE(SUM(bookings.total_cost), 0) FROM bookings JOIN users ON users.id = bookings.user_id WHERE users.active) AS total_revenue,
		(SELECT COUNT(*) FROM users WHERE active) AS active_users,
		(SELECT COUNT(*) FROM hotels) AS hotels_listed`

	monthlySeriesQuery = `SELECT to_char(date_trunc('month', check_in_date), 'YYYY-MM') AS month,
		COALESCE(SUM(total_cost), 0) AS revenue,
		COUNT(*) AS bookings
	FROM bookings
	WHERE check_in_date >= $1 AND check_in_date < $2
	GROUP BY 1 ORDER BY 1`

	revenueQuery = `SELECT to_char(date_trunc('month', check_in_date), 'YYYY-MM') AS month,
		COALESCE(SUM(total_cost), 0) AS revenue,
		COUNT(*) AS bookings
	FROM bookings
	WHERE status = 'Confirmed' AND check_in_date >= $1 AND check_in_date <= $2
	GROUP BY 1 ORDER BY 1`

	bookingStatsQuery = `SELECT to_char(date_trunc('month', check_in_date), 'YYYY-MM') AS month,
		COUNT(*) AS total,
		SUM(CASE WHEN status = 'Confirmed' THEN 1 ELSE 0 END) AS confirmed,
		SUM(CASE WHEN status = 'Pending' THEN 1 ELSE 0 END) AS pending,
		SUM(CASE WHEN status = 'Cancelled' THEN 1 ELSE 0 END) AS cancelled
	FROM bookings
	WHERE check_in_date >= $1 AND check_in_date <= $2
	GROUP BY 1 ORDER BY 1`

	hotelPerformanceQuery = `SELECT hotels.name AS hotel_name, hotels.location,
		COUNT(bookings.id) AS total_bookings,
		COALESCE(SUM(CASE WHEN bookings.status = 'Confirmed' THEN bookings.total_cost ELSE 0 END), 0) AS revenue,
		COALESCE(SUM(CASE WHEN bookings.status = 'Confirmed' THEN 1 ELSE 0 END), 0) AS confirmed,
		COALESCE(SUM(CASE WHEN bookings.status = 'Pending' THEN 1 ELSE 0 END), 0) AS pending,
		COALESCE(SUM(CASE WHEN bookings.status = 'Cancelled' THEN 1 ELSE 0 END), 0) AS cancelled
	FROM hotels
	LEFT JOIN room_categories ON room_categories.hotel_id = hotels.id
	LEFT JOIN rooms ON rooms.category_id = room_categories.id
	LEFT JOIN bookings ON bookings.room_id = rooms.id
		AND bookings.check_in_date >= $1 AND bookings.check_in_date <= $2
	GROUP BY hotels.id, hotels.name, hotels.location
	ORDER BY revenue DESC, hotels.name`

	ratingCountsQuery = `SELECT rating, COUNT(*) AS count FROM reviews GROUP BY rating ORDER BY rating`
)

type Report interface {
	Dashboard(ctx context.Context) (model.DashboardStats, error)
	MonthlySeries(ctx context.Context, from, until time.Time) ([]model.MonthlyPoint, error)
	Revenue(ctx context.Context, from, to time.Time) ([]model.MonthlyPoint, error)
	BookingStats(ctx context.Context, from, to time.Time) ([]model.BookingStats, error)
	HotelPerformance(ctx context.Context, from, to time.Time) ([]model.HotelPerformance, error)
	RatingCounts(ctx context.Context) ([]model.RatingCount, error)
	Insert(ctx context.Context, model model.Snapshot) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Snapshot, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Snapshot]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Snapshot](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Dashboard(ctx context.Context) (res model.DashboardStats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, dashboardQuery)

	if err = r.db.Read.GetContext(ctx, &res, dashboardQuery); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return res, nil
}

// MonthlySeries aggregates every booking whose check-in falls in [from, until), whatever its status.
func (r *repositoryImpl) MonthlySeries(ctx context.Context, from, until time.Time) (res []model.MonthlyPoint, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.MonthlySeries")
	defer scope.End()
	defer scope.TraceIfError(err)

	return selectRange[model.MonthlyPoint](ctx, r.db, monthlySeriesQuery, from, until)
}

// Revenue aggregates Confirmed bookings only, per month.
func (r *repositoryImpl) Revenue(ctx context.Context, from, to time.Time) (res []model.MonthlyPoint, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	return selectRange[model.MonthlyPoint](ctx, r.db, revenueQuery, from, to)
}

func (r *repositoryImpl) BookingStats(ctx context.Context, from, to time.Time) (res []model.BookingStats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.BookingStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	return selectRange[model.BookingStats](ctx, r.db, bookingStatsQuery, from, to)
}

func (r *repositoryImpl) HotelPerformance(ctx context.Context, from, to time.Time) (res []model.HotelPerformance, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.HotelPerformance")
	defer scope.End()
	defer scope.TraceIfError(err)

	return selectRange[model.HotelPerformance](ctx, r.db, hotelPerformanceQuery, from, to)
}

func (r *repositoryImpl) RatingCounts(ctx context.Context) (res []model.RatingCount, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.RatingCounts")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.db.Read.SelectContext(ctx, &res, ratingCountsQuery); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get rating counts: %w", err)
	}

	return res, nil
}

func selectRange[T any](ctx context.Context, db *postgres.Connection, query string, from, to time.Time) ([]T, error) {
	var rows []T

	if err := db.Read.SelectContext(ctx, &rows, query, from, to); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to run report query: %w", err)
	}

	return rows, nil
}
