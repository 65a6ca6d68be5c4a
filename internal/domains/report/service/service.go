package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Report=MockReportService

import (
	"context"
	"encoding/csv"
	"fmt"
	"hotelbook/config"
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/report/model"
	"hotelbook/internal/domains/report/model/dto"
	"hotelbook/internal/domains/report/repository"
	"hotelbook/shared"
	"hotelbook/shared/cache"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	"hotelbook/shared/timezone"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheDashboard     = model.CachePrefix + "dashboard"
	cacheSeries        = model.CachePrefix + "series"
	cacheTable         = model.CachePrefix + "table"
	cacheReviewSummary = model.CachePrefix + "reviews"
)

type Report interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	DashboardSeries(ctx context.Context, now time.Time) (dto.SeriesResponse, error)
	Report(ctx context.Context, kind string, from, to time.Time) (dto.Table, error)
	ExportCSV(ctx context.Context, kind string, from, to time.Time, w io.Writer) error
	Snapshot(ctx context.Context, kind string, from, to time.Time, generatedBy string) (dto.SnapshotResponse, error)
	Snapshots(ctx context.Context, req gDto.QueryParams) (dto.GetSnapshotsResponse, error)
	ReviewSummary(ctx context.Context) (dto.ReviewSummaryResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheDashboard, &res)
	if err == nil {
		return res, nil
	}

	stats, err := s.repo.Dashboard(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard stats")

		return res, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	res.FromModel(stats)
	s.save(ctx, cacheDashboard, res)

	return res, nil
}

// DashboardSeries covers the trailing months ending with the month of now. Cancelled bookings are
// counted too, unlike the revenue report.
func (s *serviceImpl) DashboardSeries(ctx context.Context, now time.Time) (res dto.SeriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DashboardSeries")
	defer scope.End()
	defer scope.TraceIfError(err)

	months := timezone.TrailingMonths(now, s.trailingMonths())
	cacheKey := shared.BuildCacheKey(cacheSeries, months[0].Format(constant.MonthKeyFormat), months[len(months)-1].Format(constant.MonthKeyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	rows, err := s.repo.MonthlySeries(ctx, months[0], months[len(months)-1].AddDate(0, 1, 0))
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly series")

		return res, fmt.Errorf("failed to get monthly series: %w", err)
	}

	res.FromModels(months, rows)
	s.save(ctx, cacheKey, res)

	return res, nil
}

// Report renders one report kind over an inclusive check-in range.
func (s *serviceImpl) Report(ctx context.Context, kind string, from, to time.Time) (res dto.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Report")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validatePeriod(kind, from, to); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheTable, kind, from.Format(constant.DateOnlyFormat), to.Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	switch kind {
	case model.KindRevenue:
		res, err = s.revenue(ctx, from, to)
	case model.KindBookings:
		res, err = s.bookings(ctx, from, to)
	default:
		res, err = s.hotels(ctx, from, to)
	}

	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("failed to build report")

		return res, fmt.Errorf("failed to build %s report: %w", kind, err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

// ExportCSV writes the same table Report returns, header first.
func (s *serviceImpl) ExportCSV(ctx context.Context, kind string, from, to time.Time, w io.Writer) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	table, err := s.Report(ctx, kind, from, to)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)

	if err = writer.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	if err = writer.WriteAll(table.Rows); err != nil {
		log.Error().Err(err).Msg("failed to write csv rows")

		return fmt.Errorf("failed to write csv rows: %w", err)
	}

	return nil
}

// Snapshot records that a report was generated. It does not store the report itself.
func (s *serviceImpl) Snapshot(ctx context.Context, kind string, from, to time.Time, generatedBy string) (res dto.SnapshotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Snapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validatePeriod(kind, from, to); err != nil {
		return res, err
	}

	snapshot := model.Snapshot{
		ID:          uuid.NewString(),
		Kind:        kind,
		GeneratedBy: generatedBy,
		GeneratedAt: timezone.Now(),
		PeriodFrom:  from,
		PeriodTo:    to,
	}

	if err = s.repo.Insert(ctx, snapshot); err != nil {
		log.Error().Err(err).Msg("failed to record report snapshot")

		return res, fmt.Errorf("failed to record report snapshot: %w", err)
	}

	res.FromModel(snapshot)

	return res, nil
}

func (s *serviceImpl) Snapshots(ctx context.Context, req gDto.QueryParams) (res dto.GetSnapshotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Snapshots")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy != model.FieldKind {
		req.SortBy = model.FieldGeneratedAt
	}

	if req.SortDir == "" {
		req.SortDir = gDto.SortDirDesc
	}

	req.SortBy = model.TableName + "." + req.SortBy

	filter := gDto.FilterGroup{}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count report snapshots")

		return res, fmt.Errorf("failed to count report snapshots: %w", err)
	}

	snapshots, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get report snapshots")

		return res, fmt.Errorf("failed to get report snapshots: %w", err)
	}

	res.FromModels(snapshots, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) ReviewSummary(ctx context.Context) (res dto.ReviewSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReviewSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheReviewSummary, &res)
	if err == nil {
		return res, nil
	}

	rows, err := s.repo.RatingCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rating counts")

		return res, fmt.Errorf("failed to get rating counts: %w", err)
	}

	res.FromModels(rows)
	s.save(ctx, cacheReviewSummary, res)

	return res, nil
}

func (s *serviceImpl) revenue(ctx context.Context, from, to time.Time) (dto.Table, error) {
	rows, err := s.repo.Revenue(ctx, from, to)
	if err != nil {
		return dto.Table{}, err //nolint:wrapcheck
	}

	table := dto.NewTable(model.KindRevenue, from, to, "Month", "Revenue", "Confirmed Bookings")
	for _, row := range rows {
		table.Append(dto.MonthLabel(row.Month), dto.Money(row.Revenue), dto.Count(row.Bookings))
	}

	return table, nil
}

func (s *serviceImpl) bookings(ctx context.Context, from, to time.Time) (dto.Table, error) {
	rows, err := s.repo.BookingStats(ctx, from, to)
	if err != nil {
		return dto.Table{}, err //nolint:wrapcheck
	}

	table := dto.NewTable(model.KindBookings, from, to, "Month", "Total", "Confirmed", "Pending", "Cancelled")
	for _, row := range rows {
		table.Append(dto.MonthLabel(row.Month), dto.Count(row.Total), dto.Count(row.Confirmed), dto.Count(row.Pending), dto.Count(row.Cancelled))
	}

	return table, nil
}

func (s *serviceImpl) hotels(ctx context.Context, from, to time.Time) (dto.Table, error) {
	rows, err := s.repo.HotelPerformance(ctx, from, to)
	if err != nil {
		return dto.Table{}, err //nolint:wrapcheck
	}

	table := dto.NewTable(model.KindHotels, from, to, "Hotel", "Location", "Total Bookings", "Revenue", "Confirmed", "Pending", "Cancelled")
	for _, row := range rows {
		table.Append(row.HotelName, row.Location, dto.Count(row.TotalBookings), dto.Money(row.Revenue),
			dto.Count(row.Confirmed), dto.Count(row.Pending), dto.Count(row.Cancelled))
	}

	return table, nil
}

func (s *serviceImpl) trailingMonths() int {
	if s.cfg.Report.TrailingMonths > 0 {
		return s.cfg.Report.TrailingMonths
	}

	return model.DefaultTrailingMonths
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save report to cache")
		}
	}()
}

func validatePeriod(kind string, from, to time.Time) error {
	if !slices.Contains(model.Kinds, kind) {
		return failure.InvalidInput("unknown report kind " + kind) // nolint:wrapcheck
	}

	if to.Before(from) {
		return failure.InvalidDateRange("report end date must not be before its start date") // nolint:wrapcheck
	}

	return nil
}
