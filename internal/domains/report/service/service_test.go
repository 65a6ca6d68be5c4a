package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotelbook/config"
	otelMocks "hotelbook/infras/otel/mocks"
	reportMocks "hotelbook/internal/domains/report/mocks"
	"hotelbook/internal/domains/report/model"
	"hotelbook/internal/domains/report/service"
	cacheMocks "hotelbook/shared/cache/mocks"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
)

func newService(t *testing.T) (*reportMocks.MockReport, service.Report) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := reportMocks.NewMockReport(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return repo, service.New(repo, &config.Config{}, cache, otelMocks.NewOtel())
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestReportService_Dashboard(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().Dashboard(gomock.Any()).Return(model.DashboardStats{TotalBookings: 12, TotalRevenue: 4200.5, ActiveUsers: 7, HotelsListed: 3}, nil)

	res, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, res.TotalBookings)
	assert.InDelta(t, 4200.5, res.TotalRevenue, 0.001)
	assert.Equal(t, 3, res.HotelsListed)
}

func TestReportService_DashboardSeries(t *testing.T) {
	repo, svc := newService(t)

	now := date(2025, time.June, 15)

	repo.EXPECT().MonthlySeries(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, from, until time.Time) ([]model.MonthlyPoint, error) {
		assert.Equal(t, "2025-01-01", from.Format(time.DateOnly))
		assert.Equal(t, "2025-07-01", until.Format(time.DateOnly))

		return []model.MonthlyPoint{
			{Month: "2025-02", Revenue: 300, Bookings: 2},
			{Month: "2025-06", Revenue: 150, Bookings: 1},
		}, nil
	})

	res, err := svc.DashboardSeries(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, res.Points, 6)

	assert.Equal(t, "Jan 2025", res.Points[0].Label)
	assert.Zero(t, res.Points[0].Bookings)
	assert.InDelta(t, 300.0, res.Points[1].Revenue, 0.001)
	assert.Zero(t, res.Points[3].Revenue)
	assert.Equal(t, "Jun 2025", res.Points[5].Label)
	assert.Equal(t, 1, res.Points[5].Bookings)
}

func TestReportService_Report(t *testing.T) {
	from, to := date(2025, time.January, 1), date(2025, time.March, 31)

	tests := []struct {
		name        string
		kind        string
		from, to    time.Time
		setup       func(repo *reportMocks.MockReport)
		wantColumns []string
		wantRows    [][]string
		wantKind    failure.Kind
	}{
		{
			name: "revenue",
			kind: model.KindRevenue,
			from: from,
			to:   to,
			setup: func(repo *reportMocks.MockReport) {
				repo.EXPECT().Revenue(gomock.Any(), from, to).Return([]model.MonthlyPoint{{Month: "2025-01", Revenue: 1250, Bookings: 4}}, nil)
			},
			wantColumns: []string{"Month", "Revenue", "Confirmed Bookings"},
			wantRows:    [][]string{{"Jan 2025", "1250.00", "4"}},
		},
		{
			name: "bookings",
			kind: model.KindBookings,
			from: from,
			to:   to,
			setup: func(repo *reportMocks.MockReport) {
				repo.EXPECT().BookingStats(gomock.Any(), from, to).Return([]model.BookingStats{{Month: "2025-02", Total: 5, Confirmed: 3, Pending: 1, Cancelled: 1}}, nil)
			},
			wantColumns: []string{"Month", "Total", "Confirmed", "Pending", "Cancelled"},
			wantRows:    [][]string{{"Feb 2025", "5", "3", "1", "1"}},
		},
		{
			name: "hotels",
			kind: model.KindHotels,
			from: from,
			to:   to,
			setup: func(repo *reportMocks.MockReport) {
				repo.EXPECT().HotelPerformance(gomock.Any(), from, to).Return([]model.HotelPerformance{
					{HotelName: "Seaside", Location: "Lisbon", TotalBookings: 2, Revenue: 99.5, Confirmed: 1, Cancelled: 1},
				}, nil)
			},
			wantColumns: []string{"Hotel", "Location", "Total Bookings", "Revenue", "Confirmed", "Pending", "Cancelled"},
			wantRows:    [][]string{{"Seaside", "Lisbon", "2", "99.50", "1", "0", "1"}},
		},
		{
			name:     "unknown kind",
			kind:     "occupancy",
			from:     from,
			to:       to,
			setup:    func(*reportMocks.MockReport) {},
			wantKind: failure.KindInvalidInput,
		},
		{
			name:     "reversed period",
			kind:     model.KindRevenue,
			from:     to,
			to:       from,
			setup:    func(*reportMocks.MockReport) {},
			wantKind: failure.KindInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t)
			tt.setup(repo)

			res, err := svc.Report(context.Background(), tt.kind, tt.from, tt.to)

			if tt.wantKind != "" {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantColumns, res.Columns)
			assert.Equal(t, tt.wantRows, res.Rows)
		})
	}
}

func TestReportService_ExportCSV(t *testing.T) {
	repo, svc := newService(t)

	from, to := date(2025, time.January, 1), date(2025, time.February, 28)
	repo.EXPECT().Revenue(gomock.Any(), from, to).Return([]model.MonthlyPoint{
		{Month: "2025-01", Revenue: 100, Bookings: 1},
		{Month: "2025-02", Revenue: 250.25, Bookings: 2},
	}, nil)

	var buf bytes.Buffer

	require.NoError(t, svc.ExportCSV(context.Background(), model.KindRevenue, from, to, &buf))
	assert.Equal(t, "Month,Revenue,Confirmed Bookings\nJan 2025,100.00,1\nFeb 2025,250.25,2\n", buf.String())
}

func TestReportService_Snapshot(t *testing.T) {
	repo, svc := newService(t)

	from, to := date(2025, time.January, 1), date(2025, time.January, 31)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, snapshot model.Snapshot) error {
		assert.Equal(t, model.KindBookings, snapshot.Kind)
		assert.Equal(t, "cron", snapshot.GeneratedBy)
		assert.Equal(t, from, snapshot.PeriodFrom)

		return nil
	})

	res, err := svc.Snapshot(context.Background(), model.KindBookings, from, to, "cron")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", res.PeriodTo)
}

func TestReportService_Snapshots(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Snapshot, error) {
		assert.Equal(t, "reports.generated_at", params.SortBy)
		assert.Equal(t, gDto.SortDirDesc, params.SortDir)

		return []model.Snapshot{{ID: "s-1", Kind: model.KindHotels}}, nil
	})

	res, err := svc.Snapshots(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "password"})
	require.NoError(t, err)
	assert.Len(t, res.Snapshots, 1)
}

func TestReportService_ReviewSummary(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().RatingCounts(gomock.Any()).Return([]model.RatingCount{
		{Rating: 5, Count: 2},
		{Rating: 4, Count: 1},
	}, nil)

	res, err := svc.ReviewSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.InDelta(t, 4.67, res.Average, 0.001)
	require.Len(t, res.Ratings, 5)
	assert.Equal(t, 0, res.Ratings[0].Count)
	assert.Equal(t, 2, res.Ratings[4].Count)
}
