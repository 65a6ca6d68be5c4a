package jobs_test

import (
	"context"
	"errors"
	"hotelbook/config"
	cronMocks "hotelbook/infras/cron/mocks"
	bookingMocks "hotelbook/internal/domains/booking/mocks"
	reportMocks "hotelbook/internal/domains/report/mocks"
	reportModel "hotelbook/internal/domains/report/model"
	"hotelbook/internal/domains/report/model/dto"
	"hotelbook/internal/jobs"
	"hotelbook/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	scheduler *cronMocks.MockScheduler
	booking   *bookingMocks.MockBookingService
	report    *reportMocks.MockReportService
}

func newJobs(t *testing.T, cfg *config.Config) (*jobs.Jobs, fixture) {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		scheduler: cronMocks.NewMockScheduler(ctrl),
		booking:   bookingMocks.NewMockBookingService(ctrl),
		report:    reportMocks.NewMockReportService(ctrl),
	}

	return jobs.New(cfg, f.scheduler, f.booking, f.report), f
}

func TestJobs_Start(t *testing.T) {
	tests := []struct {
		name        string
		enable      bool
		setupMocks  func(f fixture)
		expectError bool
	}{
		{
			name:       "disabled",
			setupMocks: func(fixture) {},
		},
		{
			name:   "registers both jobs",
			enable: true,
			setupMocks: func(f fixture) {
				f.scheduler.EXPECT().Register(jobs.JobReconcile, "*/10 * * * *", gomock.Any()).Return(nil)
				f.scheduler.EXPECT().Register(jobs.JobSnapshot, "@daily", gomock.Any()).Return(nil)
				f.scheduler.EXPECT().Start()
			},
		},
		{
			name:   "bad schedule",
			enable: true,
			setupMocks: func(f fixture) {
				f.scheduler.EXPECT().Register(jobs.JobReconcile, gomock.Any(), gomock.Any()).Return(errors.New("expected exactly 5 fields"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Cron.Enable = tt.enable
			cfg.Cron.ReconcileSchedule = "*/10 * * * *"
			cfg.Cron.SnapshotSchedule = "@daily"

			j, f := newJobs(t, cfg)
			tt.setupMocks(f)

			err := j.Start()

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJobs_Reconcile(t *testing.T) {
	j, f := newJobs(t, &config.Config{})

	f.booking.EXPECT().Reconcile(gomock.Any()).Return(int64(2), nil)
	assert.NoError(t, j.Reconcile(context.Background()))

	f.booking.EXPECT().Reconcile(gomock.Any()).Return(int64(0), errors.New("connection refused"))
	assert.Error(t, j.Reconcile(context.Background()))
}

func TestJobs_Snapshot(t *testing.T) {
	j, f := newJobs(t, &config.Config{})

	for _, kind := range reportModel.Kinds {
		call := f.report.EXPECT().Snapshot(gomock.Any(), kind, gomock.Any(), gomock.Any(), constant.ContextSystem)
		if kind == reportModel.KindHotels {
			call.Return(dto.SnapshotResponse{}, errors.New("connection refused"))
		} else {
			call.Return(dto.SnapshotResponse{ID: kind}, nil)
		}
	}

	err := j.Snapshot(context.Background())

	assert.ErrorContains(t, err, "snapshot hotels")
}
