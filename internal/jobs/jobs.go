// Package jobs holds the housekeeping work the app schedules next to the HTTP server.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"hotelbook/config"
	"hotelbook/infras/cron"
	bookingService "hotelbook/internal/domains/booking/service"
	reportModel "hotelbook/internal/domains/report/model"
	"hotelbook/internal/domains/report/model/dto"
	reportService "hotelbook/internal/domains/report/service"
	"hotelbook/shared/constant"
	"hotelbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	JobReconcile = "availability.reconcile"
	JobSnapshot  = "report.snapshot"
)

type Jobs struct {
	cfg       *config.Config
	scheduler cron.Scheduler
	booking   bookingService.Booking
	report    reportService.Report
}

func New(cfg *config.Config, scheduler cron.Scheduler, booking bookingService.Booking, report reportService.Report) *Jobs {
	return &Jobs{
		cfg:       cfg,
		scheduler: scheduler,
		booking:   booking,
		report:    report,
	}
}

// Start registers every job and starts the scheduler. It does nothing when cron is disabled.
func (j *Jobs) Start() error {
	if !j.cfg.Cron.Enable {
		log.Info().Msg("Cron is disabled")

		return nil
	}

	if err := j.scheduler.Register(JobReconcile, j.cfg.Cron.ReconcileSchedule, j.Reconcile); err != nil {
		return err //nolint:wrapcheck
	}

	if err := j.scheduler.Register(JobSnapshot, j.cfg.Cron.SnapshotSchedule, j.Snapshot); err != nil {
		return err //nolint:wrapcheck
	}

	j.scheduler.Start()

	return nil
}

func (j *Jobs) Stop() {
	if !j.cfg.Cron.Enable {
		return
	}

	<-j.scheduler.Stop().Done()
	log.Info().Msg("Cron stopped")
}

// Reconcile repairs rooms whose availability disagrees with their active bookings.
func (j *Jobs) Reconcile(ctx context.Context) error {
	fixed, err := j.booking.Reconcile(ctx)
	if err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	log.Info().Int64("rooms", fixed).Msg("availability reconciled")

	return nil
}

// Snapshot records every report kind over the trailing period, attributed to the system actor.
func (j *Jobs) Snapshot(ctx context.Context) error {
	from, to, err := dto.ParsePeriod("", "", timezone.Now(), j.cfg.Report.TrailingMonths)
	if err != nil {
		return fmt.Errorf("snapshot period: %w", err)
	}

	var errs []error

	for _, kind := range reportModel.Kinds {
		if _, err := j.report.Snapshot(ctx, kind, from, to, constant.ContextSystem); err != nil {
			errs = append(errs, fmt.Errorf("snapshot %s: %w", kind, err))
		}
	}

	return errors.Join(errs...)
}
