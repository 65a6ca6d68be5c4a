package cron

//go:generate go run go.uber.org/mock/mockgen -source=./cron.go -destination=./mocks/cron_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelbook/config"
	"hotelbook/shared/timezone"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const defaultJobTimeout = 5 * time.Minute

// Job is one unit of scheduled work. An error is logged and the next tick runs as usual.
type Job func(ctx context.Context) error

type Scheduler interface {
	Register(name, spec string, job Job) error
	Start()
	Stop() context.Context
}

type schedulerImpl struct {
	cron    *cron.Cron
	timeout time.Duration
}

func New(cfg *config.Config) Scheduler {
	location := timezone.GetLocation()
	if cfg.Cron.Timezone != "" {
		if loc, err := time.LoadLocation(cfg.Cron.Timezone); err == nil {
			location = loc
		} else {
			log.Warn().Err(err).Str("timezone", cfg.Cron.Timezone).Msg("invalid cron timezone, using app timezone")
		}
	}

	return &schedulerImpl{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		timeout: defaultJobTimeout,
	}
}

// Register schedules job under spec. An empty spec leaves the job disabled.
func (s *schedulerImpl) Register(name, spec string, job Job) error {
	if spec == "" {
		log.Info().Str("job", name).Msg("cron job disabled, no schedule configured")

		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		started := timezone.Now()

		if err := job(ctx); err != nil {
			log.Error().Err(err).Str("job", name).Msg("cron job failed")

			return
		}

		log.Info().Str("job", name).Dur("took", time.Since(started)).Msg("cron job finished")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s with %q: %w", name, spec, err)
	}

	log.Info().Str("job", name).Str("schedule", spec).Msg("cron job scheduled")

	return nil
}

func (s *schedulerImpl) Start() {
	s.cron.Start()
}

// Stop prevents new runs. The returned context is done once running jobs have finished.
func (s *schedulerImpl) Stop() context.Context {
	return s.cron.Stop()
}
