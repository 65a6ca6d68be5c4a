package main

import (
	"context"
	"hotelbook/config"
	"hotelbook/di"
	"hotelbook/helper"
	"hotelbook/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	logFile := logger.SetLogFile(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeApp()

	if err := app.Seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	if err := app.Jobs.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start cron jobs")
	}

	app.HTTP.OnShutdown(app.Jobs.Stop)

	if logFile != nil {
		app.HTTP.OnShutdown(func() { _ = logFile.Close() })
	}

	app.HTTP.Serve()
}
