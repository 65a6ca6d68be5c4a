package di

import (
	"hotelbook/internal/jobs"
	"hotelbook/internal/seed"
	"hotelbook/transport/http"
)

// App is everything cmd/app runs: the HTTP server, the startup seeder and the scheduled jobs.
type App struct {
	HTTP   *http.HTTP
	Seeder *seed.Seeder
	Jobs   *jobs.Jobs
}
