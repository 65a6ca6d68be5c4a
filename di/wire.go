//go:build wireinject
// +build wireinject

package di

import (
	"hotelbook/config"
	"hotelbook/infras/cron"
	"hotelbook/infras/jwt"
	"hotelbook/infras/kafka"
	"hotelbook/infras/otel"
	"hotelbook/infras/postgres"
	"hotelbook/infras/rabbitmq"
	"hotelbook/infras/redis"
	"hotelbook/infras/s3"
	"hotelbook/internal/jobs"
	"hotelbook/internal/seed"
	"hotelbook/internal/worker"
	"hotelbook/permissions"
	"hotelbook/shared/cache"
	"hotelbook/shared/password"
	"hotelbook/shared/publisher"
	"hotelbook/transport/http"
	"hotelbook/transport/http/middleware"
	"hotelbook/transport/http/router"

	"github.com/google/wire"

	adminRepository "hotelbook/internal/domains/admin/repository"
	amenityRepository "hotelbook/internal/domains/amenity/repository"
	amenityService "hotelbook/internal/domains/amenity/service"
	authService "hotelbook/internal/domains/auth/service"
	bookingRepository "hotelbook/internal/domains/booking/repository"
	bookingService "hotelbook/internal/domains/booking/service"
	hotelRepository "hotelbook/internal/domains/hotel/repository"
	hotelService "hotelbook/internal/domains/hotel/service"
	navigationService "hotelbook/internal/domains/navigation/service"
	reportRepository "hotelbook/internal/domains/report/repository"
	reportService "hotelbook/internal/domains/report/service"
	reviewRepository "hotelbook/internal/domains/review/repository"
	reviewService "hotelbook/internal/domains/review/service"
	roomRepository "hotelbook/internal/domains/room/repository"
	roomService "hotelbook/internal/domains/room/service"
	categoryRepository "hotelbook/internal/domains/roomcategory/repository"
	categoryService "hotelbook/internal/domains/roomcategory/service"
	userRepository "hotelbook/internal/domains/user/repository"
	userService "hotelbook/internal/domains/user/service"

	amenityHandler "hotelbook/internal/handlers/amenity"
	authHandler "hotelbook/internal/handlers/auth"
	bookingHandler "hotelbook/internal/handlers/booking"
	hotelHandler "hotelbook/internal/handlers/hotel"
	navigationHandler "hotelbook/internal/handlers/navigation"
	reportHandler "hotelbook/internal/handlers/report"
	reviewHandler "hotelbook/internal/handlers/review"
	roomHandler "hotelbook/internal/handlers/room"
	userHandler "hotelbook/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	rabbitmq.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	password.New,
	publisher.New,
)

var repositories = wire.NewSet(
	adminRepository.New,
	userRepository.New,
	hotelRepository.New,
	categoryRepository.New,
	roomRepository.New,
	amenityRepository.New,
	bookingRepository.New,
	reviewRepository.New,
	reportRepository.New,
)

var domains = wire.NewSet(
	authService.New,
	navigationService.New,
	userService.New,
	hotelService.New,
	categoryService.New,
	roomService.New,
	amenityService.New,
	bookingService.New,
	reviewService.New,
	reportService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	navigationHandler.New,
	userHandler.New,
	hotelHandler.New,
	roomHandler.New,
	amenityHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	reportHandler.New,
	router.New,
)

var background = wire.NewSet(
	cron.New,
	jobs.New,
	seed.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		background,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

func InitializeWorker() *worker.Worker {
	wire.Build(
		configurations,
		otel.New,
		redis.New,
		kafka.New,
		rabbitmq.New,
		cache.NewRedisCache,
		worker.New,
	)

	return &worker.Worker{}
}
