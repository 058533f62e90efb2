//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"classbook/config"
	"classbook/infras/jwt"
	"classbook/infras/kafka"
	"classbook/infras/mailer"
	"classbook/infras/otel"
	"classbook/infras/postgres"
	"classbook/infras/redis"
	"classbook/infras/s3"
	"classbook/permissions"
	"classbook/shared/cache"
	"classbook/transport/http"
	"classbook/transport/http/middleware"
	"classbook/transport/http/router"

	authService "classbook/internal/domains/auth/service"
	availabilityService "classbook/internal/domains/availability/service"
	bookingRepository "classbook/internal/domains/booking/repository"
	bookingService "classbook/internal/domains/booking/service"
	roomRepository "classbook/internal/domains/room/repository"
	roomService "classbook/internal/domains/room/service"
	timetableService "classbook/internal/domains/timetable/service"
	userRepository "classbook/internal/domains/user/repository"
	userService "classbook/internal/domains/user/service"

	approvalHandler "classbook/internal/handlers/approval"
	authHandler "classbook/internal/handlers/auth"
	availabilityHandler "classbook/internal/handlers/availability"
	bookingHandler "classbook/internal/handlers/booking"
	roomHandler "classbook/internal/handlers/room"
	timetableHandler "classbook/internal/handlers/timetable"
	userHandler "classbook/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	availabilityService.New,
	timetableService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var identityDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	roomDomain,
	identityDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	availabilityHandler.New,
	approvalHandler.New,
	timetableHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
