//go:build wireinject
// +build wireinject

package di

import (
	"servicehub/config"
	"servicehub/infras/gateway"
	"servicehub/infras/jwt"
	"servicehub/infras/kafka"
	"servicehub/infras/otel"
	"servicehub/infras/postgres"
	"servicehub/infras/redis"
	"servicehub/permissions"
	"servicehub/shared/cache"
	"servicehub/shared/event"
	"servicehub/transport/http"
	"servicehub/transport/http/middleware"
	"servicehub/transport/http/router"

	"github.com/google/wire"

	authService "servicehub/internal/domains/auth/service"
	bookingRepository "servicehub/internal/domains/booking/repository"
	bookingService "servicehub/internal/domains/booking/service"
	completionService "servicehub/internal/domains/completion/service"
	paymentRepository "servicehub/internal/domains/payment/repository"
	paymentService "servicehub/internal/domains/payment/service"
	providerRepository "servicehub/internal/domains/provider/repository"
	providerService "servicehub/internal/domains/provider/service"
	userRepository "servicehub/internal/domains/user/repository"
	userService "servicehub/internal/domains/user/service"

	authHandler "servicehub/internal/handlers/auth"
	bookingHandler "servicehub/internal/handlers/booking"
	completionHandler "servicehub/internal/handlers/completion"
	healthHandler "servicehub/internal/handlers/health"
	paymentHandler "servicehub/internal/handlers/payment"
	providerHandler "servicehub/internal/handlers/provider"
	userHandler "servicehub/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	gateway.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.NewPublisher,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var providerDomain = wire.NewSet(
	providerRepository.New,
	providerService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var completionDomain = wire.NewSet(
	completionService.New,
)

var domains = wire.NewSet(
	userDomain,
	providerDomain,
	authDomain,
	bookingDomain,
	paymentDomain,
	completionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	providerHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	completionHandler.New,
	healthHandler.New,
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
