//go:build wireinject
// +build wireinject

package di

import (
	"roomres/config"
	"roomres/infras/otel"
	"roomres/infras/postgres"
	"roomres/infras/redis"
	reservationHandler "roomres/internal/handlers/reservation"
	"roomres/shared/cache"
	"roomres/transport/http"
	"roomres/transport/http/middleware"
	"roomres/transport/http/router"

	reservationRepository "roomres/internal/domains/reservation/repository"
	reservationService "roomres/internal/domains/reservation/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reservationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		reservationDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
