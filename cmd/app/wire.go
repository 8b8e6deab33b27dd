//go:build wireinject
// +build wireinject

package main

import (
	"winback/config"
	"winback/internal/command"
	"winback/internal/cron"
	"winback/internal/database"
	"winback/internal/handler"
	"winback/internal/middleware"
	"winback/internal/router"
	"winback/internal/service"
	"winback/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			command.ProviderSet,
			database.ProviderSet,
			telemetry.ProviderSet,
		),
	)
}
