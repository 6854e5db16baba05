package di

import (
	"go.uber.org/fx"

	"github.com/tidespring/breeze/internal/adapter/openweather"
	"github.com/tidespring/breeze/internal/app"
	"github.com/tidespring/breeze/internal/config"
	"github.com/tidespring/breeze/internal/logger"
	"github.com/tidespring/breeze/internal/pkg/auth"
	"github.com/tidespring/breeze/internal/server/http/handlers"
	"github.com/tidespring/breeze/internal/server/http/router"
	"github.com/tidespring/breeze/internal/storage/postgres"
	"github.com/tidespring/breeze/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		openweather.Module,
		fx.Provide(func(client openweather.Client) usecase.WeatherProvider { return client }),
		usecase.Module,
		fx.Provide(
			func(f *app.BreezeFacade) handlers.BreezeFacade { return f },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
