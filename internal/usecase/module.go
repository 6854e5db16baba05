package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tidespring/breeze/internal/config"
	"github.com/tidespring/breeze/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewCityUseCase,
	newOverviewUseCase,
)

type overviewParams struct {
	fx.In

	Cities  repository.CityRepository
	Weather WeatherProvider
	Config  *config.Config
	Logger  *slog.Logger
}

func newOverviewUseCase(p overviewParams) *OverviewUseCase {
	return NewOverviewUseCase(p.Cities, p.Weather, p.Config.WeatherTimeout, p.Config.FetchConcurrency, p.Logger)
}
