package openweather

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/tidespring/breeze/internal/config"
)

// Module exposes weather client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.WeatherAPIURL, p.Config.WeatherAPIKey, p.Logger)
}
