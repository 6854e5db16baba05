package test

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/tidespring/breeze/internal/domain/errors"
	"github.com/tidespring/breeze/internal/domain/model"
)

// CityFacadeStub provides controllable behaviour for city endpoints.
type CityFacadeStub struct {
	AddCityFn        func(context.Context, int64, string, string) (*model.City, error)
	OverviewFn       func(context.Context, int64) (*model.CityOverview, error)
	ToggleFavoriteFn func(context.Context, int64, uuid.UUID) (*model.City, error)
	RemoveCityFn     func(context.Context, int64, uuid.UUID) error
}

// AddCity delegates to provided function or returns a default city.
func (s CityFacadeStub) AddCity(ctx context.Context, ownerID int64, name, country string) (*model.City, error) {
	if s.AddCityFn != nil {
		return s.AddCityFn(ctx, ownerID, name, country)
	}
	return &model.City{ID: uuid.New(), OwnerID: ownerID, Name: name, Country: country}, nil
}

// Overview returns a predefined aggregation.
func (s CityFacadeStub) Overview(ctx context.Context, ownerID int64) (*model.CityOverview, error) {
	if s.OverviewFn != nil {
		return s.OverviewFn(ctx, ownerID)
	}
	return &model.CityOverview{}, nil
}

// ToggleFavorite delegates to the override or reports not found.
func (s CityFacadeStub) ToggleFavorite(ctx context.Context, ownerID int64, cityID uuid.UUID) (*model.City, error) {
	if s.ToggleFavoriteFn != nil {
		return s.ToggleFavoriteFn(ctx, ownerID, cityID)
	}
	return nil, domainErrors.ErrNotFound
}

// RemoveCity delegates to the override or reports not found.
func (s CityFacadeStub) RemoveCity(ctx context.Context, ownerID int64, cityID uuid.UUID) error {
	if s.RemoveCityFn != nil {
		return s.RemoveCityFn(ctx, ownerID, cityID)
	}
	return domainErrors.ErrNotFound
}

// BreezeFacadeStub aggregates facade dependencies for HTTP layer tests.
type BreezeFacadeStub struct {
	AuthFacadeStub
	CityFacadeStub
}

// WeatherProviderStub fetches weather snapshots for tests.
type WeatherProviderStub struct {
	FetchFn  func(context.Context, string, string) (*model.WeatherSnapshot, error)
	Snapshot *model.WeatherSnapshot
	Err      error
}

// Fetch returns the configured response or a default snapshot.
func (s WeatherProviderStub) Fetch(ctx context.Context, name, country string) (*model.WeatherSnapshot, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, name, country)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Snapshot != nil {
		return s.Snapshot, nil
	}
	return &model.WeatherSnapshot{Temperature: 20, FeelsLike: 19, Humidity: 50, WindSpeed: 3.5, Description: "clear sky"}, nil
}

// HealthCheckerStub reports configurable storage health.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
