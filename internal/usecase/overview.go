package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tidespring/breeze/internal/domain/model"
	"github.com/tidespring/breeze/internal/domain/repository"
)

// WeatherProvider exposes the subset of the weather adapter required by the
// overview aggregation.
type WeatherProvider interface {
	Fetch(ctx context.Context, name, country string) (*model.WeatherSnapshot, error)
}

// OverviewUseCase joins persisted cities with live weather. Fetches fan out
// concurrently with bounded parallelism; a failed branch yields a degraded
// record (nil snapshot) instead of failing the batch.
type OverviewUseCase struct {
	cities      repository.CityRepository
	weather     WeatherProvider
	timeout     time.Duration
	concurrency int
	logger      *slog.Logger
}

// NewOverviewUseCase constructs OverviewUseCase.
func NewOverviewUseCase(cities repository.CityRepository, weather WeatherProvider, timeout time.Duration, concurrency int, logger *slog.Logger) *OverviewUseCase {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	return &OverviewUseCase{
		cities:      cities,
		weather:     weather,
		timeout:     timeout,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Overview returns all of the owner's cities merged with weather, plus the
// ordered favorites subset. Result order matches the store listing order.
func (u *OverviewUseCase) Overview(ctx context.Context, ownerID int64) (*model.CityOverview, error) {
	cities, err := u.cities.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	results := make([]model.CityWeather, len(cities))
	sem := make(chan struct{}, u.concurrency)
	var wg sync.WaitGroup

	for i, city := range cities {
		wg.Add(1)
		go func(i int, city model.City) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = model.CityWeather{City: city, Snapshot: u.fetch(ctx, city)}
		}(i, city)
	}

	wg.Wait()

	overview := &model.CityOverview{
		Favorites: make([]model.CityWeather, 0, len(results)),
		Cities:    results,
	}
	for _, cw := range results {
		if cw.City.Favorite {
			overview.Favorites = append(overview.Favorites, cw)
		}
	}
	return overview, nil
}

// fetch resolves weather for one city. Every failure, including timeout,
// degrades to a nil snapshot.
func (u *OverviewUseCase) fetch(ctx context.Context, city model.City) *model.WeatherSnapshot {
	fetchCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	snapshot, err := u.weather.Fetch(fetchCtx, city.Name, city.Country)
	if err != nil {
		u.logger.Warn("weather fetch degraded",
			slog.String("city", city.Name),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return snapshot
}
