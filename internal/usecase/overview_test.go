package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tidespring/breeze/internal/domain/model"
	"github.com/tidespring/breeze/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func storedCities(names ...string) test.CityRepositoryStub {
	cities := make([]model.City, 0, len(names))
	for _, name := range names {
		cities = append(cities, model.City{ID: uuid.New(), OwnerID: 1, Name: name})
	}
	return test.CityRepositoryStub{
		ListByOwnerFn: func(context.Context, int64) ([]model.City, error) {
			return cities, nil
		},
	}
}

func TestOverviewPreservesOrder(t *testing.T) {
	weather := test.WeatherProviderStub{
		FetchFn: func(_ context.Context, name, _ string) (*model.WeatherSnapshot, error) {
			// Reverse sleep order to make goroutine completion order
			// differ from listing order.
			if name == "Paris" {
				time.Sleep(30 * time.Millisecond)
			}
			return &model.WeatherSnapshot{Description: name}, nil
		},
	}

	uc := NewOverviewUseCase(storedCities("Paris", "Oslo", "Lima"), weather, time.Second, 4, discardLogger())
	overview, err := uc.Overview(context.Background(), 1)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if len(overview.Cities) != 3 {
		t.Fatalf("expected 3 cities, got %d", len(overview.Cities))
	}
	for i, want := range []string{"Paris", "Oslo", "Lima"} {
		if overview.Cities[i].City.Name != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, overview.Cities[i].City.Name)
		}
		if overview.Cities[i].Snapshot == nil || overview.Cities[i].Snapshot.Description != want {
			t.Fatalf("position %d: snapshot does not match city", i)
		}
	}
}

func TestOverviewDegradesFailedBranches(t *testing.T) {
	weather := test.WeatherProviderStub{
		FetchFn: func(_ context.Context, name, _ string) (*model.WeatherSnapshot, error) {
			if name == "Oslo" {
				return nil, errors.New("provider down")
			}
			return &model.WeatherSnapshot{Temperature: 20}, nil
		},
	}

	uc := NewOverviewUseCase(storedCities("Paris", "Oslo", "Lima"), weather, time.Second, 2, discardLogger())
	overview, err := uc.Overview(context.Background(), 1)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if overview.Cities[0].Snapshot == nil || overview.Cities[2].Snapshot == nil {
		t.Fatal("healthy branches must keep their snapshots")
	}
	if overview.Cities[1].Snapshot != nil {
		t.Fatal("failed branch must degrade to nil snapshot")
	}
}

func TestOverviewPartitionsFavorites(t *testing.T) {
	cities := []model.City{
		{ID: uuid.New(), OwnerID: 1, Name: "Paris", Favorite: true},
		{ID: uuid.New(), OwnerID: 1, Name: "Oslo"},
		{ID: uuid.New(), OwnerID: 1, Name: "Lima", Favorite: true},
	}
	repo := test.CityRepositoryStub{
		ListByOwnerFn: func(context.Context, int64) ([]model.City, error) {
			return cities, nil
		},
	}

	uc := NewOverviewUseCase(repo, test.WeatherProviderStub{}, time.Second, 2, discardLogger())
	overview, err := uc.Overview(context.Background(), 1)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if len(overview.Cities) != 3 {
		t.Fatalf("expected full list of 3, got %d", len(overview.Cities))
	}
	if len(overview.Favorites) != 2 {
		t.Fatalf("expected 2 favorites, got %d", len(overview.Favorites))
	}
	if overview.Favorites[0].City.Name != "Paris" || overview.Favorites[1].City.Name != "Lima" {
		t.Fatalf("favorites out of order: %q, %q", overview.Favorites[0].City.Name, overview.Favorites[1].City.Name)
	}
}

func TestOverviewEmptyList(t *testing.T) {
	uc := NewOverviewUseCase(test.CityRepositoryStub{}, test.WeatherProviderStub{}, time.Second, 2, discardLogger())
	overview, err := uc.Overview(context.Background(), 1)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.Cities) != 0 || len(overview.Favorites) != 0 {
		t.Fatalf("expected empty overview, got %+v", overview)
	}
}

func TestOverviewPropagatesListError(t *testing.T) {
	listErr := errors.New("connection lost")
	repo := test.CityRepositoryStub{
		ListByOwnerFn: func(context.Context, int64) ([]model.City, error) {
			return nil, listErr
		},
	}

	uc := NewOverviewUseCase(repo, test.WeatherProviderStub{}, time.Second, 2, discardLogger())
	if _, err := uc.Overview(context.Background(), 1); !errors.Is(err, listErr) {
		t.Fatalf("expected list error, got %v", err)
	}
}

func TestOverviewBoundsConcurrency(t *testing.T) {
	const limit = 2

	var mu sync.Mutex
	inFlight, peak := 0, 0
	weather := test.WeatherProviderStub{
		FetchFn: func(context.Context, string, string) (*model.WeatherSnapshot, error) {
			mu.Lock()
			inFlight++
			if inFlight > peak {
				peak = inFlight
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			inFlight--
			mu.Unlock()
			return &model.WeatherSnapshot{}, nil
		},
	}

	uc := NewOverviewUseCase(storedCities("A", "B", "C", "D", "E", "F"), weather, time.Second, limit, discardLogger())
	if _, err := uc.Overview(context.Background(), 1); err != nil {
		t.Fatalf("overview: %v", err)
	}

	if peak > limit {
		t.Fatalf("expected at most %d concurrent fetches, saw %d", limit, peak)
	}
}

func TestOverviewTimeoutDegrades(t *testing.T) {
	weather := test.WeatherProviderStub{
		FetchFn: func(ctx context.Context, _, _ string) (*model.WeatherSnapshot, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}

	uc := NewOverviewUseCase(storedCities("Paris"), weather, 20*time.Millisecond, 1, discardLogger())
	overview, err := uc.Overview(context.Background(), 1)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.Cities[0].Snapshot != nil {
		t.Fatal("timed out branch must degrade to nil snapshot")
	}
}

func TestNewOverviewUseCaseDefaults(t *testing.T) {
	uc := NewOverviewUseCase(test.CityRepositoryStub{}, test.WeatherProviderStub{}, 0, 0, discardLogger())
	if uc.timeout <= 0 {
		t.Fatal("expected positive default timeout")
	}
	if uc.concurrency < 1 {
		t.Fatal("expected concurrency of at least 1")
	}
}
