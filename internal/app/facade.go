package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/tidespring/breeze/internal/domain/model"
	"github.com/tidespring/breeze/internal/usecase"
)

// BreezeFacade composes the use cases behind the HTTP surface.
type BreezeFacade struct {
	auth     *usecase.AuthUseCase
	cities   *usecase.CityUseCase
	overview *usecase.OverviewUseCase
}

// NewBreezeFacade constructs BreezeFacade.
func NewBreezeFacade(auth *usecase.AuthUseCase, cities *usecase.CityUseCase, overview *usecase.OverviewUseCase) *BreezeFacade {
	return &BreezeFacade{auth: auth, cities: cities, overview: overview}
}

func (f *BreezeFacade) Register(ctx context.Context, name, email, password string) (int64, string, error) {
	usr, token, err := f.auth.Register(ctx, name, email, password)
	if err != nil {
		return 0, "", err
	}
	return usr.ID, token, nil
}

func (f *BreezeFacade) Authenticate(ctx context.Context, email, password string) (int64, string, error) {
	usr, token, err := f.auth.Authenticate(ctx, email, password)
	if err != nil {
		return 0, "", err
	}
	return usr.ID, token, nil
}

func (f *BreezeFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *BreezeFacade) AddCity(ctx context.Context, ownerID int64, name, country string) (*model.City, error) {
	return f.cities.Add(ctx, ownerID, name, country)
}

func (f *BreezeFacade) Overview(ctx context.Context, ownerID int64) (*model.CityOverview, error) {
	return f.overview.Overview(ctx, ownerID)
}

func (f *BreezeFacade) ToggleFavorite(ctx context.Context, ownerID int64, cityID uuid.UUID) (*model.City, error) {
	return f.cities.ToggleFavorite(ctx, ownerID, cityID)
}

func (f *BreezeFacade) RemoveCity(ctx context.Context, ownerID int64, cityID uuid.UUID) error {
	return f.cities.Remove(ctx, ownerID, cityID)
}
