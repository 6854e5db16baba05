package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/tidespring/breeze/internal/domain/errors"
	"github.com/tidespring/breeze/internal/domain/model"
	"github.com/tidespring/breeze/internal/domain/repository"
)

// CityUseCase encapsulates tracked-city lifecycle logic. Every operation is
// scoped by the owner derived from the verified token; no other owner
// identifier is ever accepted.
type CityUseCase struct {
	cities repository.CityRepository
}

// NewCityUseCase constructs CityUseCase.
func NewCityUseCase(cities repository.CityRepository) *CityUseCase {
	return &CityUseCase{cities: cities}
}

// Add registers a new city for the owner.
func (u *CityUseCase) Add(ctx context.Context, ownerID int64, name, country string) (*model.City, error) {
	name = strings.TrimSpace(name)
	if !ValidateCityName(name) {
		return nil, domainErrors.ErrInvalidCityName
	}

	return u.cities.Create(ctx, ownerID, name, strings.TrimSpace(country))
}

// ListByOwner returns the owner's cities, most recently added first.
func (u *CityUseCase) ListByOwner(ctx context.Context, ownerID int64) ([]model.City, error) {
	return u.cities.ListByOwner(ctx, ownerID)
}

// ToggleFavorite flips the favorite flag on the owner's city.
func (u *CityUseCase) ToggleFavorite(ctx context.Context, ownerID int64, cityID uuid.UUID) (*model.City, error) {
	return u.cities.ToggleFavorite(ctx, ownerID, cityID)
}

// Remove deletes the owner's city.
func (u *CityUseCase) Remove(ctx context.Context, ownerID int64, cityID uuid.UUID) error {
	return u.cities.Delete(ctx, ownerID, cityID)
}
