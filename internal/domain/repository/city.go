package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/tidespring/breeze/internal/domain/model"
)

// CityRepository describes persistence operations for tracked cities. Every
// method is scoped by the owner: a city that exists under another owner is
// indistinguishable from one that does not exist.
type CityRepository interface {
	Create(ctx context.Context, ownerID int64, name, country string) (*model.City, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.City, error)
	ToggleFavorite(ctx context.Context, ownerID int64, cityID uuid.UUID) (*model.City, error)
	Delete(ctx context.Context, ownerID int64, cityID uuid.UUID) error
}
