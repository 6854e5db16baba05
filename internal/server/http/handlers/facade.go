package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/tidespring/breeze/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (int64, string, error)
	Authenticate(ctx context.Context, email, password string) (int64, string, error)
	ParseToken(token string) (int64, error)
}

// CityFacade encapsulates city operations exposed via HTTP.
type CityFacade interface {
	AddCity(ctx context.Context, ownerID int64, name, country string) (*model.City, error)
	Overview(ctx context.Context, ownerID int64) (*model.CityOverview, error)
	ToggleFavorite(ctx context.Context, ownerID int64, cityID uuid.UUID) (*model.City, error)
	RemoveCity(ctx context.Context, ownerID int64, cityID uuid.UUID) error
}

// BreezeFacade aggregates the full set of operations used across handlers.
type BreezeFacade interface {
	AuthFacade
	CityFacade
}

// HealthChecker reports readiness of the persistence layer.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
