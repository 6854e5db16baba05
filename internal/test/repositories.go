package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/tidespring/breeze/internal/domain/errors"
	"github.com/tidespring/breeze/internal/domain/model"
	"github.com/tidespring/breeze/internal/domain/repository"
)

// UserRepositoryStub provides controllable user persistence for tests.
type UserRepositoryStub struct {
	CreateFn     func(context.Context, string, string, string) (*model.User, error)
	GetByEmailFn func(context.Context, string) (*model.User, error)
	GetByIDFn    func(context.Context, int64) (*model.User, error)
}

// Create delegates to the override or returns a default user.
func (s UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, email, passwordHash)
	}
	return &model.User{ID: 1, Name: name, Email: email, PasswordHash: passwordHash, CreatedAt: time.Unix(0, 0)}, nil
}

// GetByEmail delegates to the override or reports not found.
func (s UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.GetByEmailFn != nil {
		return s.GetByEmailFn(ctx, email)
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID delegates to the override or reports not found.
func (s UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

// CityRepositoryStub provides controllable city persistence for tests.
type CityRepositoryStub struct {
	CreateFn         func(context.Context, int64, string, string) (*model.City, error)
	ListByOwnerFn    func(context.Context, int64) ([]model.City, error)
	ToggleFavoriteFn func(context.Context, int64, uuid.UUID) (*model.City, error)
	DeleteFn         func(context.Context, int64, uuid.UUID) error
}

// Create delegates to the override or returns a default city.
func (s CityRepositoryStub) Create(ctx context.Context, ownerID int64, name, country string) (*model.City, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, ownerID, name, country)
	}
	return &model.City{ID: uuid.New(), OwnerID: ownerID, Name: name, Country: country, AddedAt: time.Unix(0, 0)}, nil
}

// ListByOwner delegates to the override or returns an empty list.
func (s CityRepositoryStub) ListByOwner(ctx context.Context, ownerID int64) ([]model.City, error) {
	if s.ListByOwnerFn != nil {
		return s.ListByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

// ToggleFavorite delegates to the override or reports not found.
func (s CityRepositoryStub) ToggleFavorite(ctx context.Context, ownerID int64, cityID uuid.UUID) (*model.City, error) {
	if s.ToggleFavoriteFn != nil {
		return s.ToggleFavoriteFn(ctx, ownerID, cityID)
	}
	return nil, domainErrors.ErrNotFound
}

// Delete delegates to the override or reports not found.
func (s CityRepositoryStub) Delete(ctx context.Context, ownerID int64, cityID uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, ownerID, cityID)
	}
	return domainErrors.ErrNotFound
}

var _ repository.UserRepository = UserRepositoryStub{}
var _ repository.CityRepository = CityRepositoryStub{}
