package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/tidespring/breeze/internal/domain/errors"
	"github.com/tidespring/breeze/internal/domain/model"
	"github.com/tidespring/breeze/internal/domain/repository"
)

const uniqueViolationCode = "23505"

// Pool is the subset of pgxpool.Pool the storage relies on; tests substitute
// a mock implementation.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type cityRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Cities() repository.CityRepository {
	return &cityRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS cities (
            id UUID PRIMARY KEY,
            owner_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            name TEXT NOT NULL,
            country TEXT NOT NULL DEFAULT '',
            favorite BOOLEAN NOT NULL DEFAULT FALSE,
            added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (owner_id, name)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_cities_owner ON cities(owner_id, added_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- CityRepository implementation ---

func (r *cityRepository) Create(ctx context.Context, ownerID int64, name, country string) (*model.City, error) {
	const query = `INSERT INTO cities (id, owner_id, name, country) VALUES ($1, $2, $3, $4)
                   RETURNING favorite, added_at`
	city := model.City{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    name,
		Country: country,
	}
	err := r.storage.pool.QueryRow(ctx, query, city.ID, ownerID, name, country).Scan(&city.Favorite, &city.AddedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.City, error) {
	const query = `SELECT id, owner_id, name, country, favorite, added_at
                   FROM cities WHERE owner_id=$1 ORDER BY added_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.City
	for rows.Next() {
		var c model.City
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Country, &c.Favorite, &c.AddedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cityRepository) ToggleFavorite(ctx context.Context, ownerID int64, cityID uuid.UUID) (*model.City, error) {
	const query = `UPDATE cities SET favorite = NOT favorite
                   WHERE id=$1 AND owner_id=$2
                   RETURNING name, country, favorite, added_at`
	city := model.City{ID: cityID, OwnerID: ownerID}
	err := r.storage.pool.QueryRow(ctx, query, cityID, ownerID).Scan(&city.Name, &city.Country, &city.Favorite, &city.AddedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) Delete(ctx context.Context, ownerID int64, cityID uuid.UUID) error {
	const query = `DELETE FROM cities WHERE id=$1 AND owner_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, cityID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
