package repository

import (
	"context"

	"github.com/tidespring/breeze/internal/domain/model"
)

// UserRepository describes persistence operations for users. Create returns
// domain ErrAlreadyExists when the email is taken; the uniqueness check is
// part of the write, not a separate read.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
