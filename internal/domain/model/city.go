package model

import (
	"time"

	"github.com/google/uuid"
)

// City is a tracked city owned by exactly one user. The (OwnerID, Name)
// pair is unique.
type City struct {
	ID       uuid.UUID
	OwnerID  int64
	Name     string
	Country  string
	Favorite bool
	AddedAt  time.Time
}
