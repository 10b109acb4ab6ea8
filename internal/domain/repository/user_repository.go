// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pokeradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Save upserts a user keyed by chat id: an existing row is updated in
	// place, otherwise a new row is inserted. The entity's generated fields
	// are populated on return.
	Save(ctx context.Context, user *entity.User) error

	// FindByChatID retrieves a single user by their chat channel identifier.
	FindByChatID(ctx context.Context, chatID string) (*entity.User, error)

	// All retrieves the full user set. The matching sweep reads this once
	// per tick.
	All(ctx context.Context) ([]*entity.User, error)

	// UpdateRadius sets the notification radius for a user.
	UpdateRadius(ctx context.Context, userID uuid.UUID, radiusMeters float64) error
}
