package usecase

import (
	"context"

	"pokeradar/internal/domain/entity"
)

// RegisterUserInput represents the input for registering or refreshing a user.
type RegisterUserInput struct {
	ChatID    string `json:"chat_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// AccountUsecase defines the interface for user account management use cases.
type AccountUsecase interface {
	// Register creates a user on first contact or refreshes the stored
	// profile fields of an existing one, keyed by chat id.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Get retrieves a user by chat id.
	Get(ctx context.Context, chatID string) (*entity.User, error)

	// UpdatePosition appends a new position for the user.
	UpdatePosition(ctx context.Context, chatID string, latitude, longitude float64) error

	// SetRadius changes the user's notification radius in meters.
	SetRadius(ctx context.Context, chatID string, radiusMeters float64) error
}
