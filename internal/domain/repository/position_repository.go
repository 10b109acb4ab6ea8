package repository

import (
	"context"
	"errors"

	"pokeradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPositionNotFound is returned when a user has no recorded position yet.
var ErrPositionNotFound = errors.New("position not found")

// PositionRepository defines operations over the append-only position log.
type PositionRepository interface {
	// Record appends a new position for a user. Earlier rows are kept.
	Record(ctx context.Context, position *entity.Position) error

	// FindLatest retrieves the most recently recorded position of a user,
	// or ErrPositionNotFound if none exists.
	FindLatest(ctx context.Context, userID uuid.UUID) (*entity.Position, error)
}
