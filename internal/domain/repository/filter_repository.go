package repository

import (
	"context"
	"errors"

	"pokeradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateFilter is returned when the (user, species) pair already exists.
var ErrDuplicateFilter = errors.New("filter already exists")

// FilterRepository defines operations over user species subscriptions.
type FilterRepository interface {
	// Add inserts the (user, species) pair, returning ErrDuplicateFilter if
	// it is already present.
	Add(ctx context.Context, userID uuid.UUID, speciesID int) error

	// Remove deletes the (user, species) pair. Removing an absent pair is
	// not an error.
	Remove(ctx context.Context, userID uuid.UUID, speciesID int) error

	// ListSpecies retrieves the species a user is subscribed to, joined
	// against the catalog. The result is fully materialized.
	ListSpecies(ctx context.Context, userID uuid.UUID) ([]*entity.Species, error)
}
