package repository

import (
	"context"
	"errors"

	"pokeradar/internal/domain/entity"
)

// ErrSpeciesNotFound is returned when no catalog entry matches a lookup.
var ErrSpeciesNotFound = errors.New("species not found")

// SpeciesRepository defines operations over the static species catalog.
type SpeciesRepository interface {
	// Save upserts a catalog entry keyed by id.
	Save(ctx context.Context, species *entity.Species) error

	// All retrieves the full catalog ordered by id.
	All(ctx context.Context) ([]*entity.Species, error)

	// FindByName retrieves a catalog entry whose internal or display name
	// matches the given name, or ErrSpeciesNotFound.
	FindByName(ctx context.Context, name string) (*entity.Species, error)
}
