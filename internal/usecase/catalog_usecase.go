package usecase

import (
	"context"

	"pokeradar/internal/domain/entity"
)

// SaveSpeciesInput represents the input for adding or updating a catalog entry.
type SaveSpeciesInput struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	InternalName string `json:"internal_name"`
	Rarity       int    `json:"rarity"`
}

// CatalogUsecase defines the interface for the species reference catalog.
type CatalogUsecase interface {
	// ListSpecies retrieves the full catalog ordered by id.
	ListSpecies(ctx context.Context) ([]*entity.Species, error)

	// SaveSpecies upserts one catalog entry.
	SaveSpecies(ctx context.Context, input *SaveSpeciesInput) (*entity.Species, error)
}
