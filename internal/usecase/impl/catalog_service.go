package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pokeradar/internal/domain/entity"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/usecase"
)

var (
	// ErrInvalidSpecies is returned when a catalog entry fails validation
	ErrInvalidSpecies = errors.New("invalid species entry")
)

type catalogService struct {
	speciesRepo repository.SpeciesRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(speciesRepo repository.SpeciesRepository) usecase.CatalogUsecase {
	return &catalogService{
		speciesRepo: speciesRepo,
	}
}

// ListSpecies retrieves the full catalog ordered by id.
func (s *catalogService) ListSpecies(ctx context.Context) ([]*entity.Species, error) {
	catalog, err := s.speciesRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list species: %w", err)
	}

	return catalog, nil
}

// SaveSpecies upserts one catalog entry.
func (s *catalogService) SaveSpecies(ctx context.Context, input *usecase.SaveSpeciesInput) (*entity.Species, error) {
	if input.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidSpecies)
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.InternalName) == "" {
		return nil, fmt.Errorf("%w: name and internal name are required", ErrInvalidSpecies)
	}

	species := &entity.Species{
		ID:           input.ID,
		Name:         strings.TrimSpace(input.Name),
		InternalName: strings.TrimSpace(input.InternalName),
		Rarity:       input.Rarity,
	}

	if err := s.speciesRepo.Save(ctx, species); err != nil {
		return nil, fmt.Errorf("failed to save species: %w", err)
	}

	return species, nil
}
