package impl

import (
	"context"
	"testing"

	"pokeradar/internal/domain/entity"
	"pokeradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_SaveAndList(t *testing.T) {
	speciesRepo := newFakeSpeciesRepo()
	service := NewCatalogService(speciesRepo)
	ctx := context.Background()

	saved, err := service.SaveSpecies(ctx, &usecase.SaveSpeciesInput{
		ID:           16,
		Name:         "Pidgey",
		InternalName: "pidgey",
		Rarity:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, 16, saved.ID)

	// Saving the same id again updates in place.
	_, err = service.SaveSpecies(ctx, &usecase.SaveSpeciesInput{
		ID:           16,
		Name:         "Pidgey",
		InternalName: "pidgey",
		Rarity:       2,
	})
	require.NoError(t, err)

	catalog, err := service.ListSpecies(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	assert.Equal(t, 2, catalog[0].Rarity)
}

func TestCatalogService_SaveValidation(t *testing.T) {
	service := NewCatalogService(newFakeSpeciesRepo())
	ctx := context.Background()

	_, err := service.SaveSpecies(ctx, &usecase.SaveSpeciesInput{ID: 0, Name: "X", InternalName: "x"})
	assert.ErrorIs(t, err, ErrInvalidSpecies)

	_, err = service.SaveSpecies(ctx, &usecase.SaveSpeciesInput{ID: 1, Name: " ", InternalName: "x"})
	assert.ErrorIs(t, err, ErrInvalidSpecies)
}

func TestCatalogService_ListEmpty(t *testing.T) {
	service := NewCatalogService(newFakeSpeciesRepo())

	catalog, err := service.ListSpecies(context.Background())
	require.NoError(t, err)
	assert.Empty(t, catalog)
}

func TestCatalogService_ListOrderedByID(t *testing.T) {
	speciesRepo := newFakeSpeciesRepo(
		&entity.Species{ID: 149, Name: "Dragonite", InternalName: "dragonite", Rarity: 5},
		&entity.Species{ID: 16, Name: "Pidgey", InternalName: "pidgey", Rarity: 1},
	)
	service := NewCatalogService(speciesRepo)

	catalog, err := service.ListSpecies(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, 16, catalog[0].ID)
	assert.Equal(t, 149, catalog[1].ID)
}
