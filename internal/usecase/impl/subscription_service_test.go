package impl

import (
	"context"
	"testing"

	"pokeradar/internal/domain/entity"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionFixture(t *testing.T) (*entity.User, *fakeFilterRepo, usecase.SubscriptionUsecase) {
	t.Helper()

	userRepo := newFakeUserRepo()
	speciesRepo := newFakeSpeciesRepo(
		&entity.Species{ID: 16, Name: "Pidgey", InternalName: "pidgey", Rarity: 1},
		&entity.Species{ID: 149, Name: "Dragonite", InternalName: "dragonite", Rarity: 5},
	)
	filterRepo := newFakeFilterRepo(speciesRepo)
	txManager := &fakeTxManager{
		userRepo:     userRepo,
		positionRepo: newFakePositionRepo(),
		speciesRepo:  speciesRepo,
		filterRepo:   filterRepo,
	}

	user := &entity.User{ChatID: "12345", RadiusMeters: 1000}
	require.NoError(t, userRepo.Save(context.Background(), user))

	return user, filterRepo, NewSubscriptionService(userRepo, speciesRepo, filterRepo, txManager)
}

func TestSubscriptionService_AddFilters(t *testing.T) {
	_, _, service := newSubscriptionFixture(t)
	ctx := context.Background()

	added, err := service.AddFilters(ctx, "12345", []string{"pidgey", "Dragonite"})
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.Equal(t, 16, added[0].ID)
	assert.Equal(t, 149, added[1].ID)

	listed, err := service.ListFilters(ctx, "12345")
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestSubscriptionService_AddFiltersUnknownNameRollsBack(t *testing.T) {
	_, _, service := newSubscriptionFixture(t)
	ctx := context.Background()

	_, err := service.AddFilters(ctx, "12345", []string{"pidgey", "missingno"})
	require.ErrorIs(t, err, repository.ErrSpeciesNotFound)

	// The known name before the unknown one must not have been kept.
	listed, err := service.ListFilters(ctx, "12345")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestSubscriptionService_AddFiltersDuplicate(t *testing.T) {
	_, _, service := newSubscriptionFixture(t)
	ctx := context.Background()

	_, err := service.AddFilters(ctx, "12345", []string{"pidgey"})
	require.NoError(t, err)

	_, err = service.AddFilters(ctx, "12345", []string{"pidgey"})
	assert.ErrorIs(t, err, repository.ErrDuplicateFilter)
}

func TestSubscriptionService_AddFiltersRequiresNames(t *testing.T) {
	_, _, service := newSubscriptionFixture(t)

	_, err := service.AddFilters(context.Background(), "12345", nil)
	assert.ErrorIs(t, err, ErrNoSpeciesGiven)
}

func TestSubscriptionService_RemoveFilter(t *testing.T) {
	_, _, service := newSubscriptionFixture(t)
	ctx := context.Background()

	_, err := service.AddFilters(ctx, "12345", []string{"pidgey"})
	require.NoError(t, err)

	require.NoError(t, service.RemoveFilter(ctx, "12345", "pidgey"))

	listed, err := service.ListFilters(ctx, "12345")
	require.NoError(t, err)
	assert.Empty(t, listed)

	// Removing an absent filter stays a no-op.
	assert.NoError(t, service.RemoveFilter(ctx, "12345", "pidgey"))
}

func TestSubscriptionService_UnknownUser(t *testing.T) {
	_, _, service := newSubscriptionFixture(t)

	_, err := service.AddFilters(context.Background(), "ghost", []string{"pidgey"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
