package impl

import (
	"context"
	"errors"
	"fmt"

	"pokeradar/internal/domain/entity"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/usecase"
)

var (
	// ErrNoSpeciesGiven is returned when a filter request names no species
	ErrNoSpeciesGiven = errors.New("at least one species name is required")
)

type subscriptionService struct {
	userRepo    repository.UserRepository
	speciesRepo repository.SpeciesRepository
	filterRepo  repository.FilterRepository
	txManager   repository.TransactionManager
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(
	userRepo repository.UserRepository,
	speciesRepo repository.SpeciesRepository,
	filterRepo repository.FilterRepository,
	txManager repository.TransactionManager,
) usecase.SubscriptionUsecase {
	return &subscriptionService{
		userRepo:    userRepo,
		speciesRepo: speciesRepo,
		filterRepo:  filterRepo,
		txManager:   txManager,
	}
}

// AddFilters subscribes a user to every named species in one transaction.
// An unknown name or a duplicate rolls back the whole batch.
func (s *subscriptionService) AddFilters(ctx context.Context, chatID string, speciesNames []string) ([]*entity.Species, error) {
	if len(speciesNames) == 0 {
		return nil, ErrNoSpeciesGiven
	}

	user, err := s.userRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	var added []*entity.Species

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		speciesRepo := repoFactory.NewSpeciesRepository()
		filterRepo := repoFactory.NewFilterRepository()

		for _, name := range speciesNames {
			species, err := speciesRepo.FindByName(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to resolve species %q: %w", name, err)
			}

			if err := filterRepo.Add(ctx, user.ID, species.ID); err != nil {
				return fmt.Errorf("failed to add filter for %q: %w", name, err)
			}

			added = append(added, species)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

// RemoveFilter unsubscribes a user from one species by name.
func (s *subscriptionService) RemoveFilter(ctx context.Context, chatID string, speciesName string) error {
	user, err := s.userRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	species, err := s.speciesRepo.FindByName(ctx, speciesName)
	if err != nil {
		return fmt.Errorf("failed to resolve species %q: %w", speciesName, err)
	}

	if err := s.filterRepo.Remove(ctx, user.ID, species.ID); err != nil {
		return fmt.Errorf("failed to remove filter: %w", err)
	}

	return nil
}

// ListFilters retrieves the species a user is subscribed to.
func (s *subscriptionService) ListFilters(ctx context.Context, chatID string) ([]*entity.Species, error) {
	user, err := s.userRepo.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	species, err := s.filterRepo.ListSpecies(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list filters: %w", err)
	}

	return species, nil
}
