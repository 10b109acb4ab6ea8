package usecase

import (
	"context"

	"pokeradar/internal/domain/entity"
)

// SubscriptionUsecase defines the interface for species filter management use cases.
type SubscriptionUsecase interface {
	// AddFilters subscribes a user to every named species in one
	// transaction: if any name is unknown, none of them are added.
	AddFilters(ctx context.Context, chatID string, speciesNames []string) ([]*entity.Species, error)

	// RemoveFilter unsubscribes a user from one species by name.
	RemoveFilter(ctx context.Context, chatID string, speciesName string) error

	// ListFilters retrieves the species a user is subscribed to.
	ListFilters(ctx context.Context, chatID string) ([]*entity.Species, error)
}
