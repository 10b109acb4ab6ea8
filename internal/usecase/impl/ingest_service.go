// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"pokeradar/internal/domain/entity"
	"pokeradar/internal/domain/repository"
	"pokeradar/internal/usecase"
)

var (
	// ErrInvalidSpawnEvent is returned when a spawn event fails validation
	ErrInvalidSpawnEvent = errors.New("invalid spawn event")
)

type ingestService struct {
	spawnRepo repository.SpawnRepository
	logger    *slog.Logger
}

// NewIngestService creates a new spawn ingest service instance
func NewIngestService(spawnRepo repository.SpawnRepository, logger *slog.Logger) usecase.SpawnIngestUsecase {
	return &ingestService{
		spawnRepo: spawnRepo,
		logger:    logger,
	}
}

// Register validates and persists a spawn event keyed by encounter id.
func (s *ingestService) Register(ctx context.Context, event *usecase.SpawnEvent) error {
	if err := validateSpawnEvent(event); err != nil {
		return err
	}

	spawn := &entity.Spawn{
		EncounterID:  strings.TrimSpace(event.EncounterID),
		ExpiresAt:    event.ExpiresAt,
		Latitude:     event.Latitude,
		Longitude:    event.Longitude,
		SpeciesName:  strings.TrimSpace(event.SpeciesName),
		SpawnPointID: event.SpawnPointID,
	}

	if err := s.spawnRepo.Upsert(ctx, spawn); err != nil {
		return fmt.Errorf("failed to upsert spawn: %w", err)
	}

	s.logger.Debug("spawn registered",
		slog.String("encounter_id", spawn.EncounterID),
		slog.String("species", spawn.SpeciesName),
		slog.Time("expires_at", spawn.ExpiresAt),
	)

	return nil
}

// validateSpawnEvent rejects events the engine could never match. Already
// expired events are accepted; they simply never show up as active.
func validateSpawnEvent(event *usecase.SpawnEvent) error {
	if event == nil {
		return fmt.Errorf("%w: event is nil", ErrInvalidSpawnEvent)
	}
	if strings.TrimSpace(event.EncounterID) == "" {
		return fmt.Errorf("%w: encounter id is required", ErrInvalidSpawnEvent)
	}
	if strings.TrimSpace(event.SpeciesName) == "" {
		return fmt.Errorf("%w: species name is required", ErrInvalidSpawnEvent)
	}
	if event.ExpiresAt.IsZero() {
		return fmt.Errorf("%w: expiration is required", ErrInvalidSpawnEvent)
	}
	if event.Latitude < -90 || event.Latitude > 90 {
		return fmt.Errorf("%w: latitude out of range", ErrInvalidSpawnEvent)
	}
	if event.Longitude < -180 || event.Longitude > 180 {
		return fmt.Errorf("%w: longitude out of range", ErrInvalidSpawnEvent)
	}

	return nil
}
