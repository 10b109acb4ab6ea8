package usecase

import (
	"context"
	"time"
)

// SpawnEvent represents one raw spawn report from an upstream feed.
type SpawnEvent struct {
	EncounterID  string    `json:"encounter_id"`
	ExpiresAt    time.Time `json:"expires_at"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	SpeciesName  string    `json:"species_name"`
	SpawnPointID string    `json:"spawn_point_id"`
}

// SpawnIngestUsecase defines the interface for feeding spawn events into the engine.
type SpawnIngestUsecase interface {
	// Register validates and persists a spawn event. Registering the same
	// encounter id again refreshes the stored row instead of duplicating it.
	Register(ctx context.Context, event *SpawnEvent) error
}
