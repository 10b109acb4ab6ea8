package service

import (
	"context"
)

// SpawnAlertEvent mirrors a dispatched alert for downstream consumers
// (analytics, audit). Publishing is fire-and-forget from the engine's
// perspective.
type SpawnAlertEvent struct {
	RequestID        string  `json:"request_id,omitempty"` // For distributed tracing
	EncounterID      string  `json:"encounter_id"`
	ChatID           string  `json:"chat_id"`
	SpeciesName      string  `json:"species_name"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	DistanceMeters   float64 `json:"distance_meters"`
	SecondsRemaining int64   `json:"seconds_remaining"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishSpawnAlert publishes a dispatched alert for async consumers.
	PublishSpawnAlert(ctx context.Context, event *SpawnAlertEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
