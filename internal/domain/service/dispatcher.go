// Package service defines contracts for external collaborators of the domain.
package service

import (
	"context"
	"time"
)

// SpawnAlert is the content of one notification delivered to a user.
type SpawnAlert struct {
	EncounterID    string        // The encounter the alert is about.
	SpeciesName    string        // Display name of the matched species.
	Latitude       float64       // Spawn latitude in degrees.
	Longitude      float64       // Spawn longitude in degrees.
	DistanceMeters float64       // Ground distance from the user's last position.
	TimeRemaining  time.Duration // Time left until the spawn expires.
	ExpiresAt      time.Time     // Absolute expiration instant.
}

// Dispatcher delivers a formatted spawn alert to a user's chat channel.
// Delivery failures are reported to the caller; the matching engine logs
// them and does not retry.
type Dispatcher interface {
	Send(ctx context.Context, chatID string, alert *SpawnAlert) error
}
