package entity

import (
	"time"

	"github.com/google/uuid"
)

// Position is one reported location of a user. Positions accumulate
// append-only; only the most recent one per user is ever read.
type Position struct {
	UserID    uuid.UUID // The user this position belongs to.
	Timestamp time.Time // When the position was reported.
	Latitude  float64   // Geographic latitude in degrees.
	Longitude float64   // Geographic longitude in degrees.
}
