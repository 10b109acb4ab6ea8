package entity

import "time"

// Spawn is a time-bounded occurrence of a species at fixed coordinates,
// valid until its expiration. Re-ingestion with the same EncounterID updates
// the row in place, never duplicates it.
type Spawn struct {
	EncounterID  string    // Globally unique event identifier from the feed.
	ExpiresAt    time.Time // Instant after which the spawn is no longer active.
	Latitude     float64   // Geographic latitude in degrees.
	Longitude    float64   // Geographic longitude in degrees.
	SpeciesName  string    // Species internal name reported by the feed.
	SpawnPointID string    // Identifier of the map point the spawn appeared at.
}

// Active reports whether the spawn has not yet expired at the given instant.
func (s *Spawn) Active(now time.Time) bool {
	return s.ExpiresAt.After(now)
}

// Remaining returns the time left until expiration at the given instant.
func (s *Spawn) Remaining(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}
