package repository

import (
	"context"
	"time"

	"pokeradar/internal/domain/entity"
)

// SpawnRepository defines operations over ingested spawn events.
type SpawnRepository interface {
	// Upsert inserts the spawn or, if a row with the same encounter id
	// exists, overwrites its mutable fields. The operation is a single
	// atomic statement: a failure leaves the prior state unchanged.
	Upsert(ctx context.Context, spawn *entity.Spawn) error

	// ListActive retrieves spawns whose expiration is strictly after the
	// given instant, ordered by soonest expiration first. Expiry is a
	// read-time filter; expired rows are never deleted here.
	ListActive(ctx context.Context, now time.Time) ([]*entity.Spawn, error)
}
