package usecase

import (
	"context"
	"time"
)

// SweepStats summarizes what one matching pass did.
type SweepStats struct {
	Users      int           // Users considered.
	Spawns     int           // Active spawns at the start of the pass.
	Matched    int           // Filter matches within radius.
	Dispatched int           // Alerts actually delivered.
	Deduped    int           // Matches suppressed by the ledger.
	Elapsed    time.Duration // Wall time of the pass.
}

// SweepUsecase defines the interface for the periodic matching pass.
type SweepUsecase interface {
	// Run executes one full matching pass over all users and all spawns
	// active at the given instant. A failure to load either collection
	// aborts the pass; per-user failures do not.
	Run(ctx context.Context, now time.Time) (*SweepStats, error)
}
