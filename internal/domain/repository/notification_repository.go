package repository

import (
	"context"

	"github.com/google/uuid"
)

// NotificationRepository defines operations over the dedup ledger.
type NotificationRepository interface {
	// TryInsert writes the (encounter, user) ledger entry. It returns true
	// if the row was newly inserted and false if it already existed; the
	// unique constraint on the pair is the authoritative concurrency guard,
	// so a conflict is an expected outcome, not an error.
	TryInsert(ctx context.Context, encounterID string, userID uuid.UUID) (bool, error)
}
