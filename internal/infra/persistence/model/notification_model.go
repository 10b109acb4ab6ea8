package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications'
// table, the dedup ledger. The composite primary key on
// (encounter_id, user_id) is the at-most-once guard: concurrent inserts of
// the same pair fail on the constraint rather than duplicating.
type NotificationModel struct {
	EncounterID string    `gorm:"type:text;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
