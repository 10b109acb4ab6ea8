package model

import (
	"time"

	"github.com/google/uuid"
)

// PositionModel is the GORM-specific struct for the 'user_positions' table.
// Rows are append-only; reads always take the latest per user.
type PositionModel struct {
	ID        int64     `gorm:"primary_key;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_positions_user_time,priority:1"`
	Timestamp time.Time `gorm:"not null;index:idx_user_positions_user_time,priority:2,sort:desc"`
	Latitude  float64   `gorm:"type:decimal(10,8);not null"`
	Longitude float64   `gorm:"type:decimal(11,8);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PositionModel) TableName() string {
	return "user_positions"
}
