package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ChatID       string    `gorm:"type:text;not null;uniqueIndex"`
	FirstName    string    `gorm:"type:text"`
	LastName     string    `gorm:"type:text"`
	Username     string    `gorm:"type:text"`
	RadiusMeters float64   `gorm:"not null;default:1000"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
