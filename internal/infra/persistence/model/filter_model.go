package model

import "github.com/google/uuid"

// FilterModel is the GORM-specific struct for the 'user_filters' table.
// The composite primary key enforces set semantics per (user, species).
type FilterModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	SpeciesID int       `gorm:"primary_key"`
}

// TableName explicitly sets the table name for GORM.
func (FilterModel) TableName() string {
	return "user_filters"
}
