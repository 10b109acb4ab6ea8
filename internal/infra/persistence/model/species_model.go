package model

// SpeciesModel is the GORM-specific struct for the 'species' table, the
// static reference catalog.
type SpeciesModel struct {
	ID           int    `gorm:"primary_key"`
	Name         string `gorm:"type:text;not null"`
	InternalName string `gorm:"type:text;not null;uniqueIndex"`
	Rarity       int    `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (SpeciesModel) TableName() string {
	return "species"
}
