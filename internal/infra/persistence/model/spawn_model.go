package model

// SpawnModel is the GORM-specific struct for the 'spawns' table. The
// encounter id is the upsert key; expiration is kept as epoch seconds the
// way the feed reports it.
type SpawnModel struct {
	EncounterID         string  `gorm:"type:text;primary_key"`
	ExpirationTimestamp int64   `gorm:"not null;index"`
	Latitude            float64 `gorm:"type:decimal(10,8);not null"`
	Longitude           float64 `gorm:"type:decimal(11,8);not null"`
	SpeciesName         string  `gorm:"type:text;not null"`
	SpawnPointID        string  `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (SpawnModel) TableName() string {
	return "spawns"
}
