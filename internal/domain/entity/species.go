package entity

// Species is one entry of the static reference catalog. InternalName is the
// name spawn feeds report; Name is what users see and type.
type Species struct {
	ID           int    // Catalog identifier.
	Name         string // Display name.
	InternalName string // Feed-facing name, unique within the catalog.
	Rarity       int    // Relative rarity rank.
}
