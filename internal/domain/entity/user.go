// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a subscriber of spawn alerts. A user is created on first contact
// from a chat channel and is never deleted.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	ChatID       string    // The communication channel identifier. Unique per user.
	FirstName    string    // The user's first name, as reported by the chat channel.
	LastName     string    // The user's last name.
	Username     string    // The user's handle on the chat channel.
	RadiusMeters float64   // Notification radius in meters around the user's last position.
	CreatedAt    time.Time // Timestamp of when this user was first seen.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
