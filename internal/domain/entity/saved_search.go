// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedSearch represents a buyer's standing interest in nearby produce.
// When a seller lists a matching product within the search radius of the owner's
// location, the owner is notified.
type SavedSearch struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the search.
	UserID    uuid.UUID `json:"user_id"`    // The ID of the buyer who registered the search.
	Category  Category  `json:"category"`   // A fixed category or the "all" wildcard.
	Keywords  string    `json:"keywords"`   // Optional free-text keywords; empty means no keyword filter.
	RadiusKm  float64   `json:"radius_km"`  // Notification radius in kilometers, always > 0.
	MaxPrice  *float64  `json:"max_price"`  // Optional price ceiling; nil means no limit.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the search was registered.
}
