// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProximityMatch records a single saved search matched by a new product.
// One row is created per matching search: a user with several matching searches
// for the same product gets several matches, and therefore several notifications.
// That fan-out is intended behavior, not deduplicated.
type ProximityMatch struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the match.
	ProductID  int64     `json:"product_id"`  // The product whose creation triggered the match.
	SearchID   uuid.UUID `json:"search_id"`   // The saved search that matched.
	UserID     uuid.UUID `json:"user_id"`     // The owner of the matched search.
	DistanceKm float64   `json:"distance_km"` // Computed haversine distance, product to search owner.
	Status     string    `json:"status"`      // Delivery status: pending, sent, failed.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when the match was computed.
}

// Delivery status values for a ProximityMatch.
const (
	MatchStatusPending = "pending"
	MatchStatusSent    = "sent"
	MatchStatusFailed  = "failed"
)
