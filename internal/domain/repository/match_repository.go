// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchRepository defines the interface for proximity-match database operations.
type MatchRepository interface {
	// BatchCreateMatches persists the matches computed for one product creation.
	BatchCreateMatches(ctx context.Context, matches []*entity.ProximityMatch) error

	// UpdateMatchStatus updates the delivery status of a match.
	UpdateMatchStatus(ctx context.Context, id uuid.UUID, status string) error

	// FindMatchesByUser retrieves a user's match history, newest first.
	FindMatchesByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ProximityMatch, error)
}
