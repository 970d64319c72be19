// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for saved-search persistence.
var (
	// ErrSearchNotFound is returned when a saved search is not found.
	ErrSearchNotFound = errors.New("saved search not found")
)

// SearchRepository defines the interface for saved-search database operations.
type SearchRepository interface {
	// CreateSearch persists a new saved search.
	CreateSearch(ctx context.Context, search *entity.SavedSearch) error

	// FindSearchByID retrieves a saved search by its unique ID.
	FindSearchByID(ctx context.Context, id uuid.UUID) (*entity.SavedSearch, error)

	// FindSearchesByUser retrieves all saved searches registered by a user.
	FindSearchesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavedSearch, error)

	// FindAllSearches retrieves every registered saved search.
	// Used by notification dispatch to evaluate a new product against all searches.
	FindAllSearches(ctx context.Context) ([]*entity.SavedSearch, error)

	// DeleteSearch removes a saved search. Searches are deleted explicitly by
	// their owner, never expired.
	DeleteSearch(ctx context.Context, id uuid.UUID) error
}
