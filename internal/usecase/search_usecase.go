package usecase

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSearchInput defines the data required to register a saved search.
type CreateSearchInput struct {
	Category entity.Category
	Keywords string
	RadiusKm float64
	MaxPrice *float64
}

// SearchUsecase defines the interface for saved-search management use cases.
type SearchUsecase interface {
	// CreateSearch registers a standing interest in nearby produce for a buyer.
	CreateSearch(ctx context.Context, userID uuid.UUID, input *CreateSearchInput) (*entity.SavedSearch, error)

	// GetUserSearches retrieves all saved searches registered by a user.
	GetUserSearches(ctx context.Context, userID uuid.UUID) ([]*entity.SavedSearch, error)

	// DeleteSearch removes a saved search owned by the user.
	DeleteSearch(ctx context.Context, userID, searchID uuid.UUID) error

	// GetUserMatches retrieves a user's match history, newest first.
	GetUserMatches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ProximityMatch, error)
}
