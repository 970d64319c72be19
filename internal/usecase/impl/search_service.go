package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/BeMaTech82/hortago/config"
	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	"github.com/BeMaTech82/hortago/internal/usecase"
	"github.com/BeMaTech82/hortago/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type searchService struct {
	searchRepo repository.SearchRepository
	userRepo   repository.UserRepository
	matchRepo  repository.MatchRepository
	config     *config.Config
	logger     *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	SearchRepo repository.SearchRepository
	UserRepo   repository.UserRepository
	MatchRepo  repository.MatchRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSearchService creates a new saved-search service instance
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		searchRepo: params.SearchRepo,
		userRepo:   params.UserRepo,
		matchRepo:  params.MatchRepo,
		config:     params.Config,
		logger:     params.Logger,
	}
}

// CreateSearch registers a standing interest in nearby produce for a buyer.
func (s *searchService) CreateSearch(ctx context.Context, userID uuid.UUID, input *usecase.CreateSearchInput) (*entity.SavedSearch, error) {
	// An empty category means the wildcard.
	category := input.Category
	if category == "" {
		category = entity.CategoryAll
	}
	if !category.IsValidForSearch() {
		return nil, domainerrors.ErrSearchCategoryInvalid.WrapMessage("create search failed")
	}

	radius := input.RadiusKm
	if radius == 0 {
		radius = s.config.Matching.DefaultRadiusKm
	}
	if radius <= 0 || radius > s.config.Matching.MaxRadiusKm {
		return nil, domainerrors.ErrSearchRadiusInvalid.WrapMessage("create search failed")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("create search failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if !user.CanBuy() {
		return nil, domainerrors.ErrBuyerRoleRequired.WrapMessage("create search failed")
	}

	search := &entity.SavedSearch{
		ID:        uuid.New(),
		UserID:    user.ID,
		Category:  category,
		Keywords:  util.NormalizeKeywords(input.Keywords),
		RadiusKm:  radius,
		MaxPrice:  input.MaxPrice,
		CreatedAt: time.Now(),
	}

	if err := s.searchRepo.CreateSearch(ctx, search); err != nil {
		return nil, errors.Wrap(err, "failed to create search")
	}
	s.logger.Info("Saved search created", "searchID", search.ID, "userID", user.ID, "category", search.Category, "radiusKm", search.RadiusKm)

	return search, nil
}

// GetUserSearches retrieves all saved searches registered by a user.
func (s *searchService) GetUserSearches(ctx context.Context, userID uuid.UUID) ([]*entity.SavedSearch, error) {
	searches, err := s.searchRepo.FindSearchesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find searches by user")
	}

	return searches, nil
}

// DeleteSearch removes a saved search owned by the user.
func (s *searchService) DeleteSearch(ctx context.Context, userID, searchID uuid.UUID) error {
	search, err := s.searchRepo.FindSearchByID(ctx, searchID)
	if err != nil {
		if errors.Is(err, repository.ErrSearchNotFound) {
			return domainerrors.ErrSearchNotFound.WrapMessage("delete search failed")
		}

		return errors.Wrap(err, "failed to find search")
	}
	if search.UserID != userID {
		return domainerrors.ErrSearchOwnershipViolation.WrapMessage("delete search failed")
	}

	if err := s.searchRepo.DeleteSearch(ctx, searchID); err != nil {
		return errors.Wrap(err, "failed to delete search")
	}
	s.logger.Info("Saved search deleted", "searchID", searchID, "userID", userID)

	return nil
}

// GetUserMatches retrieves a user's match history, newest first.
func (s *searchService) GetUserMatches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ProximityMatch, error) {
	matches, err := s.matchRepo.FindMatchesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matches by user")
	}

	return matches, nil
}
