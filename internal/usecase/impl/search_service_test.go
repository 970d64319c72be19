package impl

import (
	"context"
	"testing"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	mockRepo "github.com/BeMaTech82/hortago/internal/mocks/repository"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type searchServiceFixtures struct {
	service    usecase.SearchUsecase
	searchRepo *mockRepo.MockSearchRepository
	userRepo   *mockRepo.MockUserRepository
	matchRepo  *mockRepo.MockMatchRepository
}

func createTestSearchService(t *testing.T) *searchServiceFixtures {
	searchRepo := mockRepo.NewMockSearchRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	matchRepo := mockRepo.NewMockMatchRepository(t)

	svc := NewSearchService(SearchServiceParams{
		SearchRepo: searchRepo,
		UserRepo:   userRepo,
		MatchRepo:  matchRepo,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return &searchServiceFixtures{
		service:    svc,
		searchRepo: searchRepo,
		userRepo:   userRepo,
		matchRepo:  matchRepo,
	}
}

func TestSearchService_CreateSearch_Success(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	buyer := newLocatedUser(uuid.New(), &parisCoord)

	fx.userRepo.EXPECT().FindUserByID(ctx, buyer.ID).Return(buyer, nil)
	fx.searchRepo.EXPECT().CreateSearch(ctx, mock.AnythingOfType("*entity.SavedSearch")).Return(nil)

	search, err := fx.service.CreateSearch(ctx, buyer.ID, &usecase.CreateSearchInput{
		Category: entity.CategoryFruits,
		Keywords: "  Fraises   Gariguette ",
		RadiusKm: 25,
	})

	require.NoError(t, err)
	require.NotNil(t, search)
	assert.Equal(t, buyer.ID, search.UserID)
	assert.Equal(t, entity.CategoryFruits, search.Category)
	assert.Equal(t, "fraises gariguette", search.Keywords)
	assert.Equal(t, 25.0, search.RadiusKm)
	assert.Nil(t, search.MaxPrice)
}

func TestSearchService_CreateSearch_EmptyCategoryMeansWildcard(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	buyer := newLocatedUser(uuid.New(), &parisCoord)

	fx.userRepo.EXPECT().FindUserByID(ctx, buyer.ID).Return(buyer, nil)
	fx.searchRepo.EXPECT().CreateSearch(ctx, mock.AnythingOfType("*entity.SavedSearch")).Return(nil)

	search, err := fx.service.CreateSearch(ctx, buyer.ID, &usecase.CreateSearchInput{})

	require.NoError(t, err)
	assert.Equal(t, entity.CategoryAll, search.Category)
	assert.Equal(t, 10.0, search.RadiusKm, "zero radius falls back to the configured default")
}

func TestSearchService_CreateSearch_InvalidCategory(t *testing.T) {
	fx := createTestSearchService(t)

	search, err := fx.service.CreateSearch(context.Background(), uuid.New(), &usecase.CreateSearchInput{
		Category: entity.Category("Gadgets"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSearchCategoryInvalid)
	assert.Nil(t, search)
}

func TestSearchService_CreateSearch_RadiusAboveMaximum(t *testing.T) {
	fx := createTestSearchService(t)

	search, err := fx.service.CreateSearch(context.Background(), uuid.New(), &usecase.CreateSearchInput{
		Category: entity.CategoryAll,
		RadiusKm: 150,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSearchRadiusInvalid)
	assert.Nil(t, search)
}

func TestSearchService_CreateSearch_NegativeRadius(t *testing.T) {
	fx := createTestSearchService(t)

	search, err := fx.service.CreateSearch(context.Background(), uuid.New(), &usecase.CreateSearchInput{
		RadiusKm: -5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSearchRadiusInvalid)
	assert.Nil(t, search)
}

func TestSearchService_CreateSearch_SellerCannotBuy(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	seller := newSeller()

	fx.userRepo.EXPECT().FindUserByID(ctx, seller.ID).Return(seller, nil)

	search, err := fx.service.CreateSearch(ctx, seller.ID, &usecase.CreateSearchInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBuyerRoleRequired)
	assert.Nil(t, search)
}

func TestSearchService_CreateSearch_UserNotFound(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().FindUserByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	search, err := fx.service.CreateSearch(ctx, userID, &usecase.CreateSearchInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, search)
}

func TestSearchService_GetUserSearches(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	userID := uuid.New()
	expected := []*entity.SavedSearch{newSavedSearch(userID, entity.CategoryAll, 10)}

	fx.searchRepo.EXPECT().FindSearchesByUser(ctx, userID).Return(expected, nil)

	searches, err := fx.service.GetUserSearches(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, searches)
}

func TestSearchService_DeleteSearch_Success(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	userID := uuid.New()
	search := newSavedSearch(userID, entity.CategoryAll, 10)

	fx.searchRepo.EXPECT().FindSearchByID(ctx, search.ID).Return(search, nil)
	fx.searchRepo.EXPECT().DeleteSearch(ctx, search.ID).Return(nil)

	err := fx.service.DeleteSearch(ctx, userID, search.ID)

	require.NoError(t, err)
}

func TestSearchService_DeleteSearch_OwnershipViolation(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	search := newSavedSearch(uuid.New(), entity.CategoryAll, 10)
	stranger := uuid.New()

	fx.searchRepo.EXPECT().FindSearchByID(ctx, search.ID).Return(search, nil)

	err := fx.service.DeleteSearch(ctx, stranger, search.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSearchOwnershipViolation)
}

func TestSearchService_DeleteSearch_NotFound(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	searchID := uuid.New()
	fx.searchRepo.EXPECT().FindSearchByID(ctx, searchID).Return(nil, repository.ErrSearchNotFound)

	err := fx.service.DeleteSearch(ctx, uuid.New(), searchID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSearchNotFound)
}

func TestSearchService_GetUserMatches(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	userID := uuid.New()
	expected := []*entity.ProximityMatch{{ID: uuid.New(), UserID: userID, Status: entity.MatchStatusSent}}

	fx.matchRepo.EXPECT().FindMatchesByUser(ctx, userID, 20, 0).Return(expected, nil)

	matches, err := fx.service.GetUserMatches(ctx, userID, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, matches)
}
