package impl

import (
	"context"
	"testing"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/domain/service"
	mockRepo "github.com/BeMaTech82/hortago/internal/mocks/repository"
	mockService "github.com/BeMaTech82/hortago/internal/mocks/service"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	parisCoord  = entity.Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	nearbyCoord = entity.Coordinate{Latitude: 48.8600, Longitude: 2.3500}
	lyonCoord   = entity.Coordinate{Latitude: 45.7640, Longitude: 4.8357}
)

type notificationServiceFixtures struct {
	service     usecase.NotificationUsecase
	searchRepo  *mockRepo.MockSearchRepository
	userRepo    *mockRepo.MockUserRepository
	matchRepo   *mockRepo.MockMatchRepository
	deviceRepo  *mockRepo.MockDeviceRepository
	publisher   *mockService.MockEventPublisher
	pushService *mockService.MockPushService
}

func createTestNotificationService(t *testing.T) *notificationServiceFixtures {
	searchRepo := mockRepo.NewMockSearchRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	matchRepo := mockRepo.NewMockMatchRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	pushService := mockService.NewMockPushService(t)

	svc := NewNotificationService(NotificationServiceParams{
		SearchRepo:  searchRepo,
		UserRepo:    userRepo,
		MatchRepo:   matchRepo,
		DeviceRepo:  deviceRepo,
		Publisher:   publisher,
		PushService: pushService,
		Logger:      newDiscardLogger(),
	})

	return &notificationServiceFixtures{
		service:     svc,
		searchRepo:  searchRepo,
		userRepo:    userRepo,
		matchRepo:   matchRepo,
		deviceRepo:  deviceRepo,
		publisher:   publisher,
		pushService: pushService,
	}
}

func newMatchableProduct() *entity.Product {
	location := parisCoord

	return &entity.Product{
		ID:          1724659200000,
		SellerID:    uuid.New(),
		Name:        "Tomates anciennes",
		Category:    entity.CategoryLegumes,
		Description: "Variétés anciennes du potager",
		Quantity:    12,
		Unit:        "kg",
		Price:       3.5,
		Location:    &location,
		Status:      entity.ProductStatusAvailable,
		CreatedAt:   time.Now(),
	}
}

func newSavedSearch(userID uuid.UUID, category entity.Category, radiusKm float64) *entity.SavedSearch {
	return &entity.SavedSearch{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		RadiusKm:  radiusKm,
		CreatedAt: time.Now(),
	}
}

func newLocatedUser(id uuid.UUID, location *entity.Coordinate) *entity.User {
	return &entity.User{
		ID:       id,
		Email:    "acheteur@hortago.fr",
		Name:     "Acheteur",
		Type:     entity.UserTypeBuyer,
		Location: location,
	}
}

func TestNotificationService_DispatchProductMatches(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	product := newMatchableProduct()
	nearbyUser := uuid.New()
	distantUser := uuid.New()
	fruitUser := uuid.New()

	nearbySearch := newSavedSearch(nearbyUser, entity.CategoryAll, 10)
	distantSearch := newSavedSearch(distantUser, entity.CategoryLegumes, 50)
	fruitSearch := newSavedSearch(fruitUser, entity.CategoryFruits, 10)

	fx.searchRepo.EXPECT().FindAllSearches(ctx).
		Return([]*entity.SavedSearch{nearbySearch, distantSearch, fruitSearch}, nil)
	// The fruit search never reaches the owner lookup; its category rejects
	// the product outright.
	fx.userRepo.EXPECT().FindUsersByIDs(ctx, []uuid.UUID{nearbyUser, distantUser}).
		Return([]*entity.User{
			newLocatedUser(nearbyUser, &nearbyCoord),
			newLocatedUser(distantUser, &lyonCoord),
		}, nil)
	fx.matchRepo.EXPECT().BatchCreateMatches(ctx, mock.AnythingOfType("[]*entity.ProximityMatch")).Return(nil)
	fx.publisher.EXPECT().PublishProductMatch(ctx, mock.AnythingOfType("*service.ProductMatchEvent")).
		Run(func(_ context.Context, event *service.ProductMatchEvent) {
			assert.Equal(t, product.ID, event.ProductID)
			assert.Equal(t, "Tomates anciennes", event.ProductName)
			require.Len(t, event.Matches, 1)
			assert.Equal(t, nearbyUser.String(), event.Matches[0].UserID)
		}).
		Return(nil)

	matches := fx.service.DispatchProductMatches(ctx, product)

	require.Len(t, matches, 1)
	match := matches[0]
	assert.Equal(t, product.ID, match.ProductID)
	assert.Equal(t, nearbySearch.ID, match.SearchID)
	assert.Equal(t, nearbyUser, match.UserID)
	assert.Equal(t, entity.MatchStatusPending, match.Status)
	assert.Less(t, match.DistanceKm, 1.0)
}

func TestNotificationService_DispatchProductMatches_NoLocation(t *testing.T) {
	fx := createTestNotificationService(t)

	product := newMatchableProduct()
	product.Location = nil

	matches := fx.service.DispatchProductMatches(context.Background(), product)

	assert.Nil(t, matches)
}

func TestNotificationService_DispatchProductMatches_FiltersPriceAndKeywords(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	product := newMatchableProduct()

	tooExpensive := newSavedSearch(uuid.New(), entity.CategoryAll, 10)
	priceCeiling := 2.0
	tooExpensive.MaxPrice = &priceCeiling

	wrongKeywords := newSavedSearch(uuid.New(), entity.CategoryAll, 10)
	wrongKeywords.Keywords = "courgettes bio"

	fx.searchRepo.EXPECT().FindAllSearches(ctx).
		Return([]*entity.SavedSearch{tooExpensive, wrongKeywords}, nil)

	matches := fx.service.DispatchProductMatches(ctx, product)

	assert.Nil(t, matches)
}

func TestNotificationService_DispatchProductMatches_KeywordMatchesDescription(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	product := newMatchableProduct()
	buyer := uuid.New()
	search := newSavedSearch(buyer, entity.CategoryAll, 10)
	search.Keywords = "potager anciennes"

	fx.searchRepo.EXPECT().FindAllSearches(ctx).Return([]*entity.SavedSearch{search}, nil)
	fx.userRepo.EXPECT().FindUsersByIDs(ctx, []uuid.UUID{buyer}).
		Return([]*entity.User{newLocatedUser(buyer, &nearbyCoord)}, nil)
	fx.matchRepo.EXPECT().BatchCreateMatches(ctx, mock.AnythingOfType("[]*entity.ProximityMatch")).Return(nil)
	fx.publisher.EXPECT().PublishProductMatch(ctx, mock.AnythingOfType("*service.ProductMatchEvent")).Return(nil)

	matches := fx.service.DispatchProductMatches(ctx, product)

	assert.Len(t, matches, 1)
}

func TestNotificationService_DispatchProductMatches_OwnerWithoutLocation(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	product := newMatchableProduct()
	buyer := uuid.New()
	search := newSavedSearch(buyer, entity.CategoryAll, 10)

	fx.searchRepo.EXPECT().FindAllSearches(ctx).Return([]*entity.SavedSearch{search}, nil)
	fx.userRepo.EXPECT().FindUsersByIDs(ctx, []uuid.UUID{buyer}).
		Return([]*entity.User{newLocatedUser(buyer, nil)}, nil)

	matches := fx.service.DispatchProductMatches(ctx, product)

	assert.Nil(t, matches)
}

func TestNotificationService_DispatchProductMatches_SearchLoadFailure(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	fx.searchRepo.EXPECT().FindAllSearches(ctx).Return(nil, assert.AnError)

	matches := fx.service.DispatchProductMatches(ctx, newMatchableProduct())

	assert.Nil(t, matches)
}

func TestNotificationService_DispatchProductMatches_PublishFailureStillReturnsMatches(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	product := newMatchableProduct()
	buyer := uuid.New()
	search := newSavedSearch(buyer, entity.CategoryLegumes, 10)

	fx.searchRepo.EXPECT().FindAllSearches(ctx).Return([]*entity.SavedSearch{search}, nil)
	fx.userRepo.EXPECT().FindUsersByIDs(ctx, []uuid.UUID{buyer}).
		Return([]*entity.User{newLocatedUser(buyer, &nearbyCoord)}, nil)
	fx.matchRepo.EXPECT().BatchCreateMatches(ctx, mock.AnythingOfType("[]*entity.ProximityMatch")).Return(nil)
	fx.publisher.EXPECT().PublishProductMatch(ctx, mock.AnythingOfType("*service.ProductMatchEvent")).Return(assert.AnError)

	matches := fx.service.DispatchProductMatches(ctx, product)

	// Matches are already persisted; the publish failure only delays pushes.
	assert.Len(t, matches, 1)
}

func newMatchEvent(userID uuid.UUID) *service.ProductMatchEvent {
	return &service.ProductMatchEvent{
		ProductID:   1724659200000,
		ProductName: "Tomates anciennes",
		Category:    "Légumes",
		Price:       3.5,
		Unit:        "kg",
		Latitude:    parisCoord.Latitude,
		Longitude:   parisCoord.Longitude,
		Matches: []service.MatchedSearch{
			{
				MatchID:    uuid.New().String(),
				SearchID:   uuid.New().String(),
				UserID:     userID.String(),
				DistanceKm: 2.4,
			},
		},
	}
}

func newUserDevice(userID uuid.UUID, token string) *entity.UserDevice {
	return &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: token,
		DeviceID: "web-" + token,
		Platform: "web",
		IsActive: true,
	}
}

func TestNotificationService_DeliverMatchEvent(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	buyer := uuid.New()
	event := newMatchEvent(buyer)
	matchID := uuid.MustParse(event.Matches[0].MatchID)
	device := newUserDevice(buyer, "token-1")

	fx.deviceRepo.EXPECT().FindDevicesForUsers(ctx, []uuid.UUID{buyer}).
		Return([]*entity.UserDevice{device}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, "Nouveau produit près de chez vous", mock.AnythingOfType("string"), mock.Anything).
		Run(func(_ context.Context, _ []string, _ string, body string, data map[string]string) {
			assert.Equal(t, "Tomates anciennes (Légumes) à 2.4 km", body)
			assert.Equal(t, "/produits/1724659200000", data["url"])
			assert.Equal(t, event.Matches[0].MatchID, data["match_id"])
			assert.Equal(t, "2.4", data["distance_km"])
			assert.Equal(t, "open,done", data["actions"])
		}).
		Return(1, 0, nil, nil)
	fx.matchRepo.EXPECT().UpdateMatchStatus(ctx, matchID, entity.MatchStatusSent).Return(nil)

	err := fx.service.DeliverMatchEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_DeliverMatchEvent_ZeroSuccessMarksFailed(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	buyer := uuid.New()
	event := newMatchEvent(buyer)
	matchID := uuid.MustParse(event.Matches[0].MatchID)
	device := newUserDevice(buyer, "token-1")

	fx.deviceRepo.EXPECT().FindDevicesForUsers(ctx, []uuid.UUID{buyer}).
		Return([]*entity.UserDevice{device}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-1"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(0, 1, nil, nil)
	fx.matchRepo.EXPECT().UpdateMatchStatus(ctx, matchID, entity.MatchStatusFailed).Return(nil)

	err := fx.service.DeliverMatchEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_DeliverMatchEvent_InvalidTokenDeactivatesDevice(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	buyer := uuid.New()
	event := newMatchEvent(buyer)
	matchID := uuid.MustParse(event.Matches[0].MatchID)
	valid := newUserDevice(buyer, "token-valid")
	stale := newUserDevice(buyer, "token-stale")

	fx.deviceRepo.EXPECT().FindDevicesForUsers(ctx, []uuid.UUID{buyer}).
		Return([]*entity.UserDevice{valid, stale}, nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-valid", "token-stale"}, mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(1, 1, []string{"token-stale"}, nil)
	fx.matchRepo.EXPECT().UpdateMatchStatus(ctx, matchID, entity.MatchStatusSent).Return(nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, stale.ID).Return(nil)

	err := fx.service.DeliverMatchEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_DeliverMatchEvent_DeviceLoadFailure(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	buyer := uuid.New()
	event := newMatchEvent(buyer)

	fx.deviceRepo.EXPECT().FindDevicesForUsers(ctx, []uuid.UUID{buyer}).Return(nil, assert.AnError)

	err := fx.service.DeliverMatchEvent(ctx, event)

	require.Error(t, err)
}

func TestNotificationService_DeliverMatchEvent_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	buyer := uuid.New()
	event := newMatchEvent(buyer)

	fx.deviceRepo.EXPECT().FindDevicesForUsers(ctx, []uuid.UUID{buyer}).Return(nil, nil)

	err := fx.service.DeliverMatchEvent(ctx, event)

	require.NoError(t, err)
}

func TestNotificationService_DeliverMatchEvent_MalformedUserID(t *testing.T) {
	fx := createTestNotificationService(t)
	ctx := context.Background()

	event := newMatchEvent(uuid.New())
	event.Matches[0].UserID = "not-a-uuid"

	err := fx.service.DeliverMatchEvent(ctx, event)

	require.NoError(t, err)
}
