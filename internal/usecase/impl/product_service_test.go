package impl

import (
	"context"
	"testing"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	mockRepo "github.com/BeMaTech82/hortago/internal/mocks/repository"
	mockService "github.com/BeMaTech82/hortago/internal/mocks/service"
	mockUsecase "github.com/BeMaTech82/hortago/internal/mocks/usecase"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service       usecase.ProductUsecase
	productRepo   *mockRepo.MockProductRepository
	userRepo      *mockRepo.MockUserRepository
	dispatcher    *mockUsecase.MockNotificationUsecase
	qrcodeService *mockService.MockQRCodeService
}

func createTestProductService(t *testing.T) *productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	dispatcher := mockUsecase.NewMockNotificationUsecase(t)
	qrcodeService := mockService.NewMockQRCodeService(t)

	svc := NewProductService(ProductServiceParams{
		ProductRepo:   productRepo,
		UserRepo:      userRepo,
		Dispatcher:    dispatcher,
		QRCodeService: qrcodeService,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return &productServiceFixtures{
		service:       svc,
		productRepo:   productRepo,
		userRepo:      userRepo,
		dispatcher:    dispatcher,
		qrcodeService: qrcodeService,
	}
}

func newSeller() *entity.User {
	location := parisCoord

	return &entity.User{
		ID:       uuid.New(),
		Email:    "maraicher@hortago.fr",
		Name:     "Maraîcher",
		Type:     entity.UserTypeSeller,
		Location: &location,
	}
}

func newCreateProductInput() *usecase.CreateProductInput {
	return &usecase.CreateProductInput{
		Name:        "Tomates anciennes",
		Category:    entity.CategoryLegumes,
		Description: "Variétés anciennes du potager",
		Quantity:    12,
		Unit:        "kg",
		Price:       3.5,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := newSeller()

	fx.userRepo.EXPECT().FindUserByID(ctx, seller.ID).Return(seller, nil)
	fx.productRepo.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	fx.dispatcher.EXPECT().DispatchProductMatches(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, seller.ID, newCreateProductInput())

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, seller.ID, product.SellerID)
	assert.Equal(t, entity.CategoryLegumes, product.Category)
	assert.Equal(t, entity.ProductStatusAvailable, product.Status)
	assert.Equal(t, seller.Location, product.Location)
	assert.NotZero(t, product.ID)
}

func TestProductService_CreateProduct_InvalidCategory(t *testing.T) {
	fx := createTestProductService(t)

	input := newCreateProductInput()
	input.Category = entity.CategoryAll

	product, err := fx.service.CreateProduct(context.Background(), uuid.New(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductCategoryInvalid)
	assert.Nil(t, product)
}

func TestProductService_CreateProduct_NegativePrice(t *testing.T) {
	fx := createTestProductService(t)

	input := newCreateProductInput()
	input.Price = -1

	product, err := fx.service.CreateProduct(context.Background(), uuid.New(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductPriceInvalid)
	assert.Nil(t, product)
}

func TestProductService_CreateProduct_BuyerCannotSell(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	buyer := newLocatedUser(uuid.New(), &parisCoord)

	fx.userRepo.EXPECT().FindUserByID(ctx, buyer.ID).Return(buyer, nil)

	product, err := fx.service.CreateProduct(ctx, buyer.ID, newCreateProductInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSellerRoleRequired)
	assert.Nil(t, product)
}

func TestProductService_CreateProduct_SellerNotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	sellerID := uuid.New()
	fx.userRepo.EXPECT().FindUserByID(ctx, sellerID).Return(nil, repository.ErrUserNotFound)

	product, err := fx.service.CreateProduct(ctx, sellerID, newCreateProductInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, product)
}

func TestProductService_CreateProduct_IDCollisionIsRetried(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	seller := newSeller()

	fx.userRepo.EXPECT().FindUserByID(ctx, seller.ID).Return(seller, nil)
	// The first insert collides on the millisecond-derived ID; the retry with
	// the bumped ID succeeds.
	fx.productRepo.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrDuplicateProduct).Once()
	fx.productRepo.EXPECT().CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil).Once()
	fx.dispatcher.EXPECT().DispatchProductMatches(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, seller.ID, newCreateProductInput())

	require.NoError(t, err)
	require.NotNil(t, product)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindProductByID(ctx, int64(42)).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, product)
}

func TestProductService_ListProducts(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	expected := []*entity.Product{newMatchableProduct()}
	filter := repository.ProductFilter{Category: entity.CategoryLegumes}

	fx.productRepo.EXPECT().FindProducts(ctx, filter, 20, 0).Return(expected, nil)

	products, err := fx.service.ListProducts(ctx, filter, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_ListNearbyProducts_FiltersByDistance(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	near := newMatchableProduct()
	distant := newMatchableProduct()
	distant.ID++
	distant.Location = &lyonCoord
	unlocated := newMatchableProduct()
	unlocated.ID += 2
	unlocated.Location = nil

	filter := repository.ProductFilter{Category: entity.CategoryLegumes}
	fx.productRepo.EXPECT().FindProducts(ctx, filter, 20, 0).
		Return([]*entity.Product{near, distant, unlocated}, nil)

	products, err := fx.service.ListNearbyProducts(ctx, nearbyCoord, 10, filter, 20, 0)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, near.ID, products[0].ID)
}

func TestProductService_ListNearbyProducts_ZeroRadiusUsesDefault(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	near := newMatchableProduct()
	fx.productRepo.EXPECT().FindProducts(ctx, repository.ProductFilter{}, 20, 0).
		Return([]*entity.Product{near}, nil)

	products, err := fx.service.ListNearbyProducts(ctx, nearbyCoord, 0, repository.ProductFilter{}, 20, 0)

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_ListNearbyProducts_RadiusAboveMaximum(t *testing.T) {
	fx := createTestProductService(t)

	products, err := fx.service.ListNearbyProducts(context.Background(), nearbyCoord, 150, repository.ProductFilter{}, 20, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSearchRadiusInvalid)
	assert.Nil(t, products)
}

func TestProductService_ListNearbyProducts_InvalidCenter(t *testing.T) {
	fx := createTestProductService(t)

	center := entity.Coordinate{Latitude: 120, Longitude: 300}
	products, err := fx.service.ListNearbyProducts(context.Background(), center, 10, repository.ProductFilter{}, 20, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, products)
}

func TestProductService_UpdateProductStatus_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := newMatchableProduct()

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().UpdateProductStatus(ctx, product.ID, entity.ProductStatusSold).Return(nil)

	err := fx.service.UpdateProductStatus(ctx, product.SellerID, product.ID, entity.ProductStatusSold)

	require.NoError(t, err)
}

func TestProductService_UpdateProductStatus_InvalidStatus(t *testing.T) {
	fx := createTestProductService(t)

	err := fx.service.UpdateProductStatus(context.Background(), uuid.New(), 42, entity.ProductStatus("archived"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductStatusInvalid)
}

func TestProductService_UpdateProductStatus_OwnershipViolation(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := newMatchableProduct()
	stranger := uuid.New()

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	err := fx.service.UpdateProductStatus(ctx, stranger, product.ID, entity.ProductStatusSold)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)
}

func TestProductService_GenerateStandQR(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := newMatchableProduct()
	qrPNG := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.qrcodeService.EXPECT().GenerateProductQR(product.ID).Return(qrPNG, nil)

	qrCode, err := fx.service.GenerateStandQR(ctx, product.ID)

	require.NoError(t, err)
	assert.Equal(t, qrPNG, qrCode)
}

func TestProductService_GenerateStandQR_ProductNotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().FindProductByID(ctx, int64(42)).Return(nil, repository.ErrProductNotFound)

	qrCode, err := fx.service.GenerateStandQR(ctx, 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Nil(t, qrCode)
}
