package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/BeMaTech82/hortago/config"
	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/domain/geo"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	"github.com/BeMaTech82/hortago/internal/domain/service"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// idCollisionRetries bounds how many times product creation bumps the
// timestamp-derived ID when two listings land on the same millisecond.
const idCollisionRetries = 3

type productService struct {
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
	dispatcher    usecase.NotificationUsecase
	qrcodeService service.QRCodeService
	config        *config.Config
	logger        *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	UserRepo      repository.UserRepository
	Dispatcher    usecase.NotificationUsecase
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:   params.ProductRepo,
		userRepo:      params.UserRepo,
		dispatcher:    params.Dispatcher,
		qrcodeService: params.QRCodeService,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// CreateProduct publishes a listing and triggers best-effort match dispatch.
func (s *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if !input.Category.IsValidForProduct() {
		return nil, domainerrors.ErrProductCategoryInvalid.WrapMessage("create product failed")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrProductPriceInvalid.WrapMessage("create product failed")
	}

	seller, err := s.userRepo.FindUserByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("create product failed")
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}
	if !seller.CanSell() {
		return nil, domainerrors.ErrSellerRoleRequired.WrapMessage("create product failed")
	}

	now := time.Now()
	product := &entity.Product{
		ID:          entity.NewProductID(now),
		SellerID:    seller.ID,
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		Price:       input.Price,
		HarvestDate: input.HarvestDate,
		Location:    seller.Location,
		Status:      entity.ProductStatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Two sellers listing within the same millisecond collide on the
	// timestamp-derived ID; bump and retry a few times.
	for attempt := 0; ; attempt++ {
		err = s.productRepo.CreateProduct(ctx, product)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateProduct) || attempt >= idCollisionRetries {
			return nil, errors.Wrap(err, "failed to create product")
		}
		product.ID++
	}

	s.logger.Info("Product created", "productID", product.ID, "sellerID", seller.ID, "category", product.Category)

	// Match dispatch is best-effort and must never fail the creation.
	matches := s.dispatcher.DispatchProductMatches(ctx, product)
	s.logger.Debug("Match dispatch finished", "productID", product.ID, "matches", len(matches))

	return product, nil
}

// GetProduct retrieves a single product listing.
func (s *productService) GetProduct(ctx context.Context, productID int64) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("get product failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves listings matching the filter, newest first.
func (s *productService) ListProducts(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	products, err := s.productRepo.FindProducts(ctx, filter, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListNearbyProducts retrieves listings matching the filter that lie within
// radiusKm of center, newest first. A zero radius falls back to the configured
// default; listings without a location never appear.
func (s *productService) ListNearbyProducts(ctx context.Context, center entity.Coordinate, radiusKm float64, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	if !center.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("list nearby products failed")
	}

	if radiusKm == 0 {
		radiusKm = s.config.Matching.DefaultRadiusKm
	}
	if radiusKm <= 0 || radiusKm > s.config.Matching.MaxRadiusKm {
		return nil, domainerrors.ErrSearchRadiusInvalid.WrapMessage("list nearby products failed")
	}

	products, err := s.productRepo.FindProducts(ctx, filter, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return geo.FindWithinRadius(center, radiusKm, products, func(p *entity.Product) *entity.Coordinate {
		return p.Location
	}), nil
}

// UpdateProductStatus transitions a listing's lifecycle status.
func (s *productService) UpdateProductStatus(ctx context.Context, sellerID uuid.UUID, productID int64, status entity.ProductStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrProductStatusInvalid.WrapMessage("update status failed")
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound.WrapMessage("update status failed")
		}

		return errors.Wrap(err, "failed to find product")
	}
	if product.SellerID != sellerID {
		return domainerrors.ErrProductOwnershipViolation.WrapMessage("update status failed")
	}

	if err := s.productRepo.UpdateProductStatus(ctx, productID, status); err != nil {
		return errors.Wrap(err, "failed to update product status")
	}
	s.logger.Info("Product status updated", "productID", productID, "status", status)

	return nil
}

// GenerateStandQR generates a printable QR code for a product listing.
func (s *productService) GenerateStandQR(ctx context.Context, productID int64) ([]byte, error) {
	if _, err := s.productRepo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("generate QR failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	qrCode, err := s.qrcodeService.GenerateProductQR(productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product QR")
	}

	return qrCode, nil
}
