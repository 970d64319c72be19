package usecase

import (
	"context"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to publish a product listing.
type CreateProductInput struct {
	Name        string
	Category    entity.Category
	Description string
	Quantity    float64
	Unit        string
	Price       float64
	HarvestDate *time.Time
}

// ProductUsecase defines the interface for product management use cases.
type ProductUsecase interface {
	// CreateProduct publishes a listing for a seller and triggers best-effort
	// notification dispatch toward matching saved searches.
	CreateProduct(ctx context.Context, sellerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// GetProduct retrieves a single product listing.
	GetProduct(ctx context.Context, productID int64) (*entity.Product, error)

	// ListProducts retrieves listings matching the filter, newest first.
	ListProducts(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error)

	// ListNearbyProducts retrieves listings matching the filter that lie
	// within radiusKm of center. Listings without a location are excluded.
	ListNearbyProducts(ctx context.Context, center entity.Coordinate, radiusKm float64, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error)

	// UpdateProductStatus transitions a listing's lifecycle status. Only the
	// selling user may do this; listings are never hard-deleted.
	UpdateProductStatus(ctx context.Context, sellerID uuid.UUID, productID int64, status entity.ProductStatus) error

	// GenerateStandQR generates a printable QR code for a product listing.
	GenerateStandQR(ctx context.Context, productID int64) ([]byte, error)
}
