// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when a product with the same ID already exists.
	ErrDuplicateProduct = errors.New("product already exists")
)

// ProductFilter narrows product listing queries. Zero values mean "no filter".
type ProductFilter struct {
	Category entity.Category
	Status   entity.ProductStatus
	SellerID uuid.UUID
	Keywords string
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// CreateProduct persists a new product listing.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its timestamp-derived ID.
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindProducts retrieves products matching the filter, newest first.
	FindProducts(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProductStatus transitions a product's lifecycle status.
	// Products are never hard-deleted; this is the only removal mechanism.
	UpdateProductStatus(ctx context.Context, id int64, status entity.ProductStatus) error
}
