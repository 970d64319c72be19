// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus represents the lifecycle state of a product listing.
// Products are never hard-deleted; they only transition between statuses.
type ProductStatus string

const (
	// ProductStatusAvailable indicates the product can still be bought.
	ProductStatusAvailable ProductStatus = "available"
	// ProductStatusSold indicates the whole quantity has been sold.
	ProductStatusSold ProductStatus = "sold"
	// ProductStatusUnavailable indicates the seller withdrew the listing.
	ProductStatusUnavailable ProductStatus = "unavailable"
)

// String returns the string representation of the ProductStatus.
func (s ProductStatus) String() string {
	return string(s)
}

// IsValid checks if the ProductStatus is a valid value.
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusAvailable, ProductStatusSold, ProductStatusUnavailable:
		return true
	default:
		return false
	}
}

// Product represents a produce listing published by a seller.
type Product struct {
	ID          int64         `json:"id"`           // Creation-timestamp-derived identifier (unix milliseconds).
	SellerID    uuid.UUID     `json:"seller_id"`    // The ID of the user who listed the product.
	Name        string        `json:"name"`         // The product name, e.g., "Tomates anciennes".
	Category    Category      `json:"category"`     // One of the fixed produce categories (never the wildcard).
	Description string        `json:"description"`  // Free-form description of the product.
	Quantity    float64       `json:"quantity"`     // Available quantity, in the listing's unit.
	Unit        string        `json:"unit"`         // Unit of sale, e.g., "kg", "botte", "pièce".
	Price       float64       `json:"price"`        // Non-negative price per unit, in euros.
	HarvestDate *time.Time    `json:"harvest_date"` // Optional date the produce was harvested.
	Location    *Coordinate   `json:"location"`     // Where the product is sold; nil when the seller has no fix.
	Status      ProductStatus `json:"status"`       // Current lifecycle status.
	CreatedAt   time.Time     `json:"created_at"`   // Timestamp of when the listing was created.
	UpdatedAt   time.Time     `json:"updated_at"`   // Timestamp of the last modification.
}

// NewProductID derives a product identifier from a creation timestamp.
func NewProductID(createdAt time.Time) int64 {
	return createdAt.UnixMilli()
}
