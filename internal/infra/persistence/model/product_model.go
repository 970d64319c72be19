package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The primary key is assigned by
// the application (creation timestamp in unix milliseconds), not a sequence.
type ProductModel struct {
	ID          int64     `gorm:"primary_key;autoIncrement:false"`
	SellerID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(50);index;not null"`
	Description string    `gorm:"type:text"`
	Quantity    float64
	Unit        string `gorm:"type:varchar(20)"`
	Price       float64
	HarvestDate *time.Time
	Latitude    *float64 `gorm:"type:double precision"`
	Longitude   *float64 `gorm:"type:double precision"`
	Status      string   `gorm:"type:varchar(20);index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
