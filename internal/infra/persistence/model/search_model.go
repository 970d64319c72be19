package model

import (
	"time"

	"github.com/google/uuid"
)

// SavedSearchModel mirrors the 'saved_searches' table.
type SavedSearchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Category  string    `gorm:"type:varchar(50);not null"`
	Keywords  string    `gorm:"type:varchar(255)"`
	RadiusKm  float64   `gorm:"not null"`
	MaxPrice  *float64
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedSearchModel) TableName() string {
	return "saved_searches"
}
