package model

import (
	"time"

	"github.com/google/uuid"
)

// ProximityMatchModel mirrors the 'proximity_matches' table, one row per
// saved search matched by a product creation.
type ProximityMatchModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  int64     `gorm:"index;not null"`
	SearchID   uuid.UUID `gorm:"type:uuid;not null"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null"`
	DistanceKm float64   `gorm:"not null"`
	Status     string    `gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProximityMatchModel) TableName() string {
	return "proximity_matches"
}
