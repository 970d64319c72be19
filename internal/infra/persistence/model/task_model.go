package model

import (
	"time"

	"github.com/google/uuid"
)

// QueuedTaskModel mirrors the 'sync_tasks' table. The auto-increment primary
// key defines FIFO drain order.
type QueuedTaskModel struct {
	ID            int64     `gorm:"primary_key;autoIncrement"`
	Key           uuid.UUID `gorm:"type:uuid;unique;not null"`
	Method        string    `gorm:"type:varchar(10);not null"`
	Path          string    `gorm:"type:text;not null"`
	ContentType   string    `gorm:"type:varchar(255)"`
	Body          []byte    `gorm:"type:bytea"`
	Attempts      int       `gorm:"default:0"`
	NextAttemptAt time.Time `gorm:"index;not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (QueuedTaskModel) TableName() string {
	return "sync_tasks"
}
