package service

import (
	"context"
	"time"
)

// MatchedSearch is one saved search matched by a product creation, as carried
// inside a ProductMatchEvent.
type MatchedSearch struct {
	MatchID    string  `json:"match_id"`
	SearchID   string  `json:"search_id"`
	UserID     string  `json:"user_id"`
	DistanceKm float64 `json:"distance_km"` // Rounded to one decimal for display.
}

// ProductMatchEvent is published after notification dispatch computed the
// matches for a newly created product. The push worker resolves device tokens
// for the matched users and delivers the notifications.
type ProductMatchEvent struct {
	RequestID   string          `json:"request_id,omitempty"` // For distributed tracing.
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Price       float64         `json:"price"`
	Unit        string          `json:"unit"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Matches     []MatchedSearch `json:"matches"`
}

// SyncCompletedEvent is published after every sync queue drain pass, whether
// or not every task succeeded, so observers learn that a pass finished.
type SyncCompletedEvent struct {
	RequestID   string    `json:"request_id,omitempty"`
	Attempted   int       `json:"attempted"`
	Succeeded   int       `json:"succeeded"`
	Failed      int       `json:"failed"`
	Remaining   int64     `json:"remaining"`
	CompletedAt time.Time `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishProductMatch publishes the matches of a product creation for
	// asynchronous push delivery.
	PublishProductMatch(ctx context.Context, event *ProductMatchEvent) error

	// PublishSyncCompleted announces that a sync queue drain pass finished.
	PublishSyncCompleted(ctx context.Context, event *SyncCompletedEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
