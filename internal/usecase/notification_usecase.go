package usecase

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/domain/service"
)

// NotificationUsecase defines the interface for match notification dispatch.
type NotificationUsecase interface {
	// DispatchProductMatches evaluates a newly created product against every
	// saved search, records one match per search whose owner lies within its
	// radius, and publishes the resulting event for asynchronous push delivery.
	// Delivery is best-effort: errors are logged, never returned, and the
	// triggering product creation is unaffected.
	DispatchProductMatches(ctx context.Context, product *entity.Product) []*entity.ProximityMatch

	// DeliverMatchEvent resolves device tokens for the users in a match event
	// and sends the push notifications. Invoked by the push worker.
	DeliverMatchEvent(ctx context.Context, event *service.ProductMatchEvent) error
}
