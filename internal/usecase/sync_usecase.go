package usecase

import (
	"context"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	"github.com/BeMaTech82/hortago/internal/domain/service"
)

// EnqueueTaskInput captures a mutating request that could not reach upstream.
type EnqueueTaskInput struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

// SyncUsecase defines the interface for the background sync queue.
type SyncUsecase interface {
	// Enqueue appends a captured mutating request to the durable queue.
	// Persistence failures are returned to the caller, never swallowed.
	Enqueue(ctx context.Context, input *EnqueueTaskInput) (*entity.QueuedTask, error)

	// Drain replays due tasks in insertion order, removing each one only
	// after a confirmed successful replay. At most one drain pass runs at a
	// time; a pass requested while another is in flight is skipped. After
	// every completed pass, observers are notified regardless of outcome.
	Drain(ctx context.Context) (*service.SyncCompletedEvent, error)

	// Pending retrieves every queued task in insertion order.
	Pending(ctx context.Context) ([]*entity.QueuedTask, error)
}
