// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
)

// TaskQueueRepository defines the durable FIFO backing the offline sync queue.
// The store assigns auto-increment IDs on add; ID order is drain order.
type TaskQueueRepository interface {
	// AddTask appends a task and fills in its generated ID.
	// Persistence failures are returned to the caller, never swallowed.
	AddTask(ctx context.Context, task *entity.QueuedTask) error

	// FindDueTasks retrieves, in insertion order, every task whose
	// NextAttemptAt is not after now.
	FindDueTasks(ctx context.Context, now time.Time) ([]*entity.QueuedTask, error)

	// FindAllTasks retrieves every queued task in insertion order.
	FindAllTasks(ctx context.Context) ([]*entity.QueuedTask, error)

	// DeleteTask removes a task after a confirmed successful replay.
	DeleteTask(ctx context.Context, id int64) error

	// UpdateTaskRetry records a failed replay attempt and the backoff deadline
	// before the task becomes due again.
	UpdateTaskRetry(ctx context.Context, id int64, attempts int, nextAttemptAt time.Time) error

	// CountTasks returns the number of tasks currently queued.
	CountTasks(ctx context.Context) (int64, error)
}
