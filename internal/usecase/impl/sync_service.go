package impl

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/BeMaTech82/hortago/config"
	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	"github.com/BeMaTech82/hortago/internal/domain/service"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// idempotencyKeyHeader carries a task's stable key on every replay attempt,
// so a crash between a successful remote write and the local delete cannot
// double-apply the mutation upstream.
const idempotencyKeyHeader = "Idempotency-Key"

type syncService struct {
	taskRepo  repository.TaskQueueRepository
	upstream  service.UpstreamClient
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger

	// draining guards against overlapping drain passes, which could
	// double-replay a task.
	draining atomic.Bool
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	TaskRepo  repository.TaskQueueRepository
	Upstream  service.UpstreamClient
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSyncService creates a new sync queue service instance
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return &syncService{
		taskRepo:  params.TaskRepo,
		upstream:  params.Upstream,
		publisher: params.Publisher,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// Enqueue appends a captured mutating request to the durable queue.
func (s *syncService) Enqueue(ctx context.Context, input *usecase.EnqueueTaskInput) (*entity.QueuedTask, error) {
	now := time.Now()
	task := &entity.QueuedTask{
		Key:           uuid.New(),
		Method:        input.Method,
		Path:          input.Path,
		ContentType:   input.ContentType,
		Body:          input.Body,
		Attempts:      0,
		NextAttemptAt: now,
		CreatedAt:     now,
	}

	if err := s.taskRepo.AddTask(ctx, task); err != nil {
		s.logger.Error("Failed to enqueue task", "method", input.Method, "path", input.Path, "error", err)

		return nil, errors.Wrap(domainerrors.ErrSyncEnqueueFailed, err.Error())
	}
	s.logger.Info("Task enqueued for sync", "taskID", task.ID, "method", task.Method, "path", task.Path)

	return task, nil
}

// Drain replays due tasks in insertion order. At most one pass runs at a time.
func (s *syncService) Drain(ctx context.Context) (*service.SyncCompletedEvent, error) {
	if !s.draining.CompareAndSwap(false, true) {
		s.logger.Debug("Drain already in progress, skipping")

		return nil, domainerrors.ErrSyncDrainInProgress
	}
	defer s.draining.Store(false)

	now := time.Now()
	tasks, err := s.taskRepo.FindDueTasks(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load due tasks")
	}

	succeeded, failed := 0, 0
	for _, task := range tasks {
		if err := s.replay(ctx, task); err != nil {
			failed++
			s.recordFailure(ctx, task)

			continue
		}

		// The task is removed only after a confirmed successful replay.
		if err := s.taskRepo.DeleteTask(ctx, task.ID); err != nil {
			failed++
			s.logger.Error("Replay succeeded but delete failed, task will be retried", "taskID", task.ID, "error", err)

			continue
		}
		succeeded++
	}

	remaining, err := s.taskRepo.CountTasks(ctx)
	if err != nil {
		s.logger.Warn("Failed to count remaining tasks", "error", err)
		remaining = -1
	}

	// Observers are notified after every completed pass, whether or not every
	// task succeeded.
	event := &service.SyncCompletedEvent{
		Attempted:   len(tasks),
		Succeeded:   succeeded,
		Failed:      failed,
		Remaining:   remaining,
		CompletedAt: time.Now(),
	}
	if err := s.publisher.PublishSyncCompleted(ctx, event); err != nil {
		s.logger.Warn("Failed to publish sync completed event", "error", err)
	}
	s.logger.Info("Sync drain pass finished", "attempted", event.Attempted, "succeeded", succeeded, "failed", failed, "remaining", remaining)

	return event, nil
}

// Pending retrieves every queued task in insertion order.
func (s *syncService) Pending(ctx context.Context) ([]*entity.QueuedTask, error) {
	tasks, err := s.taskRepo.FindAllTasks(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load queued tasks")
	}

	return tasks, nil
}

// replay re-issues a captured request against the upstream API.
func (s *syncService) replay(ctx context.Context, task *entity.QueuedTask) error {
	header := http.Header{}
	header.Set(idempotencyKeyHeader, task.Key.String())
	if task.ContentType != "" {
		header.Set("Content-Type", task.ContentType)
	}

	resp, err := s.upstream.Do(ctx, &service.UpstreamRequest{
		Method: task.Method,
		Path:   task.Path,
		Header: header,
		Body:   task.Body,
	})
	if err != nil {
		return errors.Wrap(err, "replay fetch failed")
	}
	if !resp.OK() {
		return errors.Errorf("replay rejected with status %d", resp.StatusCode)
	}

	return nil
}

// recordFailure bumps a task's attempt count and schedules its next try.
func (s *syncService) recordFailure(ctx context.Context, task *entity.QueuedTask) {
	attempts := task.Attempts + 1
	delay := backoffDelay(attempts, s.config.Sync.BackoffBase, s.config.Sync.BackoffCap)
	nextAttempt := time.Now().Add(delay)

	if err := s.taskRepo.UpdateTaskRetry(ctx, task.ID, attempts, nextAttempt); err != nil {
		s.logger.Error("Failed to record retry state", "taskID", task.ID, "error", err)

		return
	}
	s.logger.Debug("Task replay failed, scheduled retry", "taskID", task.ID, "attempts", attempts, "nextAttemptAt", nextAttempt)
}

// backoffDelay computes the exponential retry delay for the given attempt
// count, capped at the configured ceiling.
func backoffDelay(attempts int, base, ceiling time.Duration) time.Duration {
	if attempts < 1 {
		attempts = 1
	}

	delay := base
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= ceiling {
			return ceiling
		}
	}
	if delay > ceiling {
		return ceiling
	}

	return delay
}
