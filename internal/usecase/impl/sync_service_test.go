package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/service"
	mockRepo "github.com/BeMaTech82/hortago/internal/mocks/repository"
	mockService "github.com/BeMaTech82/hortago/internal/mocks/service"
	"github.com/BeMaTech82/hortago/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type syncServiceFixtures struct {
	service   usecase.SyncUsecase
	taskRepo  *mockRepo.MockTaskQueueRepository
	upstream  *mockService.MockUpstreamClient
	publisher *mockService.MockEventPublisher
}

func createTestSyncService(t *testing.T) *syncServiceFixtures {
	taskRepo := mockRepo.NewMockTaskQueueRepository(t)
	upstream := mockService.NewMockUpstreamClient(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewSyncService(SyncServiceParams{
		TaskRepo:  taskRepo,
		Upstream:  upstream,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return &syncServiceFixtures{
		service:   svc,
		taskRepo:  taskRepo,
		upstream:  upstream,
		publisher: publisher,
	}
}

func newQueuedTask(id int64, method, path string) *entity.QueuedTask {
	return &entity.QueuedTask{
		ID:            id,
		Key:           uuid.New(),
		Method:        method,
		Path:          path,
		ContentType:   "application/json",
		Body:          []byte(`{"quantity":2}`),
		NextAttemptAt: time.Now().Add(-time.Minute),
		CreatedAt:     time.Now().Add(-time.Hour),
	}
}

func okUpstreamResponse() *service.CachedResponse {
	return &service.CachedResponse{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       []byte(`{"ok":true}`),
		FetchedAt:  time.Now(),
	}
}

func TestSyncService_Enqueue_Success(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.taskRepo.EXPECT().AddTask(ctx, mock.AnythingOfType("*entity.QueuedTask")).Return(nil)

	task, err := fx.service.Enqueue(ctx, &usecase.EnqueueTaskInput{
		Method:      http.MethodPost,
		Path:        "/api/v1/orders",
		ContentType: "application/json",
		Body:        []byte(`{"product_id":42}`),
	})

	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, http.MethodPost, task.Method)
	assert.Equal(t, "/api/v1/orders", task.Path)
	assert.NotEqual(t, uuid.Nil, task.Key)
	assert.Zero(t, task.Attempts)
	assert.False(t, task.NextAttemptAt.After(time.Now()), "new task is due immediately")
}

func TestSyncService_Enqueue_PersistenceFailure(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.taskRepo.EXPECT().AddTask(ctx, mock.AnythingOfType("*entity.QueuedTask")).Return(assert.AnError)

	task, err := fx.service.Enqueue(ctx, &usecase.EnqueueTaskInput{
		Method: http.MethodPost,
		Path:   "/api/v1/orders",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSyncEnqueueFailed)
	assert.Nil(t, task)
}

func TestSyncService_Drain_AllSucceed(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	tasks := []*entity.QueuedTask{
		newQueuedTask(1, http.MethodPost, "/api/v1/orders"),
		newQueuedTask(2, http.MethodPut, "/api/v1/products/7"),
		newQueuedTask(3, http.MethodDelete, "/api/v1/searches/3"),
	}

	var replayedKeys []string
	fx.taskRepo.EXPECT().FindDueTasks(ctx, mock.AnythingOfType("time.Time")).Return(tasks, nil)
	fx.upstream.EXPECT().Do(ctx, mock.AnythingOfType("*service.UpstreamRequest")).
		Run(func(_ context.Context, req *service.UpstreamRequest) {
			replayedKeys = append(replayedKeys, req.Header.Get("Idempotency-Key"))
		}).
		Return(okUpstreamResponse(), nil).Times(3)
	fx.taskRepo.EXPECT().DeleteTask(ctx, int64(1)).Return(nil)
	fx.taskRepo.EXPECT().DeleteTask(ctx, int64(2)).Return(nil)
	fx.taskRepo.EXPECT().DeleteTask(ctx, int64(3)).Return(nil)
	fx.taskRepo.EXPECT().CountTasks(ctx).Return(0, nil)
	fx.publisher.EXPECT().PublishSyncCompleted(ctx, mock.AnythingOfType("*service.SyncCompletedEvent")).Return(nil)

	event, err := fx.service.Drain(ctx)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, 3, event.Attempted)
	assert.Equal(t, 3, event.Succeeded)
	assert.Equal(t, 0, event.Failed)
	assert.Equal(t, int64(0), event.Remaining)

	// Replays run in queue order and each carries its task's stable key.
	require.Len(t, replayedKeys, 3)
	assert.Equal(t, tasks[0].Key.String(), replayedKeys[0])
	assert.Equal(t, tasks[1].Key.String(), replayedKeys[1])
	assert.Equal(t, tasks[2].Key.String(), replayedKeys[2])
}

func TestSyncService_Drain_FailedTasksAreRescheduled(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	tasks := []*entity.QueuedTask{
		newQueuedTask(1, http.MethodPost, "/api/v1/orders"),
		newQueuedTask(2, http.MethodPost, "/api/v1/orders"),
	}
	tasks[1].Attempts = 3

	fx.taskRepo.EXPECT().FindDueTasks(ctx, mock.AnythingOfType("time.Time")).Return(tasks, nil)
	fx.upstream.EXPECT().Do(ctx, mock.AnythingOfType("*service.UpstreamRequest")).Return(nil, assert.AnError).Times(2)
	fx.taskRepo.EXPECT().UpdateTaskRetry(ctx, int64(1), 1, mock.AnythingOfType("time.Time")).Return(nil)
	fx.taskRepo.EXPECT().UpdateTaskRetry(ctx, int64(2), 4, mock.AnythingOfType("time.Time")).Return(nil)
	fx.taskRepo.EXPECT().CountTasks(ctx).Return(2, nil)
	fx.publisher.EXPECT().PublishSyncCompleted(ctx, mock.AnythingOfType("*service.SyncCompletedEvent")).Return(nil)

	event, err := fx.service.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, event.Attempted)
	assert.Equal(t, 0, event.Succeeded)
	assert.Equal(t, 2, event.Failed)
	assert.Equal(t, int64(2), event.Remaining)
}

func TestSyncService_Drain_RejectedReplayIsNotDeleted(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	task := newQueuedTask(1, http.MethodPost, "/api/v1/orders")
	rejected := &service.CachedResponse{StatusCode: http.StatusUnprocessableEntity, Header: http.Header{}}

	fx.taskRepo.EXPECT().FindDueTasks(ctx, mock.AnythingOfType("time.Time")).Return([]*entity.QueuedTask{task}, nil)
	fx.upstream.EXPECT().Do(ctx, mock.AnythingOfType("*service.UpstreamRequest")).Return(rejected, nil)
	fx.taskRepo.EXPECT().UpdateTaskRetry(ctx, int64(1), 1, mock.AnythingOfType("time.Time")).Return(nil)
	fx.taskRepo.EXPECT().CountTasks(ctx).Return(1, nil)
	fx.publisher.EXPECT().PublishSyncCompleted(ctx, mock.AnythingOfType("*service.SyncCompletedEvent")).Return(nil)

	event, err := fx.service.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, event.Failed)
	assert.Equal(t, 0, event.Succeeded)
}

func TestSyncService_Drain_LoadFailure(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.taskRepo.EXPECT().FindDueTasks(ctx, mock.AnythingOfType("time.Time")).Return(nil, assert.AnError)

	event, err := fx.service.Drain(ctx)

	require.Error(t, err)
	assert.Nil(t, event)
}

func TestSyncService_Drain_AlreadyInProgress(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	inner, ok := fx.service.(*syncService)
	require.True(t, ok)
	inner.draining.Store(true)

	event, err := fx.service.Drain(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSyncDrainInProgress)
	assert.Nil(t, event)
}

func TestSyncService_Drain_PublishFailureIsTolerated(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.taskRepo.EXPECT().FindDueTasks(ctx, mock.AnythingOfType("time.Time")).Return(nil, nil)
	fx.taskRepo.EXPECT().CountTasks(ctx).Return(0, nil)
	fx.publisher.EXPECT().PublishSyncCompleted(ctx, mock.AnythingOfType("*service.SyncCompletedEvent")).Return(assert.AnError)

	event, err := fx.service.Drain(ctx)

	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, 0, event.Attempted)
}

func TestSyncService_Pending(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	tasks := []*entity.QueuedTask{newQueuedTask(1, http.MethodPost, "/api/v1/orders")}
	fx.taskRepo.EXPECT().FindAllTasks(ctx).Return(tasks, nil)

	pending, err := fx.service.Pending(ctx)

	require.NoError(t, err)
	assert.Equal(t, tasks, pending)
}

func TestBackoffDelay(t *testing.T) {
	base := 5 * time.Second
	ceiling := 15 * time.Minute

	tests := []struct {
		name     string
		attempts int
		want     time.Duration
	}{
		{name: "first attempt uses base", attempts: 1, want: 5 * time.Second},
		{name: "second attempt doubles", attempts: 2, want: 10 * time.Second},
		{name: "fourth attempt keeps doubling", attempts: 4, want: 40 * time.Second},
		{name: "large attempt count is capped", attempts: 20, want: ceiling},
		{name: "zero attempts behaves as first", attempts: 0, want: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backoffDelay(tt.attempts, base, ceiling))
		})
	}
}
