// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"github.com/BeMaTech82/hortago/internal/domain/entity"
	domainerrors "github.com/BeMaTech82/hortago/internal/domain/errors"
	"github.com/BeMaTech82/hortago/internal/domain/repository"
	"github.com/BeMaTech82/hortago/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// taskQueueRepository implements the repository.TaskQueueRepository interface.
// Auto-increment IDs give the queue its FIFO order.
type taskQueueRepository struct {
	db *gorm.DB
}

// NewTaskQueueRepository is the constructor for taskQueueRepository.
func NewTaskQueueRepository(db *gorm.DB) repository.TaskQueueRepository {
	return &taskQueueRepository{
		db: db,
	}
}

// AddTask appends a task and fills in its generated ID.
func (repo *taskQueueRepository) AddTask(ctx context.Context, task *entity.QueuedTask) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to enqueue task")
	}

	task.ID = taskM.ID
	task.CreatedAt = taskM.CreatedAt

	return nil
}

// FindDueTasks retrieves, in insertion order, every task due at or before now.
func (repo *taskQueueRepository) FindDueTasks(ctx context.Context, now time.Time) ([]*entity.QueuedTask, error) {
	var taskModels []*model.QueuedTaskModel

	if err := repo.db.WithContext(ctx).
		Where("next_attempt_at <= ?", now).
		Order("id ASC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find due tasks")
	}

	return toTaskDomainList(taskModels), nil
}

// FindAllTasks retrieves every queued task in insertion order.
func (repo *taskQueueRepository) FindAllTasks(ctx context.Context) ([]*entity.QueuedTask, error) {
	var taskModels []*model.QueuedTaskModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all tasks")
	}

	return toTaskDomainList(taskModels), nil
}

// DeleteTask removes a task after a confirmed successful replay.
func (repo *taskQueueRepository) DeleteTask(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QueuedTaskModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete task")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("task not found")
	}

	return nil
}

// UpdateTaskRetry records a failed replay attempt and the backoff deadline.
func (repo *taskQueueRepository) UpdateTaskRetry(ctx context.Context, id int64, attempts int, nextAttemptAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QueuedTaskModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":        attempts,
			"next_attempt_at": nextAttemptAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update task retry state")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("task not found")
	}

	return nil
}

// CountTasks returns the number of tasks currently queued.
func (repo *taskQueueRepository) CountTasks(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.QueuedTaskModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count tasks")
	}

	return count, nil
}

// --- Mapper Functions ---

// toTaskDomain converts a GORM QueuedTaskModel to a domain QueuedTask entity.
func toTaskDomain(data *model.QueuedTaskModel) *entity.QueuedTask {
	if data == nil {
		return nil
	}

	return &entity.QueuedTask{
		ID:            data.ID,
		Key:           data.Key,
		Method:        data.Method,
		Path:          data.Path,
		ContentType:   data.ContentType,
		Body:          data.Body,
		Attempts:      data.Attempts,
		NextAttemptAt: data.NextAttemptAt,
		CreatedAt:     data.CreatedAt,
	}
}

func toTaskDomainList(taskModels []*model.QueuedTaskModel) []*entity.QueuedTask {
	tasks := make([]*entity.QueuedTask, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks
}

// fromTaskDomain converts a domain QueuedTask entity to a GORM QueuedTaskModel.
func fromTaskDomain(data *entity.QueuedTask) *model.QueuedTaskModel {
	if data == nil {
		return nil
	}

	return &model.QueuedTaskModel{
		ID:            data.ID,
		Key:           data.Key,
		Method:        data.Method,
		Path:          data.Path,
		ContentType:   data.ContentType,
		Body:          data.Body,
		Attempts:      data.Attempts,
		NextAttemptAt: data.NextAttemptAt,
		CreatedAt:     data.CreatedAt,
	}
}
