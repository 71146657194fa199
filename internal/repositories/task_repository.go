package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskflow.com/taskflow/internal/constants"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
	"taskflow.com/taskflow/internal/query"
)

type statusCount struct {
	Status constants.TaskStatus
	Count  int64
}

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.TaskNotFound(id)
		}
		return nil, fmt.Errorf("failed to find task %d: %w", id, err)
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, f query.Filter) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := r.db.WithContext(ctx).Scopes(f.Scope).Order("id asc").Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Save writes every mutable column of an existing task.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"priority":    task.Priority,
			"due_date":    task.DueDate,
			"updated_at":  task.UpdatedAt,
		})

	if res.Error != nil {
		return fmt.Errorf("failed to update task %d: %w", task.ID, res.Error)
	}

	if res.RowsAffected == 0 {
		return apperrors.TaskNotFound(task.ID)
	}

	return nil
}

// Delete removes the task and returns its title.
func (r *TaskRepository) Delete(ctx context.Context, id uint) (string, error) {
	var title string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.TaskNotFound(id)
			}
			return fmt.Errorf("failed to find task %d: %w", id, err)
		}

		res := tx.Delete(&model.Task{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete task %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.TaskNotFound(id)
		}

		title = task.Title
		return nil
	})
	if err != nil {
		return "", err
	}

	return title, nil
}

func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return total, nil
}

func (r *TaskRepository) CountByStatus(ctx context.Context) (map[constants.TaskStatus]int64, error) {
	var rows []statusCount

	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks by status: %w", err)
	}

	counts := make(map[constants.TaskStatus]int64, len(constants.Statuses))
	for _, s := range constants.Statuses {
		counts[s] = 0
	}
	for _, row := range rows {
		if !row.Status.Valid() {
			return nil, fmt.Errorf("unknown stored status %q", row.Status)
		}
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func (r *TaskRepository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	var overdue int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Scopes(query.Overdue(now).Scope).
		Count(&overdue).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count overdue tasks: %w", err)
	}
	return overdue, nil
}
