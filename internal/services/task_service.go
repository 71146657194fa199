package services

import (
	"context"
	"time"

	"taskflow.com/taskflow/internal/constants"
	apperrors "taskflow.com/taskflow/internal/errors"
	"taskflow.com/taskflow/internal/lifecycle"
	model "taskflow.com/taskflow/internal/models"
	"taskflow.com/taskflow/internal/query"
	repository "taskflow.com/taskflow/internal/repositories"
	"taskflow.com/taskflow/internal/stats"
)

type TaskService struct {
	repo *repository.TaskRepository
	now  func() time.Time
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock replaces the time source used for timestamps and date filters.
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

func (s *TaskService) CreateTask(ctx context.Context, fields lifecycle.Fields) (*model.Task, error) {
	task, err := lifecycle.NewTask(fields, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// ListTasks returns up to limit tasks, restricted to status when it is set.
func (s *TaskService) ListTasks(ctx context.Context, status constants.TaskStatus, limit int) ([]model.Task, error) {
	if limit < 1 {
		return nil, apperrors.ErrInvalidLimit
	}
	if status != "" && !status.Valid() {
		return nil, apperrors.Validation("status must be one of todo, in_progress, done, blocked")
	}

	return s.repo.List(ctx, query.ByStatus(status, limit))
}

// UpdateTask applies a partial update. The row is only written when a value
// actually changed.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, patch lifecycle.Patch) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := lifecycle.Apply(task, patch, s.now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return task, nil
	}

	if err := s.repo.Save(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) MarkDone(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.MarkDone(task, s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask removes the task and returns its title.
func (s *TaskService) DeleteTask(ctx context.Context, id uint) (string, error) {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) TodayTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx, query.Today(s.now()))
}

func (s *TaskService) OverdueTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx, query.Overdue(s.now()))
}

// ExportTasks returns every task, optionally restricted to one status.
func (s *TaskService) ExportTasks(ctx context.Context, status constants.TaskStatus) ([]model.Task, error) {
	if status != "" && !status.Valid() {
		return nil, apperrors.Validation("status must be one of todo, in_progress, done, blocked")
	}
	return s.repo.List(ctx, query.ByStatus(status, 0))
}

func (s *TaskService) Stats(ctx context.Context) (stats.Summary, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return stats.Summary{}, err
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return stats.Summary{}, err
	}

	overdue, err := s.repo.CountOverdue(ctx, s.now())
	if err != nil {
		return stats.Summary{}, err
	}

	return stats.Build(total, counts, overdue), nil
}
