// Package lifecycle holds the rules that govern a task's fields and status:
// creation defaults, value validation, partial updates and the done transition.
package lifecycle

import (
	"strings"
	"time"
	"unicode/utf8"

	"taskflow.com/taskflow/internal/constants"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
)

const MaxTitleLength = 200

// Fields are the caller-supplied values for a new task. Zero Priority and
// empty Status mean "use the default".
type Fields struct {
	Title       string
	Description *string
	Priority    constants.Priority
	Status      constants.TaskStatus
	DueDate     *time.Time
}

// Clearable is a nullable field of a partial update. Set marks the field as
// present; a nil Value with Set clears the column.
type Clearable[T any] struct {
	Set   bool
	Value *T
}

func Clear[T any]() Clearable[T] {
	return Clearable[T]{Set: true}
}

func Assign[T any](v T) Clearable[T] {
	return Clearable[T]{Set: true, Value: &v}
}

// Patch lists the fields a partial update may touch. Nil pointers and unset
// Clearables leave the stored value alone.
type Patch struct {
	Title       *string
	Description Clearable[string]
	Priority    *constants.Priority
	Status      *constants.TaskStatus
	DueDate     Clearable[time.Time]
}

func (p Patch) Empty() bool {
	return p.Title == nil && !p.Description.Set && p.Priority == nil && p.Status == nil && !p.DueDate.Set
}

func NewTask(f Fields, now time.Time) (*model.Task, error) {
	title, err := ValidateTitle(f.Title)
	if err != nil {
		return nil, err
	}

	priority := f.Priority
	if priority == 0 {
		priority = constants.DefaultPriority
	}
	if !priority.Valid() {
		return nil, apperrors.Validation("priority must be between 1 and 5")
	}

	status := f.Status
	if status == "" {
		status = constants.StatusTodo
	}
	if !status.Valid() {
		return nil, apperrors.Validation("status must be one of todo, in_progress, done, blocked")
	}

	return &model.Task{
		Title:       title,
		Description: f.Description,
		Status:      status,
		Priority:    priority,
		CreatedAt:   now.UTC(),
		DueDate:     utcPtr(f.DueDate),
	}, nil
}

func ValidateTitle(title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", apperrors.Validation("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", apperrors.Validation("title must be at most 200 characters")
	}
	return title, nil
}

// Apply copies the present fields of p onto task. It reports whether any
// value actually changed; UpdatedAt is only advanced in that case.
func Apply(task *model.Task, p Patch, now time.Time) (bool, error) {
	if p.Title != nil {
		if _, err := ValidateTitle(*p.Title); err != nil {
			return false, err
		}
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return false, apperrors.Validation("priority must be between 1 and 5")
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return false, apperrors.Validation("status must be one of todo, in_progress, done, blocked")
		}
		if !CanTransition(task.Status, *p.Status) {
			return false, apperrors.InvalidTransition(task.ID, string(task.Status), string(*p.Status))
		}
	}

	changed := false

	if p.Title != nil && *p.Title != task.Title {
		task.Title = *p.Title
		changed = true
	}
	if p.Description.Set && !equalString(task.Description, p.Description.Value) {
		task.Description = p.Description.Value
		changed = true
	}
	if p.Priority != nil && *p.Priority != task.Priority {
		task.Priority = *p.Priority
		changed = true
	}
	if p.Status != nil && *p.Status != task.Status {
		task.Status = *p.Status
		changed = true
	}
	if p.DueDate.Set && !equalTime(task.DueDate, p.DueDate.Value) {
		task.DueDate = utcPtr(p.DueDate.Value)
		changed = true
	}

	if changed {
		touch(task, now)
	}
	return changed, nil
}

func MarkDone(task *model.Task, now time.Time) error {
	if task.Status == constants.StatusDone {
		return apperrors.AlreadyDone(task.ID)
	}
	task.Status = constants.StatusDone
	touch(task, now)
	return nil
}

// CanTransition reports whether a task may move from one status to another.
// done is terminal; every other status may finish.
func CanTransition(from, to constants.TaskStatus) bool {
	if from == to {
		return true
	}
	if from == constants.StatusDone {
		return false
	}
	if to == constants.StatusDone {
		return true
	}

	switch from {
	case constants.StatusTodo:
		return to == constants.StatusInProgress || to == constants.StatusBlocked
	case constants.StatusBlocked:
		return to == constants.StatusTodo
	}
	return false
}

func touch(task *model.Task, now time.Time) {
	ts := now.UTC()
	if ts.Before(task.CreatedAt) {
		ts = task.CreatedAt
	}
	task.UpdatedAt = &ts
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
