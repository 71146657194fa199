package dto

import (
	"time"

	"taskflow.com/taskflow/internal/constants"
	model "taskflow.com/taskflow/internal/models"
)

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// UpdateTaskRequest distinguishes absent fields from explicit nulls so a
// partial update only touches what the client sent.
type UpdateTaskRequest struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Priority    Optional[int]    `json:"priority"`
	Status      Optional[string] `json:"status"`
	DueDate     Optional[string] `json:"due_date"`
}

// TaskResponse is the wire representation of a task. Absent optional fields
// are rendered as null.
type TaskResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	Description *string              `json:"description"`
	Priority    constants.Priority   `json:"priority"`
	Status      constants.TaskStatus `json:"status"`
	DueDate     *time.Time           `json:"due_date"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   *time.Time           `json:"updated_at"`
}

type DeleteTaskResponse struct {
	Message   string `json:"message"`
	TaskTitle string `json:"task_title"`
}

type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Docs    string `json:"docs"`
}

func NewTaskResponse(t *model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}
