package validators

import (
	"strconv"
	"time"

	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	"taskflow.com/taskflow/internal/dates"
	apperrors "taskflow.com/taskflow/internal/errors"
	"taskflow.com/taskflow/internal/lifecycle"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest, now time.Time) (lifecycle.Fields, error) {
	title, err := lifecycle.ValidateTitle(r.Title)
	if err != nil {
		return lifecycle.Fields{}, err
	}

	fields := lifecycle.Fields{
		Title:       title,
		Description: r.Description,
	}

	if r.Priority != nil {
		p, err := constants.ParsePriority(*r.Priority)
		if err != nil {
			return lifecycle.Fields{}, apperrors.Validation(err.Error())
		}
		fields.Priority = p
	}

	if r.DueDate != nil {
		due, err := dates.ParseDue(*r.DueDate, now)
		if err != nil {
			return lifecycle.Fields{}, apperrors.Validation("due_date: " + err.Error())
		}
		fields.DueDate = &due
	}

	return fields, nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest, now time.Time) (lifecycle.Patch, error) {
	var patch lifecycle.Patch

	if r.Title.Set {
		if r.Title.Null {
			return patch, apperrors.Validation("title cannot be null")
		}
		title, err := lifecycle.ValidateTitle(r.Title.Value)
		if err != nil {
			return patch, err
		}
		patch.Title = &title
	}

	if r.Description.Set {
		if r.Description.Null {
			patch.Description = lifecycle.Clear[string]()
		} else {
			patch.Description = lifecycle.Assign(r.Description.Value)
		}
	}

	if r.Priority.Set {
		if r.Priority.Null {
			return patch, apperrors.Validation("priority cannot be null")
		}
		p, err := constants.ParsePriority(r.Priority.Value)
		if err != nil {
			return patch, apperrors.Validation(err.Error())
		}
		patch.Priority = &p
	}

	if r.Status.Set {
		if r.Status.Null {
			return patch, apperrors.Validation("status cannot be null")
		}
		s, err := constants.ParseStatus(r.Status.Value)
		if err != nil {
			return patch, apperrors.Validation(err.Error())
		}
		patch.Status = &s
	}

	if r.DueDate.Set {
		if r.DueDate.Null {
			patch.DueDate = lifecycle.Clear[time.Time]()
		} else {
			due, err := dates.ParseDue(r.DueDate.Value, now)
			if err != nil {
				return patch, apperrors.Validation("due_date: " + err.Error())
			}
			patch.DueDate = lifecycle.Assign(due)
		}
	}

	return patch, nil
}

// ValidateStatusFilter accepts an empty value as "any status".
func ValidateStatusFilter(v string) (constants.TaskStatus, error) {
	if v == "" {
		return "", nil
	}
	s, err := constants.ParseStatus(v)
	if err != nil {
		return "", apperrors.Validation(err.Error())
	}
	return s, nil
}

func ValidateLimit(v string, defaultLimit int) (int, error) {
	if v == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit < 1 {
		return 0, apperrors.ErrInvalidLimit
	}
	return limit, nil
}

func ValidateTaskID(v string) (uint, error) {
	id, err := strconv.ParseUint(v, 10, 0)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("task id must be a positive integer")
	}
	return uint(id), nil
}
