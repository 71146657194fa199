package validators

import (
	"errors"
	"testing"
	"time"

	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
)

func ptr[T any](v T) *T {
	return &v
}

func TestValidateCreateTaskRequest(t *testing.T) {
	now := time.Now()

	fields, err := ValidateCreateTaskRequest(&dto.CreateTaskRequest{
		Title:    "Pay rent",
		Priority: ptr(1),
		DueDate:  ptr("2026-07-01T09:00:00Z"),
	}, now)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if fields.Priority != constants.PriorityUrgent {
		t.Errorf("expected priority 1, got %d", fields.Priority)
	}
	if fields.DueDate == nil || !fields.DueDate.Equal(time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected due date %v", fields.DueDate)
	}

	for name, req := range map[string]dto.CreateTaskRequest{
		"missing title": {},
		"bad priority":  {Title: "x", Priority: ptr(9)},
		"bad due date":  {Title: "x", DueDate: ptr("someday")},
	} {
		if _, err := ValidateCreateTaskRequest(&req, now); !errors.Is(err, apperrors.ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestValidateUpdateTaskRequest(t *testing.T) {
	now := time.Now()

	req := dto.UpdateTaskRequest{
		Description: dto.Optional[string]{Set: true, Null: true},
		Status:      dto.Optional[string]{Set: true, Value: "blocked"},
	}

	patch, err := ValidateUpdateTaskRequest(&req, now)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if patch.Title != nil || patch.Priority != nil || patch.DueDate.Set {
		t.Error("absent fields must stay absent in the patch")
	}
	if !patch.Description.Set || patch.Description.Value != nil {
		t.Errorf("expected description clear, got %+v", patch.Description)
	}
	if patch.Status == nil || *patch.Status != constants.StatusBlocked {
		t.Errorf("expected status blocked, got %v", patch.Status)
	}

	for name, bad := range map[string]dto.UpdateTaskRequest{
		"null title":     {Title: dto.Optional[string]{Set: true, Null: true}},
		"empty title":    {Title: dto.Optional[string]{Set: true}},
		"null status":    {Status: dto.Optional[string]{Set: true, Null: true}},
		"unknown status": {Status: dto.Optional[string]{Set: true, Value: "archived"}},
		"priority range": {Priority: dto.Optional[int]{Set: true, Value: 0}},
		"bad due date":   {DueDate: dto.Optional[string]{Set: true, Value: "soon"}},
	} {
		if _, err := ValidateUpdateTaskRequest(&bad, now); !errors.Is(err, apperrors.ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestValidateLimitAndID(t *testing.T) {
	if got, err := ValidateLimit("", 100); err != nil || got != 100 {
		t.Errorf("ValidateLimit(\"\") = %d, %v", got, err)
	}
	if got, err := ValidateLimit("5", 100); err != nil || got != 5 {
		t.Errorf("ValidateLimit(\"5\") = %d, %v", got, err)
	}
	for _, v := range []string{"0", "-3", "many"} {
		if _, err := ValidateLimit(v, 100); !errors.Is(err, apperrors.ErrInvalidLimit) {
			t.Errorf("ValidateLimit(%q) expected ErrInvalidLimit, got %v", v, err)
		}
	}

	if id, err := ValidateTaskID("12"); err != nil || id != 12 {
		t.Errorf("ValidateTaskID(\"12\") = %d, %v", id, err)
	}
	for _, v := range []string{"0", "-1", "abc", ""} {
		if _, err := ValidateTaskID(v); !errors.Is(err, apperrors.ErrValidation) {
			t.Errorf("ValidateTaskID(%q) expected validation error, got %v", v, err)
		}
	}
}
