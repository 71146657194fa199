package http

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dto "taskflow.com/taskflow/internal/data_models"
	middleware "taskflow.com/taskflow/internal/http/middlewares"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
	"taskflow.com/taskflow/internal/services"
	"taskflow.com/taskflow/internal/stats"
)

func setupTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tasks.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.Task{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	service := services.NewTaskService(repository.NewTaskRepository(db))

	e := echo.New()
	Register(e, NewHandler(service, 100), middleware.NewMemoryCounter(), 10000)
	return e
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func createTask(t *testing.T, e *echo.Echo, body string) dto.TaskResponse {
	t.Helper()

	rec := do(t, e, http.MethodPost, "/tasks", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}
	return decode[dto.TaskResponse](t, rec)
}

func TestHandler_Health(t *testing.T) {
	e := setupTestServer(t)

	for _, path := range []string{"/", "/api/health"} {
		rec := do(t, e, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s returned %d", path, rec.Code)
		}
		if got := decode[dto.HealthResponse](t, rec); got.Status != "running" {
			t.Errorf("%s: expected status running, got %q", path, got.Status)
		}
	}
}

func TestHandler_CreateTask(t *testing.T) {
	e := setupTestServer(t)

	task := createTask(t, e, `{"title":"Test Task","description":"This is a test task","priority":1,"due_date":"2030-01-02T10:00:00Z"}`)

	if task.ID == 0 || task.Title != "Test Task" || task.Priority != 1 || task.Status != "todo" {
		t.Errorf("unexpected task %+v", task)
	}
	if task.Description == nil || *task.Description != "This is a test task" {
		t.Errorf("unexpected description %v", task.Description)
	}
	if task.DueDate == nil || !task.DueDate.Equal(time.Date(2030, 1, 2, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected due date %v", task.DueDate)
	}
	if task.UpdatedAt != nil {
		t.Errorf("expected updated_at null, got %v", task.UpdatedAt)
	}

	defaults := createTask(t, e, `{"title":"Minimal"}`)
	if defaults.Priority != 3 || defaults.Status != "todo" {
		t.Errorf("expected defaults, got %+v", defaults)
	}

	wide := strings.Repeat("日", 100)
	if got := createTask(t, e, `{"title":"`+wide+`"}`); got.Title != wide {
		t.Errorf("multi-byte title stored as %q", got.Title)
	}
}

func TestHandler_CreateTask_Invalid(t *testing.T) {
	e := setupTestServer(t)

	for name, body := range map[string]string{
		"missing title": `{"description":"no title"}`,
		"empty title":   `{"title":""}`,
		"bad priority":  `{"title":"x","priority":7}`,
		"wrong type":    `{"title":"x","priority":"high"}`,
		"bad due date":  `{"title":"x","due_date":"whenever"}`,
		"broken json":   `{"title":`,
	} {
		rec := do(t, e, http.MethodPost, "/tasks", body)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d (%s)", name, rec.Code, rec.Body.String())
		}
	}
}

func TestHandler_GetTask(t *testing.T) {
	e := setupTestServer(t)
	created := createTask(t, e, `{"title":"Find me"}`)

	rec := do(t, e, http.MethodGet, "/tasks/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decode[dto.TaskResponse](t, rec); got.ID != created.ID || got.Title != "Find me" {
		t.Errorf("unexpected task %+v", got)
	}

	rec = do(t, e, http.MethodGet, "/tasks/999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if msg := decode[map[string]string](t, rec)["message"]; msg != "Task 999 not found" {
		t.Errorf("unexpected message %q", msg)
	}

	if rec := do(t, e, http.MethodGet, "/tasks/abc", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for a non-numeric id, got %d", rec.Code)
	}
}

func TestHandler_ListTasks(t *testing.T) {
	e := setupTestServer(t)

	for _, title := range []string{"one", "two", "three"} {
		createTask(t, e, `{"title":"`+title+`"}`)
	}
	do(t, e, http.MethodPost, "/tasks/2/done", "")

	rec := do(t, e, http.MethodGet, "/tasks/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if all := decode[[]dto.TaskResponse](t, rec); len(all) != 3 {
		t.Errorf("expected 3 tasks, got %d", len(all))
	}

	done := decode[[]dto.TaskResponse](t, do(t, e, http.MethodGet, "/tasks?status=done", ""))
	if len(done) != 1 || done[0].Title != "two" {
		t.Errorf("expected only task two, got %+v", done)
	}

	limited := decode[[]dto.TaskResponse](t, do(t, e, http.MethodGet, "/tasks?limit=2", ""))
	if len(limited) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(limited))
	}

	if rec := do(t, e, http.MethodGet, "/tasks?status=archived", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for unknown status, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodGet, "/tasks?limit=0", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for limit=0, got %d", rec.Code)
	}
}

func TestHandler_UpdateTask(t *testing.T) {
	e := setupTestServer(t)
	createTask(t, e, `{"title":"Original","description":"notes","priority":5}`)

	rec := do(t, e, http.MethodPut, "/tasks/1", `{"title":"Updated","status":"in_progress"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	updated := decode[dto.TaskResponse](t, rec)
	if updated.Title != "Updated" || updated.Status != "in_progress" || updated.Priority != 5 {
		t.Errorf("unexpected task %+v", updated)
	}
	if updated.Description == nil || *updated.Description != "notes" {
		t.Error("fields absent from the body must be untouched")
	}
	if updated.UpdatedAt == nil {
		t.Error("expected updated_at to be set")
	}

	cleared := decode[dto.TaskResponse](t, do(t, e, http.MethodPut, "/tasks/1", `{"description":null}`))
	if cleared.Description != nil {
		t.Errorf("expected description to be cleared, got %v", *cleared.Description)
	}

	if rec := do(t, e, http.MethodPut, "/tasks/999", `{"title":"x"}`); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodPut, "/tasks/1", `{"status":"archived"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodPut, "/tasks/1", `{"status":"blocked"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for in_progress -> blocked, got %d", rec.Code)
	}
}

func TestHandler_DeleteTask(t *testing.T) {
	e := setupTestServer(t)
	createTask(t, e, `{"title":"Task to Delete"}`)

	rec := do(t, e, http.MethodDelete, "/tasks/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := decode[dto.DeleteTaskResponse](t, rec)
	if body.Message != "Task 1 deleted successfully" || body.TaskTitle != "Task to Delete" {
		t.Errorf("unexpected body %+v", body)
	}

	if rec := do(t, e, http.MethodGet, "/tasks/1", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodDelete, "/tasks/1", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 deleting twice, got %d", rec.Code)
	}
}

func TestHandler_MarkDone(t *testing.T) {
	e := setupTestServer(t)
	createTask(t, e, `{"title":"Finish"}`)

	rec := do(t, e, http.MethodPost, "/tasks/1/done", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decode[dto.TaskResponse](t, rec); got.Status != "done" {
		t.Errorf("expected done, got %s", got.Status)
	}

	rec = do(t, e, http.MethodPost, "/tasks/1/done", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on second call, got %d", rec.Code)
	}
	if msg := decode[map[string]string](t, rec)["message"]; !strings.Contains(msg, "already done") {
		t.Errorf("unexpected message %q", msg)
	}

	if rec := do(t, e, http.MethodPost, "/tasks/999/done", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_TodayTasks(t *testing.T) {
	e := setupTestServer(t)
	now := time.Now()

	createTask(t, e, `{"title":"Due today","due_date":"`+now.Format(time.RFC3339)+`"}`)
	createTask(t, e, `{"title":"Working","due_date":"`+now.AddDate(0, 0, 10).Format(time.RFC3339)+`"}`)
	do(t, e, http.MethodPut, "/tasks/2", `{"status":"in_progress"}`)
	createTask(t, e, `{"title":"Due tomorrow","due_date":"tomorrow"}`)

	rec := do(t, e, http.MethodGet, "/tasks/today", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	tasks := decode[[]dto.TaskResponse](t, rec)
	got := map[string]bool{}
	for _, task := range tasks {
		got[task.Title] = true
	}
	if len(tasks) != 2 || !got["Due today"] || !got["Working"] {
		t.Errorf("unexpected today tasks %v", got)
	}
}

func TestHandler_Export(t *testing.T) {
	e := setupTestServer(t)
	createTask(t, e, `{"title":"Alpha","description":"first"}`)
	createTask(t, e, `{"title":"Beta"}`)
	do(t, e, http.MethodPost, "/tasks/2/done", "")

	t.Run("csv", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/export/csv", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
			t.Errorf("unexpected content type %q", ct)
		}
		if cd := rec.Header().Get(echo.HeaderContentDisposition); cd != "attachment; filename=taskflow_export.csv" {
			t.Errorf("unexpected content disposition %q", cd)
		}

		records, err := csv.NewReader(rec.Body).ReadAll()
		if err != nil {
			t.Fatalf("invalid csv: %v", err)
		}
		if len(records) != 3 || records[0][0] != "id" || records[1][1] != "Alpha" {
			t.Errorf("unexpected records %v", records)
		}
	})

	t.Run("csv by status", func(t *testing.T) {
		records, err := csv.NewReader(do(t, e, http.MethodGet, "/export/csv?status=done", "").Body).ReadAll()
		if err != nil {
			t.Fatalf("invalid csv: %v", err)
		}
		if len(records) != 2 || records[1][1] != "Beta" {
			t.Errorf("unexpected records %v", records)
		}
	})

	t.Run("json", func(t *testing.T) {
		rec := do(t, e, http.MethodGet, "/export/json?status=todo", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		raw := decode[[]map[string]any](t, rec)
		if len(raw) != 1 || raw[0]["title"] != "Alpha" {
			t.Fatalf("unexpected export %v", raw)
		}
		for _, key := range []string{"due_date", "updated_at"} {
			if v, ok := raw[0][key]; !ok || v != nil {
				t.Errorf("expected %q to be null, got %v", key, v)
			}
		}
	})

	t.Run("bad status", func(t *testing.T) {
		if rec := do(t, e, http.MethodGet, "/export/json?status=nope", ""); rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", rec.Code)
		}
	})
}

func TestHandler_Stats(t *testing.T) {
	e := setupTestServer(t)

	empty := decode[stats.Summary](t, do(t, e, http.MethodGet, "/stats", ""))
	if empty.CompletionRate != "0%" || empty.TotalTasks != 0 {
		t.Errorf("unexpected empty stats %+v", empty)
	}

	yesterday := time.Now().AddDate(0, 0, -1).Format(time.RFC3339)
	createTask(t, e, `{"title":"A"}`)
	createTask(t, e, `{"title":"B","due_date":"`+yesterday+`"}`)
	do(t, e, http.MethodPost, "/tasks/1/done", "")

	summary := decode[stats.Summary](t, do(t, e, http.MethodGet, "/stats/", ""))
	if summary.TotalTasks != 2 || summary.ByStatus.Done != 1 || summary.ByStatus.Todo != 1 {
		t.Errorf("unexpected counts %+v", summary)
	}
	if summary.OverdueTasks != 1 {
		t.Errorf("expected 1 overdue task, got %d", summary.OverdueTasks)
	}
	if summary.CompletionRate != "50.0%" {
		t.Errorf("expected 50.0%%, got %s", summary.CompletionRate)
	}
}

func TestHandler_RequestID(t *testing.T) {
	e := setupTestServer(t)

	rec := do(t, e, http.MethodGet, "/api/health", "")
	if id := rec.Header().Get(echo.HeaderXRequestID); len(id) != 36 {
		t.Errorf("expected a uuid request id, got %q", id)
	}
}
