package http

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	"taskflow.com/taskflow/internal/export"
	"taskflow.com/taskflow/internal/http/validators"
	"taskflow.com/taskflow/internal/services"
)

type Handler struct {
	taskService  *services.TaskService
	defaultLimit int
}

func NewHandler(taskService *services.TaskService, defaultLimit int) *Handler {
	return &Handler{
		taskService:  taskService,
		defaultLimit: defaultLimit,
	}
}

// respondError converts domain errors into HTTP errors. Anything that is not
// an Exception is logged and reported without detail.
func respondError(c echo.Context, err error) error {
	if apperrors.IsException(err) {
		return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
	}

	log.Printf("%s %s failed: %v", c.Request().Method, c.Path(), err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{
		Message: "Welcome to TaskFlow API!",
		Status:  "running",
		Docs:    "See /tasks, /stats and /export for the available endpoints",
	})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}

	fields, err := validators.ValidateCreateTaskRequest(&req, time.Now())
	if err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), fields)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) ListTasks(c echo.Context) error {
	status, err := validators.ValidateStatusFilter(c.QueryParam("status"))
	if err != nil {
		return respondError(c, err)
	}

	limit, err := validators.ValidateLimit(c.QueryParam("limit"), h.defaultLimit)
	if err != nil {
		return respondError(c, err)
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), status, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := validators.ValidateTaskID(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := validators.ValidateTaskID(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	var req dto.UpdateTaskRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return respondError(c, apperrors.ErrInvalidJSON)
	}

	patch, err := validators.ValidateUpdateTaskRequest(&req, time.Now())
	if err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := validators.ValidateTaskID(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	title, err := h.taskService.DeleteTask(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteTaskResponse{
		Message:   fmt.Sprintf("Task %d deleted successfully", id),
		TaskTitle: title,
	})
}

func (h *Handler) TodayTasks(c echo.Context) error {
	tasks, err := h.taskService.TodayTasks(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

func (h *Handler) MarkDone(c echo.Context) error {
	id, err := validators.ValidateTaskID(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.MarkDone(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) ExportCSV(c echo.Context) error {
	status, err := validators.ValidateStatusFilter(c.QueryParam("status"))
	if err != nil {
		return respondError(c, err)
	}

	tasks, err := h.taskService.ExportTasks(c.Request().Context(), status)
	if err != nil {
		return respondError(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", export.CSVFilename))
	res.WriteHeader(http.StatusOK)

	if err := export.WriteCSV(res, tasks); err != nil {
		// Headers are already sent; the client sees a truncated body.
		log.Printf("csv export failed: %v", err)
	}
	return nil
}

func (h *Handler) ExportJSON(c echo.Context) error {
	status, err := validators.ValidateStatusFilter(c.QueryParam("status"))
	if err != nil {
		return respondError(c, err)
	}

	tasks, err := h.taskService.ExportTasks(c.Request().Context(), status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

func (h *Handler) Stats(c echo.Context) error {
	summary, err := h.taskService.Stats(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
