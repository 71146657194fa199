package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "taskflow.com/taskflow/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, counter middleware.WindowCounter, rateLimitPerMinute int) {
	e.Pre(echomw.RemoveTrailingSlash())

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.RateLimiter(counter, rateLimitPerMinute, time.Minute))

	e.GET("/", h.Health)
	e.GET("/api/health", h.Health)

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/today", h.TodayTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.POST("/tasks/:id/done", h.MarkDone)

	e.GET("/export/csv", h.ExportCSV)
	e.GET("/export/json", h.ExportJSON)
	e.GET("/stats", h.Stats)
}
