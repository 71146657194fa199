package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "taskflow.com/taskflow/internal/configs"
	httpapi "taskflow.com/taskflow/internal/http"
	middleware "taskflow.com/taskflow/internal/http/middlewares"
	"taskflow.com/taskflow/internal/services"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Starts the TaskFlow HTTP API on APP_HOST:APP_PORT",
		RunE: a.withService(func(cmd *cobra.Command, args []string, taskService *services.TaskService) error {
			cfg := a.cfg

			counter, closeCounter, err := newRateLimitCounter(cfg)
			if err != nil {
				return err
			}
			defer closeCounter()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			e := echo.New()
			e.HideBanner = true
			httpapi.Register(e, httpapi.NewHandler(taskService, cfg.DefaultListLimit), counter, cfg.RateLimit)

			errCh := make(chan error, 1)
			go func() {
				log.Printf("HTTP server listening on %s (database %s)", cfg.AppURL, cfg.DatabaseDSN)
				if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case <-ctx.Done():
			case err := <-errCh:
				if err != nil {
					return err
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				log.Printf("server shutdown: %v", err)
			}

			log.Println("HTTP server shut down gracefully")
			return nil
		}),
	}
}

func newRateLimitCounter(cfg config.Config) (middleware.WindowCounter, func(), error) {
	if cfg.RateLimitBackend != config.RateLimitRedis {
		return middleware.NewMemoryCounter(), func() {}, nil
	}

	client, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	log.Printf("rate limiting through redis at %s", cfg.RedisAddr)
	return middleware.NewRedisCounter(client, cfg.RedisKeyPrefix), client.Close, nil
}
