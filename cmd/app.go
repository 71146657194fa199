package cmd

import (
	"log"

	"github.com/spf13/cobra"

	config "taskflow.com/taskflow/internal/configs"
	repository "taskflow.com/taskflow/internal/repositories"
	"taskflow.com/taskflow/internal/services"
)

// app carries what every subcommand needs: configuration and a task service
// bound to an open database.
type app struct {
	dsn string
	cfg config.Config
}

type runFunc func(cmd *cobra.Command, args []string, svc *services.TaskService) error

func (a *app) loadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dsn != "" {
		cfg.DatabaseDSN = a.dsn
	}
	a.cfg = cfg
	return nil
}

// withService opens the database for the duration of one command.
func (a *app) withService(run runFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.loadConfig(); err != nil {
			return err
		}

		db, err := config.NewDatabaseClient(a.cfg.DatabaseDSN, a.cfg.DatabaseDebug)
		if err != nil {
			return err
		}
		defer func() {
			if err := config.CloseDatabase(db); err != nil {
				log.Printf("failed to close database: %v", err)
			}
		}()

		svc := services.NewTaskService(repository.NewTaskRepository(db))
		return run(cmd, args, svc)
	}
}
