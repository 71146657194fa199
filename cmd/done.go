package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	apperrors "taskflow.com/taskflow/internal/errors"
	"taskflow.com/taskflow/internal/http/validators"
	"taskflow.com/taskflow/internal/services"
)

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: a.withService(func(cmd *cobra.Command, args []string, svc *services.TaskService) error {
			id, err := validators.ValidateTaskID(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			task, err := svc.MarkDone(cmd.Context(), id)
			if errors.Is(err, apperrors.ErrAlreadyDone) {
				printStatus(out, "!", fmt.Sprintf("Task #%d is already done", id), color.FgYellow)
				return nil
			}
			if err != nil {
				return err
			}

			printStatus(out, "✓", fmt.Sprintf("Task #%d marked as done: %s", task.ID, task.Title), color.FgGreen)
			return nil
		}),
	}
}
