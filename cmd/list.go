package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskflow.com/taskflow/internal/constants"
	"taskflow.com/taskflow/internal/services"
)

func newListCmd(a *app) *cobra.Command {
	var (
		status string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: a.withService(func(cmd *cobra.Command, args []string, svc *services.TaskService) error {
			var filter constants.TaskStatus
			if status != "all" {
				s, err := constants.ParseStatus(status)
				if err != nil {
					return err
				}
				filter = s
			}

			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.DefaultListLimit
			}

			tasks, err := svc.ListTasks(cmd.Context(), filter, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks found")
				return nil
			}
			return printTasks(out, tasks)
		}),
	}

	cmd.Flags().StringVarP(&status, "status", "s", "all", "todo, in_progress, done, blocked or all")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of tasks (default DEFAULT_LIST_LIMIT)")

	return cmd
}
