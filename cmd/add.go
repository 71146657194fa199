package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taskflow.com/taskflow/internal/constants"
	"taskflow.com/taskflow/internal/lifecycle"
	"taskflow.com/taskflow/internal/services"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		priority    int
		due         string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.withService(func(cmd *cobra.Command, args []string, svc *services.TaskService) error {
			p, err := constants.ParsePriority(priority)
			if err != nil {
				return err
			}

			fields := lifecycle.Fields{
				Title:    strings.Join(args, " "),
				Priority: p,
			}
			if cmd.Flags().Changed("description") {
				fields.Description = &description
			}
			if due != "" {
				d, err := parseDue(cmd.ErrOrStderr(), due)
				if err != nil {
					return err
				}
				fields.DueDate = &d
			}

			task, err := svc.CreateTask(cmd.Context(), fields)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printStatus(out, "✓", fmt.Sprintf("Added task #%d: %s", task.ID, task.Title), color.FgGreen)
			fmt.Fprintf(out, "  Priority: %s\n", priorityLabel(task.Priority))
			if task.DueDate != nil {
				fmt.Fprintf(out, "  Due: %s\n", formatDue(task.DueDate))
			}
			return nil
		}),
	}

	cmd.Flags().IntVarP(&priority, "priority", "p", int(constants.DefaultPriority), "priority from 1 (urgent) to 5 (none)")
	cmd.Flags().StringVarP(&due, "due", "d", "", "due date: today, tomorrow, YYYY-MM-DD or an RFC 3339 timestamp")
	cmd.Flags().StringVar(&description, "description", "", "task description")

	return cmd
}
