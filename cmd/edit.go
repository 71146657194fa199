package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taskflow.com/taskflow/internal/constants"
	"taskflow.com/taskflow/internal/http/validators"
	"taskflow.com/taskflow/internal/lifecycle"
	"taskflow.com/taskflow/internal/services"
)

func newEditCmd(a *app) *cobra.Command {
	var (
		title       string
		priority    int
		status      string
		description string
		due         string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long:  "Edit the fields of a task. An empty --description clears it; --due none clears the due date.",
		Args:  cobra.ExactArgs(1),
		RunE: a.withService(func(cmd *cobra.Command, args []string, svc *services.TaskService) error {
			id, err := validators.ValidateTaskID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var patch lifecycle.Patch

			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("priority") {
				p, err := constants.ParsePriority(priority)
				if err != nil {
					return err
				}
				patch.Priority = &p
			}
			if flags.Changed("status") {
				s, err := constants.ParseStatus(status)
				if err != nil {
					return err
				}
				patch.Status = &s
			}
			if flags.Changed("description") {
				if description == "" {
					patch.Description = lifecycle.Clear[string]()
				} else {
					patch.Description = lifecycle.Assign(description)
				}
			}
			if flags.Changed("due") {
				if strings.EqualFold(due, "none") {
					patch.DueDate = lifecycle.Clear[time.Time]()
				} else {
					d, err := parseDue(cmd.ErrOrStderr(), due)
					if err != nil {
						return err
					}
					patch.DueDate = lifecycle.Assign(d)
				}
			}

			out := cmd.OutOrStdout()
			if patch.Empty() {
				fmt.Fprintln(out, "No changes specified")
				return nil
			}

			before, err := svc.GetTask(cmd.Context(), id)
			if err != nil {
				return err
			}
			old := *before

			task, err := svc.UpdateTask(cmd.Context(), id, patch)
			if err != nil {
				return err
			}

			printStatus(out, "✓", fmt.Sprintf("Task #%d updated successfully", task.ID), color.FgGreen)
			if old.Title != task.Title {
				fmt.Fprintf(out, "  Title: %s → %s\n", old.Title, task.Title)
			}
			if old.Priority != task.Priority {
				fmt.Fprintf(out, "  Priority: %d → %d\n", old.Priority, task.Priority)
			}
			if old.Status != task.Status {
				fmt.Fprintf(out, "  Status: %s → %s\n", old.Status, task.Status)
			}
			if deref(old.Description) != deref(task.Description) {
				fmt.Fprintf(out, "  Description: %q → %q\n", deref(old.Description), deref(task.Description))
			}
			if formatDue(old.DueDate) != formatDue(task.DueDate) {
				fmt.Fprintf(out, "  Due: %s → %s\n", formatDue(old.DueDate), formatDue(task.DueDate))
			}
			return nil
		}),
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().IntVarP(&priority, "priority", "p", 0, "new priority from 1 to 5")
	cmd.Flags().StringVarP(&status, "status", "s", "", "new status: todo, in_progress, done or blocked")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVarP(&due, "due", "d", "", "new due date, or none")

	return cmd
}
