package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taskflow.com/taskflow/internal/http/validators"
	"taskflow.com/taskflow/internal/services"
)

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: a.withService(func(cmd *cobra.Command, args []string, svc *services.TaskService) error {
			id, err := validators.ValidateTaskID(args[0])
			if err != nil {
				return err
			}

			task, err := svc.GetTask(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprintf(out, "Delete task #%d %q? [y/N]: ", task.ID, task.Title)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					fmt.Fprintln(out, "Cancelled")
					return nil
				}
			}

			title, err := svc.DeleteTask(cmd.Context(), id)
			if err != nil {
				return err
			}

			printStatus(out, "✓", fmt.Sprintf("Task #%d deleted successfully: %s", id, title), color.FgGreen)
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
