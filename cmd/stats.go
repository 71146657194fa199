package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"taskflow.com/taskflow/internal/services"
)

func newStatsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Args:  cobra.NoArgs,
		RunE: a.withService(func(cmd *cobra.Command, args []string, svc *services.TaskService) error {
			summary, err := svc.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}

			fmt.Fprintf(out, "Total tasks:     %d\n", summary.TotalTasks)
			fmt.Fprintf(out, "  todo:          %d\n", summary.ByStatus.Todo)
			fmt.Fprintf(out, "  in progress:   %d\n", summary.ByStatus.InProgress)
			fmt.Fprintf(out, "  done:          %d\n", summary.ByStatus.Done)
			fmt.Fprintf(out, "  blocked:       %d\n", summary.ByStatus.Blocked)
			fmt.Fprintf(out, "Overdue:         %d\n", summary.OverdueTasks)
			fmt.Fprintf(out, "Completion rate: %s\n", summary.CompletionRate)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the statistics as JSON")

	return cmd
}
