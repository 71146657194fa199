package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taskflow.com/taskflow/internal/constants"
	"taskflow.com/taskflow/internal/export"
	model "taskflow.com/taskflow/internal/models"
	"taskflow.com/taskflow/internal/services"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		status string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks as CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: a.withService(func(cmd *cobra.Command, args []string, svc *services.TaskService) error {
			if format != export.FormatCSV && format != export.FormatJSON {
				return fmt.Errorf("unsupported format %q: use csv or json", format)
			}

			var filter constants.TaskStatus
			if status != "" && status != "all" {
				s, err := constants.ParseStatus(status)
				if err != nil {
					return err
				}
				filter = s
			}

			tasks, err := svc.ExportTasks(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if output == "" {
				return export.Write(cmd.OutOrStdout(), format, tasks)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := writeAndClose(f, format, tasks); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			printStatus(cmd.OutOrStdout(), "✓", fmt.Sprintf("Exported %d tasks to %s", len(tasks), output), color.FgGreen)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&format, "format", "f", export.FormatCSV, "csv or json")
	cmd.Flags().StringVarP(&status, "status", "s", "", "only export tasks with this status")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

// writeAndClose always closes wc; a failed Close fails the export.
func writeAndClose(wc io.WriteCloser, format string, tasks []model.Task) error {
	if err := export.Write(wc, format, tasks); err != nil {
		wc.Close()
		return err
	}
	return wc.Close()
}
