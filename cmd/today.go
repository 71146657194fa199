package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	model "taskflow.com/taskflow/internal/models"
	"taskflow.com/taskflow/internal/services"
)

func newTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show what is on for today",
		Args:  cobra.NoArgs,
		RunE: a.withService(func(cmd *cobra.Command, args []string, svc *services.TaskService) error {
			ctx := cmd.Context()

			today, err := svc.TodayTasks(ctx)
			if err != nil {
				return err
			}
			overdue, err := svc.OverdueTasks(ctx)
			if err != nil {
				return err
			}
			summary, err := svc.Stats(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			bold := color.New(color.Bold)

			fmt.Fprintf(out, "\n📅 %s  %s\n\n", bold.Sprint("TODAY"), time.Now().Format("Monday, January 2"))
			if len(today) == 0 {
				fmt.Fprintln(out, "Nothing due today")
			} else if err := printTasks(out, today); err != nil {
				return err
			}

			shown := make(map[uint]bool, len(today))
			for _, t := range today {
				shown[t.ID] = true
			}
			var late []model.Task
			for _, t := range overdue {
				if !shown[t.ID] {
					late = append(late, t)
				}
			}
			if len(late) > 0 {
				fmt.Fprintf(out, "\n%s\n\n", color.RedString("⚠ OVERDUE"))
				if err := printTasks(out, late); err != nil {
					return err
				}
			}

			fmt.Fprintf(out, "\n📊 %s\n", bold.Sprint("STATS"))
			fmt.Fprintf(out, "  Total in backlog: %d\n", summary.Backlog())
			fmt.Fprintf(out, "  Completed: %d\n", summary.ByStatus.Done)
			fmt.Fprintf(out, "  Overdue: %d\n", summary.OverdueTasks)
			fmt.Fprintf(out, "  Completion rate: %s\n", summary.CompletionRate)
			return nil
		}),
	}
}
