package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"

	"taskflow.com/taskflow/internal/constants"
	"taskflow.com/taskflow/internal/dates"
	model "taskflow.com/taskflow/internal/models"
)

const dueLayout = "Mon Jan 2 2006 15:04"

// printStatus prints a status line with color
func printStatus(w io.Writer, symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Fprintf(w, "%s %s\n", c.Sprint(symbol), message)
}

// parseDue resolves a --due value, printing the accepted forms when it is invalid.
func parseDue(w io.Writer, value string) (time.Time, error) {
	due, err := dates.ParseDue(value, time.Now())
	if err != nil {
		printStatus(w, "✗", fmt.Sprintf("Invalid date format: %q (use today, tomorrow or YYYY-MM-DD)", value), color.FgRed)
		return time.Time{}, &reportedError{err: err}
	}
	return due, nil
}

const columnGap = 2

var (
	cellStyle   = lipgloss.NewStyle().PaddingRight(columnGap)
	headerStyle = cellStyle.Bold(true)

	statusStyles = map[constants.TaskStatus]lipgloss.Style{
		constants.StatusDone:       cellStyle.Foreground(lipgloss.Color("2")),
		constants.StatusInProgress: cellStyle.Foreground(lipgloss.Color("6")),
		constants.StatusBlocked:    cellStyle.Foreground(lipgloss.Color("1")),
	}
)

func printTasks(w io.Writer, tasks []model.Task) error {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(t.ID), 10),
			statusText(t.Status),
			priorityLabel(t.Priority),
			formatDue(t.DueDate),
			t.Title,
		})
	}

	tbl := table.New().
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		Headers("ID", "STATUS", "PRIORITY", "DUE", "TITLE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(tasks) {
				if style, ok := statusStyles[tasks[row].Status]; ok {
					return style
				}
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

func statusText(s constants.TaskStatus) string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func priorityLabel(p constants.Priority) string {
	switch p {
	case constants.PriorityUrgent:
		return "1 urgent"
	case constants.PriorityHigh:
		return "2 high"
	case constants.PriorityMedium:
		return "3 medium"
	case constants.PriorityLow:
		return "4 low"
	default:
		return "5 none"
	}
}

func formatDue(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.In(time.Local).Format(dueLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
