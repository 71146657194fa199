// Package export renders task collections as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	dto "taskflow.com/taskflow/internal/data_models"
	model "taskflow.com/taskflow/internal/models"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"

	CSVFilename = "taskflow_export.csv"
)

var CSVHeader = []string{"id", "title", "description", "priority", "status", "due_date", "created_at"}

// WriteCSV writes one header row followed by one row per task. Rows are
// buffered and flushed once at the end.
func WriteCSV(w io.Writer, tasks []model.Task) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range tasks {
		t := &tasks[i]
		row := []string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Title,
			deref(t.Description),
			strconv.Itoa(int(t.Priority)),
			string(t.Status),
			formatTime(t.DueDate),
			t.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write task %d: %w", t.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, tasks []model.Task) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.NewTaskResponses(tasks)); err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	return nil
}

// Write dispatches on format, which must be FormatCSV or FormatJSON.
func Write(w io.Writer, format string, tasks []model.Task) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, tasks)
	case FormatJSON:
		return WriteJSON(w, tasks)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
