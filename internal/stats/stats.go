// Package stats derives the summary figures reported by /stats and the CLI.
package stats

import (
	"fmt"

	"taskflow.com/taskflow/internal/constants"
)

type ByStatus struct {
	Todo       int64 `json:"todo"`
	InProgress int64 `json:"in_progress"`
	Done       int64 `json:"done"`
	Blocked    int64 `json:"blocked"`
}

func (b ByStatus) Sum() int64 {
	return b.Todo + b.InProgress + b.Done + b.Blocked
}

type Summary struct {
	TotalTasks     int64    `json:"total_tasks"`
	ByStatus       ByStatus `json:"by_status"`
	OverdueTasks   int64    `json:"overdue_tasks"`
	CompletionRate string   `json:"completion_rate"`
}

// Backlog is the number of tasks not yet done.
func (s Summary) Backlog() int64 {
	return s.TotalTasks - s.ByStatus.Done
}

func Build(total int64, counts map[constants.TaskStatus]int64, overdue int64) Summary {
	by := ByStatus{
		Todo:       counts[constants.StatusTodo],
		InProgress: counts[constants.StatusInProgress],
		Done:       counts[constants.StatusDone],
		Blocked:    counts[constants.StatusBlocked],
	}

	return Summary{
		TotalTasks:     total,
		ByStatus:       by,
		OverdueTasks:   overdue,
		CompletionRate: CompletionRate(by.Done, total),
	}
}

// CompletionRate formats done/total as a percentage with one decimal place.
// An empty store reports "0%".
func CompletionRate(done, total int64) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(done)/float64(total)*100)
}
