package constants

import "fmt"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
	StatusBlocked    TaskStatus = "blocked"
)

// Statuses lists every valid status in display order.
var Statuses = []TaskStatus{StatusTodo, StatusInProgress, StatusDone, StatusBlocked}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusBlocked:
		return true
	}
	return false
}

func (s TaskStatus) String() string {
	return string(s)
}

func ParseStatus(v string) (TaskStatus, error) {
	s := TaskStatus(v)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q: must be one of todo, in_progress, done, blocked", v)
	}
	return s, nil
}
