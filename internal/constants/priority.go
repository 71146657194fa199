package constants

import "fmt"

// Priority ranks a task from 1 (urgent) to 5 (none).
type Priority int

const (
	PriorityUrgent Priority = 1
	PriorityHigh   Priority = 2
	PriorityMedium Priority = 3
	PriorityLow    Priority = 4
	PriorityNone   Priority = 5

	DefaultPriority = PriorityMedium
)

func (p Priority) Valid() bool {
	return p >= PriorityUrgent && p <= PriorityNone
}

func ParsePriority(v int) (Priority, error) {
	p := Priority(v)
	if !p.Valid() {
		return 0, fmt.Errorf("invalid priority %d: must be between 1 and 5", v)
	}
	return p, nil
}
