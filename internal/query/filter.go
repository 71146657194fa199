// Package query turns task filters into GORM scopes.
package query

import (
	"time"

	"gorm.io/gorm"

	"taskflow.com/taskflow/internal/constants"
	"taskflow.com/taskflow/internal/dates"
)

const DefaultLimit = 100

type Kind int

const (
	KindAll Kind = iota
	KindToday
	KindOverdue
)

// Filter selects a subset of tasks. Status narrows any kind to an exact
// match; a non-positive Limit returns every matching row.
type Filter struct {
	Kind   Kind
	Status constants.TaskStatus
	Limit  int
	Now    time.Time
}

func All() Filter {
	return Filter{Kind: KindAll}
}

func ByStatus(status constants.TaskStatus, limit int) Filter {
	return Filter{Kind: KindAll, Status: status, Limit: limit}
}

// Today matches tasks due within the local day of now, together with every
// in-progress task whatever its due date.
func Today(now time.Time) Filter {
	return Filter{Kind: KindToday, Now: now}
}

// Overdue matches unfinished tasks whose due date has passed.
func Overdue(now time.Time) Filter {
	return Filter{Kind: KindOverdue, Now: now}
}

// Scope applies the filter to a query on the tasks table. Timestamps are
// compared in UTC, the zone they are persisted in.
func (f Filter) Scope(db *gorm.DB) *gorm.DB {
	switch f.Kind {
	case KindToday:
		start, end := dates.DayBounds(f.Now)
		db = db.Where(
			"(due_date BETWEEN ? AND ?) OR status = ?",
			start.UTC(), end.UTC(), constants.StatusInProgress,
		)
	case KindOverdue:
		db = db.Where(
			"due_date IS NOT NULL AND due_date < ? AND status <> ?",
			f.Now.UTC(), constants.StatusDone,
		)
	}

	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.Limit > 0 {
		db = db.Limit(f.Limit)
	}
	return db
}
