// Package dates buckets timestamps into local calendar days and parses the
// due-date shorthand accepted by the command line.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

var ErrInvalidDate = errors.New("invalid date format")

// DayBounds returns the first and last instant of the local calendar day
// containing t. Both bounds are inclusive.
func DayBounds(t time.Time) (time.Time, time.Time) {
	local := now.With(t.In(time.Local))
	return local.BeginningOfDay(), local.EndOfDay()
}

// EndOfDay returns 23:59:59 of the local day containing t.
func EndOfDay(t time.Time) time.Time {
	return now.With(t.In(time.Local)).EndOfDay().Truncate(time.Second)
}

// ParseDue resolves a due-date argument relative to ref. It accepts "today",
// "tomorrow", a calendar date (YYYY-MM-DD, meaning the end of that day) or an
// RFC 3339 timestamp.
func ParseDue(value string, ref time.Time) (time.Time, error) {
	v := strings.ToLower(strings.TrimSpace(value))

	switch v {
	case "today":
		return EndOfDay(ref), nil
	case "tomorrow":
		return EndOfDay(ref.AddDate(0, 0, 1)), nil
	case "":
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	if t, err := time.ParseInLocation(time.DateOnly, v, time.Local); err == nil {
		return EndOfDay(t), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q (use today, tomorrow or YYYY-MM-DD)", ErrInvalidDate, value)
}
