package contract

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateOnlyFormat is the canonical day representation in output.
const DateOnlyFormat = "2006-01-02"

// DateLayouts are the layouts tried when no explicit date format is
// configured. JHU daily-report exports mix ISO dates with US-style M/D/YY
// cells, so both families are covered.
var DateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/06",
	"1/2/2006",
	time.RFC3339,
}

// TruncateToDay drops the time-of-day portion, pinning the date to midnight
// UTC. All day arithmetic in the pipeline happens on truncated dates so
// partial days never shift an offset.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a day-granularity date cell. An explicit layout wins;
// otherwise each known layout is tried in order.
func ParseDay(s string, layout string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date value")
	}

	if layout != "" {
		t, err := time.Parse(layout, s)
		if err != nil {
			return time.Time{}, err
		}
		return TruncateToDay(t), nil
	}

	for _, l := range DateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return TruncateToDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}

// DaysBetween returns the number of whole days from start to end, negative
// when end precedes start. A row five days after its group's anchor yields 5.
func DaysBetween(start, end time.Time) int {
	s := TruncateToDay(start)
	e := TruncateToDay(end)
	return int(e.Sub(s) / (24 * time.Hour))
}
