// Package criterion decides where each group's aligned timeline starts.
package criterion

import (
	"time"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

// StartCriterion chooses the anchor date a group's x offsets are measured
// from. Implementations report false when a group never qualifies, which
// drops the group from the aligned output.
type StartCriterion interface {
	// Anchor returns the anchor date for one cumulative series.
	Anchor(series schema.Series) (time.Time, bool)
}

// ForConfig builds the start criterion selected by the configuration.
func ForConfig(cfg *contract.Config, dataset schema.Dataset) StartCriterion {
	switch cfg.AlignMode {
	case schema.CalendarAlign:
		return NewCalendarDate(dataset)
	case schema.FixedAlign:
		return &FixedDate{Date: cfg.AnchorDate}
	default:
		return &DaysSinceThresholdReached{Threshold: cfg.Threshold}
	}
}

// DaysSinceThresholdReached anchors each group at the first date its
// cumulative value reaches the threshold. Groups that never reach it
// do not qualify.
type DaysSinceThresholdReached struct {
	Threshold float64
}

// Anchor scans the series in date order for the first qualifying point.
func (c *DaysSinceThresholdReached) Anchor(series schema.Series) (time.Time, bool) {
	for _, p := range series.Points {
		if p.Value >= c.Threshold {
			return p.Date, true
		}
	}
	return time.Time{}, false
}

// CalendarDate anchors every group at one shared date, normally the earliest
// date present in the dataset.
type CalendarDate struct {
	Start time.Time
}

// NewCalendarDate builds a calendar criterion anchored at the earliest
// observation date across all series.
func NewCalendarDate(dataset schema.Dataset) *CalendarDate {
	var start time.Time
	for _, s := range dataset.Series {
		for _, p := range s.Points {
			if start.IsZero() || p.Date.Before(start) {
				start = p.Date
			}
		}
	}
	return &CalendarDate{Start: start}
}

// Anchor returns the shared start date for any series with data.
func (c *CalendarDate) Anchor(series schema.Series) (time.Time, bool) {
	if len(series.Points) == 0 {
		return time.Time{}, false
	}
	return c.Start, true
}

// FixedDate anchors every group at a caller-chosen date. Rows before the
// anchor keep negative offsets.
type FixedDate struct {
	Date time.Time
}

// Anchor returns the fixed date for any series with data.
func (c *FixedDate) Anchor(series schema.Series) (time.Time, bool) {
	if len(series.Points) == 0 {
		return time.Time{}, false
	}
	return c.Date, true
}
