package schema

import "time"

// AlignedRow is an observation re-expressed on the aligned x axis. X counts
// whole days between the row's date and its group's anchor date, so the
// anchor row itself sits at x == 0 and pre-anchor rows go negative.
type AlignedRow struct {
	Group string    `json:"group"`
	Date  time.Time `json:"date"`
	X     int       `json:"x"`
	Y     float64   `json:"y"`
}

// AlignedGroup holds one group's aligned rows plus the anchor date
// (date_of_N) that the intervention join keys off.
type AlignedGroup struct {
	Group   string
	DateOfN time.Time
	Rows    []AlignedRow
}

// InterventionEvent is an external policy event (e.g. a lockdown order)
// attached to a group.
type InterventionEvent struct {
	Group string
	Date  time.Time
	Type  string
}

// ChartRow is an AlignedRow enriched with intervention and extrapolation
// fields. Nil pointers mean "no value" and stay nil all the way out: they
// serialize to JSON null, SQL NULL and empty parquet optionals, never to
// zero.
type ChartRow struct {
	AlignedRow
	LockdownX     *int     `json:"lockdown_x"`
	LockdownType  *string  `json:"lockdown_type"`
	Intercept     *float64 `json:"intercept"`
	LockdownY     *float64 `json:"lockdown_y"`
	LockdownSlope *float64 `json:"lockdown_slope"`
}

// HasLockdown reports whether the row carries a retained intervention.
func (r ChartRow) HasLockdown() bool {
	return r.LockdownX != nil
}

// GroupSummary is a per-group digest of the chart dataset.
type GroupSummary struct {
	Group         string    `json:"group"`
	DateOfN       time.Time `json:"date_of_n"`
	PeakY         float64   `json:"peak_y"`
	Rows          int       `json:"rows"`
	LockdownX     *int      `json:"lockdown_x"`
	LockdownType  *string   `json:"lockdown_type"`
	LockdownSlope *float64  `json:"lockdown_slope"`
}

// ChartDataset is the final output of the pipeline: chart-ready rows plus a
// per-group digest, both ordered by descending peak y.
type ChartDataset struct {
	Rows   []ChartRow     `json:"rows"`
	XLabel string         `json:"x_label"`
	Groups []GroupSummary `json:"groups"`
}
