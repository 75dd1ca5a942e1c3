// Package schema has configs, models and global variables for all parts of covidvis.
package schema

import "time"

// Observation represents a single raw input row: one measure value for one
// group on one date. Dates are day-granularity UTC.
type Observation struct {
	Group string    // Region identifier (e.g. a Country_Region value)
	Date  time.Time // Observation date, truncated to midnight UTC
	Value float64   // Raw measure value (e.g. confirmed case count)
}

// Series holds one group's observations in date-ascending order.
// Dates are strictly increasing after dedup; when the input carries the same
// (group, date) twice, the last row wins, since corrected upstream feeds
// append fixed values after the originals.
type Series struct {
	Group  string
	Points []Observation
}

// PeakValue returns the largest observation value in the series, or zero for
// an empty series.
func (s Series) PeakValue() float64 {
	var peak float64
	for i, p := range s.Points {
		if i == 0 || p.Value > peak {
			peak = p.Value
		}
	}
	return peak
}

// Dataset is an ordered collection of per-group series. Order follows first
// appearance in the input, which ranking uses for stable tie-breaks.
type Dataset struct {
	Series []Series
}

// Domain is a closed [Min, Max] interval used to clip one chart axis.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v falls inside the closed interval.
func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// GroupCount returns the number of distinct groups in the dataset.
func (d Dataset) GroupCount() int {
	return len(d.Series)
}

// RowCount returns the total number of observations across all groups.
func (d Dataset) RowCount() int {
	total := 0
	for _, s := range d.Series {
		total += len(s.Points)
	}
	return total
}
