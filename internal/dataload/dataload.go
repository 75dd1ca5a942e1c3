// Package dataload reads observation and intervention datasets from CSV files.
package dataload

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

// LoadResult is the outcome of reading one observation dataset.
type LoadResult struct {
	Dataset     schema.Dataset // parsed series grouped by the configured group column
	SkippedRows int            // malformed rows dropped during parsing
	Fingerprint string         // content digest of the raw file bytes
}

// LoadObservations reads the observation CSV at cfg.DataPath and parses it
// into per-group series.
func LoadObservations(cfg *contract.Config) (*LoadResult, error) {
	data, err := os.ReadFile(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return ParseObservations(data, cfg)
}

// ParseObservations parses raw CSV bytes into per-group observation series.
// Groups keep their first-seen input order and each series is sorted by date,
// keeping the last row when a group reports the same date twice.
func ParseObservations(data []byte, cfg *contract.Config) (*LoadResult, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // layouts vary between feeds

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	stripBOM(header)

	groupIdx := findColumn(header, cfg.GroupColumn)
	if groupIdx < 0 {
		return nil, &schema.SchemaError{Column: cfg.GroupColumn, Path: cfg.DataPath}
	}
	dateIdx := findColumn(header, cfg.DateColumn)
	if dateIdx < 0 {
		return nil, &schema.SchemaError{Column: cfg.DateColumn, Path: cfg.DataPath}
	}
	measureIdx := findColumn(header, cfg.Measure)
	if measureIdx < 0 {
		return nil, &schema.SchemaError{Column: cfg.Measure, Path: cfg.DataPath}
	}

	result := &LoadResult{Fingerprint: Fingerprint(data)}
	points := make(map[string][]schema.Observation)
	var order []string

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.SkippedRows++
			continue // Skip malformed rows
		}

		obs, ok := parseObservationRow(record, groupIdx, dateIdx, measureIdx, cfg.DateFormat)
		if !ok {
			result.SkippedRows++
			continue
		}
		if contract.MatchesGroup(obs.Group, cfg.Excludes) {
			continue // Excluded groups are filtered, not counted as skips
		}

		if _, seen := points[obs.Group]; !seen {
			order = append(order, obs.Group)
		}
		points[obs.Group] = append(points[obs.Group], obs)
	}

	series := make([]schema.Series, 0, len(order))
	for _, group := range order {
		series = append(series, schema.Series{Group: group, Points: finalizePoints(points[group])})
	}
	result.Dataset = schema.Dataset{Series: series}

	return result, nil
}

// parseObservationRow converts one CSV record into an observation. It reports
// false for records that are short or have an unparsable date or value.
func parseObservationRow(record []string, groupIdx, dateIdx, measureIdx int, dateFormat string) (schema.Observation, bool) {
	if len(record) <= max(groupIdx, dateIdx, measureIdx) {
		return schema.Observation{}, false
	}

	group := strings.TrimSpace(record[groupIdx])
	if group == "" {
		return schema.Observation{}, false
	}

	date, err := contract.ParseDay(record[dateIdx], dateFormat)
	if err != nil {
		return schema.Observation{}, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(record[measureIdx]), 64)
	if err != nil {
		return schema.Observation{}, false
	}

	return schema.Observation{Group: group, Date: date, Value: value}, true
}

// finalizePoints sorts a group's observations by date and collapses duplicate
// dates, keeping the last reported value for each day.
func finalizePoints(points []schema.Observation) []schema.Observation {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	out := make([]schema.Observation, 0, len(points))
	for i, p := range points {
		if i+1 < len(points) && points[i+1].Date.Equal(p.Date) {
			continue // A later row revises the same day
		}
		out = append(out, p)
	}
	return out
}

// findColumn locates a named column in the header row.
func findColumn(header []string, name string) int {
	for i, col := range header {
		if strings.TrimSpace(col) == name {
			return i
		}
	}
	return -1
}

// stripBOM removes a UTF-8 byte order mark from the first header cell.
func stripBOM(header []string) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
}

// Fingerprint returns the hex SHA-256 digest of the raw dataset bytes.
// Together with the parse options it keys the dataset cache.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}
