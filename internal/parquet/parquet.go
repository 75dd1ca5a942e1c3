// Package parquet provides data structures and functions for exporting
// chart build run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/adizioli/covid19-vis/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single chart build run with metadata.
// This struct maps to the covidvis_runs database table.
type Run struct {
	// RunID is the unique identifier for this build run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the build began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the build completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the build run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalRows is the number of chart rows produced in this run
	TotalRows int32 `parquet:"total_rows,snappy"`

	// TotalGroups is the number of groups that survived alignment in this run
	TotalGroups int32 `parquet:"total_groups,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// ChartRow represents a single aligned chart row produced by a build run.
// This struct maps to the covidvis_chart_rows database table.
type ChartRow struct {
	// RunID references the parent build run
	RunID int64 `parquet:"run_id,snappy"`

	// GroupName is the group this row belongs to
	GroupName string `parquet:"group_name,snappy"`

	// RowDate is the calendar date of the observation (stored as TIMESTAMP with nanosecond precision)
	RowDate time.Time `parquet:"row_date,snappy"`

	// X is the day offset from the group's alignment anchor
	X int32 `parquet:"x,snappy"`

	// Y is the measure value at this offset
	Y float64 `parquet:"y,snappy"`

	// LockdownX is the day offset of the group's intervention (nullable)
	LockdownX *int32 `parquet:"lockdown_x,optional,snappy"`

	// LockdownType is the kind of intervention that was applied (nullable)
	LockdownType *string `parquet:"lockdown_type,optional,snappy"`

	// Intercept is the measure value on the anchor day (nullable)
	Intercept *float64 `parquet:"intercept,optional,snappy"`

	// LockdownY is the measure value on the intervention day (nullable)
	LockdownY *float64 `parquet:"lockdown_y,optional,snappy"`

	// LockdownSlope is the fitted daily growth factor up to the intervention (nullable)
	LockdownSlope *float64 `parquet:"lockdown_slope,optional,snappy"`
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteChartRowsParquet writes a slice of ChartRow structs to a Parquet file.
func WriteChartRowsParquet(data []ChartRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ChartRow struct tags
	writer := parquet.NewGenericWriter[ChartRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchRuns generates sample Run data for demonstration.
func MockFetchRuns() []Run {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(3 * time.Second)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"align":"threshold","threshold":50,"top_k":20}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := startTime2.Add(5 * time.Second)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"align":"calendar","top_k":5}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, configParams3 are nil to demonstrate nullable fields

	return []Run{
		{
			RunID:         1,
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			TotalRows:     1240,
			TotalGroups:   20,
			ConfigParams:  &configParams1,
		},
		{
			RunID:         2,
			StartTime:     startTime2,
			EndTime:       &endTime2,
			RunDurationMs: &durationMs2,
			TotalRows:     310,
			TotalGroups:   5,
			ConfigParams:  &configParams2,
		},
		{
			RunID:         3,
			StartTime:     startTime3,
			EndTime:       nil, // Still running - nullable field
			RunDurationMs: nil, // Not yet calculated - nullable field
			TotalRows:     0,
			TotalGroups:   0,
			ConfigParams:  nil, // No config stored - nullable field
		},
	}
}

// MockFetchChartRows generates sample ChartRow data for demonstration.
func MockFetchChartRows() []ChartRow {
	anchor := time.Date(2020, 2, 21, 0, 0, 0, 0, time.UTC)
	lockdownX := int32(5)
	lockdownType := "Full"
	intercept := 50.0
	lockdownY := 100.0
	lockdownSlope := 1.148698354997035

	return []ChartRow{
		{
			RunID:         1,
			GroupName:     "Italy",
			RowDate:       anchor,
			X:             0,
			Y:             50,
			LockdownX:     &lockdownX,
			LockdownType:  &lockdownType,
			Intercept:     &intercept,
			LockdownY:     &lockdownY,
			LockdownSlope: &lockdownSlope,
		},
		{
			RunID:         1,
			GroupName:     "Italy",
			RowDate:       anchor.AddDate(0, 0, 5),
			X:             5,
			Y:             100,
			LockdownX:     &lockdownX,
			LockdownType:  &lockdownType,
			Intercept:     &intercept,
			LockdownY:     &lockdownY,
			LockdownSlope: &lockdownSlope,
		},
		{
			RunID:         2,
			GroupName:     "Sweden",
			RowDate:       anchor.AddDate(0, 0, 12),
			X:             3,
			Y:             87,
			LockdownX:     nil, // No intervention recorded - nullable fields
			LockdownType:  nil,
			Intercept:     nil,
			LockdownY:     nil,
			LockdownSlope: nil,
		},
	}
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalRows:     record.TotalRows,
			TotalGroups:   record.TotalGroups,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertChartRowRecords converts schema.ChartRowRecord to ChartRow for Parquet export.
func ConvertChartRowRecords(records []schema.ChartRowRecord) []ChartRow {
	result := make([]ChartRow, len(records))
	for i, record := range records {
		result[i] = ChartRow{
			RunID:         record.RunID,
			GroupName:     record.GroupName,
			RowDate:       record.RowDate,
			X:             record.X,
			Y:             record.Y,
			LockdownX:     record.LockdownX,
			LockdownType:  record.LockdownType,
			Intercept:     record.Intercept,
			LockdownY:     record.LockdownY,
			LockdownSlope: record.LockdownSlope,
		}
	}
	return result
}
