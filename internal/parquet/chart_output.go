package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/adizioli/covid19-vis/schema"
	"github.com/parquet-go/parquet-go"
)

// ChartOutputRow represents one aligned chart row as emitted by the build
// command's parquet output mode. Unlike ChartRow it carries no run id because
// the output of a single build is self-contained.
type ChartOutputRow struct {
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

// GroupOutputRow represents one entry of the per-group digest as emitted by
// the groups command's parquet output mode.
type GroupOutputRow struct {
	// Rank is the 1-based position in the descending peak-y ordering
	Rank int32 `parquet:"rank,snappy"`

	// GroupName is the group this digest entry describes
	GroupName string `parquet:"group_name,snappy"`

	// AnchorDate is the date the group first satisfied the start criterion (stored as TIMESTAMP with nanosecond precision)
	AnchorDate time.Time `parquet:"anchor_date,snappy"`

	// PeakY is the group's largest measure value
	PeakY float64 `parquet:"peak_y,snappy"`

	// RowCount is the number of chart rows kept for the group
	RowCount int32 `parquet:"row_count,snappy"`

	// LockdownX is the day offset of the group's intervention (nullable)
	LockdownX *int32 `parquet:"lockdown_x,optional,snappy"`

	// LockdownType is the kind of intervention that was applied (nullable)
	LockdownType *string `parquet:"lockdown_type,optional,snappy"`

	// LockdownSlope is the fitted daily growth factor up to the intervention (nullable)
	LockdownSlope *float64 `parquet:"lockdown_slope,optional,snappy"`

	// Label is the growth severity label, empty when no growth factor exists
	Label string `parquet:"label,snappy"`
}

// ProjectionOutputRow represents one set of exponential projection parameters
// as emitted by the projection command's parquet output mode.
type ProjectionOutputRow struct {
	// GroupName is the group the projection belongs to
	GroupName string `parquet:"group_name,snappy"`

	// Intercept is the measure value on the anchor day
	Intercept float64 `parquet:"intercept,snappy"`

	// Slope is the fitted daily growth factor
	Slope float64 `parquet:"slope,snappy"`

	// StartX is the day offset the projection becomes valid at
	StartX int32 `parquet:"start_x,snappy"`
}

// WriteChartOutputParquet writes a slice of ChartOutputRow structs to a Parquet file.
func WriteChartOutputParquet(data []ChartOutputRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ChartOutputRow struct tags
	writer := parquet.NewGenericWriter[ChartOutputRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteGroupOutputParquet writes a slice of GroupOutputRow structs to a Parquet file.
func WriteGroupOutputParquet(data []GroupOutputRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the GroupOutputRow struct tags
	writer := parquet.NewGenericWriter[GroupOutputRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteProjectionOutputParquet writes a slice of ProjectionOutputRow structs to a Parquet file.
func WriteProjectionOutputParquet(data []ProjectionOutputRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ProjectionOutputRow struct tags
	writer := parquet.NewGenericWriter[ProjectionOutputRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertChartOutput converts schema.ChartRow to ChartOutputRow for Parquet output.
func ConvertChartOutput(rows []schema.ChartRow) []ChartOutputRow {
	result := make([]ChartOutputRow, len(rows))
	for i, row := range rows {
		result[i] = ChartOutputRow{
			GroupName:     row.Group,
			RowDate:       row.Date,
			X:             int32(row.X),
			Y:             row.Y,
			LockdownX:     int32Ptr(row.LockdownX),
			LockdownType:  row.LockdownType,
			Intercept:     row.Intercept,
			LockdownY:     row.LockdownY,
			LockdownSlope: row.LockdownSlope,
		}
	}
	return result
}

// ConvertGroupOutput converts schema.GroupSummary to GroupOutputRow for
// Parquet output, attaching rank and growth label the same way the table and
// JSON outputs do.
func ConvertGroupOutput(groups []schema.GroupSummary) []GroupOutputRow {
	enriched := schema.EnrichGroups(groups)
	result := make([]GroupOutputRow, len(enriched))
	for i, g := range enriched {
		result[i] = GroupOutputRow{
			Rank:          int32(g.Rank),
			GroupName:     g.Group,
			AnchorDate:    g.DateOfN,
			PeakY:         g.PeakY,
			RowCount:      int32(g.Rows),
			LockdownX:     int32Ptr(g.LockdownX),
			LockdownType:  g.LockdownType,
			LockdownSlope: g.LockdownSlope,
			Label:         g.Label,
		}
	}
	return result
}

// ConvertProjectionOutput converts schema.Extrapolation to ProjectionOutputRow
// for Parquet output.
func ConvertProjectionOutput(projections []schema.Extrapolation) []ProjectionOutputRow {
	result := make([]ProjectionOutputRow, len(projections))
	for i, p := range projections {
		result[i] = ProjectionOutputRow{
			GroupName: p.Group,
			Intercept: p.Intercept,
			Slope:     p.Slope,
			StartX:    int32(p.StartX),
		}
	}
	return result
}

// int32Ptr narrows an optional int without materializing a value for nil.
func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
