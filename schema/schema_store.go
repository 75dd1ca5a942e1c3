package schema

import "time"

// RunRecord represents a row from the covidvis_runs table.
type RunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalRows     int32
	TotalGroups   int32
	ConfigParams  *string
}

// ChartRowRecord represents a row from the covidvis_chart_rows table.
type ChartRowRecord struct {
	RunID         int64
	GroupName     string
	RowDate       time.Time
	X             int32
	Y             float64
	LockdownX     *int32
	LockdownType  *string
	Intercept     *float64
	LockdownY     *float64
	LockdownSlope *float64
}
