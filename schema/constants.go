package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// AlignMode represents the start-alignment strategy for the x axis.
	AlignMode string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All alignment modes supported.
const (
	ThresholdAlign AlignMode = "threshold" // default
	CalendarAlign  AlignMode = "calendar"
	FixedAlign     AlignMode = "fixed"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Default column names for JHU-style daily report exports.
const (
	DefaultGroupColumn = "Country_Region"
	DefaultDateColumn  = "Date"
	DefaultMeasure     = "Confirmed"
)

// Column names expected in intervention datasets. The group column follows
// the observation dataset's group column.
const (
	InterventionDateColumn = "lockdown_date"
	InterventionTypeColumn = "lockdown_type"
)

// AllAlignModes returns a list of all supported alignment modes.
var AllAlignModes = []AlignMode{ThresholdAlign, CalendarAlign, FixedAlign}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidAlignModes lists all valid alignment modes.
var ValidAlignModes = map[AlignMode]struct{}{
	ThresholdAlign: {},
	CalendarAlign:  {},
	FixedAlign:     {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
