package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/adizioli/covid19-vis/schema"
)

// Default values for configuration.
const (
	DefaultThreshold = 50.0
	DefaultTopK      = 20
	MaxTopK          = 1000
	DefaultPrecision = 1
	MaxPrecision     = 4
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a pipeline run.
// This struct remains the "final, validated" config: it is built once by
// ProcessAndValidate and passed by value to every stage, never mutated.
type Config struct {
	DataPath          string
	InterventionsPath string

	GroupColumn string
	DateColumn  string
	Measure     string
	DateFormat  string // Optional explicit date layout; empty = auto-detect

	Cumulative bool // Measure column already holds running totals
	TopK       int  // Number of groups to keep by peak y (0 = all)
	Excludes   []string

	AlignMode  schema.AlignMode
	Threshold  float64
	AnchorDate time.Time // Only meaningful for fixed alignment

	XDomain *schema.Domain
	YDomain *schema.Domain

	Workers    int
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	RunsBackend   schema.DatabaseBackend
	RunsDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// XLabel describes the aligned x axis for chart consumers.
func (c *Config) XLabel() string {
	switch c.AlignMode {
	case schema.CalendarAlign:
		return "days since first reported date"
	case schema.FixedAlign:
		return fmt.Sprintf("days since %s", c.AnchorDate.Format(DateOnlyFormat))
	default:
		return fmt.Sprintf("days since %s %s reached", FormatThreshold(c.Threshold), strings.ToLower(c.Measure))
	}
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Interventions  string  `mapstructure:"interventions"`
	GroupColumn    string  `mapstructure:"group-col"`
	DateColumn     string  `mapstructure:"date-col"`
	Measure        string  `mapstructure:"measure"`
	DateFormat     string  `mapstructure:"date-format"`
	Cumulative     bool    `mapstructure:"cumulative"`
	TopK           int     `mapstructure:"top-k"`
	Exclude        string  `mapstructure:"exclude"`
	Align          string  `mapstructure:"align"`
	Threshold      float64 `mapstructure:"threshold"`
	AnchorDate     string  `mapstructure:"anchor-date"`
	XDomain        string  `mapstructure:"xdomain"`
	YDomain        string  `mapstructure:"ydomain"`
	Workers        int     `mapstructure:"workers"`
	Precision      int     `mapstructure:"precision"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Width          int     `mapstructure:"width"`
	CacheBackend   string  `mapstructure:"cache-backend"`
	CacheDBConnect string  `mapstructure:"cache-db-connect"`
	RunsBackend    string  `mapstructure:"runs-backend"`
	RunsDBConnect  string  `mapstructure:"runs-db-connect"`
	Emoji          string  `mapstructure:"emoji"`
	Color          string  `mapstructure:"color"`
}

// ProcessAndValidate performs all complex parsing and validation on the raw
// inputs and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processAlignment(cfg, input); err != nil {
		return err
	}
	if err := processDomains(cfg, input); err != nil {
		return err
	}
	if err := resolveDataPaths(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and run-store backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- Run-Store Backend Validation ---
	cfg.RunsBackend = schema.DatabaseBackend(strings.ToLower(input.RunsBackend))
	if cfg.RunsBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.RunsBackend]; !ok {
			return fmt.Errorf("invalid runs backend '%s'. must be sqlite, mysql, postgresql, none", input.RunsBackend)
		}
		cfg.RunsDBConnect = input.RunsDBConnect
		if err := ValidateDatabaseConnectionString(cfg.RunsBackend, cfg.RunsDBConnect); err != nil {
			return err
		}

		// Cache and run history must not share a storage target
		if cfg.CacheBackend == cfg.RunsBackend && cfg.CacheBackend == schema.SQLiteBackend {
			cacheDBPath := cfg.CacheDBConnect
			if cacheDBPath == "" {
				cacheDBPath = GetCacheDBFilePath()
			}
			runsDBPath := cfg.RunsDBConnect
			if runsDBPath == "" {
				runsDBPath = GetRunsDBFilePath()
			}
			if cacheDBPath == runsDBPath {
				return fmt.Errorf("cache and run history must use different SQLite database files. Both resolve to %q", cacheDBPath)
			}
		}
	}

	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.DateFormat = input.DateFormat
	cfg.Cumulative = input.Cumulative
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Column Validation ---
	cfg.GroupColumn = strings.TrimSpace(input.GroupColumn)
	cfg.DateColumn = strings.TrimSpace(input.DateColumn)
	cfg.Measure = strings.TrimSpace(input.Measure)
	if cfg.GroupColumn == "" || cfg.DateColumn == "" || cfg.Measure == "" {
		return fmt.Errorf("group-col, date-col and measure must all be non-empty")
	}

	// --- 2. TopK Validation ---
	if input.TopK < 0 || input.TopK > MaxTopK {
		return fmt.Errorf("top-k must be between 0 and %d (received %d)", MaxTopK, input.TopK)
	}
	cfg.TopK = input.TopK

	// --- 3. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 4. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 5. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	// --- 6. Excludes Processing ---
	cfg.Excludes = nil
	if input.Exclude != "" {
		parts := strings.SplitSeq(input.Exclude, ",")
		for p := range parts {
			trimmedP := strings.TrimSpace(p)
			if trimmedP != "" {
				cfg.Excludes = append(cfg.Excludes, trimmedP)
			}
		}
	}

	return nil
}

// processAlignment validates the alignment strategy inputs.
func processAlignment(cfg *Config, input *ConfigRawInput) error {
	cfg.AlignMode = schema.AlignMode(strings.ToLower(input.Align))
	if _, ok := schema.ValidAlignModes[cfg.AlignMode]; !ok {
		return fmt.Errorf("invalid align mode '%s'. must be threshold, calendar, fixed", input.Align)
	}

	switch cfg.AlignMode {
	case schema.ThresholdAlign:
		if input.Threshold <= 0 {
			return fmt.Errorf("threshold must be greater than 0 (received %g)", input.Threshold)
		}
		cfg.Threshold = input.Threshold
	case schema.FixedAlign:
		if strings.TrimSpace(input.AnchorDate) == "" {
			return fmt.Errorf("must specify --anchor-date when using fixed alignment")
		}
		anchor, err := ParseDay(input.AnchorDate, input.DateFormat)
		if err != nil {
			return fmt.Errorf("invalid --anchor-date: %w", err)
		}
		cfg.AnchorDate = anchor
	}

	return nil
}

// processDomains parses the optional x/y clipping intervals.
func processDomains(cfg *Config, input *ConfigRawInput) error {
	xd, err := ParseDomain(input.XDomain)
	if err != nil {
		return fmt.Errorf("invalid --xdomain: %w", err)
	}
	cfg.XDomain = xd

	yd, err := ParseDomain(input.YDomain)
	if err != nil {
		return fmt.Errorf("invalid --ydomain: %w", err)
	}
	cfg.YDomain = yd

	return nil
}

// resolveDataPaths resolves the observation and intervention dataset paths.
func resolveDataPaths(cfg *Config, input *ConfigRawInput) error {
	if strings.TrimSpace(input.DataPathStr) == "" {
		return fmt.Errorf("a dataset path is required")
	}
	absDataPath, err := filepath.Abs(input.DataPathStr)
	if err != nil {
		return err
	}
	absDataPath = filepath.Clean(absDataPath)

	info, err := os.Stat(absDataPath)
	if err != nil {
		return fmt.Errorf("cannot read dataset %s: %w", input.DataPathStr, err)
	}
	if info.IsDir() {
		return fmt.Errorf("dataset path %s is a directory, expected a CSV file", input.DataPathStr)
	}
	cfg.DataPath = absDataPath

	if strings.TrimSpace(input.Interventions) == "" {
		return nil
	}
	absInterventions, err := filepath.Abs(input.Interventions)
	if err != nil {
		return err
	}
	absInterventions = filepath.Clean(absInterventions)
	if _, err := os.Stat(absInterventions); err != nil {
		return fmt.Errorf("cannot read interventions %s: %w", input.Interventions, err)
	}
	cfg.InterventionsPath = absInterventions

	return nil
}

// ParseDomain parses a "min,max" string into a closed interval.
// An empty string means no clipping and yields nil.
func ParseDomain(s string) (*schema.Domain, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected 'min,max', got '%s'", s)
	}

	minVal, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid min value '%s': %w", parts[0], err)
	}
	maxVal, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid max value '%s': %w", parts[1], err)
	}
	if minVal > maxVal {
		return nil, fmt.Errorf("min %g is greater than max %g", minVal, maxVal)
	}

	return &schema.Domain{Min: minVal, Max: maxVal}, nil
}

// FormatThreshold renders a threshold without trailing zeros (50, 12.5).
func FormatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ConfigParams returns the run parameters worth persisting with a run record.
func (c *Config) ConfigParams() map[string]any {
	params := map[string]any{
		"data_path":  c.DataPath,
		"group_col":  c.GroupColumn,
		"date_col":   c.DateColumn,
		"measure":    c.Measure,
		"cumulative": c.Cumulative,
		"top_k":      c.TopK,
		"align":      string(c.AlignMode),
		"threshold":  c.Threshold,
	}
	if c.InterventionsPath != "" {
		params["interventions_path"] = c.InterventionsPath
	}
	if c.XDomain != nil {
		params["xdomain"] = fmt.Sprintf("%g,%g", c.XDomain.Min, c.XDomain.Max)
	}
	if c.YDomain != nil {
		params["ydomain"] = fmt.Sprintf("%g,%g", c.YDomain.Min, c.YDomain.Max)
	}
	return params
}
