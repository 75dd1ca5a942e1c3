package cmd

import (
	"fmt"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/internal/datastore"
	"github.com/adizioli/covid19-vis/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runsSetup loads minimal configuration needed for run history operations.
// This is used by commands that need run store access without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get runs-related config values
	backendStr := viper.GetString("runs-backend")
	connStr := viper.GetString("runs-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config (no dataset caching for run commands)
	if err := datastore.InitStores(schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run tracking: %w", err)
	}

	cfg.RunsBackend = backend
	cfg.RunsDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for run commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func runsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get runs-related config values
	backendStr := viper.GetString("runs-backend")
	connStr := viper.GetString("runs-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = datastore.GetRunsDBFilePath()
	}

	cfg.RunsBackend = backend
	cfg.RunsDBConnect = connStr

	return nil
}

// runsMigrateSetupWrapper wraps runsMigrateSetup to provide PreRunE for migrate command.
func runsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsMigrateSetup()
}

// runsCmd focused on run history management.
//
// Note: Run subcommands use minimal initialization (runsSetup) instead of
// the full sharedSetup used by chart commands. This avoids dataset validation
// and complex config processing for simple history operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage historical build tracking and exports",
	Long: `Manage historical build data used for tracking and reporting.

When enabled, covidvis records every chart build, storing:
- Run metadata (timestamp, configuration, duration)
- Row and group counts per build
- Every chart row the build produced

This enables comparing builds over time and exporting data for notebooks.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  covidvis runs status

  # Export for analysis in pandas/DuckDB
  covidvis runs export --output-file covid-runs.parquet`,
}

// runsClearCmd clears the run history.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical build tracking data",
	Long: `Delete all stored build runs and chart row history.

This removes:
- All run metadata
- Every recorded chart row across all runs

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Resetting build history
- Database storage is full
- Starting fresh with a new dataset
- Testing run tracking features

Examples:
  # Export before clearing
  covidvis runs export --output-file backup.parquet
  covidvis runs clear

  # Clear and start fresh
  covidvis runs clear`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := datastore.ClearRuns(cfg.RunsBackend, datastore.GetRunsDBFilePath(), cfg.RunsDBConnect); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// runsStatusCmd shows run tracking status.
var runsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about historical build tracking.

Displays:
- Backend type and connection status
- Total number of runs stored
- Last and oldest run timestamps
- Total chart rows recorded across all runs
- Database table sizes

Use this to:
- Verify run tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health
- Estimate storage requirements

Examples:
  # Check run tracking status
  covidvis runs status`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := datastore.Manager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run status", err)
		}
		datastore.PrintRunStatus(status)
	},
}

// runsExportCmd exports run history to Parquet files.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for notebooks and analytics",
	Long: `Export all stored run history to Parquet format for use with analytics tools.

Exports two datasets:
- Runs - metadata about each build execution
- Chart rows - every aligned row each build produced

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Schema evolution for future data additions
- Direct plotting from notebooks without re-running builds

Requires: --output-file parameter

Use cases:
- Comparing chart output across dataset updates
- Custom dashboards and visualizations
- Reproducing charts from a specific build

Examples:
  # Export all data
  covidvis runs export --output-file covid-data.parquet

  # Use with DuckDB for analysis
  covidvis runs export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet/runs.parquet') LIMIT 10"`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := datastore.ExecuteRunsExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// runsMigrateCmd runs database migrations for the run store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run tracking store.

Migrations allow:
- Upgrading to new schema versions when covidvis is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed
- Testing new features on specific schema versions

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  covidvis runs migrate

  # Migrate to specific version
  covidvis runs migrate --target-version 2

  # Rollback to previous version
  covidvis runs migrate --target-version 0`,
	PreRunE: runsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := datastore.MigrateRuns(cfg.RunsBackend, cfg.RunsDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
