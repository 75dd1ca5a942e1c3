// Package cmd defines the command-line interface for covidvis.
package cmd

import (
	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(projectionCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(runsCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("interventions", "", "Path to an interventions CSV (group, date, type columns)")
	rootCmd.PersistentFlags().String("group-col", "Country_Region", "Column holding the group label")
	rootCmd.PersistentFlags().String("date-col", "Date", "Column holding the observation date")
	rootCmd.PersistentFlags().StringP("measure", "m", "Confirmed", "Column holding the measure values")
	rootCmd.PersistentFlags().String("date-format", "", "Explicit Go date layout (default auto-detects common layouts)")
	rootCmd.PersistentFlags().Bool("cumulative", true, "Treat the measure column as already cumulative")
	rootCmd.PersistentFlags().IntP("top-k", "k", contract.DefaultTopK, "Number of groups to keep by peak value (0 = all)")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of group names or patterns to drop")
	rootCmd.PersistentFlags().String("align", string(schema.ThresholdAlign), "Alignment mode: threshold or calendar or fixed")
	rootCmd.PersistentFlags().Float64("threshold", contract.DefaultThreshold, "Measure value a group must reach under threshold alignment")
	rootCmd.PersistentFlags().String("anchor-date", "", "Shared start date for fixed alignment")
	rootCmd.PersistentFlags().String("xdomain", "", "Closed x interval to keep (format: 'min,max')")
	rootCmd.PersistentFlags().String("ydomain", "", "Closed y interval to keep (format: 'min,max')")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Dataset cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("runs-backend", "", "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("runs-db-connect", "", "Database connection string for run tracking (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in table titles (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
