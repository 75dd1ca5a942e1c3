package cmd

import (
	"github.com/adizioli/covid19-vis/core"
	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/spf13/cobra"
)

// buildCmd runs the full alignment pipeline and emits chart rows.
var buildCmd = &cobra.Command{
	Use:   "build [data.csv]",
	Short: "Build aligned chart rows from a raw time series.",
	Long: `Parse a long-format time series and build chart-ready rows.

Each input row is (group, date, value). The pipeline normalizes values to
running totals, re-expresses dates as day offsets on a shared x axis, joins
lockdown events, and clips to the requested domains, helping you:
- Compare epidemic curves across countries that started at different times
- See where each country sat on its curve when interventions began
- Feed a plotting library with data that needs no further transformation

How x is computed depends on the alignment mode (threshold, calendar, fixed).
Under the default threshold mode, day 0 is when a group first reached the
threshold value, and earlier days carry negative x.

Examples:
  # Align countries at 50 cumulative cases (the default)
  covidvis build time-series-19-covid-combined.csv

  # Align at 100 deaths instead
  covidvis build data.csv --measure Deaths --threshold 100

  # Join lockdown dates and keep the first 30 aligned days
  covidvis build data.csv --interventions lockdown-dates.csv --xdomain 0,30

  # Start every curve at a fixed calendar date
  covidvis build data.csv --align fixed --anchor-date 2020-03-01

  # Export the rows for plotting
  covidvis build data.csv --output json --output-file chart.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChartBuild(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build chart data", err)
		}
	},
}
