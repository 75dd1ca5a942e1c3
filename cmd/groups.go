package cmd

import (
	"github.com/adizioli/covid19-vis/core"
	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/spf13/cobra"
)

// groupsCmd summarizes the dataset one row per group.
var groupsCmd = &cobra.Command{
	Use:   "groups [data.csv]",
	Short: "Show groups ranked by peak measure value.",
	Long: `Run the alignment pipeline and report one summary row per group.

Instead of every chart row, this shows each group's anchor date, peak value,
row count, intervention day and pre-intervention growth label, helping you:
- See at a glance which groups the top-k cut kept and why
- Compare how many aligned days each group contributes
- Check which groups had a lockdown joined and on which aligned day
- Rank countries by how hard their curve was climbing before lockdown

Groups are ranked by peak measure value, highest first.

Examples:
  # Summarize the 20 largest outbreaks (the default cut)
  covidvis groups time-series-19-covid-combined.csv

  # Rank every group in the dataset
  covidvis groups data.csv --top-k 0

  # Compare growth labels with lockdown dates joined
  covidvis groups data.csv --interventions lockdown-dates.csv

  # Export the ranking to CSV
  covidvis groups data.csv --output csv --output-file groups.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChartGroups(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot rank groups", err)
		}
	},
}
