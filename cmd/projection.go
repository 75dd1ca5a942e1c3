package cmd

import (
	"github.com/adizioli/covid19-vis/core"
	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/spf13/cobra"
)

// projectionCmd emits per-group extrapolation parameters.
var projectionCmd = &cobra.Command{
	Use:   "projection [data.csv]",
	Short: "Show what-if growth curves from pre-lockdown trends.",
	Long: `Run the alignment pipeline and report projection parameters per group.

For each group with a joined intervention, the pre-lockdown daily growth
factor is fit between the anchor day and the lockdown day. The resulting curve
y(x) = intercept * slope^x answers "what if growth had continued unchecked",
helping you:
- Draw dotted counterfactual lines next to the observed curves
- Quantify how fast each outbreak was compounding before intervention
- Compare intervention timing across countries on the same footing

Groups without an intervention inside their aligned window are skipped, since
there is no before/after split to project from.

Requires: --interventions parameter

Examples:
  # Projection parameters for every locked-down country
  covidvis projection data.csv --interventions lockdown-dates.csv

  # Tighten the fit to countries aligned at 100 cases
  covidvis projection data.csv --interventions lockdown-dates.csv --threshold 100

  # Export parameters for a plotting notebook
  covidvis projection data.csv --interventions lockdown-dates.csv --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChartProjection(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot build projections", err)
		}
	},
}
