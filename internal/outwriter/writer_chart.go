package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

// writeCSVResultsForChart writes the aligned chart rows in CSV format.
// Missing intervention fields become empty cells rather than zeroes.
func writeCSVResultsForChart(w *csv.Writer, chart *schema.ChartDataset, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"group",
		"date",
		"x",
		"y",
		"lockdown_x",
		"lockdown_type",
		"intercept",
		"lockdown_y",
		"lockdown_slope",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range chart.Rows {
		label := ""
		if r.LockdownSlope != nil {
			label = schema.GetGrowthLabel(*r.LockdownSlope)
		}
		rec := []string{
			r.Group,                                  // Group
			r.Date.Format(contract.DateOnlyFormat),   // Observation Date
			fmt.Sprintf(intFmt, r.X),                 // Aligned Offset
			fmtFloat(r.Y),                            // Measure Value
			formatIntPtr(r.LockdownX, ""),            // Intervention Offset
			formatStringPtr(r.LockdownType, ""),      // Intervention Kind
			formatFloatPtr(r.Intercept, fmtFloat, ""), // Anchor Day Value
			formatFloatPtr(r.LockdownY, fmtFloat, ""), // Intervention Day Value
			formatFloatPtr(r.LockdownSlope, fmtFloat, ""), // Growth Factor
			label, // Growth Label
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForChart writes the chart dataset in JSON format. The
// ChartRow pointer fields serialize to null when absent, so consumers see a
// stable shape regardless of intervention coverage.
func writeJSONResultsForChart(w io.Writer, chart *schema.ChartDataset) error {
	return writeJSON(w, chart)
}
