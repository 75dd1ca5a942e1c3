package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/adizioli/covid19-vis/schema"
)

// writeCSVResultsForProjections writes the projection parameters in CSV format.
func writeCSVResultsForProjections(w *csv.Writer, projections []schema.Extrapolation, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"group",
		"intercept",
		"slope",
		"start_x",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, p := range projections {
		rec := []string{
			p.Group,                       // Group
			fmtFloat(p.Intercept),         // Anchor Day Value
			fmtFloat(p.Slope),             // Growth Factor
			fmt.Sprintf(intFmt, p.StartX), // Validity Offset
			schema.GetGrowthLabel(p.Slope), // Growth Label
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForProjections writes the projection parameters in JSON format.
func writeJSONResultsForProjections(w io.Writer, projections []schema.Extrapolation) error {
	return writeJSON(w, projections)
}
