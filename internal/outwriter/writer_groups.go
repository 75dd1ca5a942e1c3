package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

// writeCSVResultsForGroups writes the group digest in CSV format.
func writeCSVResultsForGroups(w *csv.Writer, groups []schema.GroupSummary, fmtFloat func(float64) string, intFmt string) error {
	// CSV header
	header := []string{
		"rank",
		"group",
		"date_of_n",
		"peak_y",
		"rows",
		"lockdown_x",
		"lockdown_type",
		"lockdown_slope",
		"label",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, g := range schema.EnrichGroups(groups) {
		rec := []string{
			strconv.Itoa(g.Rank),                      // Rank
			g.Group,                                   // Group
			g.DateOfN.Format(contract.DateOnlyFormat), // Anchor Date
			fmtFloat(g.PeakY),                         // Peak Value
			fmt.Sprintf(intFmt, g.Rows),               // Row Count
			formatIntPtr(g.LockdownX, ""),             // Intervention Offset
			formatStringPtr(g.LockdownType, ""),       // Intervention Kind
			formatFloatPtr(g.LockdownSlope, fmtFloat, ""), // Growth Factor
			g.Label, // Growth Label
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForGroups writes the group digest in JSON format with rank
// and growth label attached.
func writeJSONResultsForGroups(w io.Writer, groups []schema.GroupSummary) error {
	return writeJSON(w, schema.EnrichGroups(groups))
}
