package core

import (
	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

// ClipDomains applies the configured axis bounds as the final row filter.
// Both bounds are closed intervals and marker rows are clipped like any
// other row. Clipping twice with the same bounds changes nothing, and an
// empty result is valid.
func ClipDomains(cfg *contract.Config, rows []schema.ChartRow) []schema.ChartRow {
	if cfg.XDomain == nil && cfg.YDomain == nil {
		return rows
	}

	out := make([]schema.ChartRow, 0, len(rows))
	for _, r := range rows {
		if cfg.XDomain != nil && !cfg.XDomain.Contains(float64(r.X)) {
			continue
		}
		if cfg.YDomain != nil && !cfg.YDomain.Contains(r.Y) {
			continue
		}
		out = append(out, r)
	}
	return out
}
