package core

import (
	"github.com/adizioli/covid19-vis/schema"
)

// Extrapolations extracts the exponential projection parameters for every
// group with a defined growth factor, in first-appearance order. The curve
// y(x) = intercept * slope^x holds for x >= StartX; sampling it is the
// consumer's job.
func Extrapolations(rows []schema.ChartRow) []schema.Extrapolation {
	var out []schema.Extrapolation
	seen := make(map[string]struct{})

	for _, r := range rows {
		if _, ok := seen[r.Group]; ok {
			continue
		}
		seen[r.Group] = struct{}{}

		if r.Intercept == nil || r.LockdownSlope == nil || r.LockdownX == nil {
			continue // Groups without a usable intervention have no projection
		}

		out = append(out, schema.Extrapolation{
			Group:     r.Group,
			Intercept: *r.Intercept,
			Slope:     *r.LockdownSlope,
			StartX:    *r.LockdownX,
		})
	}

	return out
}
