package schema

import "math"

// Extrapolation holds the parameters of the exponential projection
// y(x) = Intercept * Slope^x, valid for x >= StartX. Sampling the curve is
// the chart renderer's job; this side only computes the parameters.
type Extrapolation struct {
	Group     string  `json:"group"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	StartX    int     `json:"start_x"`
}

// At evaluates the projection at offset x.
func (e Extrapolation) At(x int) float64 {
	return e.Intercept * math.Pow(e.Slope, float64(x))
}
