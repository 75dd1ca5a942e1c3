package core

import (
	"sort"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

// NormalizeSeries prepares raw series for alignment. Values become running
// totals within each group unless the measure is already cumulative, and only
// the top K groups by peak value are kept.
func NormalizeSeries(cfg *contract.Config, dataset schema.Dataset) schema.Dataset {
	series := make([]schema.Series, 0, len(dataset.Series))
	for _, s := range dataset.Series {
		series = append(series, accumulate(s, cfg.Cumulative))
	}
	return schema.Dataset{Series: rankSeries(series, cfg.TopK)}
}

// accumulate converts a series to running totals. Points are copied so the
// input dataset stays untouched.
func accumulate(s schema.Series, alreadyCumulative bool) schema.Series {
	points := make([]schema.Observation, len(s.Points))
	copy(points, s.Points)

	if !alreadyCumulative {
		var total float64
		for i := range points {
			total += points[i].Value
			points[i].Value = total
		}
	}

	return schema.Series{Group: s.Group, Points: points}
}

// rankSeries sorts series by peak value in descending order and returns the
// top 'limit' series. A limit of zero keeps everything. Ties keep their
// input order, so the cut at the boundary is deterministic.
func rankSeries(series []schema.Series, limit int) []schema.Series {
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].PeakValue() > series[j].PeakValue()
	})
	if limit > 0 && len(series) > limit {
		return series[:limit]
	}
	return series
}
