package core

import (
	"sync"

	"github.com/adizioli/covid19-vis/core/criterion"
	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

// AlignGroups re-expresses every series as integer day offsets from its
// anchor date. Groups are aligned in parallel on a pool of cfg.Workers
// goroutines and merged back in input order. Groups the criterion never
// fires for are dropped.
func AlignGroups(cfg *contract.Config, dataset schema.Dataset, crit criterion.StartCriterion) []schema.AlignedGroup {
	workers := cfg.Workers
	if workers <= 0 {
		workers = contract.DefaultWorkers
	}

	// Each worker writes to a unique slot, which is safe without locking.
	slots := make([]*schema.AlignedGroup, len(dataset.Series))
	seriesCh := make(chan int, len(dataset.Series))
	var wg sync.WaitGroup

	// Start worker pool
	for range workers {
		wg.Go(func() {
			for pos := range seriesCh {
				if group, ok := alignSeries(dataset.Series[pos], crit); ok {
					slots[pos] = &group
				}
			}
		})
	}

	// Send series to worker channel
	for pos := range dataset.Series {
		seriesCh <- pos
	}
	close(seriesCh)

	// Wait for all workers to finish processing
	wg.Wait()

	// Compact in input order; empty slots are groups without an anchor.
	groups := make([]schema.AlignedGroup, 0, len(slots))
	for _, g := range slots {
		if g != nil {
			groups = append(groups, *g)
		}
	}
	return groups
}

// alignSeries converts one cumulative series into anchored rows. It reports
// false when the criterion never fires for the group. Offsets are negative
// for rows before the anchor.
func alignSeries(series schema.Series, crit criterion.StartCriterion) (schema.AlignedGroup, bool) {
	anchor, ok := crit.Anchor(series)
	if !ok {
		return schema.AlignedGroup{}, false
	}

	rows := make([]schema.AlignedRow, 0, len(series.Points))
	for _, p := range series.Points {
		rows = append(rows, schema.AlignedRow{
			Group: series.Group,
			Date:  p.Date,
			X:     contract.DaysBetween(anchor, p.Date),
			Y:     p.Value,
		})
	}

	return schema.AlignedGroup{Group: series.Group, DateOfN: anchor, Rows: rows}, true
}
