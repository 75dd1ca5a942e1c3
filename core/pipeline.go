package core

import (
	"github.com/jonboulle/clockwork"

	"github.com/adizioli/covid19-vis/core/criterion"
	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/internal/dataload"
	"github.com/adizioli/covid19-vis/schema"
)

// BuildResult bundles everything one pipeline invocation produced.
type BuildResult struct {
	Chart       *schema.ChartDataset // final chart rows plus per-group summaries
	SkippedRows int                  // malformed input rows dropped by the loader
	RunID       int64                // run tracking ID, zero when tracking is off
}

// RunBuild loads the configured datasets and runs the full alignment
// pipeline, recording the run when a run store is configured. Tracking
// failures are logged and never fail the build.
func RunBuild(cfg *contract.Config, mgr contract.StoreManager, clock clockwork.Clock) (*BuildResult, error) {
	// --- 0. Begin run tracking (if configured) ---
	var runID int64
	runStore := mgr.GetRunStore()
	if runStore != nil {
		var err error
		runID, err = runStore.BeginRun(clock.Now(), cfg.ConfigParams())
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	// --- 1. Load phase (with caching) ---
	loaded, err := LoadCachedObservations(cfg, mgr, clock)
	if err != nil {
		return nil, err
	}
	events, err := dataload.LoadInterventions(cfg)
	if err != nil {
		return nil, err
	}

	// --- 2. Alignment pipeline ---
	chart := BuildChart(cfg, loaded.Dataset, events)

	// --- 3. End run tracking ---
	if runStore != nil && runID > 0 {
		if err := runStore.RecordChartRows(runID, chart.Rows); err != nil {
			contract.LogWarn("Run tracking failed to record chart rows", err)
		}
		if err := runStore.EndRun(runID, clock.Now(), len(chart.Rows), len(chart.Groups)); err != nil {
			contract.LogWarn("Run tracking finalization failed", err)
		}
	}

	return &BuildResult{Chart: chart, SkippedRows: loaded.SkippedRows, RunID: runID}, nil
}

// BuildChart runs the stages in order over an in-memory dataset: normalize,
// align, join interventions, clip domains, then assemble summaries.
func BuildChart(cfg *contract.Config, dataset schema.Dataset, events []schema.InterventionEvent) *schema.ChartDataset {
	normalized := NormalizeSeries(cfg, dataset)
	crit := criterion.ForConfig(cfg, normalized)
	aligned := AlignGroups(cfg, normalized, crit)
	rows := JoinInterventions(aligned, events)
	rows = ClipDomains(cfg, rows)
	return assembleChart(cfg, aligned, rows)
}

// assembleChart bundles clipped rows with per-group summaries. Summaries
// cover every aligned group, including groups clipping emptied out.
func assembleChart(cfg *contract.Config, aligned []schema.AlignedGroup, rows []schema.ChartRow) *schema.ChartDataset {
	rowsByGroup := make(map[string][]schema.ChartRow, len(aligned))
	for _, r := range rows {
		rowsByGroup[r.Group] = append(rowsByGroup[r.Group], r)
	}

	summaries := make([]schema.GroupSummary, 0, len(aligned))
	for _, g := range aligned {
		summaries = append(summaries, summarizeGroup(g, rowsByGroup[g.Group]))
	}

	return &schema.ChartDataset{
		Rows:   rows,
		XLabel: cfg.XLabel(),
		Groups: summaries,
	}
}

// summarizeGroup condenses one group's final rows for table output.
func summarizeGroup(g schema.AlignedGroup, rows []schema.ChartRow) schema.GroupSummary {
	s := schema.GroupSummary{Group: g.Group, DateOfN: g.DateOfN, Rows: len(rows)}
	for _, r := range rows {
		if r.Y > s.PeakY {
			s.PeakY = r.Y
		}
		if s.LockdownX == nil && r.HasLockdown() {
			s.LockdownX = r.LockdownX
			s.LockdownType = r.LockdownType
			s.LockdownSlope = r.LockdownSlope
		}
	}
	return s
}
