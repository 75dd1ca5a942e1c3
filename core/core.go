// Package core has the normalization, alignment, intervention-join and
// extrapolation pipeline that turns raw time series into chart data.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/internal/outwriter"
)

// ExecutorFunc defines the function signature for executing pipeline commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// ExecuteChartBuild runs the full pipeline and prints every chart row.
// It serves as the main entry point for the 'build' command.
func ExecuteChartBuild(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := RunBuild(cfg, mgr, clockwork.NewRealClock())
	if err != nil {
		return err
	}
	warnSkippedRows(result.SkippedRows)
	duration := time.Since(start)
	return outwriter.PrintChartResults(result.Chart, cfg, duration)
}

// ExecuteChartGroups runs the pipeline and prints one summary per group.
// It serves as the main entry point for the 'groups' command.
func ExecuteChartGroups(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := RunBuild(cfg, mgr, clockwork.NewRealClock())
	if err != nil {
		return err
	}
	warnSkippedRows(result.SkippedRows)
	duration := time.Since(start)
	return outwriter.PrintGroupResults(result.Chart, cfg, duration)
}

// ExecuteChartProjection runs the pipeline and prints the exponential
// projection parameters for every group with a usable intervention.
// It serves as the main entry point for the 'projection' command.
func ExecuteChartProjection(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := RunBuild(cfg, mgr, clockwork.NewRealClock())
	if err != nil {
		return err
	}
	warnSkippedRows(result.SkippedRows)
	projections := Extrapolations(result.Chart.Rows)
	duration := time.Since(start)
	return outwriter.PrintProjectionResults(projections, cfg, duration)
}

// warnSkippedRows surfaces loader bookkeeping without failing the run.
func warnSkippedRows(skipped int) {
	if skipped > 0 {
		contract.LogWarn("Dataset parsing", fmt.Errorf("skipped %d malformed rows", skipped))
	}
}
