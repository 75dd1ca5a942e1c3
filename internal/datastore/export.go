package datastore

import (
	"errors"
	"fmt"

	"github.com/adizioli/covid19-vis/internal/parquet"
)

// ExecuteRunsExport performs the actual export of run data to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run tracking is not configured, set --runs-backend first")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total chart rows: %d\n", status.TableSizes[chartRowsTable])

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all chart rows
	chartRows, err := store.GetAllChartRows()
	if err != nil {
		return fmt.Errorf("failed to retrieve chart rows: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetChartRows := parquet.ConvertChartRowRecords(chartRows)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write chart rows to Parquet
	chartRowsFile := outputFile + ".chart_rows.parquet"
	if err := parquet.WriteChartRowsParquet(parquetChartRows, chartRowsFile); err != nil {
		return fmt.Errorf("failed to write chart rows: %w", err)
	}
	fmt.Printf("Exported %d chart rows to: %s\n", len(parquetChartRows), chartRowsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
