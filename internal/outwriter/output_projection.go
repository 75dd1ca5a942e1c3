package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/internal/parquet"
	"github.com/adizioli/covid19-vis/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintProjectionResults outputs the exponential projection parameters, dispatching based on the output format configured.
func PrintProjectionResults(projections []schema.Extrapolation, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForProjections(projections, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForProjections(projections, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForProjections(projections, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeProjectionTable(projections, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing projection table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForProjections handles opening the file and calling the JSON writer.
func printJSONResultsForProjections(projections []schema.Extrapolation, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForProjections(w, projections)
	}, "Wrote JSON projections")
}

// printCSVResultsForProjections handles opening the file and calling the CSV writer.
func printCSVResultsForProjections(projections []schema.Extrapolation, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForProjections(csvWriter, projections, fmtFloat, intFmt)
	}, "Wrote CSV projections")
}

// printParquetResultsForProjections converts the projection parameters and
// writes them as a Parquet file. Parquet is a binary format, so it never goes
// to stdout.
func printParquetResultsForProjections(projections []schema.Extrapolation, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	rows := parquet.ConvertProjectionOutput(projections)
	if err := parquet.WriteProjectionOutputParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet projections to %s\n", cfg.OutputFile)
	return nil
}

// writeProjectionTable generates and writes the human-readable table.
func writeProjectionTable(projections []schema.Extrapolation, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	title := "Projection parameters (y = intercept * slope^x)"
	if _, err := fmt.Fprintln(writer, tableTitle(title, "📈", cfg.UseEmojis)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Group", "Intercept", "Slope", "StartX", "Label"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxGroupWidth := GetMaxTableGroupWidth(cfg)
	var data [][]string
	for _, p := range projections {
		row := []string{
			contract.TruncateName(p.Group, maxGroupWidth),
			fmtFloat(p.Intercept),
			fmtFloat(p.Slope),
			fmt.Sprintf(intFmt, p.StartX),
			growthCell(&p.Slope, cfg.UseColors, "-"),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing projection parameters for %d groups\n", len(projections)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Projection completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
