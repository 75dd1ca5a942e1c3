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

// PrintChartResults outputs the aligned chart dataset, dispatching based on the output format configured.
func PrintChartResults(chart *schema.ChartDataset, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForChart(chart, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForChart(chart, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForChart(chart, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChartTable(chart, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing chart table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForChart handles opening the file and calling the JSON writer.
func printJSONResultsForChart(chart *schema.ChartDataset, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForChart(w, chart)
	}, "Wrote JSON chart rows")
}

// printCSVResultsForChart handles opening the file and calling the CSV writer.
func printCSVResultsForChart(chart *schema.ChartDataset, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForChart(csvWriter, chart, fmtFloat, intFmt)
	}, "Wrote CSV chart rows")
}

// printParquetResultsForChart converts the chart rows and writes them as a
// Parquet file. Parquet is a binary format, so it never goes to stdout.
func printParquetResultsForChart(chart *schema.ChartDataset, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	rows := parquet.ConvertChartOutput(chart.Rows)
	if err := parquet.WriteChartOutputParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet chart rows to %s\n", cfg.OutputFile)
	return nil
}

// writeChartTable generates and writes the human-readable table.
func writeChartTable(chart *schema.ChartDataset, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	title := fmt.Sprintf("Chart rows (x = %s)", chart.XLabel)
	if _, err := fmt.Fprintln(writer, tableTitle(title, "📊", cfg.UseEmojis)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Group", "Date", "X", "Y", "LockX", "Type", "Growth"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxGroupWidth := GetMaxTableGroupWidth(cfg)
	var data [][]string
	for _, r := range chart.Rows {
		row := []string{
			contract.TruncateName(r.Group, maxGroupWidth),
			r.Date.Format(contract.DateOnlyFormat),
			fmt.Sprintf(intFmt, r.X),
			fmtFloat(r.Y),
			formatIntPtr(r.LockdownX, "-"),
			formatStringPtr(r.LockdownType, "-"),
			growthCell(r.LockdownSlope, cfg.UseColors, "-"),
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

	// Compute summary stats
	withLockdown := 0
	for _, r := range chart.Rows {
		if r.HasLockdown() {
			withLockdown++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d chart rows across %d groups (%d rows carry an intervention)\n", len(chart.Rows), len(chart.Groups), withLockdown); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Chart build completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
