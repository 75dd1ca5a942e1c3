package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/internal/parquet"
	"github.com/adizioli/covid19-vis/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintGroupResults outputs the per-group digest, dispatching based on the output format configured.
func PrintGroupResults(chart *schema.ChartDataset, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForGroups(chart.Groups, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForGroups(chart.Groups, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForGroups(chart.Groups, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeGroupsTable(chart, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table"); err != nil {
			return fmt.Errorf("error writing groups table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForGroups handles opening the file and calling the JSON writer.
func printJSONResultsForGroups(groups []schema.GroupSummary, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForGroups(w, groups)
	}, "Wrote JSON groups")
}

// printCSVResultsForGroups handles opening the file and calling the CSV writer.
func printCSVResultsForGroups(groups []schema.GroupSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForGroups(csvWriter, groups, fmtFloat, intFmt)
	}, "Wrote CSV groups")
}

// printParquetResultsForGroups converts the group digest and writes it as a
// Parquet file. Parquet is a binary format, so it never goes to stdout.
func printParquetResultsForGroups(groups []schema.GroupSummary, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	rows := parquet.ConvertGroupOutput(groups)
	if err := parquet.WriteGroupOutputParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet groups to %s\n", cfg.OutputFile)
	return nil
}

// writeGroupsTable generates and writes the human-readable table.
func writeGroupsTable(chart *schema.ChartDataset, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	title := fmt.Sprintf("Ranked groups (x = %s)", chart.XLabel)
	if _, err := fmt.Fprintln(writer, tableTitle(title, "🏆", cfg.UseEmojis)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Group", "Anchor", "Peak Y", "Rows", "LockX", "Type", "Growth", "Label"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxGroupWidth := GetMaxTableGroupWidth(cfg)
	var data [][]string
	for i, g := range chart.Groups {
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateName(g.Group, maxGroupWidth),
			g.DateOfN.Format(contract.DateOnlyFormat),
			fmtFloat(g.PeakY),
			fmt.Sprintf(intFmt, g.Rows),
			formatIntPtr(g.LockdownX, "-"),
			formatStringPtr(g.LockdownType, "-"),
			formatFloatPtr(g.LockdownSlope, fmtFloat, "-"),
			growthCell(g.LockdownSlope, cfg.UseColors, "-"),
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
	for _, g := range chart.Groups {
		if g.LockdownX != nil {
			withLockdown++
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d groups (%d with interventions)\n", len(chart.Groups), withLockdown); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Group ranking completed in %v with %d workers. Cache backend: %s\n", duration, cfg.Workers, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
