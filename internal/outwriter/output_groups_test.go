package outwriter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGroupsTable(t *testing.T) {
	chart := &schema.ChartDataset{
		XLabel: "days since reaching 50 confirmed",
		Groups: []schema.GroupSummary{
			{
				Group:         "Italy",
				DateOfN:       time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
				PeakY:         9200,
				Rows:          31,
				LockdownX:     schema.Ptr(5),
				LockdownType:  schema.Ptr("Full"),
				LockdownSlope: schema.Ptr(1.5),
			},
			{
				Group:   "Sweden",
				DateOfN: time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC),
				PeakY:   3100,
				Rows:    22,
			},
		},
	}

	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    2,
		Width:        120,
		Workers:      2,
		UseColors:    false,
		CacheBackend: schema.SQLiteBackend,
	}

	fmtFloat, intFmt := createFormatters(cfg.Precision)
	var buf bytes.Buffer
	duration := 100 * time.Millisecond
	err := writeGroupsTable(chart, cfg, fmtFloat, intFmt, duration, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Ranked groups (x = days since reaching 50 confirmed)")
	assert.Contains(t, output, "Italy")
	assert.Contains(t, output, "2020-03-01")
	assert.Contains(t, output, "9200.00")
	assert.Contains(t, output, "Rapid")
	assert.Contains(t, output, "Sweden")
	assert.Contains(t, output, "Showing 2 groups (1 with interventions)")
	assert.Contains(t, output, "Group ranking completed in 100ms with 2 workers. Cache backend: sqlite")
}

func TestWriteGroupsTableColors(t *testing.T) {
	// Escape codes are stripped on non-terminal writers, so the colored label
	// still renders as its plain text.
	chart := &schema.ChartDataset{
		XLabel: "days since 2020-03-01",
		Groups: []schema.GroupSummary{
			{
				Group:         "Spain",
				DateOfN:       time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC),
				PeakY:         4000,
				Rows:          12,
				LockdownX:     schema.Ptr(2),
				LockdownType:  schema.Ptr("Partial"),
				LockdownSlope: schema.Ptr(1.31),
			},
		},
	}

	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    2,
		Width:        120,
		UseColors:    true,
		CacheBackend: schema.NoneBackend,
	}

	fmtFloat, intFmt := createFormatters(cfg.Precision)
	var buf bytes.Buffer
	err := writeGroupsTable(chart, cfg, fmtFloat, intFmt, time.Millisecond, &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Rapid")
}

func TestPrintGroupResultsCSVFile(t *testing.T) {
	chart := &schema.ChartDataset{
		Groups: []schema.GroupSummary{
			{
				Group:         "Italy",
				DateOfN:       time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
				PeakY:         9200,
				Rows:          31,
				LockdownX:     schema.Ptr(5),
				LockdownType:  schema.Ptr("Full"),
				LockdownSlope: schema.Ptr(1.5),
			},
			{
				Group:   "Sweden",
				DateOfN: time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC),
				PeakY:   3100,
				Rows:    22,
			},
		},
	}

	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "groups.csv")
	cfg := &contract.Config{
		Output:     schema.CSVOut,
		OutputFile: outputFile,
		Precision:  2,
	}

	err := PrintGroupResults(chart, cfg, 50*time.Millisecond)
	require.NoError(t, err)

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "rank")
	assert.Contains(t, lines[1], "Italy")
	assert.Contains(t, lines[2], "Sweden")
}
