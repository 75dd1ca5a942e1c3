package dataload_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/internal/dataload"
	"github.com/adizioli/covid19-vis/schema"
)

const interventionsCSV = `Country_Region,lockdown_date,lockdown_type
Italy,2020-03-09,Full
Italy,2020-02-23,Partial
Spain,2020-03-14,Full
France,,Full
Germany,2020-03-22,
,2020-03-10,Full
Sweden,not-a-date,Advisory
`

func interventionsConfig() *contract.Config {
	cfg := testConfig()
	cfg.InterventionsPath = "interventions.csv"
	return cfg
}

func TestParseInterventions(t *testing.T) {
	events, err := dataload.ParseInterventions([]byte(interventionsCSV), interventionsConfig())
	require.NoError(t, err)

	require.Len(t, events, 3, "rows with blank or unparsable fields are dropped")
	assert.Equal(t, "Italy", events[0].Group)
	assert.Equal(t, time.Date(2020, 3, 9, 0, 0, 0, 0, time.UTC), events[0].Date)
	assert.Equal(t, "Full", events[0].Type)
	assert.Equal(t, "Italy", events[1].Group, "duplicate groups are kept for the joiner to resolve")
	assert.Equal(t, "Spain", events[2].Group)
}

func TestParseInterventionsMissingColumn(t *testing.T) {
	tests := []struct {
		name   string
		header string
		column string
	}{
		{
			name:   "missing group column",
			header: "Region,lockdown_date,lockdown_type",
			column: schema.DefaultGroupColumn,
		},
		{
			name:   "missing date column",
			header: "Country_Region,date,lockdown_type",
			column: schema.InterventionDateColumn,
		},
		{
			name:   "missing type column",
			header: "Country_Region,lockdown_date,type",
			column: schema.InterventionTypeColumn,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := tc.header + "\nItaly,2020-03-09,Full\n"

			_, err := dataload.ParseInterventions([]byte(data), interventionsConfig())
			var dataErr *schema.InterventionDataError
			require.ErrorAs(t, err, &dataErr)
			assert.Equal(t, tc.column, dataErr.Column)
			assert.Equal(t, "interventions.csv", dataErr.Path)
		})
	}
}

func TestLoadInterventions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interventions.csv")
	require.NoError(t, os.WriteFile(path, []byte(interventionsCSV), 0o644))

	cfg := interventionsConfig()
	cfg.InterventionsPath = path

	events, err := dataload.LoadInterventions(cfg)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestLoadInterventionsNoPath(t *testing.T) {
	cfg := testConfig()
	cfg.InterventionsPath = ""

	events, err := dataload.LoadInterventions(cfg)
	require.NoError(t, err)
	assert.Nil(t, events)
}

func TestLoadInterventionsMissingFile(t *testing.T) {
	cfg := interventionsConfig()
	cfg.InterventionsPath = filepath.Join(t.TempDir(), "nope.csv")

	_, err := dataload.LoadInterventions(cfg)
	assert.Error(t, err)
}
