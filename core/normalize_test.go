package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

func TestNormalizeSeriesRunningTotals(t *testing.T) {
	dataset := schema.Dataset{Series: []schema.Series{cumSeries("Italy", 10, 20, 30)}}

	out := NormalizeSeries(&contract.Config{}, dataset)

	require.Len(t, out.Series, 1)
	assert.Equal(t, []float64{10, 30, 60}, pointValues(out.Series[0]))
	assert.Equal(t, []float64{10, 20, 30}, pointValues(dataset.Series[0]), "input stays untouched")
}

func TestNormalizeSeriesAlreadyCumulative(t *testing.T) {
	dataset := schema.Dataset{Series: []schema.Series{cumSeries("Italy", 10, 30, 60)}}

	out := NormalizeSeries(&contract.Config{Cumulative: true}, dataset)

	require.Len(t, out.Series, 1)
	assert.Equal(t, []float64{10, 30, 60}, pointValues(out.Series[0]))
}

func TestNormalizeSeriesTopK(t *testing.T) {
	dataset := schema.Dataset{Series: []schema.Series{
		cumSeries("Spain", 100),
		cumSeries("China", 300),
		cumSeries("Italy", 200),
	}}

	tests := []struct {
		name       string
		topK       int
		wantGroups []string
	}{
		{
			name:       "zero keeps all ranked by peak",
			topK:       0,
			wantGroups: []string{"China", "Italy", "Spain"},
		},
		{
			name:       "top two by peak",
			topK:       2,
			wantGroups: []string{"China", "Italy"},
		},
		{
			name:       "limit larger than group count",
			topK:       10,
			wantGroups: []string{"China", "Italy", "Spain"},
		},
		{
			name:       "top one",
			topK:       1,
			wantGroups: []string{"China"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &contract.Config{Cumulative: true, TopK: tc.topK}
			out := NormalizeSeries(cfg, dataset)

			groups := make([]string, 0, len(out.Series))
			for _, s := range out.Series {
				groups = append(groups, s.Group)
			}
			assert.Equal(t, tc.wantGroups, groups)
		})
	}
}

func TestNormalizeSeriesTopKTiesKeepInputOrder(t *testing.T) {
	dataset := schema.Dataset{Series: []schema.Series{
		cumSeries("Italy", 200),
		cumSeries("France", 200),
		cumSeries("Spain", 200),
	}}

	out := NormalizeSeries(&contract.Config{Cumulative: true, TopK: 2}, dataset)

	require.Len(t, out.Series, 2)
	assert.Equal(t, "Italy", out.Series[0].Group)
	assert.Equal(t, "France", out.Series[1].Group)
}

func TestNormalizeSeriesPeakUsesCumulativeValue(t *testing.T) {
	// Raw increments: Spain bursts early, Italy accumulates more in total.
	dataset := schema.Dataset{Series: []schema.Series{
		cumSeries("Spain", 90, 1, 1),
		cumSeries("Italy", 40, 40, 40),
	}}

	out := NormalizeSeries(&contract.Config{TopK: 1}, dataset)

	require.Len(t, out.Series, 1)
	assert.Equal(t, "Italy", out.Series[0].Group, "ranking happens after the cumulative transform")
}
