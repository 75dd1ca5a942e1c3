package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adizioli/covid19-vis/core/criterion"
	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

func TestAlignGroupsThreshold(t *testing.T) {
	dataset := schema.Dataset{Series: []schema.Series{
		cumSeries("Italy", 10, 30, 50, 80, 120),
		cumSeries("Norway", 1, 2, 3),
	}}
	cfg := &contract.Config{Workers: 2}

	aligned := AlignGroups(cfg, dataset, &criterion.DaysSinceThresholdReached{Threshold: 50})

	require.Len(t, aligned, 1, "groups never reaching the threshold are dropped")
	italy := aligned[0]
	assert.Equal(t, "Italy", italy.Group)
	assert.Equal(t, day(2), italy.DateOfN)

	require.Len(t, italy.Rows, 5)
	assert.Equal(t, -2, italy.Rows[0].X, "pre-anchor rows keep negative offsets")
	assert.Equal(t, 0, italy.Rows[2].X)
	assert.Equal(t, 2, italy.Rows[4].X)
	assert.Equal(t, 120.0, italy.Rows[4].Y)

	for i := 1; i < len(italy.Rows); i++ {
		assert.Greater(t, italy.Rows[i].X, italy.Rows[i-1].X, "offsets grow with dates")
	}
}

func TestAlignGroupsDeterministicOrder(t *testing.T) {
	series := make([]schema.Series, 0, 16)
	for i := range 16 {
		series = append(series, cumSeries(fmt.Sprintf("G%02d", i), 60, 70, 80))
	}
	cfg := &contract.Config{Workers: 3}

	aligned := AlignGroups(cfg, schema.Dataset{Series: series}, &criterion.DaysSinceThresholdReached{Threshold: 50})

	require.Len(t, aligned, 16)
	for i, g := range aligned {
		assert.Equal(t, fmt.Sprintf("G%02d", i), g.Group, "parallel workers must not reorder groups")
	}
}

func TestAlignGroupsDefaultWorkers(t *testing.T) {
	dataset := schema.Dataset{Series: []schema.Series{cumSeries("Italy", 60)}}

	// A zero worker count falls back to the default instead of deadlocking.
	aligned := AlignGroups(&contract.Config{}, dataset, &criterion.DaysSinceThresholdReached{Threshold: 50})
	require.Len(t, aligned, 1)
}

func TestAlignGroupsFixedDate(t *testing.T) {
	dataset := schema.Dataset{Series: []schema.Series{cumSeries("Italy", 10, 20, 30)}}
	cfg := &contract.Config{Workers: 1}

	aligned := AlignGroups(cfg, dataset, &criterion.FixedDate{Date: day(1)})

	require.Len(t, aligned, 1)
	assert.Equal(t, day(1), aligned[0].DateOfN)
	assert.Equal(t, -1, aligned[0].Rows[0].X)
	assert.Equal(t, 0, aligned[0].Rows[1].X)
	assert.Equal(t, 1, aligned[0].Rows[2].X)
}

func TestAlignGroupsCalendarShared(t *testing.T) {
	dataset := schema.Dataset{Series: []schema.Series{
		cumSeries("Italy", 10, 20),
		{Group: "China", Points: []schema.Observation{
			{Group: "China", Date: day(-3), Value: 100},
			{Group: "China", Date: day(0), Value: 150},
		}},
	}}
	cfg := &contract.Config{Workers: 2}

	aligned := AlignGroups(cfg, dataset, criterion.NewCalendarDate(dataset))

	require.Len(t, aligned, 2)
	assert.Equal(t, day(-3), aligned[0].DateOfN)
	assert.Equal(t, day(-3), aligned[1].DateOfN, "calendar alignment shares one anchor")
	assert.Equal(t, 3, aligned[0].Rows[0].X, "Italy starts three days after the dataset start")
	assert.Equal(t, 0, aligned[1].Rows[0].X)
}
