package schema_test

import (
	"testing"
	"time"

	"github.com/adizioli/covid19-vis/schema"
	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestSeriesPeakValue(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"Empty", nil, 0},
		{"Single", []float64{42}, 42},
		{"Increasing", []float64{1, 5, 9}, 9},
		{"Peak In Middle", []float64{3, 17, 4}, 17},
		{"All Negative", []float64{-5, -2, -9}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := schema.Series{Group: "Italy"}
			for i, v := range tt.values {
				s.Points = append(s.Points, schema.Observation{Group: "Italy", Date: day(i), Value: v})
			}
			assert.Equal(t, tt.expected, s.PeakValue())
		})
	}
}

func TestDatasetCounts(t *testing.T) {
	d := schema.Dataset{Series: []schema.Series{
		{Group: "Italy", Points: []schema.Observation{
			{Group: "Italy", Date: day(0), Value: 3},
			{Group: "Italy", Date: day(1), Value: 9},
		}},
		{Group: "Spain", Points: []schema.Observation{
			{Group: "Spain", Date: day(0), Value: 1},
		}},
	}}

	assert.Equal(t, 2, d.GroupCount())
	assert.Equal(t, 3, d.RowCount())
}
