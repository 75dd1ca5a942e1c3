package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDay covers the auto-detected layouts and explicit overrides.
func TestParseDay(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		layout      string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "iso date",
			input:    "2020-03-10",
			expected: time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "slash iso date",
			input:    "2020/03/10",
			expected: time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "jhu short date",
			input:    "3/10/20",
			expected: time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "us long date",
			input:    "3/10/2020",
			expected: time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339 truncated to day",
			input:    "2020-03-10T14:30:00Z",
			expected: time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace",
			input:    "  2020-03-10  ",
			expected: time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "explicit layout wins",
			input:    "10.03.2020",
			layout:   "02.01.2006",
			expected: time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:        "explicit layout mismatch",
			input:       "2020-03-10",
			layout:      "02.01.2006",
			expectError: true,
		},
		{
			name:        "garbage",
			input:       "not-a-date",
			expectError: true,
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.input, tt.layout)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestDaysBetween checks whole-day offsets in both directions.
func TestDaysBetween(t *testing.T) {
	anchor := time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"same day", anchor, anchor, 0},
		{"five days later", anchor, anchor.AddDate(0, 0, 5), 5},
		{"ten days later", anchor, anchor.AddDate(0, 0, 10), 10},
		{"three days earlier", anchor, anchor.AddDate(0, 0, -3), -3},
		{"time of day ignored", anchor.Add(23 * time.Hour), anchor.AddDate(0, 0, 5), 5},
		{"month boundary", time.Date(2020, 2, 28, 0, 0, 0, 0, time.UTC), time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(tt.start, tt.end))
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2020, 3, 10, 18, 45, 12, 999, time.UTC)
	got := TruncateToDay(in)
	assert.Equal(t, time.Date(2020, 3, 10, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, got, TruncateToDay(got), "truncation is idempotent")
}

// FuzzParseDay fuzzes the ParseDay function with random inputs.
func FuzzParseDay(f *testing.F) {
	seeds := []string{
		"2020-03-10",
		"3/10/20",
		"2020-03-10T14:30:00Z",
		"",
		"not-a-date",
		"99/99/99",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Must never panic; errors are fine.
		_, _ = ParseDay(input, "")
	})
}
