package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetColorLabel(t *testing.T) {
	tests := []struct {
		name  string
		slope float64
		label string
	}{
		{"slow", 1.01, SlowValue},
		{"moderate", 1.1, ModerateValue},
		{"high", 1.2, HighValue},
		{"rapid", 1.4, RapidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetColorLabel(tt.slope)
			// Should contain the plain label
			assert.Contains(t, result, tt.label)
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestMatchesGroup(t *testing.T) {
	tests := []struct {
		name      string
		group     string
		excludes  []string
		wantMatch bool
	}{
		{
			name:      "empty excludes",
			group:     "Italy",
			excludes:  []string{},
			wantMatch: false,
		},
		{
			name:      "exact match",
			group:     "Diamond Princess",
			excludes:  []string{"Diamond Princess"},
			wantMatch: true,
		},
		{
			name:      "case insensitive match",
			group:     "diamond princess",
			excludes:  []string{"Diamond Princess"},
			wantMatch: true,
		},
		{
			name:      "glob match",
			group:     "Diamond Princess",
			excludes:  []string{"*Princess*"},
			wantMatch: true,
		},
		{
			name:      "glob non-match",
			group:     "Italy",
			excludes:  []string{"*Princess*"},
			wantMatch: false,
		},
		{
			name:      "no substring matching without glob",
			group:     "South Korea",
			excludes:  []string{"Korea"},
			wantMatch: false,
		},
		{
			name:      "multiple excludes with match",
			group:     "MS Zaandam",
			excludes:  []string{"Diamond Princess", "MS Zaandam"},
			wantMatch: true,
		},
		{
			name:      "blank patterns are skipped",
			group:     "Italy",
			excludes:  []string{"", "  "},
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesGroup(tt.group, tt.excludes)
			assert.Equal(t, tt.wantMatch, got)
		})
	}
}

func TestGetCacheDBFilePath(t *testing.T) {
	path := GetCacheDBFilePath()

	// Should not be empty
	assert.NotEmpty(t, path)

	// Should contain the database name
	assert.Contains(t, path, ".covidvis_cache.db")

	// Should be in home directory
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, homeDir), "path %s should start with home dir %s", path, homeDir)
}

func TestGetRunsDBFilePath(t *testing.T) {
	path := GetRunsDBFilePath()

	assert.NotEmpty(t, path)
	assert.Contains(t, path, ".covidvis_runs.db")
	assert.NotEqual(t, GetCacheDBFilePath(), path, "cache and runs must not share a file")
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"short name untouched", "Italy", 20, "Italy"},
		{"exact width untouched", "Spain", 5, "Spain"},
		{"long name truncated", "Saint Vincent and the Grenadines", 20, "Saint Vincent and..."},
		{"tiny width untouched", "Italy", 3, "Italy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateName(tt.input, tt.maxWidth))
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input       string
		expected    bool
		expectError bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"false", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
