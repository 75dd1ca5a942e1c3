package contract

import (
	"strings"
	"testing"
)

// FuzzMatchesGroup fuzzes the MatchesGroup function with random group names
// and exclude patterns.
func FuzzMatchesGroup(f *testing.F) {
	seeds := []struct {
		group    string
		excludes string // comma-separated
	}{
		{"Italy", "Diamond Princess"},
		{"Diamond Princess", "*Princess*"},
		{"MS Zaandam", "Diamond Princess,MS Zaandam"},
		{"", ""},
		{"Korea, South", "*[bad-glob"},
	}
	for _, seed := range seeds {
		f.Add(seed.group, seed.excludes)
	}

	f.Fuzz(func(_ *testing.T, group string, excludesStr string) {
		excludes := []string{}
		if excludesStr != "" {
			// Simple split, may not handle complex cases but good for fuzzing
			for ex := range strings.SplitSeq(excludesStr, ",") {
				if trimmed := strings.TrimSpace(ex); trimmed != "" {
					excludes = append(excludes, trimmed)
				}
			}
		}
		_ = MatchesGroup(group, excludes)
	})
}

// FuzzTruncateName fuzzes TruncateName with arbitrary widths.
func FuzzTruncateName(f *testing.F) {
	f.Add("Saint Vincent and the Grenadines", 20)
	f.Add("Italy", 0)
	f.Add("", -5)
	f.Add("日本", 4)

	f.Fuzz(func(t *testing.T, name string, maxWidth int) {
		got := TruncateName(name, maxWidth)
		if maxWidth > 3 && len([]rune(got)) > maxWidth {
			t.Errorf("TruncateName(%q, %d) = %q, longer than width", name, maxWidth, got)
		}
	})
}
