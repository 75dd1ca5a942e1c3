package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/adizioli/covid19-vis/schema"
)

// Growth label constants.
const (
	RapidValue    = "Rapid"    // Rapid growth
	HighValue     = "High"     // High growth
	ModerateValue = "Moderate" // Moderate growth
	SlowValue     = "Slow"     // Slow or flat growth
)

// Color variables for console output.
var (
	RapidColor    = color.New(color.FgRed, color.Bold)     // rapidColor represents standard danger.
	HighColor     = color.New(color.FgMagenta, color.Bold) // highColor represents strong, distinct warning.
	ModerateColor = color.New(color.FgYellow)              // moderateColor represents standard caution, not bold.
	SlowColor     = color.New(color.FgCyan)                // slowColor represents informational / low-priority signal.
)

// GetColorLabel returns a colored growth label for console output (table).
// It uses schema.GetGrowthLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(slope float64) string {
	text := schema.GetGrowthLabel(slope)

	switch text {
	case RapidValue:
		return RapidColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Slow"
		return SlowColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// MatchesGroup returns true if the given group name matches any of the
// exclude patterns. It supports simple glob patterns (using filepath.Match)
// when the pattern contains wildcard characters (*, ?, [ ]); otherwise the
// comparison is an exact, case-insensitive match. A user can provide patterns
// like "Diamond Princess", "MS Zaandam" or "*Princess*" to drop cruise-ship
// entries from region-level data.
func MatchesGroup(group string, excludes []string) bool {
	for _, ex := range excludes {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}

		if strings.ContainsAny(ex, "*?[") {
			if ok, err := filepath.Match(ex, group); err == nil && ok {
				return true
			}
			continue
		}

		if strings.EqualFold(group, ex) {
			return true
		}
	}
	return false
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for the dataset
// cache.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".covidvis_cache.db"
	}
	return filepath.Join(homeDir, ".covidvis_cache.db")
}

// GetRunsDBFilePath returns the path to the SQLite DB file for run history.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".covidvis_runs.db"
	}
	return filepath.Join(homeDir, ".covidvis_runs.db")
}

// TruncateName truncates a group name to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 to ensure there's space for both the "..."
// suffix and at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
