package outwriter

import (
	"os"

	"github.com/adizioli/covid19-vis/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableGroupWidth calculates the maximum width for group names in table
// output based on terminal width and table configuration.
func GetMaxTableGroupWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns with table formatting:
	// Date + X + Y plus the intervention columns (LockX + Type + Growth)
	baseWidth := 55

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 15

	// Calculate available space for the group name
	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable group name width
		return 12
	}
	if available > 40 {
		// Maximum group name width; country and province names rarely run longer
		return 40
	}
	return available
}
