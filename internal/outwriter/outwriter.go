// Package outwriter has output and writer logic for chart build results.
package outwriter

import (
	"strconv"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/schema"
)

// formatIntPtr renders an optional int, substituting missing for nil.
func formatIntPtr(v *int, missing string) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v)
}

// formatFloatPtr renders an optional float at the configured precision,
// substituting missing for nil.
func formatFloatPtr(v *float64, fmtFloat func(float64) string, missing string) string {
	if v == nil {
		return missing
	}
	return fmtFloat(*v)
}

// formatStringPtr renders an optional string, substituting missing for nil.
func formatStringPtr(v *string, missing string) string {
	if v == nil {
		return missing
	}
	return *v
}

// growthCell renders the growth severity label for a table cell, honoring
// the color preference. Rows without a growth factor get the missing marker.
func growthCell(slope *float64, useColors bool, missing string) string {
	if slope == nil {
		return missing
	}
	if useColors {
		return contract.GetColorLabel(*slope)
	}
	return schema.GetGrowthLabel(*slope)
}

// tableTitle prefixes a table heading with an emoji when enabled.
func tableTitle(title, emoji string, useEmojis bool) string {
	if useEmojis {
		return emoji + " " + title
	}
	return title
}
