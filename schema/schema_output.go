package schema

// EnrichedGroupSummary adds presentation data to a GroupSummary.
type EnrichedGroupSummary struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	GroupSummary
}

// GetGrowthLabel returns a plain text label indicating how fast a group was
// growing per day between anchor and intervention.
func GetGrowthLabel(slope float64) string {
	switch {
	case slope >= 1.3:
		return "Rapid"
	case slope >= 1.15:
		return "High"
	case slope >= 1.05:
		return "Moderate"
	default:
		return "Slow"
	}
}

// EnrichGroups adds rank and label to a list of group summaries. Groups
// without a defined growth factor get an empty label.
func EnrichGroups(groups []GroupSummary) []EnrichedGroupSummary {
	output := make([]EnrichedGroupSummary, len(groups))
	for i, g := range groups {
		label := ""
		if g.LockdownSlope != nil {
			label = GetGrowthLabel(*g.LockdownSlope)
		}
		output[i] = EnrichedGroupSummary{
			Rank:         i + 1,
			Label:        label,
			GroupSummary: g,
		}
	}
	return output
}
