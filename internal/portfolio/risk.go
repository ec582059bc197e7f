package portfolio

import "strings"

// Risk levels shown next to a holding.
const (
	RiskHigh     = "High"
	RiskModerate = "Moderate"
	RiskLow      = "Low"
	RiskUnknown  = "Unknown"
)

// RiskForCategory infers a risk level from a fund category. Scheme
// categories look like "Equity Scheme - Large Cap Fund", so the broad asset
// class is matched as a prefix.
func RiskForCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	switch {
	case strings.HasPrefix(c, "equity"):
		return RiskHigh
	case strings.HasPrefix(c, "debt"):
		return RiskLow
	case strings.HasPrefix(c, "hybrid"):
		return RiskModerate
	default:
		return RiskUnknown
	}
}
