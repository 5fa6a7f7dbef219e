package domain

type TrustTier string

const (
	TrustHigh   TrustTier = "high"
	TrustMedium TrustTier = "medium"
	TrustLow    TrustTier = "low"
)

// TrustTierOf buckets a 0-100 trust score for coloring.
func TrustTierOf(score int) TrustTier {
	switch {
	case score >= 70:
		return TrustHigh
	case score >= 40:
		return TrustMedium
	default:
		return TrustLow
	}
}

// TrustLabel returns the human label shown next to a trust score.
func TrustLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 50:
		return "Fair"
	case score >= 40:
		return "Needs Work"
	default:
		return "At Risk"
	}
}
