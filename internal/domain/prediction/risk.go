package prediction

const (
	lowRiskAbove    = 60
	mediumRiskAbove = 40
)

// RiskLevelFor buckets the dominant outcome probability.
func RiskLevelFor(probability int) RiskLevel {
	switch {
	case probability > lowRiskAbove:
		return RiskLow
	case probability > mediumRiskAbove:
		return RiskMedium
	default:
		return RiskHigh
	}
}
