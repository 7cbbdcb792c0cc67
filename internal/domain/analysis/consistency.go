package analysis

import (
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/prediction"
)

// The checker derives risk from the home-win probability with its own
// thresholds. They intentionally differ from prediction.RiskLevelFor.
const (
	checkerLowRiskAbove    = 55
	checkerMediumRiskAbove = 35

	DefaultSumTolerance = 5
)

type IssueKind string

const (
	IssueProbabilitySum     IssueKind = "probability_sum"
	IssueRiskMismatch       IssueKind = "risk_mismatch"
	IssueInvalidProbability IssueKind = "invalid_probability"
)

// Issue is one consistency finding for an analysis.
type Issue struct {
	Index   int       `json:"index"`
	Match   string    `json:"match"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

// ExpectedRiskLevel is the checker's view of the risk for a home-win probability.
func ExpectedRiskLevel(homeWin int) prediction.RiskLevel {
	switch {
	case homeWin > checkerLowRiskAbove:
		return prediction.RiskLow
	case homeWin > checkerMediumRiskAbove:
		return prediction.RiskMedium
	default:
		return prediction.RiskHigh
	}
}

// Check validates one analysis. Placeholder values are skipped, not flagged.
func Check(index int, a Analysis, tolerance int) []Issue {
	label := a.HomeTeam + " vs " + a.AwayTeam
	values := []any{a.Probabilities.HomeWin, a.Probabilities.Draw, a.Probabilities.AwayWin}

	sum, counted := 0, 0
	for _, v := range values {
		if s, ok := v.(string); ok && s == Placeholder {
			continue
		}
		n, ok := IntValue(v)
		if !ok {
			return []Issue{{
				Index:   index,
				Match:   label,
				Kind:    IssueInvalidProbability,
				Message: fmt.Sprintf("probability value %v is not a whole number", v),
			}}
		}
		sum += n
		counted++
	}

	var issues []Issue
	if counted > 0 && (sum < 100-tolerance || sum > 100+tolerance) {
		issues = append(issues, Issue{
			Index:   index,
			Match:   label,
			Kind:    IssueProbabilitySum,
			Message: fmt.Sprintf("probabilities sum to %d, expected 100±%d", sum, tolerance),
		})
	}

	if homeWin, ok := IntValue(a.Probabilities.HomeWin); ok {
		expected := ExpectedRiskLevel(homeWin)
		if prediction.RiskLevel(a.RiskLevel) != expected {
			issues = append(issues, Issue{
				Index:   index,
				Match:   label,
				Kind:    IssueRiskMismatch,
				Message: fmt.Sprintf("risk level %q does not match %s for home win %d%%", a.RiskLevel, expected, homeWin),
			})
		}
	}

	return issues
}
