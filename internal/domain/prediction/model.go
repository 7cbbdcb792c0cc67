package prediction

// RiskLevel is a coarse confidence label for a prediction.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

const (
	DrawWinner = "Draw"
	Over25     = "Over 2.5"
	Under25    = "Under 2.5"

	// GoalLine is the over/under threshold on total goals.
	GoalLine = 2.5
)

// Corners is the predicted corner split.
type Corners struct {
	Home  int `json:"home"`
	Away  int `json:"away"`
	Total int `json:"total"`
}

// Prediction is derived from one match and never mutated afterwards.
type Prediction struct {
	HomeWinProbability int       `json:"homeWinProbability"`
	DrawProbability    int       `json:"drawProbability"`
	AwayWinProbability int       `json:"awayWinProbability"`
	HomeGoals          int       `json:"homeGoals"`
	AwayGoals          int       `json:"awayGoals"`
	HalfTimeHomeGoals  int       `json:"halfTimeHomeGoals"`
	HalfTimeAwayGoals  int       `json:"halfTimeAwayGoals"`
	PredictedScore     string    `json:"predictedScore"`
	HalfTimeScore      string    `json:"halfTimeScore"`
	Winner             string    `json:"winner"`
	OverUnder          string    `json:"overUnder"`
	Corners            Corners   `json:"corners"`
	RiskLevel          RiskLevel `json:"riskLevel"`
	Reason             string    `json:"reason"`
}

// ProbabilityTotal is the sum of the three outcome probabilities. Rounding
// can move it away from 100.
func (p Prediction) ProbabilityTotal() int {
	return p.HomeWinProbability + p.DrawProbability + p.AwayWinProbability
}
