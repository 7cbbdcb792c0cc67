package prediction

import (
	"fmt"
	"math"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/match"
)

// Rules stores the heuristic's strength parameters.
type Rules struct {
	BaseStrength    int
	MarqueeStrength int
	TopLeagueBonus  int
	MarqueeClubs    []string
	TopLeagues      []string
}

func DefaultRules() Rules {
	return Rules{
		BaseStrength:    50,
		MarqueeStrength: 75,
		TopLeagueBonus:  10,
		MarqueeClubs: []string{
			"real madrid",
			"barcelona",
			"manchester city",
			"manchester united",
			"liverpool",
			"arsenal",
			"chelsea",
			"bayern",
			"paris saint-germain",
			"psg",
			"juventus",
			"inter milan",
			"ac milan",
		},
		TopLeagues: []string{
			"premier league",
			"la liga",
			"bundesliga",
			"serie a",
			"ligue 1",
			"champions league",
		},
	}
}

var reasonTemplates = []string{
	"%[1]s have the stronger recent form and should control the game against %[2]s.",
	"Head-to-head history between %[1]s and %[2]s points to a tight %[3]s contest.",
	"%[2]s travel well, but %[1]s have been hard to beat at home this season.",
	"Both %[1]s and %[2]s rely on quick transitions, so expect chances at both ends.",
	"League position and squad depth give the edge in this %[3]s fixture between %[1]s and %[2]s.",
}

// Predictor produces heuristic predictions. Its only state is the random source.
type Predictor struct {
	rules Rules
	rng   RandomSource
}

func NewPredictor(rules Rules, rng RandomSource) *Predictor {
	if rng == nil {
		rng = NewRandom()
	}
	return &Predictor{rules: rules, rng: rng}
}

// Predict never fails; every call consumes the random source in the same order:
// home goals, away goals, reason, corner total, corner share.
func (p *Predictor) Predict(m match.Match) Prediction {
	home, away := p.strengths(m)

	total := float64(home + away)
	if total <= 0 {
		home, away, total = 1, 1, 2
	}
	homeWin := int(math.Round(float64(home) / total * 100))
	awayWin := int(math.Round(float64(away) / total * 100))
	draw := 100 - homeWin - awayWin

	homeGoals := 1 + p.rng.IntN(3)
	awayGoals := p.rng.IntN(3)
	htHome, htAway := homeGoals/2, awayGoals/2

	winner := DrawWinner
	switch {
	case homeGoals > awayGoals:
		winner = m.HomeTeam
	case awayGoals > homeGoals:
		winner = m.AwayTeam
	}

	reason := fmt.Sprintf(reasonTemplates[p.rng.IntN(len(reasonTemplates))], m.HomeTeam, m.AwayTeam, m.League)

	overUnder := Under25
	if float64(homeGoals+awayGoals) > GoalLine {
		overUnder = Over25
	}

	return Prediction{
		HomeWinProbability: homeWin,
		DrawProbability:    draw,
		AwayWinProbability: awayWin,
		HomeGoals:          homeGoals,
		AwayGoals:          awayGoals,
		HalfTimeHomeGoals:  htHome,
		HalfTimeAwayGoals:  htAway,
		PredictedScore:     formatScore(homeGoals, awayGoals),
		HalfTimeScore:      formatScore(htHome, htAway),
		Winner:             winner,
		OverUnder:          overUnder,
		Corners:            p.corners(),
		RiskLevel:          RiskLevelFor(max(homeWin, draw, awayWin)),
		Reason:             reason,
	}
}

func (p *Predictor) strengths(m match.Match) (int, int) {
	home, away := p.rules.BaseStrength, p.rules.BaseStrength
	if containsAny(m.HomeTeam, p.rules.MarqueeClubs) {
		home = p.rules.MarqueeStrength
	}
	if containsAny(m.AwayTeam, p.rules.MarqueeClubs) {
		away = p.rules.MarqueeStrength
	}
	if containsAny(m.League, p.rules.TopLeagues) {
		home += p.rules.TopLeagueBonus
		away += p.rules.TopLeagueBonus
	}
	return home, away
}

func (p *Predictor) corners() Corners {
	total := 8 + p.rng.IntN(10)
	home := total/2 + p.rng.IntN(5) - 2
	home = min(max(home, 0), total)
	return Corners{Home: home, Away: total - home, Total: total}
}

func containsAny(value string, needles []string) bool {
	candidate := strings.ToLower(value)
	for _, needle := range needles {
		if needle != "" && strings.Contains(candidate, needle) {
			return true
		}
	}
	return false
}

func formatScore(home, away int) string {
	return fmt.Sprintf("%d-%d", home, away)
}
