package analysis

import (
	"sort"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/prediction"
)

// Placeholder replaces zero probabilities and N/A predictions for display.
const (
	Placeholder    = "-"
	NotAvailable   = "N/A"
	UnknownDateKey = "unknown"
)

// Probabilities keeps values untyped: after a display update they may hold
// the placeholder string instead of a number.
type Probabilities struct {
	HomeWin any `json:"homeWin"`
	Draw    any `json:"draw"`
	AwayWin any `json:"awayWin"`
}

type Outcome struct {
	Score     string              `json:"score"`
	HalfTime  string              `json:"halfTime"`
	Winner    string              `json:"winner"`
	OverUnder string              `json:"overUnder"`
	Corners   *prediction.Corners `json:"corners,omitempty"`
}

// Analysis pairs one match with its prediction.
type Analysis struct {
	HomeTeam      string        `json:"homeTeam"`
	AwayTeam      string        `json:"awayTeam"`
	Date          string        `json:"date"`
	Time          string        `json:"time,omitempty"`
	League        string        `json:"league"`
	Venue         string        `json:"venue,omitempty"`
	City          string        `json:"city,omitempty"`
	Country       string        `json:"country,omitempty"`
	Probabilities Probabilities `json:"probabilities"`
	Prediction    Outcome       `json:"prediction"`
	RiskLevel     string        `json:"riskLevel"`
	Reason        string        `json:"reason"`
}

type DailySummary struct {
	Date       string `json:"date"`
	Matches    int    `json:"matches"`
	LowRisk    int    `json:"lowRisk"`
	MediumRisk int    `json:"mediumRisk"`
	HighRisk   int    `json:"highRisk"`
}

// Document is the on-disk aggregate of analyses.
type Document struct {
	GeneratedAt  string         `json:"generatedAt,omitempty"`
	TotalMatches int            `json:"totalMatches"`
	Analyses     []Analysis     `json:"analyses" validate:"required"`
	DailySummary []DailySummary `json:"dailySummary,omitempty"`
}

func New(m match.Match, p prediction.Prediction) Analysis {
	corners := p.Corners
	return Analysis{
		HomeTeam: m.HomeTeam,
		AwayTeam: m.AwayTeam,
		Date:     m.Date,
		Time:     m.Time,
		League:   m.League,
		Venue:    m.Venue,
		City:     m.City,
		Country:  m.Country,
		Probabilities: Probabilities{
			HomeWin: p.HomeWinProbability,
			Draw:    p.DrawProbability,
			AwayWin: p.AwayWinProbability,
		},
		Prediction: Outcome{
			Score:     p.PredictedScore,
			HalfTime:  p.HalfTimeScore,
			Winner:    p.Winner,
			OverUnder: p.OverUnder,
			Corners:   &corners,
		},
		RiskLevel: string(p.RiskLevel),
		Reason:    p.Reason,
	}
}

// NewDocument builds a document with its per-date summary.
func NewDocument(items []Analysis, generatedAt time.Time) Document {
	if items == nil {
		items = []Analysis{}
	}
	return Document{
		GeneratedAt:  generatedAt.UTC().Format(time.RFC3339),
		TotalMatches: len(items),
		Analyses:     items,
		DailySummary: SummarizeByDate(items),
	}
}

// SummarizeByDate groups analyses by calendar date. Parseable dates come
// first in ascending order, the rest keep first-seen order.
func SummarizeByDate(items []Analysis) []DailySummary {
	byKey := make(map[string]*DailySummary, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		key := DateKey(item.Date)
		row, ok := byKey[key]
		if !ok {
			row = &DailySummary{Date: key}
			byKey[key] = row
			order = append(order, key)
		}
		row.Matches++
		switch prediction.RiskLevel(item.RiskLevel) {
		case prediction.RiskLow:
			row.LowRisk++
		case prediction.RiskMedium:
			row.MediumRisk++
		case prediction.RiskHigh:
			row.HighRisk++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		ti, iok := parseDate(order[i])
		tj, jok := parseDate(order[j])
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return ti.Before(tj)
	})

	out := make([]DailySummary, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006",
}

// DateKey normalizes a match date to YYYY-MM-DD when it can be parsed.
func DateKey(raw string) string {
	if raw == "" {
		return UnknownDateKey
	}
	if t, ok := parseDate(raw); ok {
		return t.Format("2006-01-02")
	}
	return raw
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IntValue reads a probability that may have been decoded from JSON.
func IntValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), n == float64(int(n))
	case float32:
		return int(n), n == float32(int(n))
	default:
		return 0, false
	}
}
