package analysis

import (
	"testing"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/prediction"
)

func TestSummarizeByDate_GroupsAndOrders(t *testing.T) {
	items := []Analysis{
		{Date: "2025-05-11T15:00:00Z", RiskLevel: "LOW"},
		{Date: "TBC", RiskLevel: "HIGH"},
		{Date: "2025-05-10", RiskLevel: "MEDIUM"},
		{Date: "2025-05-11", RiskLevel: "MEDIUM"},
		{Date: "", RiskLevel: "HIGH"},
	}

	got := SummarizeByDate(items)
	want := []DailySummary{
		{Date: "2025-05-10", Matches: 1, MediumRisk: 1},
		{Date: "2025-05-11", Matches: 2, LowRisk: 1, MediumRisk: 1},
		{Date: "TBC", Matches: 1, HighRisk: 1},
		{Date: UnknownDateKey, Matches: 1, HighRisk: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected group count: got=%d want=%d (%+v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("group %d: got=%+v want=%+v", i, got[i], want[i])
		}
	}
}

func TestNewDocument_FromPrediction(t *testing.T) {
	m := match.Match{HomeTeam: "Arsenal", AwayTeam: "Fulham", Date: "2025-05-10", League: "Premier League"}
	p := prediction.Prediction{
		HomeWinProbability: 59,
		AwayWinProbability: 41,
		PredictedScore:     "2-0",
		HalfTimeScore:      "1-0",
		Winner:             "Arsenal",
		OverUnder:          prediction.Under25,
		Corners:            prediction.Corners{Home: 6, Away: 4, Total: 10},
		RiskLevel:          prediction.RiskMedium,
		Reason:             "form",
	}

	doc := NewDocument([]Analysis{New(m, p)}, time.Date(2025, 5, 9, 8, 0, 0, 0, time.UTC))
	if doc.TotalMatches != 1 || doc.GeneratedAt != "2025-05-09T08:00:00Z" {
		t.Fatalf("unexpected document header: %+v", doc)
	}
	got := doc.Analyses[0]
	if got.Probabilities.HomeWin != 59 || got.Probabilities.Draw != 0 {
		t.Fatalf("unexpected probabilities: %+v", got.Probabilities)
	}
	if got.Prediction.Corners == nil || got.Prediction.Corners.Total != 10 {
		t.Fatalf("unexpected corners: %+v", got.Prediction.Corners)
	}
	if len(doc.DailySummary) != 1 || doc.DailySummary[0].MediumRisk != 1 {
		t.Fatalf("unexpected summary: %+v", doc.DailySummary)
	}
}

func TestNewDocument_EmptyAnalysesIsArray(t *testing.T) {
	doc := NewDocument(nil, time.Now())
	if doc.Analyses == nil {
		t.Fatalf("expected empty, non-nil analyses")
	}
}

func TestIntValue(t *testing.T) {
	if v, ok := IntValue(float64(42)); !ok || v != 42 {
		t.Fatalf("expected 42 from float64, got %d %v", v, ok)
	}
	if _, ok := IntValue(42.5); ok {
		t.Fatalf("expected fractional value to be rejected")
	}
	if _, ok := IntValue("-"); ok {
		t.Fatalf("expected placeholder to be rejected")
	}
}
