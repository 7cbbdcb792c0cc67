package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/analysis"
	"github.com/riskibarqy/matchday/internal/domain/prediction"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const (
	DefaultVenue   = "TBA"
	DefaultCity    = "Unknown"
	DefaultCountry = "Unknown"
)

// ProcessedMatch is the flattened record consumed by the web front end.
type ProcessedMatch struct {
	ID                 int                 `json:"id"`
	HomeTeam           string              `json:"homeTeam"`
	AwayTeam           string              `json:"awayTeam"`
	Date               string              `json:"date"`
	Time               string              `json:"time"`
	League             string              `json:"league"`
	Venue              string              `json:"venue"`
	City               string              `json:"city"`
	Country            string              `json:"country"`
	HomeWinProbability any                 `json:"homeWinProbability"`
	DrawProbability    any                 `json:"drawProbability"`
	AwayWinProbability any                 `json:"awayWinProbability"`
	PredictedScore     string              `json:"predictedScore"`
	HalfTimeScore      string              `json:"halfTimeScore"`
	Winner             string              `json:"winner"`
	OverUnder          string              `json:"overUnder"`
	Corners            *prediction.Corners `json:"corners,omitempty"`
	RiskLevel          string              `json:"riskLevel"`
	Reason             string              `json:"reason"`
}

type ProcessedMatchesDocument struct {
	LastUpdated  string           `json:"lastUpdated"`
	TotalMatches int              `json:"totalMatches"`
	Matches      []ProcessedMatch `json:"matches"`
}

type ProcessedMatchService struct {
	analysisRepo analysis.Repository
	writer       DocumentWriter
	logger       *logging.Logger
	now          func() time.Time
}

func NewProcessedMatchService(analysisRepo analysis.Repository, writer DocumentWriter, logger *logging.Logger) *ProcessedMatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ProcessedMatchService{
		analysisRepo: analysisRepo,
		writer:       writer,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *ProcessedMatchService) Convert(ctx context.Context, in, out string) (ProcessedMatchesDocument, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ProcessedMatchService.Convert")
	defer span.End()

	in, out = strings.TrimSpace(in), strings.TrimSpace(out)
	if in == "" || out == "" {
		return ProcessedMatchesDocument{}, fmt.Errorf("%w: input and output paths are required", ErrInvalidInput)
	}

	doc, err := s.analysisRepo.Load(ctx, in)
	if err != nil {
		return ProcessedMatchesDocument{}, fmt.Errorf("load analysis: %w", err)
	}

	processed := ToProcessedMatches(doc.Analyses, s.now())
	if err := s.writer.WriteDocument(ctx, out, processed); err != nil {
		return ProcessedMatchesDocument{}, fmt.Errorf("write processed matches: %w", err)
	}

	s.logger.InfoContext(ctx, "processed matches written", "path", out, "matches", processed.TotalMatches)
	return processed, nil
}

// ToProcessedMatches remaps analyses in order; ids start at 1.
func ToProcessedMatches(items []analysis.Analysis, lastUpdated time.Time) ProcessedMatchesDocument {
	out := ProcessedMatchesDocument{
		LastUpdated:  lastUpdated.UTC().Format(time.RFC3339),
		TotalMatches: len(items),
		Matches:      make([]ProcessedMatch, 0, len(items)),
	}
	for i, a := range items {
		out.Matches = append(out.Matches, ProcessedMatch{
			ID:                 i + 1,
			HomeTeam:           a.HomeTeam,
			AwayTeam:           a.AwayTeam,
			Date:               a.Date,
			Time:               a.Time,
			League:             a.League,
			Venue:              valueOr(a.Venue, DefaultVenue),
			City:               valueOr(a.City, DefaultCity),
			Country:            valueOr(a.Country, DefaultCountry),
			HomeWinProbability: a.Probabilities.HomeWin,
			DrawProbability:    a.Probabilities.Draw,
			AwayWinProbability: a.Probabilities.AwayWin,
			PredictedScore:     a.Prediction.Score,
			HalfTimeScore:      a.Prediction.HalfTime,
			Winner:             a.Prediction.Winner,
			OverUnder:          a.Prediction.OverUnder,
			Corners:            a.Prediction.Corners,
			RiskLevel:          a.RiskLevel,
			Reason:             a.Reason,
		})
	}
	return out
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
