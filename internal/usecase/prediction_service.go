package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/analysis"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

type PredictionService struct {
	matchRepo    match.Repository
	analysisRepo analysis.Repository
	predictor    MatchPredictor
	logger       *logging.Logger
	now          func() time.Time
}

func NewPredictionService(matchRepo match.Repository, analysisRepo analysis.Repository, predictor MatchPredictor, logger *logging.Logger) *PredictionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PredictionService{
		matchRepo:    matchRepo,
		analysisRepo: analysisRepo,
		predictor:    predictor,
		logger:       logger,
		now:          time.Now,
	}
}

// Analyze predicts every match in the list at in and writes the analysis
// document to out.
func (s *PredictionService) Analyze(ctx context.Context, in, out string) (analysis.Document, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Analyze")
	defer span.End()

	in, out = strings.TrimSpace(in), strings.TrimSpace(out)
	if in == "" || out == "" {
		return analysis.Document{}, fmt.Errorf("%w: input and output paths are required", ErrInvalidInput)
	}

	list, err := s.matchRepo.LoadList(ctx, in)
	if err != nil {
		return analysis.Document{}, fmt.Errorf("load matches: %w", err)
	}

	items := make([]analysis.Analysis, 0, len(list.Matches))
	for _, m := range list.Matches {
		items = append(items, analysis.New(m, s.predictor.Predict(m)))
	}

	doc := analysis.NewDocument(items, s.now())
	if err := s.analysisRepo.Save(ctx, out, doc); err != nil {
		return analysis.Document{}, fmt.Errorf("save analysis: %w", err)
	}

	s.logger.InfoContext(ctx, "analysis written",
		"path", out,
		"matches", doc.TotalMatches,
		"days", len(doc.DailySummary),
	)
	return doc, nil
}
