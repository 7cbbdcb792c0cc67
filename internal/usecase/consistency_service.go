package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/analysis"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

type ConsistencyReport struct {
	Path      string           `json:"path"`
	Checked   int              `json:"checked"`
	Tolerance int              `json:"tolerance"`
	Issues    []analysis.Issue `json:"issues"`
}

func (r ConsistencyReport) OK() bool {
	return len(r.Issues) == 0
}

type ConsistencyService struct {
	analysisRepo analysis.Repository
	tolerance    int
	logger       *logging.Logger
}

func NewConsistencyService(analysisRepo analysis.Repository, tolerance int, logger *logging.Logger) *ConsistencyService {
	if tolerance < 0 {
		tolerance = analysis.DefaultSumTolerance
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ConsistencyService{
		analysisRepo: analysisRepo,
		tolerance:    tolerance,
		logger:       logger,
	}
}

// Check validates every analysis in the document at in. Issues are data,
// not errors: the error return is reserved for load failures.
func (s *ConsistencyService) Check(ctx context.Context, in string) (ConsistencyReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConsistencyService.Check")
	defer span.End()

	in = strings.TrimSpace(in)
	if in == "" {
		return ConsistencyReport{}, fmt.Errorf("%w: input path is required", ErrInvalidInput)
	}

	doc, err := s.analysisRepo.Load(ctx, in)
	if err != nil {
		return ConsistencyReport{}, fmt.Errorf("load analysis: %w", err)
	}

	report := ConsistencyReport{
		Path:      in,
		Checked:   len(doc.Analyses),
		Tolerance: s.tolerance,
		Issues:    []analysis.Issue{},
	}
	for i, a := range doc.Analyses {
		report.Issues = append(report.Issues, analysis.Check(i, a, s.tolerance)...)
	}

	if report.OK() {
		s.logger.InfoContext(ctx, "analysis consistent", "path", in, "checked", report.Checked)
	} else {
		s.logger.WarnContext(ctx, "analysis has consistency issues",
			"path", in,
			"checked", report.Checked,
			"issues", len(report.Issues),
		)
	}
	return report, nil
}
