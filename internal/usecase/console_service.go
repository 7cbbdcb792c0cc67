package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchday/internal/domain/analysis"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

// ConsoleService prints an analysis document for humans.
type ConsoleService struct {
	analysisRepo analysis.Repository
	logger       *logging.Logger
}

func NewConsoleService(analysisRepo analysis.Repository, logger *logging.Logger) *ConsoleService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ConsoleService{analysisRepo: analysisRepo, logger: logger}
}

func (s *ConsoleService) Render(ctx context.Context, in string, w io.Writer) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConsoleService.Render")
	defer span.End()

	in = strings.TrimSpace(in)
	if in == "" {
		return fmt.Errorf("%w: input path is required", ErrInvalidInput)
	}
	if w == nil {
		return fmt.Errorf("%w: writer is required", ErrInvalidInput)
	}

	doc, err := s.analysisRepo.Load(ctx, in)
	if err != nil {
		return fmt.Errorf("load analysis: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	RenderAnalysis(buf, doc)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write console output: %w", err)
	}
	s.logger.DebugContext(ctx, "analysis rendered", "path", in, "bytes", buf.Len())
	return nil
}

// RenderAnalysis formats the document grouped by match day.
func RenderAnalysis(buf *bytebufferpool.ByteBuffer, doc analysis.Document) {
	summaries := doc.DailySummary
	if len(summaries) == 0 {
		summaries = analysis.SummarizeByDate(doc.Analyses)
	}

	byDate := make(map[string][]analysis.Analysis, len(summaries))
	for _, a := range doc.Analyses {
		key := analysis.DateKey(a.Date)
		byDate[key] = append(byDate[key], a)
	}

	_, _ = buf.WriteString("Match analysis: " + strconv.Itoa(len(doc.Analyses)) + " matches")
	if doc.GeneratedAt != "" {
		_, _ = buf.WriteString(" (generated " + doc.GeneratedAt + ")")
	}
	_ = buf.WriteByte('\n')

	for _, day := range summaries {
		items := byDate[day.Date]
		if len(items) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(buf, "\n=== %s | %d matches | LOW %d | MEDIUM %d | HIGH %d ===\n",
			day.Date, day.Matches, day.LowRisk, day.MediumRisk, day.HighRisk)
		for _, a := range items {
			writeAnalysis(buf, a)
		}
	}
}

func writeAnalysis(buf *bytebufferpool.ByteBuffer, a analysis.Analysis) {
	_, _ = buf.WriteString(a.HomeTeam + " vs " + a.AwayTeam)
	if a.League != "" {
		_, _ = buf.WriteString(" | " + a.League)
	}
	if a.Time != "" {
		_, _ = buf.WriteString(" | " + a.Time)
	}
	_ = buf.WriteByte('\n')

	_, _ = fmt.Fprintf(buf, "  1X2: %s / %s / %s  Score: %s (HT %s)  Winner: %s\n",
		formatProbability(a.Probabilities.HomeWin),
		formatProbability(a.Probabilities.Draw),
		formatProbability(a.Probabilities.AwayWin),
		a.Prediction.Score,
		a.Prediction.HalfTime,
		a.Prediction.Winner,
	)

	corners := analysis.Placeholder
	if c := a.Prediction.Corners; c != nil {
		corners = fmt.Sprintf("%d-%d (%d)", c.Home, c.Away, c.Total)
	}
	_, _ = fmt.Fprintf(buf, "  %s  Corners: %s  Risk: %s\n", a.Prediction.OverUnder, corners, a.RiskLevel)
	if a.Reason != "" {
		_, _ = buf.WriteString("  " + a.Reason + "\n")
	}
}

func formatProbability(v any) string {
	if n, ok := analysis.IntValue(v); ok {
		return strconv.Itoa(n) + "%"
	}
	if v == nil {
		return analysis.Placeholder
	}
	return fmt.Sprint(v)
}
