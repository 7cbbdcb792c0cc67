package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/analysis"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/robfig/cron/v3"
)

type MatchAnalyzer interface {
	Analyze(ctx context.Context, in, out string) (analysis.Document, error)
}

type AnalysisConverter interface {
	Convert(ctx context.Context, in, out string) (ProcessedMatchesDocument, error)
}

type PlaceholderApplier interface {
	ApplyPlaceholders(ctx context.Context, paths ...string) ([]DisplayResult, error)
}

type DocumentPublisher interface {
	Publish(ctx context.Context, names ...string) ([]CopyResult, error)
}

// PipelinePaths names the documents a pipeline run reads and writes.
type PipelinePaths struct {
	DataDir       string
	PublicDataDir string
	MatchesFile   string
	AnalysisFile  string
	ProcessedFile string
}

type PipelineResult struct {
	Analyzed   int             `json:"analyzed"`
	Processed  int             `json:"processed"`
	Display    []DisplayResult `json:"display"`
	Published  []CopyResult    `json:"published"`
	DurationMs int64           `json:"duration_ms"`
}

// PipelineService chains predict, process, display and copy.
type PipelineService struct {
	analyzer  MatchAnalyzer
	converter AnalysisConverter
	display   PlaceholderApplier
	publisher DocumentPublisher
	paths     PipelinePaths
	logger    *logging.Logger
}

func NewPipelineService(
	analyzer MatchAnalyzer,
	converter AnalysisConverter,
	display PlaceholderApplier,
	publisher DocumentPublisher,
	paths PipelinePaths,
	logger *logging.Logger,
) *PipelineService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PipelineService{
		analyzer:  analyzer,
		converter: converter,
		display:   display,
		publisher: publisher,
		paths:     paths,
		logger:    logger,
	}
}

// Run executes one pass. A failing stage stops the pass.
func (s *PipelineService) Run(ctx context.Context) (PipelineResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PipelineService.Run")
	defer span.End()

	start := time.Now()
	var result PipelineResult

	matchesPath := filepath.Join(s.paths.DataDir, s.paths.MatchesFile)
	analysisPath := filepath.Join(s.paths.DataDir, s.paths.AnalysisFile)
	processedPath := filepath.Join(s.paths.DataDir, s.paths.ProcessedFile)

	doc, err := s.analyzer.Analyze(ctx, matchesPath, analysisPath)
	if err != nil {
		return result, fmt.Errorf("predict stage: %w", err)
	}
	result.Analyzed = doc.TotalMatches

	processed, err := s.converter.Convert(ctx, analysisPath, processedPath)
	if err != nil {
		return result, fmt.Errorf("process stage: %w", err)
	}
	result.Processed = processed.TotalMatches

	result.Display, err = s.display.ApplyPlaceholders(ctx,
		analysisPath,
		filepath.Join(s.paths.PublicDataDir, s.paths.AnalysisFile),
	)
	if err != nil {
		return result, fmt.Errorf("display stage: %w", err)
	}

	result.Published, err = s.publisher.Publish(ctx, s.paths.AnalysisFile, s.paths.ProcessedFile)
	if err != nil {
		return result, fmt.Errorf("copy stage: %w", err)
	}

	result.DurationMs = time.Since(start).Milliseconds()
	s.logger.InfoContext(ctx, "pipeline run completed",
		"analyzed", result.Analyzed,
		"processed", result.Processed,
		"duration_ms", result.DurationMs,
	)
	return result, nil
}

// Watch runs the pipeline once immediately and then on schedule until ctx
// is done. Overlapping runs are skipped.
func (s *PipelineService) Watch(ctx context.Context, schedule string) error {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		return fmt.Errorf("%w: schedule is required", ErrInvalidInput)
	}

	cronLogger := cronLogAdapter{logger: s.logger}
	scheduler := cron.New(cron.WithLogger(cronLogger), cron.WithChain(
		cron.Recover(cronLogger),
		cron.SkipIfStillRunning(cronLogger),
	))
	job := cron.FuncJob(func() {
		if _, err := s.Run(ctx); err != nil {
			s.logger.ErrorContext(ctx, "scheduled pipeline run failed", "error", err)
		}
	})
	if _, err := scheduler.AddJob(schedule, job); err != nil {
		return fmt.Errorf("%w: schedule %q: %v", ErrInvalidInput, schedule, err)
	}

	s.logger.InfoContext(ctx, "pipeline watcher started", "schedule", schedule)
	if _, err := s.Run(ctx); err != nil {
		s.logger.ErrorContext(ctx, "initial pipeline run failed", "error", err)
	}

	scheduler.Start()
	<-ctx.Done()
	<-scheduler.Stop().Done()
	s.logger.Info("pipeline watcher stopped")
	return nil
}

type cronLogAdapter struct {
	logger *logging.Logger
}

func (a cronLogAdapter) Info(msg string, keysAndValues ...any) {
	a.logger.Debug("cron: "+msg, keysAndValues...)
}

func (a cronLogAdapter) Error(err error, msg string, keysAndValues ...any) {
	a.logger.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
