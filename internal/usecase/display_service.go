package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/matchday/internal/domain/analysis"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const (
	DisplayStatusUpdated = "updated"
	DisplayStatusMissing = "missing"
	DisplayStatusFailed  = "failed"

	maxDisplayWorkers = 4
)

var (
	probabilityKeys     = []string{"homeWin", "draw", "awayWin"}
	flatProbabilityKeys = []string{"homeWinProbability", "drawProbability", "awayWinProbability"}
	flatPredictionKeys  = []string{"predictedScore", "halfTimeScore", "winner", "overUnder"}
)

type DisplayResult struct {
	Path     string `json:"path"`
	Status   string `json:"status"`
	Replaced int    `json:"replaced"`
	Message  string `json:"message,omitempty"`
}

type DisplayService struct {
	rawRepo analysis.RawRepository
	logger  *logging.Logger
}

func NewDisplayService(rawRepo analysis.RawRepository, logger *logging.Logger) *DisplayService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DisplayService{rawRepo: rawRepo, logger: logger}
}

// ApplyPlaceholders rewrites each document in place. Absent files are
// reported as missing and skipped; other failures are joined into the
// returned error after every path has been tried.
func (s *DisplayService) ApplyPlaceholders(ctx context.Context, paths ...string) ([]DisplayResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DisplayService.ApplyPlaceholders")
	defer span.End()

	results := make([]DisplayResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	pool, err := ants.NewPool(min(len(paths), maxDisplayWorkers))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, path := range paths {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results[i] = s.applyOne(ctx, path)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	var errs []error
	for _, row := range results {
		if row.Status == DisplayStatusFailed {
			errs = append(errs, fmt.Errorf("%s: %s", row.Path, row.Message))
		}
	}
	if len(errs) > 0 {
		return results, fmt.Errorf("apply placeholders: %w", errors.Join(errs...))
	}
	return results, nil
}

func (s *DisplayService) applyOne(ctx context.Context, path string) DisplayResult {
	row := DisplayResult{Path: path}
	if strings.TrimSpace(path) == "" {
		row.Status = DisplayStatusFailed
		row.Message = ErrInvalidInput.Error() + ": path is required"
		return row
	}

	doc, err := s.rawRepo.LoadRaw(ctx, path)
	switch {
	case isMissing(err):
		s.logger.WarnContext(ctx, "display target missing, skipping", "path", path)
		row.Status = DisplayStatusMissing
		return row
	case err != nil:
		s.logger.ErrorContext(ctx, "load display target failed", "path", path, "error", err)
		row.Status = DisplayStatusFailed
		row.Message = err.Error()
		return row
	}

	row.Replaced = ApplyDisplayPlaceholders(doc)
	if err := s.rawRepo.SaveRaw(ctx, path, doc); err != nil {
		s.logger.ErrorContext(ctx, "save display target failed", "path", path, "error", err)
		row.Status = DisplayStatusFailed
		row.Message = err.Error()
		return row
	}

	s.logger.InfoContext(ctx, "display placeholders applied", "path", path, "replaced", row.Replaced)
	row.Status = DisplayStatusUpdated
	return row
}

// ApplyDisplayPlaceholders walks an analysis document ("analyses") or a
// processed document ("matches") and replaces zero probabilities and N/A
// prediction strings with the placeholder. It returns the replacement count.
func ApplyDisplayPlaceholders(doc map[string]any) int {
	replaced := 0
	for _, record := range records(doc["analyses"]) {
		if probs, ok := record["probabilities"].(map[string]any); ok {
			replaced += replaceZeros(probs, probabilityKeys)
		}
		if pred, ok := record["prediction"].(map[string]any); ok {
			for key, v := range pred {
				if v == analysis.NotAvailable {
					pred[key] = analysis.Placeholder
					replaced++
				}
			}
		}
	}
	for _, record := range records(doc["matches"]) {
		replaced += replaceZeros(record, flatProbabilityKeys)
		for _, key := range flatPredictionKeys {
			if record[key] == analysis.NotAvailable {
				record[key] = analysis.Placeholder
				replaced++
			}
		}
	}
	return replaced
}

func records(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if record, ok := item.(map[string]any); ok {
			out = append(out, record)
		}
	}
	return out
}

func replaceZeros(values map[string]any, keys []string) int {
	replaced := 0
	for _, key := range keys {
		v, exists := values[key]
		if !exists {
			continue
		}
		if n, ok := analysis.IntValue(v); ok && n == 0 {
			values[key] = analysis.Placeholder
			replaced++
		}
	}
	return replaced
}
