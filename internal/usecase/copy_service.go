package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/riskibarqy/matchday/internal/platform/logging"
)

const (
	CopyStatusCopied  = "copied"
	CopyStatusMissing = "missing"
	CopyStatusFailed  = "failed"
)

type CopyResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// CopyService publishes generated documents from the data directory to the
// directory served by the web front end.
type CopyService struct {
	copier    FileCopier
	sourceDir string
	targetDir string
	logger    *logging.Logger
}

func NewCopyService(copier FileCopier, sourceDir, targetDir string, logger *logging.Logger) *CopyService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CopyService{
		copier:    copier,
		sourceDir: sourceDir,
		targetDir: targetDir,
		logger:    logger,
	}
}

func (s *CopyService) Publish(ctx context.Context, names ...string) ([]CopyResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CopyService.Publish")
	defer span.End()

	results := make([]CopyResult, 0, len(names))
	var errs []error
	for _, name := range names {
		name = strings.TrimSpace(name)
		row := CopyResult{Name: name}
		if name == "" {
			row.Status = CopyStatusFailed
			row.Message = "file name is required"
			results = append(results, row)
			errs = append(errs, fmt.Errorf("%w: file name is required", ErrInvalidInput))
			continue
		}

		src := filepath.Join(s.sourceDir, name)
		dst := filepath.Join(s.targetDir, name)
		err := s.copier.CopyFile(ctx, src, dst)
		switch {
		case err == nil:
			row.Status = CopyStatusCopied
			s.logger.InfoContext(ctx, "file published", "source", src, "target", dst)
		case isMissing(err):
			row.Status = CopyStatusMissing
			s.logger.WarnContext(ctx, "source file missing, skipping", "source", src)
		default:
			row.Status = CopyStatusFailed
			row.Message = err.Error()
			errs = append(errs, fmt.Errorf("copy %s: %w", name, err))
			s.logger.ErrorContext(ctx, "publish file failed", "source", src, "error", err)
		}
		results = append(results, row)
	}

	if len(errs) > 0 {
		return results, errors.Join(errs...)
	}
	return results, nil
}
