package usecase

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/prediction"
)

// DocumentWriter persists a JSON document at path.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, path string, v any) error
}

// FileCopier copies one file to another location.
type FileCopier interface {
	CopyFile(ctx context.Context, src, dst string) error
}

type MatchPredictor interface {
	Predict(m match.Match) prediction.Prediction
}
