package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	analysismock "github.com/riskibarqy/matchday/internal/mocks/domain/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func analysisRaw(homeWin, draw any, winner string) map[string]any {
	return map[string]any{
		"totalMatches": 1,
		"analyses": []any{
			map[string]any{
				"homeTeam": "Arsenal",
				"awayTeam": "Chelsea",
				"probabilities": map[string]any{
					"homeWin": homeWin,
					"draw":    draw,
					"awayWin": 50,
				},
				"prediction": map[string]any{
					"score":     "2-1",
					"winner":    winner,
					"overUnder": "N/A",
				},
			},
		},
	}
}

func firstAnalysis(t *testing.T, doc map[string]any) map[string]any {
	t.Helper()
	items, ok := doc["analyses"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	out, ok := items[0].(map[string]any)
	require.True(t, ok)
	return out
}

func TestApplyDisplayPlaceholders_ReplacesZeroAndNA(t *testing.T) {
	doc := analysisRaw(float64(0), float64(12), "N/A")

	replaced := ApplyDisplayPlaceholders(doc)

	item := firstAnalysis(t, doc)
	probs := item["probabilities"].(map[string]any)
	pred := item["prediction"].(map[string]any)
	assert.Equal(t, "-", probs["homeWin"])
	assert.Equal(t, float64(12), probs["draw"])
	assert.Equal(t, 50, probs["awayWin"])
	assert.Equal(t, "-", pred["winner"])
	assert.Equal(t, "-", pred["overUnder"])
	assert.Equal(t, "2-1", pred["score"])
	assert.Equal(t, 3, replaced)
}

func TestApplyDisplayPlaceholders_ProcessedDocument(t *testing.T) {
	doc := map[string]any{
		"matches": []any{
			map[string]any{
				"homeWinProbability": float64(0),
				"drawProbability":    float64(0.5),
				"awayWinProbability": float64(40),
				"predictedScore":     "N/A",
				"reason":             "N/A",
			},
		},
	}

	assert.Equal(t, 2, ApplyDisplayPlaceholders(doc))
	row := doc["matches"].([]any)[0].(map[string]any)
	assert.Equal(t, "-", row["homeWinProbability"])
	assert.Equal(t, float64(0.5), row["drawProbability"])
	assert.Equal(t, "-", row["predictedScore"])
	assert.Equal(t, "N/A", row["reason"])
}

func TestDisplayService_ApplyPlaceholders_MissingTargetWarnsAndContinues(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	require.NoError(t, store.WriteDocument(ctx, "public/data/analysis.json", analysisRaw(0, 10, "Arsenal")))
	logger, logs := observedLogger()

	svc := NewDisplayService(store, logger)
	results, err := svc.ApplyPlaceholders(ctx, "data/analysis.json", "public/data/analysis.json")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, DisplayResult{Path: "data/analysis.json", Status: DisplayStatusMissing}, results[0])
	assert.Equal(t, DisplayStatusUpdated, results[1].Status)
	assert.Equal(t, 2, results[1].Replaced)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).FilterMessage("display target missing, skipping")
	require.Equal(t, 1, warnings.Len())
	assert.Equal(t, "data/analysis.json", warnings.All()[0].ContextMap()["path"])

	saved, err := store.LoadRaw(ctx, "public/data/analysis.json")
	require.NoError(t, err)
	probs := firstAnalysis(t, saved)["probabilities"].(map[string]any)
	assert.Equal(t, "-", probs["homeWin"])
	assert.Equal(t, float64(10), probs["draw"])
}

func TestDisplayService_ApplyPlaceholders_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	require.NoError(t, store.WriteDocument(ctx, "a.json", analysisRaw(0, 0, "N/A")))
	svc := NewDisplayService(store, nil)

	first, err := svc.ApplyPlaceholders(ctx, "a.json")
	require.NoError(t, err)
	second, err := svc.ApplyPlaceholders(ctx, "a.json")
	require.NoError(t, err)

	assert.Equal(t, 4, first[0].Replaced)
	assert.Zero(t, second[0].Replaced)
}

func TestDisplayService_ApplyPlaceholders_ReportsFailuresUsingMockery(t *testing.T) {
	rawRepo := analysismock.NewRawRepository(t)
	loadErr := errors.New("permission denied")

	rawRepo.On("LoadRaw", mock.Anything, "bad.json").Return(nil, loadErr).Once()
	rawRepo.On("LoadRaw", mock.Anything, "good.json").Return(analysisRaw(0, 1, "Arsenal"), nil).Once()
	rawRepo.On("SaveRaw", mock.Anything, "good.json", mock.Anything).Return(nil).Once()

	svc := NewDisplayService(rawRepo, nil)
	results, err := svc.ApplyPlaceholders(context.Background(), "bad.json", "good.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	require.Len(t, results, 2)
	assert.Equal(t, DisplayStatusFailed, results[0].Status)
	assert.Equal(t, DisplayStatusUpdated, results[1].Status)
}
