package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/matchday/internal/domain/analysis"
	"github.com/riskibarqy/matchday/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestStore_LoadList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "matches.json")
	writeFile(t, path, `{"matches":[{"homeTeam":"Brentford","awayTeam":"Fulham","date":"2025-05-10","league":"Premier League","country":"England"}]}`)

	list, err := NewStore().LoadList(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, list.Matches, 1)
	assert.Equal(t, "Brentford", list.Matches[0].HomeTeam)
	assert.Equal(t, "England", list.Matches[0].Country)
}

func TestStore_LoadListErrors(t *testing.T) {
	dir := t.TempDir()
	missingKey := filepath.Join(dir, "missing-key.json")
	writeFile(t, missingKey, `{"fixtures":[]}`)
	malformed := filepath.Join(dir, "malformed.json")
	writeFile(t, malformed, `{"matches":[`)
	empty := filepath.Join(dir, "empty.json")
	writeFile(t, empty, `{"matches":[]}`)

	store := NewStore()
	ctx := context.Background()

	_, err := store.LoadList(ctx, filepath.Join(dir, "absent.json"))
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = store.LoadList(ctx, missingKey)
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for absent matches key, got %v", err)
	}

	_, err = store.LoadList(ctx, malformed)
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for malformed json, got %v", err)
	}

	list, err := store.LoadList(ctx, empty)
	if err != nil {
		t.Fatalf("expected empty matches array to load, got %v", err)
	}
	if len(list.Matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(list.Matches))
	}
}

func TestStore_WriteDocumentIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.json")
	doc := map[string]any{"b": 1, "a": "Brighton & Hove Albion"}

	require.NoError(t, NewStore().WriteDocument(context.Background(), path, doc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": \"Brighton & Hove Albion\",\n  \"b\": 1\n}\n", string(raw))
}

func TestStore_RawRoundTripKeepsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.json")
	writeFile(t, path, `{"analyses":[{"homeTeam":"A","extra":{"keep":true}}],"meta":"x"}`)

	store := NewStore()
	ctx := context.Background()
	doc, err := store.LoadRaw(ctx, path)
	require.NoError(t, err)
	doc["meta"] = "y"
	require.NoError(t, store.SaveRaw(ctx, path, doc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"keep": true`))
	assert.True(t, strings.Contains(string(raw), `"meta": "y"`))
}

func TestStore_AnalysisDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.json")
	store := NewStore()
	ctx := context.Background()

	in := analysis.Document{
		TotalMatches: 1,
		Analyses: []analysis.Analysis{{
			HomeTeam:      "Celtic",
			AwayTeam:      "Rangers",
			Probabilities: analysis.Probabilities{HomeWin: 50, Draw: analysis.Placeholder, AwayWin: 50},
			RiskLevel:     "MEDIUM",
		}},
	}
	require.NoError(t, store.Save(ctx, path, in))

	out, err := store.Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, out.Analyses, 1)
	assert.Equal(t, float64(50), out.Analyses[0].Probabilities.HomeWin)
	assert.Equal(t, analysis.Placeholder, out.Analyses[0].Probabilities.Draw)
}

func TestStore_CopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data", "analysis.json")
	dst := filepath.Join(dir, "public", "data", "analysis.json")
	writeFile(t, src, `{"analyses":[]}`)

	store := NewStore()
	require.NoError(t, store.CopyFile(context.Background(), src, dst))

	raw, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, `{"analyses":[]}`, string(raw))

	err = store.CopyFile(context.Background(), filepath.Join(dir, "absent.json"), dst)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing source, got %v", err)
	}
}
