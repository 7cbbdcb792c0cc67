package memory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/matchday/internal/domain/analysis"
	"github.com/riskibarqy/matchday/internal/domain/match"
)

// ErrInvalidDocument reports a document without its required top-level key.
var ErrInvalidDocument = errors.New("invalid document")

// DocumentStore keeps encoded JSON documents keyed by path. Every load
// decodes a fresh copy, so callers never share mutable state.
type DocumentStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{files: make(map[string][]byte)}
}

// NewDocumentStoreWithMatches seeds path with a match list.
func NewDocumentStoreWithMatches(path string, matches []match.Match) *DocumentStore {
	s := NewDocumentStore()
	_ = s.WriteDocument(context.Background(), path, match.List{Source: "seed", Matches: matches})
	return s
}

func (s *DocumentStore) LoadList(_ context.Context, path string) (match.List, error) {
	var out match.List
	if err := s.decode(path, &out); err != nil {
		return match.List{}, err
	}
	if out.Matches == nil {
		return match.List{}, fmt.Errorf("%w: %s: matches is required", ErrInvalidDocument, path)
	}
	return out, nil
}

func (s *DocumentStore) Load(_ context.Context, path string) (analysis.Document, error) {
	var out analysis.Document
	if err := s.decode(path, &out); err != nil {
		return analysis.Document{}, err
	}
	if out.Analyses == nil {
		return analysis.Document{}, fmt.Errorf("%w: %s: analyses is required", ErrInvalidDocument, path)
	}
	return out, nil
}

func (s *DocumentStore) Save(ctx context.Context, path string, doc analysis.Document) error {
	return s.WriteDocument(ctx, path, doc)
}

func (s *DocumentStore) LoadRaw(_ context.Context, path string) (map[string]any, error) {
	out := map[string]any{}
	if err := s.decode(path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DocumentStore) SaveRaw(ctx context.Context, path string, doc map[string]any) error {
	return s.WriteDocument(ctx, path, doc)
}

func (s *DocumentStore) WriteDocument(_ context.Context, path string, v any) error {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	s.mu.Lock()
	s.files[path] = raw
	s.mu.Unlock()
	return nil
}

func (s *DocumentStore) CopyFile(_ context.Context, src, dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.files[src]
	if !ok {
		return fmt.Errorf("%s: %w", src, fs.ErrNotExist)
	}
	s.files[dst] = append([]byte(nil), raw...)
	return nil
}

// Has reports whether a document exists at path.
func (s *DocumentStore) Has(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.files[path]
	return ok
}

// Decode reads the document at path into target.
func (s *DocumentStore) Decode(path string, target any) error {
	return s.decode(path, target)
}

func (s *DocumentStore) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.files))
	for path := range s.files {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

func (s *DocumentStore) decode(path string, target any) error {
	s.mu.RLock()
	raw, ok := s.files[path]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrInvalidDocument, path, err)
	}
	return nil
}
