package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchday/internal/domain/analysis"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/usecase"
)

const indent = "  "

// Documents are written with sorted keys and without HTML escaping so team
// names survive untouched.
var codec = sonic.Config{
	SortMapKeys:    true,
	ValidateString: true,
}.Froze()

// Store reads and writes whole JSON documents on the local filesystem.
type Store struct {
	validator *validator.Validate
}

func NewStore() *Store {
	return &Store{validator: validator.New()}
}

func (s *Store) LoadList(ctx context.Context, path string) (match.List, error) {
	var out match.List
	if err := s.readValidated(ctx, path, &out); err != nil {
		return match.List{}, err
	}
	return out, nil
}

func (s *Store) Load(ctx context.Context, path string) (analysis.Document, error) {
	var out analysis.Document
	if err := s.readValidated(ctx, path, &out); err != nil {
		return analysis.Document{}, err
	}
	return out, nil
}

func (s *Store) Save(ctx context.Context, path string, doc analysis.Document) error {
	return s.WriteDocument(ctx, path, doc)
}

func (s *Store) LoadRaw(ctx context.Context, path string) (map[string]any, error) {
	var out map[string]any
	if err := s.read(ctx, path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%w: %s does not contain a JSON object", usecase.ErrInvalidInput, path)
	}
	return out, nil
}

func (s *Store) SaveRaw(ctx context.Context, path string, doc map[string]any) error {
	return s.WriteDocument(ctx, path, doc)
}

// WriteDocument writes v pretty-printed with two-space indentation. The file
// is replaced atomically.
func (s *Store) WriteDocument(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := codec.MarshalIndent(v, "", indent)
	if err != nil {
		return crerr.Wrapf(err, "encode %s", path)
	}
	raw = append(raw, '\n')

	return writeAtomic(path, raw)
}

// CopyFile copies src to dst, creating dst's directory when needed.
func (s *Store) CopyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return openError(src, err)
	}
	defer in.Close()

	raw, err := io.ReadAll(in)
	if err != nil {
		return crerr.Wrapf(err, "read %s", src)
	}

	return writeAtomic(dst, raw)
}

func (s *Store) readValidated(ctx context.Context, path string, target any) error {
	if err := s.read(ctx, path, target); err != nil {
		return err
	}
	if err := s.validator.StructCtx(ctx, target); err != nil {
		return fmt.Errorf("%w: %s: missing required keys: %v", usecase.ErrInvalidInput, path, err)
	}
	return nil
}

func (s *Store) read(ctx context.Context, path string, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return openError(path, err)
	}
	if err := codec.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: decode %s: %v", usecase.ErrInvalidInput, path, err)
	}
	return nil
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", usecase.ErrNotFound, path)
	}
	return crerr.Wrapf(err, "open %s", path)
}

func writeAtomic(path string, raw []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return crerr.Wrapf(err, "create temp file for %s", path)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrapf(err, "close %s", path)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return crerr.Wrapf(err, "chmod %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return crerr.Wrapf(err, "replace %s", path)
	}
	return nil
}
