package analysis

import "context"

// Repository reads and writes typed analysis documents.
type Repository interface {
	Load(ctx context.Context, path string) (Document, error)
	Save(ctx context.Context, path string, doc Document) error
}

// RawRepository works on the untyped document so in-place rewrites keep
// fields this package does not model.
type RawRepository interface {
	LoadRaw(ctx context.Context, path string) (map[string]any, error)
	SaveRaw(ctx context.Context, path string, doc map[string]any) error
}
