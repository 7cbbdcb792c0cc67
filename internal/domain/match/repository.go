package match

import "context"

// Repository loads match-list documents by path.
type Repository interface {
	LoadList(ctx context.Context, path string) (List, error)
}
