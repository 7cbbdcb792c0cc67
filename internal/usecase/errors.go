package usecase

import (
	"errors"
	"io/fs"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrUpstreamResponse      = errors.New("unexpected upstream response")
)

// isMissing accepts the sentinel or a wrapped fs.ErrNotExist.
func isMissing(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}
