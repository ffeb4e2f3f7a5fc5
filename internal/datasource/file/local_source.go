// Package file implements filesystem-backed record sources: a single dump
// file, or a manifest listing several dumps imported in order.
package file

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Local streams one record dump from the local disk.
type Local struct{ path string }

// NewLocal returns a source for the dump at path. The file is not touched
// until Open.
func NewLocal(path string) *Local { return &Local{path: path} }

// Open opens the dump for reading. A context that is already canceled at
// call time returns its error without touching the filesystem. Filesystem
// errors are wrapped with the path and stay errors.Is-compatible, so callers
// can still check for os.ErrNotExist.
func (l *Local) Open(ctx context.Context) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	return f, nil
}
