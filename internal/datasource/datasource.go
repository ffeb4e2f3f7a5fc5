// Package datasource defines where an import run reads its records from and
// how a raw stream is split into records.
package datasource

import (
	"context"
	"io"
)

// Source is one openable stream of CRLF-terminated fixed-width records.
type Source interface {
	// Open returns the record stream. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
}
