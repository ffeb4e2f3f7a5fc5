// Package storage contains the backend-agnostic contracts of the import
// pipeline. Concrete backends (sqlite, postgres, duckdb, mysql) register
// factories here from their init functions; importing storage/all wires all
// built-in backends into a binary.
package storage

import (
	"context"
	"fmt"
	"sync"

	"jvsql/internal/schema"
)

// Handler is one open database session. Rows passed to the write methods are
// aligned to the table's column declaration order.
//
// Writes are transactional: the first write after open, Commit or Rollback
// begins a new transaction, and the batch accumulated since then is atomic.
// DDL and introspection run outside the transaction.
type Handler interface {
	// EnsureTable creates the destination table if it does not exist yet,
	// including its primary key.
	EnsureTable(ctx context.Context, tbl schema.Table) error

	// TableExists reports whether a table with the given name exists.
	TableExists(ctx context.Context, name string) (bool, error)

	// Columns returns the table's column names in ordinal order.
	Columns(ctx context.Context, name string) ([]string, error)

	// InsertOne writes a single row.
	InsertOne(ctx context.Context, tbl schema.Table, row []any) error

	// InsertMany writes rows with a plain INSERT and returns the number of
	// rows the backend reported as inserted.
	InsertMany(ctx context.Context, tbl schema.Table, rows [][]any) (int64, error)

	// Upsert writes rows, replacing existing rows with the same primary key.
	// The table must carry a key.
	Upsert(ctx context.Context, tbl schema.Table, rows [][]any) (int64, error)

	// Commit commits the open transaction, if any.
	Commit(ctx context.Context) error

	// Rollback discards the open transaction, if any.
	Rollback(ctx context.Context) error

	// Close releases the session. An open transaction is rolled back.
	Close() error
}

// Config selects and parameterizes a backend.
type Config struct {
	// Kind is the registered backend name: "sqlite", "postgres", "duckdb"
	// or "mysql".
	Kind string

	// DSN is passed to the backend's driver unmodified.
	DSN string
}

// Factory opens a Handler for a Config.
type Factory func(ctx context.Context, cfg Config) (Handler, error)

var (
	regMu     sync.RWMutex
	factories = map[string]Factory{}
)

// Register installs (or replaces) the factory for a backend kind. Called from
// backend packages' init functions.
func Register(kind string, fn Factory) {
	regMu.Lock()
	defer regMu.Unlock()
	factories[kind] = fn
}

// Kinds returns the registered backend names.
func Kinds() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	return out
}

// Open dispatches to the factory registered for cfg.Kind.
func Open(ctx context.Context, cfg Config) (Handler, error) {
	regMu.RLock()
	fn, ok := factories[cfg.Kind]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: no backend registered for kind %q", cfg.Kind)
	}
	return fn(ctx, cfg)
}
