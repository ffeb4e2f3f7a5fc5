// Package sqlite implements the storage.Handler for SQLite via database/sql.
// SQLite has no bulk-load API, so writes go through prepared INSERTs inside
// the handler's transaction; commit-per-batch keeps throughput acceptable.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // cgo-free driver

	"jvsql/internal/storage"
)

var dialect = storage.Dialect{
	Name:        "sqlite",
	Quote:       func(ident string) string { return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"` },
	Placeholder: func(int) string { return "?" },
	TypeFor: func(logical string, _ bool) string {
		switch logical {
		case "integer", "bigint":
			return "INTEGER"
		case "real":
			return "REAL"
		default:
			return "TEXT"
		}
	},
	UpsertSQL:      storage.ExcludedUpsertSQL,
	TableExistsSQL: "SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?",
	ColumnsSQL:     "SELECT name FROM pragma_table_info(?) ORDER BY cid",
}

// Open opens a SQLite handler. The DSN is a file path or URI, e.g.
// "file:jvdata.db?cache=shared" or "jvdata.db".
func Open(ctx context.Context, cfg storage.Config) (storage.Handler, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, fmt.Errorf("sqlite: DSN must not be empty")
	}
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}
	// Single writer; SQLite serializes writes anyway and database/sql
	// pooling just trades lock errors for queueing.
	db.SetMaxOpenConns(1)
	h, err := storage.NewSQLHandler(ctx, db, &dialect)
	if err != nil {
		return nil, err
	}
	_, _ = db.ExecContext(ctx, "PRAGMA journal_mode = WAL;")
	return h, nil
}

func init() {
	storage.Register("sqlite", Open)
}
