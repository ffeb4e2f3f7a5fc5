// Package duckdb implements the storage.Handler for DuckDB via database/sql.
// DuckDB is the analytics-friendly engine of the set; the generated tables
// land column-typed and ready for direct querying.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"

	"jvsql/internal/storage"
)

var dialect = storage.Dialect{
	Name:        "duckdb",
	Quote:       func(ident string) string { return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"` },
	Placeholder: func(int) string { return "?" },
	TypeFor: func(logical string, _ bool) string {
		switch logical {
		case "integer":
			return "INTEGER"
		case "bigint":
			return "BIGINT"
		case "real":
			return "DOUBLE"
		default:
			return "TEXT"
		}
	},
	UpsertSQL:      storage.ExcludedUpsertSQL,
	TableExistsSQL: "SELECT table_name FROM information_schema.tables WHERE table_name = ?",
	ColumnsSQL:     "SELECT column_name FROM information_schema.columns WHERE table_name = ? ORDER BY ordinal_position",
}

// Open opens a DuckDB handler. The DSN is a database file path, or empty for
// an in-memory database.
func Open(ctx context.Context, cfg storage.Config) (storage.Handler, error) {
	db, err := sql.Open("duckdb", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("duckdb: open: %w", err)
	}
	// DuckDB allows one writer per database; keep the pool at one
	// connection so the lazy transaction always lands on it.
	db.SetMaxOpenConns(1)
	return storage.NewSQLHandler(ctx, db, &dialect)
}

func init() {
	storage.Register("duckdb", Open)
}
