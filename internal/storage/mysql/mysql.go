// Package mysql implements the storage.Handler for MySQL/MariaDB via
// database/sql. MySQL lacks ON CONFLICT; upserts use ON DUPLICATE KEY UPDATE,
// and key columns are declared VARCHAR because TEXT cannot be indexed without
// a prefix length.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"jvsql/internal/schema"
	"jvsql/internal/storage"
)

var dialect = storage.Dialect{
	Name:        "mysql",
	Quote:       func(ident string) string { return "`" + strings.ReplaceAll(ident, "`", "``") + "`" },
	Placeholder: func(int) string { return "?" },
	TypeFor: func(logical string, key bool) string {
		switch logical {
		case "integer":
			return "INT"
		case "bigint":
			return "BIGINT"
		case "real":
			return "DOUBLE"
		default:
			if key {
				return "VARCHAR(255)"
			}
			return "TEXT"
		}
	},
	UpsertSQL:      duplicateKeyUpsertSQL,
	TableExistsSQL: "SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?",
	ColumnsSQL:     "SELECT column_name FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ? ORDER BY ordinal_position",
}

// duplicateKeyUpsertSQL renders INSERT ... ON DUPLICATE KEY UPDATE
// col = VALUES(col). RowsAffected reports 2 per replaced row, so upsert
// totals from this backend overcount updates; the importer tracks record
// counts itself and treats handler totals as advisory.
func duplicateKeyUpsertSQL(d *storage.Dialect, tbl schema.Table) string {
	keys := make(map[string]bool, len(tbl.Keys))
	for _, k := range tbl.Keys {
		keys[k] = true
	}
	var sets []string
	for _, c := range tbl.Columns {
		if keys[c.Name] {
			continue
		}
		q := d.Quote(c.Name)
		sets = append(sets, fmt.Sprintf("%s = VALUES(%s)", q, q))
	}
	cols := make([]string, len(tbl.Columns))
	ph := make([]string, len(tbl.Columns))
	for i, c := range tbl.Columns {
		cols[i] = d.Quote(c.Name)
		ph[i] = "?"
	}
	base := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.Quote(tbl.Name), strings.Join(cols, ", "), strings.Join(ph, ", "))
	if len(sets) == 0 {
		first := d.Quote(tbl.Keys[0])
		return fmt.Sprintf("%s ON DUPLICATE KEY UPDATE %s = %s", base, first, first)
	}
	return fmt.Sprintf("%s ON DUPLICATE KEY UPDATE %s", base, strings.Join(sets, ", "))
}

// Open opens a MySQL handler. The DSN follows go-sql-driver/mysql, e.g.
// "user:pass@tcp(localhost:3306)/jvdata?parseTime=true".
func Open(ctx context.Context, cfg storage.Config) (storage.Handler, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, fmt.Errorf("mysql: DSN must not be empty")
	}
	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("mysql: open: %w", err)
	}
	return storage.NewSQLHandler(ctx, db, &dialect)
}

func init() {
	storage.Register("mysql", Open)
}
