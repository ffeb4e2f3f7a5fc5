package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"jvsql/internal/schema"
)

// Dialect captures the per-engine SQL differences the generic database/sql
// handler needs: identifier quoting, placeholder style, logical-to-SQL type
// mapping, upsert syntax and catalog introspection queries.
type Dialect struct {
	// Name prefixes error messages, e.g. "sqlite".
	Name string

	// Quote wraps an identifier in the engine's quoting style.
	Quote func(ident string) string

	// Placeholder renders the i-th (1-based) bind parameter.
	Placeholder func(i int) string

	// TypeFor maps a logical column type ("text", "integer", "bigint",
	// "real") to the engine's SQL type. key is true for primary key columns;
	// engines that cannot index unbounded text use it to pick a bounded type.
	TypeFor func(logical string, key bool) string

	// UpsertSQL renders the single-row upsert statement for tbl.
	UpsertSQL func(d *Dialect, tbl schema.Table) string

	// TableExistsSQL is a one-placeholder query returning at least one row
	// when the named table exists.
	TableExistsSQL string

	// ColumnsSQL is a one-placeholder query returning the table's column
	// names in ordinal order.
	ColumnsSQL string
}

// insertSQL renders the single-row INSERT for tbl.
func (d *Dialect) insertSQL(tbl schema.Table) string {
	cols := make([]string, len(tbl.Columns))
	ph := make([]string, len(tbl.Columns))
	for i, c := range tbl.Columns {
		cols[i] = d.Quote(c.Name)
		ph[i] = d.Placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.Quote(tbl.Name), strings.Join(cols, ", "), strings.Join(ph, ", "))
}

// createTableSQL renders CREATE TABLE IF NOT EXISTS for tbl.
func (d *Dialect) createTableSQL(tbl schema.Table) string {
	keys := make(map[string]bool, len(tbl.Keys))
	for _, k := range tbl.Keys {
		keys[k] = true
	}
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", d.Quote(tbl.Name))
	for i, c := range tbl.Columns {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  %s %s", d.Quote(c.Name), d.TypeFor(c.Type, keys[c.Name]))
	}
	if tbl.HasKey() {
		quoted := make([]string, len(tbl.Keys))
		for i, k := range tbl.Keys {
			quoted[i] = d.Quote(k)
		}
		fmt.Fprintf(&b, ",\n  PRIMARY KEY (%s)", strings.Join(quoted, ", "))
	}
	b.WriteString("\n)")
	return b.String()
}

// ExcludedUpsertSQL renders INSERT ... ON CONFLICT (keys) DO UPDATE SET
// col = excluded.col, the syntax shared by SQLite, DuckDB and Postgres.
func ExcludedUpsertSQL(d *Dialect, tbl schema.Table) string {
	keys := make(map[string]bool, len(tbl.Keys))
	quotedKeys := make([]string, len(tbl.Keys))
	for i, k := range tbl.Keys {
		keys[k] = true
		quotedKeys[i] = d.Quote(k)
	}
	var sets []string
	for _, c := range tbl.Columns {
		if keys[c.Name] {
			continue
		}
		q := d.Quote(c.Name)
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", q, q))
	}
	base := d.insertSQL(tbl)
	if len(sets) == 0 {
		return fmt.Sprintf("%s ON CONFLICT (%s) DO NOTHING", base, strings.Join(quotedKeys, ", "))
	}
	return fmt.Sprintf("%s ON CONFLICT (%s) DO UPDATE SET %s",
		base, strings.Join(quotedKeys, ", "), strings.Join(sets, ", "))
}

// SQLHandler implements Handler over database/sql for engines whose
// differences fit in a Dialect. The transaction begins lazily on the first
// write and ends at Commit or Rollback.
type SQLHandler struct {
	db      *sql.DB
	dialect *Dialect
	tx      *sql.Tx
}

// NewSQLHandler wraps an open database handle. The handle is pinged with a
// short timeout so a bad DSN fails at open, not at first write.
func NewSQLHandler(ctx context.Context, db *sql.DB, d *Dialect) (*SQLHandler, error) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: ping: %w", d.Name, err)
	}
	return &SQLHandler{db: db, dialect: d}, nil
}

// DB exposes the underlying handle for callers that need engine-specific
// queries, such as tests.
func (h *SQLHandler) DB() *sql.DB { return h.db }

// writer returns the open transaction, beginning one if needed.
func (h *SQLHandler) writer(ctx context.Context) (*sql.Tx, error) {
	if h.tx != nil {
		return h.tx, nil
	}
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: begin tx: %w", h.dialect.Name, err)
	}
	h.tx = tx
	return tx, nil
}

// abort rolls back and clears the open transaction. Used after a statement
// failure so the failed batch never half-commits.
func (h *SQLHandler) abort() {
	if h.tx != nil {
		_ = h.tx.Rollback()
		h.tx = nil
	}
}

func (h *SQLHandler) EnsureTable(ctx context.Context, tbl schema.Table) error {
	if _, err := h.db.ExecContext(ctx, h.dialect.createTableSQL(tbl)); err != nil {
		return fmt.Errorf("%s: ensure table %s: %w", h.dialect.Name, tbl.Name, err)
	}
	return nil
}

func (h *SQLHandler) TableExists(ctx context.Context, name string) (bool, error) {
	rows, err := h.db.QueryContext(ctx, h.dialect.TableExistsSQL, name)
	if err != nil {
		return false, fmt.Errorf("%s: table exists %s: %w", h.dialect.Name, name, err)
	}
	defer rows.Close()
	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%s: table exists %s: %w", h.dialect.Name, name, err)
	}
	return exists, nil
}

func (h *SQLHandler) Columns(ctx context.Context, name string) ([]string, error) {
	rows, err := h.db.QueryContext(ctx, h.dialect.ColumnsSQL, name)
	if err != nil {
		return nil, fmt.Errorf("%s: columns %s: %w", h.dialect.Name, name, err)
	}
	defer rows.Close()
	var cols []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("%s: columns %s: %w", h.dialect.Name, name, err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: columns %s: %w", h.dialect.Name, name, err)
	}
	return cols, nil
}

func (h *SQLHandler) InsertOne(ctx context.Context, tbl schema.Table, row []any) error {
	_, err := h.execRows(ctx, h.dialect.insertSQL(tbl), tbl, [][]any{row})
	return err
}

func (h *SQLHandler) InsertMany(ctx context.Context, tbl schema.Table, rows [][]any) (int64, error) {
	return h.execRows(ctx, h.dialect.insertSQL(tbl), tbl, rows)
}

func (h *SQLHandler) Upsert(ctx context.Context, tbl schema.Table, rows [][]any) (int64, error) {
	if !tbl.HasKey() {
		return 0, fmt.Errorf("%s: upsert %s: table has no key", h.dialect.Name, tbl.Name)
	}
	return h.execRows(ctx, h.dialect.UpsertSQL(h.dialect, tbl), tbl, rows)
}

// execRows prepares stmtSQL in the open transaction and executes it per row,
// summing reported affected rows. A failure aborts the whole transaction.
func (h *SQLHandler) execRows(ctx context.Context, stmtSQL string, tbl schema.Table, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	tx, err := h.writer(ctx)
	if err != nil {
		return 0, err
	}
	stmt, err := tx.PrepareContext(ctx, stmtSQL)
	if err != nil {
		h.abort()
		return 0, fmt.Errorf("%s: prepare %s: %w", h.dialect.Name, tbl.Name, err)
	}
	defer stmt.Close()

	var written int64
	for _, row := range rows {
		if len(row) != len(tbl.Columns) {
			h.abort()
			return written, fmt.Errorf("%s: write %s: row length %d != %d columns",
				h.dialect.Name, tbl.Name, len(row), len(tbl.Columns))
		}
		res, err := stmt.ExecContext(ctx, row...)
		if err != nil {
			h.abort()
			return written, fmt.Errorf("%s: write %s: %w", h.dialect.Name, tbl.Name, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			written += n
		} else {
			written++
		}
	}
	return written, nil
}

func (h *SQLHandler) Commit(ctx context.Context) error {
	if h.tx == nil {
		return nil
	}
	err := h.tx.Commit()
	h.tx = nil
	if err != nil {
		return fmt.Errorf("%s: commit: %w", h.dialect.Name, err)
	}
	return nil
}

func (h *SQLHandler) Rollback(ctx context.Context) error {
	if h.tx == nil {
		return nil
	}
	err := h.tx.Rollback()
	h.tx = nil
	if err != nil {
		return fmt.Errorf("%s: rollback: %w", h.dialect.Name, err)
	}
	return nil
}

func (h *SQLHandler) Close() error {
	h.abort()
	if err := h.db.Close(); err != nil {
		return fmt.Errorf("%s: close: %w", h.dialect.Name, err)
	}
	return nil
}

var _ Handler = (*SQLHandler)(nil)
