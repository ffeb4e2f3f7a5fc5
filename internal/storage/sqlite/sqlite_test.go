package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"jvsql/internal/schema"
	"jvsql/internal/storage"
)

func testTable() schema.Table {
	return schema.Table{
		Name: "nl_xx",
		Tag:  "XX",
		Columns: []schema.Column{
			{Name: "ketto_num", Type: "text"},
			{Name: "bamei", Type: "text"},
			{Name: "barei", Type: "integer"},
		},
		Keys: []string{"ketto_num"},
	}
}

func openTest(t *testing.T) storage.Handler {
	t.Helper()
	h, err := Open(context.Background(), storage.Config{Kind: "sqlite", DSN: "file:" + t.TempDir() + "/test.db"})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { h.Close() })
	return h
}

func TestHandler_EnsureTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := openTest(t)
	tbl := testTable()

	exists, err := h.TableExists(ctx, tbl.Name)
	if err != nil {
		t.Fatalf("TableExists: %v", err)
	}
	if exists {
		t.Fatalf("table exists before EnsureTable")
	}
	if err := h.EnsureTable(ctx, tbl); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}
	// Idempotent.
	if err := h.EnsureTable(ctx, tbl); err != nil {
		t.Fatalf("EnsureTable (second): %v", err)
	}
	exists, err = h.TableExists(ctx, tbl.Name)
	if err != nil {
		t.Fatalf("TableExists: %v", err)
	}
	if !exists {
		t.Fatalf("table missing after EnsureTable")
	}
	cols, err := h.Columns(ctx, tbl.Name)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	want := []string{"ketto_num", "bamei", "barei"}
	if len(cols) != len(want) {
		t.Fatalf("Columns = %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("Columns = %v, want %v", cols, want)
		}
	}
}

func TestHandler_InsertAndUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := openTest(t)
	tbl := testTable()
	if err := h.EnsureTable(ctx, tbl); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}

	n, err := h.InsertMany(ctx, tbl, [][]any{
		{"0001", "A", int64(3)},
		{"0002", "B", int64(4)},
	})
	if err != nil {
		t.Fatalf("InsertMany: %v", err)
	}
	if n != 2 {
		t.Fatalf("InsertMany = %d, want 2", n)
	}
	if err := h.Commit(ctx); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	// Upsert replaces 0002 and adds 0003.
	if _, err := h.Upsert(ctx, tbl, [][]any{
		{"0002", "B2", int64(5)},
		{"0003", "C", int64(2)},
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := h.Commit(ctx); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	rows := queryAll(t, h, tbl.Name)
	if len(rows) != 3 {
		t.Fatalf("row count = %d, want 3", len(rows))
	}
	if rows["0002"] != "B2" {
		t.Fatalf("upsert did not replace: bamei = %q", rows["0002"])
	}
}

func TestHandler_RollbackDiscardsBatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := openTest(t)
	tbl := testTable()
	if err := h.EnsureTable(ctx, tbl); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}

	if err := h.InsertOne(ctx, tbl, []any{"0001", "A", int64(3)}); err != nil {
		t.Fatalf("InsertOne: %v", err)
	}
	if err := h.Rollback(ctx); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	if got := len(queryAll(t, h, tbl.Name)); got != 0 {
		t.Fatalf("row count after rollback = %d, want 0", got)
	}

	// The handler is reusable after rollback.
	if err := h.InsertOne(ctx, tbl, []any{"0001", "A", int64(3)}); err != nil {
		t.Fatalf("InsertOne after rollback: %v", err)
	}
	if err := h.Commit(ctx); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if got := len(queryAll(t, h, tbl.Name)); got != 1 {
		t.Fatalf("row count after commit = %d, want 1", got)
	}
}

// A duplicate primary key fails the statement and aborts the transaction; the
// next write starts clean.
func TestHandler_FailedWriteAborts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := openTest(t)
	tbl := testTable()
	if err := h.EnsureTable(ctx, tbl); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}

	_, err := h.InsertMany(ctx, tbl, [][]any{
		{"0001", "A", int64(3)},
		{"0001", "dup", int64(4)},
	})
	if err == nil {
		t.Fatalf("InsertMany accepted duplicate key")
	}
	// Commit after abort is a no-op, nothing was kept.
	if err := h.Commit(ctx); err != nil {
		t.Fatalf("Commit after failed write: %v", err)
	}
	if got := len(queryAll(t, h, tbl.Name)); got != 0 {
		t.Fatalf("row count after failed batch = %d, want 0", got)
	}
}

func TestHandler_RowWidthMismatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := openTest(t)
	tbl := testTable()
	if err := h.EnsureTable(ctx, tbl); err != nil {
		t.Fatalf("EnsureTable: %v", err)
	}
	if _, err := h.InsertMany(ctx, tbl, [][]any{{"0001", "A"}}); err == nil {
		t.Fatalf("InsertMany accepted short row")
	}
}

func TestHandler_UpsertWithoutKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := openTest(t)
	tbl := testTable()
	tbl.Keys = nil
	if _, err := h.Upsert(ctx, tbl, [][]any{{"0001", "A", int64(3)}}); err == nil {
		t.Fatalf("Upsert accepted keyless table")
	}
}

func TestOpen_EmptyDSN(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), storage.Config{Kind: "sqlite"}); err == nil {
		t.Fatalf("Open accepted empty DSN")
	}
}

// queryAll reads ketto_num -> bamei outside any handler transaction, so
// assertions see only committed state.
func queryAll(t *testing.T, h storage.Handler, table string) map[string]string {
	t.Helper()
	db := handlerDB(t, h)
	rows, err := db.Query("SELECT ketto_num, bamei FROM " + table)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var k, b string
		if err := rows.Scan(&k, &b); err != nil {
			t.Fatalf("scan: %v", err)
		}
		out[k] = b
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	return out
}

func handlerDB(t *testing.T, h storage.Handler) *sql.DB {
	t.Helper()
	sh, ok := h.(*storage.SQLHandler)
	if !ok {
		t.Fatalf("handler is %T, want *storage.SQLHandler", h)
	}
	return sh.DB()
}
