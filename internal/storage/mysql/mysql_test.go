package mysql

import (
	"context"
	"testing"

	"jvsql/internal/schema"
	"jvsql/internal/storage"
)

func testTable() schema.Table {
	return schema.Table{
		Name: "nl_xx",
		Columns: []schema.Column{
			{Name: "ketto_num", Type: "text"},
			{Name: "bamei", Type: "text"},
			{Name: "barei", Type: "integer"},
		},
		Keys: []string{"ketto_num"},
	}
}

func TestDuplicateKeyUpsertSQL(t *testing.T) {
	t.Parallel()

	got := duplicateKeyUpsertSQL(&dialect, testTable())
	want := "INSERT INTO `nl_xx` (`ketto_num`, `bamei`, `barei`) VALUES (?, ?, ?)" +
		" ON DUPLICATE KEY UPDATE `bamei` = VALUES(`bamei`), `barei` = VALUES(`barei`)"
	if got != want {
		t.Fatalf("duplicateKeyUpsertSQL =\n%s\nwant\n%s", got, want)
	}
}

// Key columns must come out bounded; MySQL cannot index unbounded TEXT.
func TestTypeFor_KeyColumns(t *testing.T) {
	t.Parallel()

	if got := dialect.TypeFor("text", true); got != "VARCHAR(255)" {
		t.Fatalf("TypeFor(text, key) = %s, want VARCHAR(255)", got)
	}
	if got := dialect.TypeFor("text", false); got != "TEXT" {
		t.Fatalf("TypeFor(text) = %s, want TEXT", got)
	}
	if got := dialect.TypeFor("bigint", false); got != "BIGINT" {
		t.Fatalf("TypeFor(bigint) = %s, want BIGINT", got)
	}
}

func TestOpen_EmptyDSN(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), storage.Config{Kind: "mysql"}); err == nil {
		t.Fatalf("Open accepted empty DSN")
	}
}
