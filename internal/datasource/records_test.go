package datasource

import (
	"strings"
	"testing"
)

func TestRecordScanner_CRLF(t *testing.T) {
	t.Parallel()

	in := "AAAA\r\nBBBBBB\r\nCC\r\n"
	rs := NewRecordScanner(strings.NewReader(in))
	var got []string
	for rs.Scan() {
		got = append(got, string(rs.Record()))
	}
	if err := rs.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	want := []string{"AAAA", "BBBBBB", "CC"}
	if len(got) != len(want) {
		t.Fatalf("records = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("record %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecordScanner_BareLFAndMissingFinalSeparator(t *testing.T) {
	t.Parallel()

	in := "AAAA\nBB"
	rs := NewRecordScanner(strings.NewReader(in))
	var got []string
	for rs.Scan() {
		got = append(got, string(rs.Record()))
	}
	if err := rs.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if len(got) != 2 || got[0] != "AAAA" || got[1] != "BB" {
		t.Fatalf("records = %v, want [AAAA BB]", got)
	}
}

func TestRecordScanner_Empty(t *testing.T) {
	t.Parallel()

	rs := NewRecordScanner(strings.NewReader(""))
	if rs.Scan() {
		t.Fatalf("Scan returned a record from empty input")
	}
	if err := rs.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
}

// Records far larger than the default bufio token size must scan; trifecta
// vote records exceed 100KB.
func TestRecordScanner_LargeRecord(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("x", 102888)
	rs := NewRecordScanner(strings.NewReader(big + "\r\n"))
	if !rs.Scan() {
		t.Fatalf("Scan failed on large record: %v", rs.Err())
	}
	if len(rs.Record()) != len(big) {
		t.Fatalf("record length = %d, want %d", len(rs.Record()), len(big))
	}
}
