package datasource

import (
	"bufio"
	"bytes"
	"io"
)

// maxRecordSize bounds the scanner buffer. The largest record type in the
// feed (trifecta vote counts) is a little over 100KB; 1MB leaves headroom
// without risking unbounded growth on corrupt input.
const maxRecordSize = 1 << 20

// RecordScanner splits a JV-Data stream into raw records. Records are
// CRLF-terminated; the separator is stripped, so each Record() is exactly the
// fixed data length its layout declares. A bare LF separator is tolerated for
// feeds that were re-saved with Unix line endings.
type RecordScanner struct {
	s *bufio.Scanner
}

// NewRecordScanner wraps r. The reader is consumed once, front to back.
func NewRecordScanner(r io.Reader) *RecordScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), maxRecordSize)
	s.Split(splitRecords)
	return &RecordScanner{s: s}
}

// Scan advances to the next record. It returns false at end of input or on
// error; check Err after the loop.
func (rs *RecordScanner) Scan() bool { return rs.s.Scan() }

// Record returns the current record's bytes. The slice is only valid until
// the next Scan call.
func (rs *RecordScanner) Record() []byte { return rs.s.Bytes() }

// Err returns the first error encountered, if any.
func (rs *RecordScanner) Err() error { return rs.s.Err() }

// splitRecords is a bufio.SplitFunc for LF-terminated records with an
// optional preceding CR. A trailing record without a separator is returned
// at EOF; an empty trailing fragment is not.
func splitRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, dropCR(data[:i]), nil
	}
	if atEOF {
		return len(data), dropCR(data), nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[:len(data)-1]
	}
	return data
}
