// Package jvdata decodes JRA-VAN JV-Data fixed-width records.
//
// Every record is a fixed-length, Shift-JIS encoded byte buffer whose first
// two bytes carry the record-type tag ("RA", "SE", ...). Field boundaries are
// declared per type as static byte offsets in a layout table; the same table
// drives both the parser and the destination table schema, so the two cannot
// drift apart.
package jvdata

import "fmt"

// Kind is the semantic type of a decoded field.
type Kind uint8

const (
	// Text fields decode through the Shift-JIS fallback chain and are never
	// nil; a blank slice decodes to "".
	Text Kind = iota

	// Integer fields decode to int64; a blank slice decodes to nil.
	Integer

	// BigInt fields are integers that can exceed 32 bits (prize money,
	// vote totals). Decoded to int64; blank decodes to nil.
	BigInt

	// Real fields carry one implied decimal digit ("1234" means 123.4,
	// the JV-Data convention for times, weights and odds). Decoded to
	// float64; blank decodes to nil.
	Real
)

// String returns the logical type name used by the schema layer.
func (k Kind) String() string {
	switch k {
	case Integer:
		return "integer"
	case BigInt:
		return "bigint"
	case Real:
		return "real"
	default:
		return "text"
	}
}

// Field is one fixed-width slice of a record.
type Field struct {
	Name  string // lowercase snake_case, doubles as the destination column name
	Start int    // 0-based byte offset
	Len   int    // width in bytes
	Kind  Kind
}

// Layout declares the full field table for one record type. Fields are
// contiguous: the first starts at offset 0, each subsequent field starts where
// the previous one ends, and the last field ends at Size(). The trailing CRLF
// record separator is stripped by the record source and is not a field.
type Layout struct {
	Tag    string
	Fields []Field
}

// Size returns the declared data length of the record in bytes.
func (l Layout) Size() int {
	if len(l.Fields) == 0 {
		return 0
	}
	last := l.Fields[len(l.Fields)-1]
	return last.Start + last.Len
}

// Validate checks the layout invariants: a non-empty tag of exactly two
// bytes, unique field names, and a gap-free, monotonically increasing offset
// table starting at 0.
func (l Layout) Validate() error {
	if len(l.Tag) != 2 {
		return fmt.Errorf("jvdata: layout tag %q must be two characters", l.Tag)
	}
	if len(l.Fields) == 0 {
		return fmt.Errorf("jvdata: layout %s has no fields", l.Tag)
	}
	seen := make(map[string]struct{}, len(l.Fields))
	off := 0
	for i, f := range l.Fields {
		if f.Name == "" {
			return fmt.Errorf("jvdata: layout %s field %d has no name", l.Tag, i)
		}
		if _, dup := seen[f.Name]; dup {
			return fmt.Errorf("jvdata: layout %s duplicate field %q", l.Tag, f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.Len <= 0 {
			return fmt.Errorf("jvdata: layout %s field %q has width %d", l.Tag, f.Name, f.Len)
		}
		if f.Start != off {
			return fmt.Errorf("jvdata: layout %s field %q starts at %d, want %d (offsets must be contiguous)",
				l.Tag, f.Name, f.Start, off)
		}
		off = f.Start + f.Len
	}
	return nil
}

// builder assembles a contiguous layout, computing offsets so layout tables
// only state each field's name, width and kind.
type builder struct {
	fields []Field
	off    int
}

func (b *builder) add(name string, width int, kind Kind) {
	b.fields = append(b.fields, Field{Name: name, Start: b.off, Len: width, Kind: kind})
	b.off += width
}

func (b *builder) text(name string, width int)    { b.add(name, width, Text) }
func (b *builder) integer(name string, width int) { b.add(name, width, Integer) }
func (b *builder) bigint(name string, width int)  { b.add(name, width, BigInt) }
func (b *builder) real(name string, width int)    { b.add(name, width, Real) }

// head appends the three fields every JV-Data record starts with.
func (b *builder) head() {
	b.text("record_spec", 2)
	b.text("data_kubun", 1)
	b.text("make_date", 8)
}

// raceKey appends the standard race identifier that follows the head on
// race-level records.
func (b *builder) raceKey() {
	b.integer("year", 4)
	b.integer("month_day", 4)
	b.text("jyo_cd", 2)
	b.integer("kaiji", 2)
	b.integer("nichiji", 2)
	b.integer("race_num", 2)
}
