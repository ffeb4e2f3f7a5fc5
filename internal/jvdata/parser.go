package jvdata

import "fmt"

// Record is one parsed JV-Data record: field name to decoded value. Text
// fields are always present as strings (blank decodes to ""); numeric fields
// are int64/float64 or nil when blank.
type Record map[string]any

// Parser decodes raw buffers of one record type. Parsers are stateless and
// safe for concurrent use.
type Parser struct {
	layout Layout
}

// NewParser validates the layout and returns a parser for it.
func NewParser(l Layout) (*Parser, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &Parser{layout: l}, nil
}

// Tag returns the two-character record-type tag this parser handles.
func (p *Parser) Tag() string { return p.layout.Tag }

// Size returns the fixed data length Parse expects, excluding the CRLF
// record separator.
func (p *Parser) Size() int { return p.layout.Size() }

// Fields returns the layout's field table in declaration order.
func (p *Parser) Fields() []Field { return p.layout.Fields }

// Parse decodes buf into a Record. The buffer length must equal Size()
// exactly; a mismatch is a RecordLengthError and the record is rejected
// whole. A field that fails to decode rejects the record with a wrapped
// DecodeError.
func (p *Parser) Parse(buf []byte) (Record, error) {
	if len(buf) != p.layout.Size() {
		return nil, &RecordLengthError{Tag: p.layout.Tag, Want: p.layout.Size(), Got: len(buf)}
	}
	rec := make(Record, len(p.layout.Fields))
	for _, f := range p.layout.Fields {
		v, err := Decode(buf, f.Start, f.Start+f.Len, f.Kind)
		if err != nil {
			if de, ok := err.(*DecodeError); ok && de.Field == "" {
				de.Field = f.Name
			}
			return nil, fmt.Errorf("jvdata: parse %s: %w", p.layout.Tag, err)
		}
		rec[f.Name] = v
	}
	return rec, nil
}
