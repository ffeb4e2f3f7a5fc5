package schema

import (
	"fmt"

	"jvsql/internal/jvdata"
)

// MismatchError reports a parser/table disagreement found during startup
// validation.
type MismatchError struct {
	Table  string
	Column string
	Reason string
}

func (e *MismatchError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("schema: table %s: %s", e.Table, e.Reason)
	}
	return fmt.Sprintf("schema: table %s column %s: %s", e.Table, e.Column, e.Reason)
}

// Validate round-trips a generated table against the parser it was generated
// from: every parser field must have a matching column in the same position
// with the matching type, and every key column must exist. A table that fails
// here would silently drop or misfile data, so validation runs before any
// record is imported.
func Validate(t Table, p *jvdata.Parser) error {
	fields := p.Fields()
	if len(t.Columns) != len(fields) {
		return &MismatchError{
			Table:  t.Name,
			Reason: fmt.Sprintf("%d columns for %d parser fields", len(t.Columns), len(fields)),
		}
	}
	for i, f := range fields {
		c := t.Columns[i]
		if c.Name != f.Name {
			return &MismatchError{
				Table:  t.Name,
				Column: c.Name,
				Reason: fmt.Sprintf("position %d holds parser field %s", i, f.Name),
			}
		}
		if c.Type != f.Kind.String() {
			return &MismatchError{
				Table:  t.Name,
				Column: c.Name,
				Reason: fmt.Sprintf("type %s for parser kind %s", c.Type, f.Kind.String()),
			}
		}
	}
	cols := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		cols[c.Name] = struct{}{}
	}
	for _, k := range t.Keys {
		if _, ok := cols[k]; !ok {
			return &MismatchError{Table: t.Name, Column: k, Reason: "key column not in column set"}
		}
	}
	return nil
}
