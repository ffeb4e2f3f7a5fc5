// Package schema derives destination table definitions from the jvdata layout
// tables and validates at startup that parser output and table shape agree.
// Tables are generated, never hand-maintained, so a layout edit propagates to
// the DDL automatically.
package schema

import (
	"fmt"
	"sort"

	"jvsql/internal/jvdata"
)

// Column is one destination column. Type is the logical type name from
// jvdata.Kind ("text", "integer", "bigint", "real"); each storage backend maps
// it to its own SQL type.
type Column struct {
	Name string
	Type string
}

// Table is the destination table for one record type. Keys lists the primary
// key columns in declaration order; an empty Keys means the stream has no
// natural key and imports append-only.
type Table struct {
	Name    string
	Tag     string
	Columns []Column
	Keys    []string
}

// HasKey reports whether the table carries a primary key.
func (t Table) HasKey() bool { return len(t.Keys) > 0 }

// ColumnNames returns the column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// raceKey is the standard race identifier shared by race-level tables.
var raceKey = []string{"year", "month_day", "jyo_cd", "kaiji", "nichiji", "race_num"}

// tableKeys maps record-type tag to primary key columns. Tags absent here
// import append-only (announcement streams with no natural key).
var tableKeys = map[string][]string{
	"RA": raceKey,
	"SE": append(append([]string{}, raceKey...), "umaban"),
	"HR": raceKey,
	"O1": raceKey,
	"O2": raceKey,
	"O3": raceKey,
	"O4": raceKey,
	"O5": raceKey,
	"O6": raceKey,
	"H1": raceKey,
	"H6": raceKey,
	"TK": raceKey,
	"RC": []string{"record_id_kubun", "year", "month_day", "jyo_cd", "kaiji", "nichiji", "race_num", "record_kubun"},
	"YS": []string{"year", "month_day", "jyo_cd", "kaiji", "nichiji"},
	"CS": []string{"jyo_cd", "kyori", "track_cd", "kaishu_date"},
	"UM": []string{"ketto_num"},
	"SK": []string{"ketto_num"},
	"CK": []string{"ketto_num"},
	"HY": []string{"ketto_num"},
	"KS": []string{"kisyu_code"},
	"CH": []string{"chokyosi_code"},
	"BR": []string{"breeder_code"},
	"BN": []string{"banusi_code"},
	"HN": []string{"hansyoku_num"},
	"BT": []string{"hansyoku_num", "keito_id"},
	"HS": []string{"ketto_num", "saleshost_code", "from_date"},
	"HC": []string{"tresen_kubun", "chokyo_date", "chokyo_time", "ketto_num"},
	"WC": []string{"tresen_kubun", "chokyo_date", "chokyo_time", "ketto_num"},
	"WF": []string{"year", "month_day"},
}

// TableName returns the destination table name for a record-type tag:
// "nl_" plus the lowercased tag.
func TableName(tag string) string {
	name := make([]byte, 0, 3+len(tag))
	name = append(name, "nl_"...)
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		name = append(name, c)
	}
	return string(name)
}

// FromLayout builds the destination table for one layout. Column order follows
// field declaration order, one column per field, same names.
func FromLayout(l jvdata.Layout) Table {
	t := Table{
		Name: TableName(l.Tag),
		Tag:  l.Tag,
		Keys: tableKeys[l.Tag],
	}
	t.Columns = make([]Column, len(l.Fields))
	for i, f := range l.Fields {
		t.Columns[i] = Column{Name: f.Name, Type: f.Kind.String()}
	}
	return t
}

// Catalog holds the generated table for every supported record type.
type Catalog struct {
	byTag map[string]Table
}

// NewCatalog generates tables for every tag the registry supports and
// validates each one against its parser. Generation and validation both run
// at startup so a drifted layout fails before any data moves.
func NewCatalog(reg *jvdata.Registry) (*Catalog, error) {
	c := &Catalog{byTag: make(map[string]Table)}
	for _, tag := range reg.SupportedTags() {
		p, err := reg.Resolve(tag)
		if err != nil {
			return nil, fmt.Errorf("schema: catalog: %w", err)
		}
		t := FromLayout(jvdata.Layout{Tag: p.Tag(), Fields: p.Fields()})
		if err := Validate(t, p); err != nil {
			return nil, fmt.Errorf("schema: catalog: %w", err)
		}
		c.byTag[tag] = t
	}
	return c, nil
}

// Table returns the table for tag. The second return is false for tags the
// catalog does not carry.
func (c *Catalog) Table(tag string) (Table, bool) {
	t, ok := c.byTag[tag]
	return t, ok
}

// Tables returns every table sorted by name.
func (c *Catalog) Tables() []Table {
	out := make([]Table, 0, len(c.byTag))
	for _, t := range c.byTag {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
