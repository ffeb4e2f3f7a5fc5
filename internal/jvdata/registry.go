package jvdata

import (
	"sort"
	"sync"
)

// layoutFns maps every supported record-type tag to its layout constructor.
// The map is the single source of truth for which types this pipeline can
// ingest; a tag missing here is an UnknownRecordTypeError at import time.
var layoutFns = map[string]func() Layout{
	"AV": avLayout,
	"BN": bnLayout,
	"BR": brLayout,
	"BT": btLayout,
	"CC": ccLayout,
	"CH": chLayout,
	"CK": ckLayout,
	"CS": csLayout,
	"DM": dmLayout,
	"H1": h1Layout,
	"H6": h6Layout,
	"HC": hcLayout,
	"HN": hnLayout,
	"HR": hrLayout,
	"HS": hsLayout,
	"HY": hyLayout,
	"JC": jcLayout,
	"JG": jgLayout,
	"KS": ksLayout,
	"O1": o1Layout,
	"O2": o2Layout,
	"O3": o3Layout,
	"O4": o4Layout,
	"O5": o5Layout,
	"O6": o6Layout,
	"RA": raLayout,
	"RC": rcLayout,
	"SE": seLayout,
	"SK": skLayout,
	"TC": tcLayout,
	"TK": tkLayout,
	"TM": tmLayout,
	"UM": umLayout,
	"WC": wcLayout,
	"WE": weLayout,
	"WF": wfLayout,
	"WH": whLayout,
	"YS": ysLayout,
}

// Registry resolves record-type tags to parsers. Parsers are built lazily on
// first resolution and cached for the registry's lifetime; the cache is safe
// for concurrent first-resolution so parsing can be fanned out.
type Registry struct {
	mu      sync.Mutex
	parsers map[string]*Parser
}

// NewRegistry returns an empty registry backed by the built-in layout table.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]*Parser, len(layoutFns))}
}

// Resolve returns the parser for tag, constructing and caching it on first
// use. Repeated calls return the same instance. An unregistered tag is an
// UnknownRecordTypeError.
func (r *Registry) Resolve(tag string) (*Parser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.parsers[tag]; ok {
		return p, nil
	}
	fn, ok := layoutFns[tag]
	if !ok {
		return nil, &UnknownRecordTypeError{Tag: tag}
	}
	p, err := NewParser(fn())
	if err != nil {
		return nil, err
	}
	r.parsers[tag] = p
	return p, nil
}

// SupportedTags returns all registered tags in sorted order.
func (r *Registry) SupportedTags() []string {
	tags := make([]string, 0, len(layoutFns))
	for tag := range layoutFns {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
