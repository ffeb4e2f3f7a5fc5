package jvdata

import (
	"errors"
	"sync"
	"testing"
)

// Every registered layout must validate and carry its own tag.
func TestRegistry_AllLayoutsValid(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, tag := range r.SupportedTags() {
		p, err := r.Resolve(tag)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tag, err)
		}
		if p.Tag() != tag {
			t.Fatalf("Resolve(%s) returned parser for %s", tag, p.Tag())
		}
		if p.Size() <= 11 {
			t.Fatalf("layout %s: size %d, want > header", tag, p.Size())
		}
	}
}

// Spot-check declared record lengths against the published JV-Data ones.
func TestRegistry_KnownSizes(t *testing.T) {
	t.Parallel()

	sizes := map[string]int{
		"RA": 1270,
		"SE": 553,
		"HR": 717,
		"O1": 960,
		"O2": 2040,
		"O3": 2652,
		"O4": 4029,
		"O5": 12291,
		"O6": 83283,
		"H6": 102888,
		"UM": 1607,
		"KS": 4171,
		"CH": 3860,
		"TK": 21655,
		"HC": 58,
		"AV": 76,
		"WE": 40,
		"YS": 380,
		"WF": 7213,
		"DM": 301,
		"TM": 139,
	}
	r := NewRegistry()
	for tag, want := range sizes {
		p, err := r.Resolve(tag)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tag, err)
		}
		if p.Size() != want {
			t.Fatalf("layout %s: size %d, want %d", tag, p.Size(), want)
		}
	}
}

func TestRegistry_UnknownTag(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_, err := r.Resolve("ZZ")
	var ue *UnknownRecordTypeError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %v, want UnknownRecordTypeError", err)
	}
	if ue.Tag != "ZZ" {
		t.Fatalf("UnknownRecordTypeError.Tag = %q, want ZZ", ue.Tag)
	}
}

// Repeated resolution returns the cached instance.
func TestRegistry_CachesParsers(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	a, err := r.Resolve("RA")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	b, err := r.Resolve("RA")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if a != b {
		t.Fatalf("Resolve returned distinct parsers for the same tag")
	}
}

func TestRegistry_ConcurrentResolve(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	tags := r.SupportedTags()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, tag := range tags {
				if _, err := r.Resolve(tag); err != nil {
					t.Errorf("Resolve(%s): %v", tag, err)
				}
			}
		}()
	}
	wg.Wait()
}

// Record data length excludes the CRLF separator, so no layout may declare a
// field that reads past its own size.
func TestRegistry_LayoutsContiguous(t *testing.T) {
	t.Parallel()

	for tag, fn := range layoutFns {
		l := fn()
		if l.Tag != tag {
			t.Fatalf("layoutFns[%s] built layout tagged %s", tag, l.Tag)
		}
		if err := l.Validate(); err != nil {
			t.Fatalf("layout %s: %v", tag, err)
		}
	}
}
