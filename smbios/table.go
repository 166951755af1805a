package smbios

import (
	"fmt"
	"strings"

	"github.com/wippyai/dmi-decode/errors"
)

// Record is the tagged union produced by dispatch: a recognized kind
// with its structure, or KindUnknown with the structure retained so
// callers can still inspect the raw header, bytes, and strings.
type Record struct {
	Kind      Kind
	Structure *Structure
}

// Known reports whether the record's type code dispatched to a
// standard kind.
func (r Record) Known() bool {
	return r.Kind != KindUnknown
}

// View returns the typed field view for the record. It reports false
// for unknown records and for standard kinds that declare no fields
// beyond the header.
func (r Record) View() (*View, bool) {
	layout, ok := LayoutFor(r.Kind)
	if !ok || len(layout.Fields) == 0 {
		return nil, false
	}
	return &View{s: r.Structure, layout: layout}, true
}

func (r Record) String() string {
	if view, ok := r.View(); ok {
		return view.String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Structure.Header)
	fmt.Fprintf(&b, "  data: % X\n", r.Structure.Window().Bytes())
	for i, s := range r.Structure.Strings() {
		fmt.Fprintf(&b, "  string %d: %q\n", i+1, s)
	}
	return b.String()
}

// Table is the materialized result of a full walk: every record in
// occurrence order, plus a handle index built once the walk finishes.
// A Table is immutable and may be re-queried freely.
type Table struct {
	Records []Record

	byHandle map[Handle]int
}

func newTable() *Table {
	return &Table{byHandle: make(map[Handle]int)}
}

func (t *Table) add(r Record) {
	// First occurrence wins; duplicate handles are firmware bugs but
	// must not shadow the record already indexed.
	h := r.Structure.Header.Handle
	if _, dup := t.byHandle[h]; !dup {
		t.byHandle[h] = len(t.Records)
	}
	t.Records = append(t.Records, r)
}

// Len returns the number of decoded records.
func (t *Table) Len() int {
	return len(t.Records)
}

// At returns the record at position i in occurrence order.
func (t *Table) At(i int) (Record, bool) {
	if i < 0 || i >= len(t.Records) {
		return Record{}, false
	}
	return t.Records[i], true
}

// ByHandle resolves a handle reference. A miss reports false; it is
// expected for truncated tables and dangling references.
func (t *Table) ByHandle(h Handle) (Record, bool) {
	i, ok := t.byHandle[h]
	if !ok {
		return Record{}, false
	}
	return t.Records[i], true
}

// Lookup is ByHandle with a structured not-found error, for callers
// that propagate the miss instead of branching on it.
func (t *Table) Lookup(h Handle) (Record, error) {
	rec, ok := t.ByHandle(h)
	if !ok {
		return Record{}, errors.NotFound(errors.PhaseLookup, fmt.Sprintf("no structure with handle %s", h))
	}
	return rec, nil
}

// ByType returns all records with the given type code, in occurrence
// order.
func (t *Table) ByType(st StructureType) []Record {
	var out []Record
	for _, r := range t.Records {
		if r.Structure.Header.Type == st {
			out = append(out, r)
		}
	}
	return out
}
