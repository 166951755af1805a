package smbios

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// View is the generic typed accessor over one recognized structure.
// It pairs the structure with its kind's field layout; getters are
// pure, idempotent delegations to the bounds-checked Window, computed
// on demand and never cached.
type View struct {
	s      *Structure
	layout *Layout
}

// NewView builds the typed view for a structure, dispatching on its
// header type code. It reports false when the type is unknown or the
// kind declares no fields.
func NewView(s *Structure) (*View, bool) {
	return Record{Kind: KindOf(s.Header.Type), Structure: s}.View()
}

// Kind returns the view's dispatch tag.
func (v *View) Kind() Kind {
	return v.layout.Kind
}

// Structure returns the underlying structure.
func (v *View) Structure() *Structure {
	return v.s
}

// Fields returns the declared field layout for the view's kind.
func (v *View) Fields() []Field {
	return v.layout.Fields
}

// uintAt reads a numeric field, honoring its width and sentinel.
func (v *View) uintAt(f Field) (uint64, bool) {
	var val uint64
	var ok bool
	switch f.Kind {
	case FieldByte:
		var b uint8
		b, ok = v.s.U8(f.Offset)
		val = uint64(b)
	case FieldWord, FieldHandle:
		var w uint16
		w, ok = v.s.U16(f.Offset)
		val = uint64(w)
	case FieldDWord:
		var d uint32
		d, ok = v.s.U32(f.Offset)
		val = uint64(d)
	case FieldQWord:
		val, ok = v.s.U64(f.Offset)
	default:
		return 0, false
	}
	if !ok {
		return 0, false
	}
	if f.HasSentinel && val == f.Sentinel {
		return 0, false
	}
	return val, true
}

// Uint reads the named numeric field. Absent when the field is not
// declared for this kind, lies past the structure's declared length,
// or holds its reserved "unknown" sentinel.
func (v *View) Uint(name string) (uint64, bool) {
	f, ok := v.layout.field(name)
	if !ok || f.Kind == FieldString {
		return 0, false
	}
	return v.uintAt(f)
}

// Str reads the named string field, resolving its index against the
// structure's string table. Index 0 and out-of-range indices are
// absent.
func (v *View) Str(name string) (string, bool) {
	f, ok := v.layout.field(name)
	if !ok || f.Kind != FieldString {
		return "", false
	}
	return v.s.FieldString(f.Offset)
}

// Handle reads the named handle-valued field.
func (v *View) Handle(name string) (Handle, bool) {
	f, ok := v.layout.field(name)
	if !ok || f.Kind != FieldHandle {
		return 0, false
	}
	val, ok := v.uintAt(f)
	return Handle(val), ok
}

// Equal reports whether two views decode identical records: same
// kind, same header, same formatted area, same strings.
func (v *View) Equal(o *View) bool {
	if o == nil {
		return false
	}
	return v.layout.Kind == o.layout.Kind &&
		v.s.Header == o.s.Header &&
		bytes.Equal(v.s.Window().Bytes(), o.s.Window().Bytes()) &&
		slices.Equal(v.s.Strings(), o.s.Strings())
}

// String renders the header and every declared field, absent ones
// included.
func (v *View) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", v.s.Header)
	for _, f := range v.layout.Fields {
		fmt.Fprintf(&b, "  %s: ", f.Name)
		switch f.Kind {
		case FieldString:
			if s, ok := v.s.FieldString(f.Offset); ok {
				fmt.Fprintf(&b, "%q", s)
			} else {
				b.WriteString("<absent>")
			}
		case FieldHandle:
			if val, ok := v.uintAt(f); ok {
				b.WriteString(Handle(val).String())
			} else {
				b.WriteString("<absent>")
			}
		default:
			if val, ok := v.uintAt(f); ok {
				fmt.Fprintf(&b, "%d", val)
			} else {
				b.WriteString("<absent>")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
