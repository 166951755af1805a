package smbios

// FieldKind is the decode kind of one field in a layout.
type FieldKind uint8

const (
	FieldByte FieldKind = iota
	FieldWord
	FieldDWord
	FieldQWord
	FieldString // 1-byte index into the string table
	FieldHandle // word holding another structure's handle
)

func (k FieldKind) String() string {
	switch k {
	case FieldByte:
		return "byte"
	case FieldWord:
		return "word"
	case FieldDWord:
		return "dword"
	case FieldQWord:
		return "qword"
	case FieldString:
		return "string"
	case FieldHandle:
		return "handle"
	}
	return "invalid"
}

// Field describes one named field of a structure layout: where it
// lives, how wide it is, and (optionally) the reserved value its
// producer uses to encode "unknown".
type Field struct {
	Name   string
	Offset int
	Kind   FieldKind

	// Sentinel is a per-field reserved value (typically all-ones or
	// 0x8000 for probes) that decodes to absent. Only honored when
	// HasSentinel is set; most fields pass reserved values through.
	Sentinel    uint64
	HasSentinel bool
}

// Layout is the fixed field table for one structure kind. Layouts are
// data: the single generic View interprets them, there is no per-type
// accessor code.
type Layout struct {
	Kind   Kind
	Fields []Field
}

// field returns the named field declaration.
func (l *Layout) field(name string) (Field, bool) {
	for _, f := range l.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// LayoutFor returns the registered layout for a kind.
func LayoutFor(k Kind) (*Layout, bool) {
	l, ok := layouts[k]
	return l, ok
}

// Layout construction helpers, used only by the registry below.

func fByte(name string, off int) Field   { return Field{Name: name, Offset: off, Kind: FieldByte} }
func fWord(name string, off int) Field   { return Field{Name: name, Offset: off, Kind: FieldWord} }
func fDWord(name string, off int) Field  { return Field{Name: name, Offset: off, Kind: FieldDWord} }
func fQWord(name string, off int) Field  { return Field{Name: name, Offset: off, Kind: FieldQWord} }
func fString(name string, off int) Field { return Field{Name: name, Offset: off, Kind: FieldString} }
func fHandle(name string, off int) Field { return Field{Name: name, Offset: off, Kind: FieldHandle} }

func withSentinel(f Field, v uint64) Field {
	f.Sentinel = v
	f.HasSentinel = true
	return f
}
