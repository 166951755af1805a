package smbios

// Structure is one decoded record: its header, the bounds-checked
// window over its formatted area, and its resolved string table.
// Instances borrow from the decode buffer and are immutable after
// construction, so they may be shared freely across readers.
type Structure struct {
	Header Header

	window  Window
	strings []string
}

// NewStructure builds a Structure from its parts. The formatted slice
// must span the full declared length, header bytes included. Most
// callers obtain structures from a Walker instead.
func NewStructure(header Header, formatted []byte, strs []string) *Structure {
	return &Structure{Header: header, window: newWindow(formatted), strings: strs}
}

// Window returns the bounds-checked view over the formatted area.
func (s *Structure) Window() Window {
	return s.window
}

// Strings returns the structure's string table in encounter order.
// The slice is shared and must be treated as read-only.
func (s *Structure) Strings() []string {
	return s.strings
}

// StringAt resolves a 1-indexed string number. Index 0 is the
// specification's "no string" encoding and always reports absent, as
// does any index beyond the table.
func (s *Structure) StringAt(k int) (string, bool) {
	if k < 1 || k > len(s.strings) {
		return "", false
	}
	return s.strings[k-1], true
}

// U8 reads the byte field at off, absent when off lies past the
// declared length.
func (s *Structure) U8(off int) (uint8, bool) {
	return s.window.U8(off)
}

// U16 reads the word field at off.
func (s *Structure) U16(off int) (uint16, bool) {
	return s.window.U16(off)
}

// U32 reads the dword field at off.
func (s *Structure) U32(off int) (uint32, bool) {
	return s.window.U32(off)
}

// U64 reads the qword field at off.
func (s *Structure) U64(off int) (uint64, bool) {
	return s.window.U64(off)
}

// HandleAt reads the handle-valued word field at off.
func (s *Structure) HandleAt(off int) (Handle, bool) {
	v, ok := s.window.U16(off)
	return Handle(v), ok
}

// FieldString reads the string-index byte at off and resolves it
// against the string table. Index 0 and out-of-range indices are
// absent, not errors.
func (s *Structure) FieldString(off int) (string, bool) {
	k, ok := s.window.U8(off)
	if !ok || k == 0 {
		return "", false
	}
	return s.StringAt(int(k))
}
