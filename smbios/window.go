package smbios

import "encoding/binary"

// Window provides bounds-checked, little-endian read access over one
// structure's formatted area. Offsets are relative to the structure
// start, so the first field after the header lives at offset 0x04.
//
// Every read either lies fully inside [0, Len()) and succeeds, or
// returns comma-ok false. This is the single place the no-overread
// invariant is enforced; every typed getter delegates here.
type Window struct {
	data []byte
}

func newWindow(formatted []byte) Window {
	return Window{data: formatted}
}

// Len returns the formatted-area size, which equals the declared
// header length.
func (w Window) Len() int {
	return len(w.data)
}

// Bytes returns the formatted-area bytes. The slice borrows from the
// decode buffer and must be treated as read-only.
func (w Window) Bytes() []byte {
	return w.data
}

// U8 reads the byte at off.
func (w Window) U8(off int) (uint8, bool) {
	if off < 0 || off+1 > len(w.data) {
		return 0, false
	}
	return w.data[off], true
}

// U16 reads the little-endian word at off.
func (w Window) U16(off int) (uint16, bool) {
	if off < 0 || off+2 > len(w.data) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(w.data[off:]), true
}

// U32 reads the little-endian dword at off.
func (w Window) U32(off int) (uint32, bool) {
	if off < 0 || off+4 > len(w.data) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(w.data[off:]), true
}

// U64 reads the little-endian qword at off.
func (w Window) U64(off int) (uint64, bool) {
	if off < 0 || off+8 > len(w.data) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(w.data[off:]), true
}
