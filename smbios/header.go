package smbios

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed size of a structure header. A structure's
// declared length can never be smaller.
const HeaderSize = 4

// Header is the fixed 4-byte prefix of every structure: type code,
// total formatted-area length (header included), and handle.
// Immutable once read.
type Header struct {
	Type   StructureType
	Length uint8
	Handle Handle
}

// parseHeader reads a header from the start of b.
func parseHeader(b []byte) (Header, bool) {
	if len(b) < HeaderSize {
		return Header{}, false
	}
	return Header{
		Type:   StructureType(b[0]),
		Length: b[1],
		Handle: Handle(binary.LittleEndian.Uint16(b[2:4])),
	}, true
}

func (h Header) String() string {
	return fmt.Sprintf("%s (type %d), handle %s, length %d", h.Type, uint8(h.Type), h.Handle, h.Length)
}
