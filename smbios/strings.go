package smbios

import "bytes"

// parseStrings decodes the string table that trails a formatted area.
//
// Strings are NUL-delimited and the table ends with an extra NUL (two
// consecutive zero bytes). A structure with no strings may carry either
// the canonical double NUL or a sole NUL directly followed by the next
// structure. consumed is the number of bytes used including the
// terminator; ok is false when b runs out before a terminator.
//
// Decoding is byte-preserving: whatever the firmware put between the
// NULs comes back verbatim as a Go string.
func parseStrings(b []byte) (list []string, consumed int, ok bool) {
	pos := 0
	for {
		i := bytes.IndexByte(b[pos:], 0)
		if i < 0 {
			return nil, 0, false
		}
		if i == 0 {
			if len(list) == 0 {
				if pos+1 < len(b) && b[pos+1] == 0 {
					return nil, pos + 2, true
				}
				return nil, pos + 1, true
			}
			return list, pos + 1, true
		}
		list = append(list, string(b[pos:pos+i]))
		pos += i + 1
	}
}
