package dmidecode

import (
	"github.com/wippyai/dmi-decode/smbios"
)

// Source supplies the raw SMBIOS buffers from the host environment.
// Implementations live in the firmware package (sysfs, dump files);
// callers may provide their own for other acquisition paths.
type Source interface {
	// EntryPoint returns the raw entry-point (anchor) bytes, or nil if
	// the source has none (for example a bare table dump).
	EntryPoint() ([]byte, error)

	// Table returns the raw structure-table bytes. The returned buffer
	// is treated as immutable for the whole decode session.
	Table() ([]byte, error)
}

// Decode acquires the table from src and runs a full walk over it.
//
// On a structural failure the returned table still holds every record
// decoded before the failure, alongside the error.
func Decode(src Source) (*smbios.Table, error) {
	buf, err := src.Table()
	if err != nil {
		return nil, err
	}
	return smbios.Decode(buf)
}
