package firmware

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/dmi-decode/errors"
)

// Anchor strings and fixed sizes from DSP0134.
const (
	anchor32             = "_SM_"
	anchor32Intermediate = "_DMI_"
	anchor64             = "_SM3_"

	entryPoint32Size = 0x1F
	entryPoint64Size = 0x18
)

// EntryPoint is the parsed anchor structure preceding the table. It
// tells the caller which specification version the producer claims and
// where the structure table lives in physical memory.
type EntryPoint interface {
	// Version returns the claimed SMBIOS specification version.
	Version() (major, minor int)

	// Table returns the physical address and maximum size of the
	// structure table.
	Table() (addr uint64, size uint32)
}

// EntryPoint32 is the 32-bit ("_SM_") entry point used by SMBIOS 2.x
// producers.
type EntryPoint32 struct {
	Checksum             uint8
	Length               uint8
	Major                uint8
	Minor                uint8
	MaxStructureSize     uint16
	Revision             uint8
	FormattedArea        [5]byte
	IntermediateChecksum uint8
	TableLength          uint16
	TableAddress         uint32
	StructureCount       uint16
	BCDRevision          uint8
}

// Version returns the claimed SMBIOS specification version.
func (e *EntryPoint32) Version() (major, minor int) {
	return int(e.Major), int(e.Minor)
}

// Table returns the physical address and size of the structure table.
func (e *EntryPoint32) Table() (addr uint64, size uint32) {
	return uint64(e.TableAddress), uint32(e.TableLength)
}

func (e *EntryPoint32) String() string {
	return fmt.Sprintf("SMBIOS %d.%d present (32-bit entry point, table at 0x%08X, %d bytes, %d structures)",
		e.Major, e.Minor, e.TableAddress, e.TableLength, e.StructureCount)
}

// EntryPoint64 is the 64-bit ("_SM3_") entry point used by SMBIOS 3.x
// producers.
type EntryPoint64 struct {
	Checksum     uint8
	Length       uint8
	Major        uint8
	Minor        uint8
	Docrev       uint8
	Revision     uint8
	TableMaxSize uint32
	TableAddress uint64
}

// Version returns the claimed SMBIOS specification version.
func (e *EntryPoint64) Version() (major, minor int) {
	return int(e.Major), int(e.Minor)
}

// Table returns the physical address and maximum size of the
// structure table.
func (e *EntryPoint64) Table() (addr uint64, size uint32) {
	return e.TableAddress, e.TableMaxSize
}

func (e *EntryPoint64) String() string {
	return fmt.Sprintf("SMBIOS %d.%d.%d present (64-bit entry point, table at 0x%016X, max %d bytes)",
		e.Major, e.Minor, e.Docrev, e.TableAddress, e.TableMaxSize)
}

// ParseEntryPoint parses either entry-point format, recognized by its
// anchor string.
//
// Checksum mismatches are advisory: they are logged and the entry
// point is returned anyway, since the table itself is usually intact
// even when a vendor miscomputed the anchor checksum.
func ParseEntryPoint(data []byte) (EntryPoint, error) {
	switch {
	case bytes.HasPrefix(data, []byte(anchor64)):
		return parseEntryPoint64(data)
	case bytes.HasPrefix(data, []byte(anchor32)):
		return parseEntryPoint32(data)
	default:
		return nil, errors.BadAnchor(data)
	}
}

func parseEntryPoint32(data []byte) (*EntryPoint32, error) {
	if len(data) < entryPoint32Size {
		return nil, errors.Truncated(errors.PhaseEntryPoint, len(data),
			"32-bit entry point needs %d bytes, have %d", entryPoint32Size, len(data))
	}
	if !bytes.Equal(data[0x10:0x15], []byte(anchor32Intermediate)) {
		return nil, errors.InvalidData(errors.PhaseEntryPoint, 0x10,
			fmt.Sprintf("missing %q intermediate anchor", anchor32Intermediate))
	}

	e := &EntryPoint32{
		Checksum:             data[0x04],
		Length:               data[0x05],
		Major:                data[0x06],
		Minor:                data[0x07],
		MaxStructureSize:     binary.LittleEndian.Uint16(data[0x08:]),
		Revision:             data[0x0A],
		IntermediateChecksum: data[0x15],
		TableLength:          binary.LittleEndian.Uint16(data[0x16:]),
		TableAddress:         binary.LittleEndian.Uint32(data[0x18:]),
		StructureCount:       binary.LittleEndian.Uint16(data[0x1C:]),
		BCDRevision:          data[0x1E],
	}
	copy(e.FormattedArea[:], data[0x0B:0x10])

	// Advisory: the anchor checksum covers the whole entry point, the
	// intermediate one covers the "_DMI_" region.
	span := int(e.Length)
	if span < entryPoint32Size || span > len(data) {
		span = entryPoint32Size
	}
	if sum := checksum(data[:span]); sum != 0 {
		Logger().Warn("entry point checksum mismatch",
			zap.String("anchor", anchor32), zap.Uint8("residue", sum),
			zap.Error(errors.ChecksumMismatch("entry point", sum)))
	}
	if sum := checksum(data[0x10:entryPoint32Size]); sum != 0 {
		Logger().Warn("intermediate checksum mismatch",
			zap.String("anchor", anchor32Intermediate), zap.Uint8("residue", sum),
			zap.Error(errors.ChecksumMismatch("intermediate", sum)))
	}
	return e, nil
}

func parseEntryPoint64(data []byte) (*EntryPoint64, error) {
	if len(data) < entryPoint64Size {
		return nil, errors.Truncated(errors.PhaseEntryPoint, len(data),
			"64-bit entry point needs %d bytes, have %d", entryPoint64Size, len(data))
	}

	e := &EntryPoint64{
		Checksum:     data[0x05],
		Length:       data[0x06],
		Major:        data[0x07],
		Minor:        data[0x08],
		Docrev:       data[0x09],
		Revision:     data[0x0A],
		TableMaxSize: binary.LittleEndian.Uint32(data[0x0C:]),
		TableAddress: binary.LittleEndian.Uint64(data[0x10:]),
	}

	if sum := checksum(data[:entryPoint64Size]); sum != 0 {
		Logger().Warn("entry point checksum mismatch",
			zap.String("anchor", anchor64), zap.Uint8("residue", sum),
			zap.Error(errors.ChecksumMismatch("entry point", sum)))
	}
	return e, nil
}

// checksum sums a region modulo 256; a well-formed region sums to 0.
func checksum(b []byte) uint8 {
	var sum uint8
	for _, v := range b {
		sum += v
	}
	return sum
}
