package firmware_test

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	dmierrors "github.com/wippyai/dmi-decode/errors"
	"github.com/wippyai/dmi-decode/firmware"
)

// fixChecksum sets data[at] so the region sums to zero.
func fixChecksum(data []byte, at int) {
	data[at] = 0
	var sum uint8
	for _, b := range data {
		sum += b
	}
	data[at] = uint8(-int8(sum))
}

func entryPoint64Bytes() []byte {
	data := make([]byte, 0x18)
	copy(data, "_SM3_")
	data[0x06] = 0x18 // length
	data[0x07] = 3    // major
	data[0x08] = 7    // minor
	data[0x09] = 0    // docrev
	data[0x0A] = 0x01 // entry point revision
	binary.LittleEndian.PutUint32(data[0x0C:], 0x1000)
	binary.LittleEndian.PutUint64(data[0x10:], 0x75C00000)
	fixChecksum(data, 0x05)
	return data
}

func entryPoint32Bytes() []byte {
	data := make([]byte, 0x1F)
	copy(data, "_SM_")
	data[0x05] = 0x1F // length
	data[0x06] = 2    // major
	data[0x07] = 8    // minor
	binary.LittleEndian.PutUint16(data[0x08:], 0x0140)
	copy(data[0x10:], "_DMI_")
	binary.LittleEndian.PutUint16(data[0x16:], 0x0D7F)
	binary.LittleEndian.PutUint32(data[0x18:], 0x000EB4C0)
	binary.LittleEndian.PutUint16(data[0x1C:], 83)
	data[0x1E] = 0x28
	fixChecksum(data[0x10:], 0x05) // intermediate, at absolute 0x15
	fixChecksum(data, 0x04)
	return data
}

func TestParseEntryPoint64(t *testing.T) {
	ep, err := firmware.ParseEntryPoint(entryPoint64Bytes())
	if err != nil {
		t.Fatalf("ParseEntryPoint: %v", err)
	}
	e, ok := ep.(*firmware.EntryPoint64)
	if !ok {
		t.Fatalf("type = %T", ep)
	}
	if major, minor := e.Version(); major != 3 || minor != 7 {
		t.Errorf("Version = %d.%d", major, minor)
	}
	addr, size := e.Table()
	if addr != 0x75C00000 || size != 0x1000 {
		t.Errorf("Table = %#x, %d", addr, size)
	}
	if !strings.Contains(e.String(), "SMBIOS 3.7") {
		t.Errorf("String = %q", e.String())
	}
}

func TestParseEntryPoint32(t *testing.T) {
	ep, err := firmware.ParseEntryPoint(entryPoint32Bytes())
	if err != nil {
		t.Fatalf("ParseEntryPoint: %v", err)
	}
	e, ok := ep.(*firmware.EntryPoint32)
	if !ok {
		t.Fatalf("type = %T", ep)
	}
	if major, minor := e.Version(); major != 2 || minor != 8 {
		t.Errorf("Version = %d.%d", major, minor)
	}
	addr, size := e.Table()
	if addr != 0x000EB4C0 || size != 0x0D7F {
		t.Errorf("Table = %#x, %d", addr, size)
	}
	if e.StructureCount != 83 {
		t.Errorf("StructureCount = %d", e.StructureCount)
	}
}

func TestParseEntryPointBadAnchor(t *testing.T) {
	_, err := firmware.ParseEntryPoint([]byte("_XX_garbagegarbagegarbagegarbage"))
	target := &dmierrors.Error{Phase: dmierrors.PhaseEntryPoint, Kind: dmierrors.KindBadAnchor}
	if !errors.Is(err, target) {
		t.Fatalf("err = %v, want bad_anchor", err)
	}
}

func TestParseEntryPointShort(t *testing.T) {
	_, err := firmware.ParseEntryPoint([]byte("_SM3_\x00\x18"))
	target := &dmierrors.Error{Phase: dmierrors.PhaseEntryPoint, Kind: dmierrors.KindTruncated}
	if !errors.Is(err, target) {
		t.Fatalf("err = %v, want truncated", err)
	}
}

func TestParseEntryPointMissingIntermediateAnchor(t *testing.T) {
	data := entryPoint32Bytes()
	copy(data[0x10:], "_XXX_")
	_, err := firmware.ParseEntryPoint(data)
	target := &dmierrors.Error{Phase: dmierrors.PhaseEntryPoint, Kind: dmierrors.KindInvalidData}
	if !errors.Is(err, target) {
		t.Fatalf("err = %v, want invalid_data", err)
	}
}

func TestChecksumMismatchIsAdvisory(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	firmware.SetLogger(zap.New(core))
	defer firmware.SetLogger(zap.NewNop())

	data := entryPoint64Bytes()
	data[0x09] = 9 // corrupt docrev without refreshing the checksum

	ep, err := firmware.ParseEntryPoint(data)
	if err != nil {
		t.Fatalf("mismatched checksum must not be fatal: %v", err)
	}
	if ep == nil {
		t.Fatal("entry point not returned")
	}
	if logs.FilterMessage("entry point checksum mismatch").Len() != 1 {
		t.Errorf("expected one checksum warning, got %d entries", logs.Len())
	}
}
