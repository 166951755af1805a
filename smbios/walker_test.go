package smbios_test

import (
	"errors"
	"io"
	"testing"

	"github.com/wippyai/dmi-decode/smbios"
)

// batteryStruct is a Type 22 Portable Battery structure, formatted
// area plus string table, as produced by an SMBIOS 2.2 BIOS.
var batteryStruct = []byte{
	0x16, 0x1A, 0x2E, 0x00, 0x01, 0x02, 0x00, 0x00, 0x03, 0x02, 0xFB, 0x11, 0xD0, 0x39,
	0x04, 0xFF, 0xC7, 0x02, 0x7A, 0x42, 0x05, 0x0A, 0x00, 0x00, 0x00, 0x00, 0x52, 0x65,
	0x61, 0x72, 0x00, 0x53, 0x4D, 0x50, 0x00, 0x34, 0x35, 0x4E, 0x31, 0x30, 0x37, 0x31,
	0x00, 0x30, 0x33, 0x2E, 0x30, 0x31, 0x00, 0x4C, 0x69, 0x50, 0x00, 0x00,
}

// eotStruct is the End-of-Table marker with its double-NUL terminator.
var eotStruct = []byte{0x7F, 0x04, 0x03, 0x00, 0x00, 0x00}

// oemStruct is a vendor-private structure (type 0x99) wrapping a BIOS
// language information body with three language strings.
var oemStruct = []byte{
	0x99, 0x16, 0x21, 0x00,
	0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x01,
	0x65, 0x6E, 0x7C, 0x55, 0x53, 0x7C, 0x69, 0x73, 0x6F, 0x38, 0x38, 0x35, 0x39, 0x2D,
	0x31, 0x00,
	0x66, 0x72, 0x7C, 0x46, 0x52, 0x7C, 0x69, 0x73, 0x6F, 0x38, 0x38, 0x35, 0x39, 0x2D,
	0x31, 0x00,
	0x6A, 0x61, 0x7C, 0x4A, 0x50, 0x7C, 0x75, 0x6E, 0x69, 0x63, 0x6F, 0x64, 0x65, 0x00,
	0x00,
}

func buildTable(structs ...[]byte) []byte {
	var buf []byte
	for _, s := range structs {
		buf = append(buf, s...)
	}
	return buf
}

func TestWalkOrdinaryRecordsPlusTerminator(t *testing.T) {
	buf := buildTable(batteryStruct, oemStruct, eotStruct)
	table, err := smbios.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("record count = %d, want 3", table.Len())
	}

	rec, _ := table.At(0)
	if rec.Kind != smbios.KindPortableBattery {
		t.Errorf("record 0 kind = %v, want PortableBattery", rec.Kind)
	}
	if rec.Structure.Header.Handle != 0x002E {
		t.Errorf("record 0 handle = %v", rec.Structure.Header.Handle)
	}

	rec, _ = table.At(2)
	if rec.Kind != smbios.KindEndOfTable {
		t.Errorf("record 2 kind = %v, want EndOfTable", rec.Kind)
	}
}

func TestWalkIgnoresBytesAfterTerminator(t *testing.T) {
	buf := buildTable(batteryStruct, eotStruct)
	buf = append(buf, 0xDE, 0xAD, 0xBE, 0xEF) // not structures
	table, err := smbios.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("record count = %d, want 2", table.Len())
	}
}

func TestWalkOEMTypeIsGenericFallback(t *testing.T) {
	table, err := smbios.Decode(buildTable(oemStruct, eotStruct))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	rec, _ := table.At(0)
	if rec.Known() {
		t.Fatalf("type 0x99 should dispatch to Unknown, got %v", rec.Kind)
	}
	s := rec.Structure
	if s.Header.Handle != 0x0021 || s.Header.Length != 0x16 {
		t.Errorf("header = %v", s.Header)
	}
	strs := s.Strings()
	if len(strs) != 3 || strs[0] != "en|US|iso8859-1" || strs[2] != "ja|JP|unicode" {
		t.Errorf("strings = %q", strs)
	}
	// The full structure stays inspectable through the raw window.
	if v, ok := s.FieldString(0x15); !ok || v != "en|US|iso8859-1" {
		t.Errorf("FieldString(0x15) = %q, %v", v, ok)
	}
}

func TestWalkHeaderLengthBelowMinimum(t *testing.T) {
	_, err := smbios.Decode([]byte{0x01, 0x03, 0x00, 0x00, 0x00, 0x00})
	if !errors.Is(err, smbios.ErrTruncated) {
		t.Fatalf("err = %v, want truncated", err)
	}
}

func TestWalkDeclaredLengthOverrunsBuffer(t *testing.T) {
	_, err := smbios.Decode([]byte{0x01, 0x40, 0x00, 0x00, 0x01, 0x02})
	if !errors.Is(err, smbios.ErrTruncated) {
		t.Fatalf("err = %v, want truncated", err)
	}
}

func TestWalkUnterminatedStringTable(t *testing.T) {
	buf := append([]byte{}, batteryStruct[:len(batteryStruct)-2]...) // drop terminator
	_, err := smbios.Decode(buf)
	if !errors.Is(err, smbios.ErrTruncated) {
		t.Fatalf("err = %v, want truncated", err)
	}
}

func TestWalkPartialTableSurvivesTruncation(t *testing.T) {
	buf := buildTable(batteryStruct, []byte{0x01, 0x7F, 0x00, 0x00}) // second header overruns
	table, err := smbios.Decode(buf)
	if !errors.Is(err, smbios.ErrTruncated) {
		t.Fatalf("err = %v, want truncated", err)
	}
	if table.Len() != 1 {
		t.Fatalf("partial table length = %d, want 1", table.Len())
	}
	rec, _ := table.At(0)
	if loc, ok := rec.Structure.FieldString(0x04); !ok || loc != "Rear" {
		t.Errorf("yielded record unusable after failure: %q, %v", loc, ok)
	}
}

func TestWalkerNotResumableAfterError(t *testing.T) {
	w := smbios.NewWalker([]byte{0x01, 0x03, 0x00, 0x00})
	_, err1 := w.Next()
	if !errors.Is(err1, smbios.ErrTruncated) {
		t.Fatalf("first Next: %v", err1)
	}
	_, err2 := w.Next()
	if !errors.Is(err2, smbios.ErrTruncated) {
		t.Fatalf("second Next: %v", err2)
	}
}

func TestWalkerEOFAfterExhaustion(t *testing.T) {
	w := smbios.NewWalker(buildTable(eotStruct))
	if _, err := w.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if _, err := w.Next(); err != io.EOF {
		t.Fatalf("err = %v, want io.EOF", err)
	}
	if _, err := w.Next(); err != io.EOF {
		t.Fatalf("repeated err = %v, want io.EOF", err)
	}
}

func TestWalkEmptyBuffer(t *testing.T) {
	table, err := smbios.Decode(nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if table.Len() != 0 {
		t.Errorf("record count = %d, want 0", table.Len())
	}
}

func TestWalkTerminatorWithoutTrailingNULs(t *testing.T) {
	// Some firmware ends the buffer right after the EOT header.
	buf := buildTable(batteryStruct, []byte{0x7F, 0x04, 0x03, 0x00})
	table, err := smbios.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("record count = %d, want 2", table.Len())
	}
}
