package smbios

import "testing"

func TestWindowReads(t *testing.T) {
	w := newWindow([]byte{0x16, 0x1A, 0x2E, 0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06})

	if v, ok := w.U8(0); !ok || v != 0x16 {
		t.Errorf("U8(0) = %#x, %v", v, ok)
	}
	if v, ok := w.U16(2); !ok || v != 0x002E {
		t.Errorf("U16(2) = %#x, %v; little-endian expected", v, ok)
	}
	if v, ok := w.U32(4); !ok || v != 0x04030201 {
		t.Errorf("U32(4) = %#x, %v", v, ok)
	}
	if v, ok := w.U64(2); !ok || v != 0x060504030201002E {
		t.Errorf("U64(2) = %#x, %v", v, ok)
	}
}

func TestWindowBounds(t *testing.T) {
	w := newWindow(make([]byte, 8))

	tests := []struct {
		name   string
		read   func() bool
		wantOK bool
	}{
		{"U8 last byte", func() bool { _, ok := w.U8(7); return ok }, true},
		{"U8 past end", func() bool { _, ok := w.U8(8); return ok }, false},
		{"U8 negative", func() bool { _, ok := w.U8(-1); return ok }, false},
		{"U16 straddling end", func() bool { _, ok := w.U16(7); return ok }, false},
		{"U16 at end boundary", func() bool { _, ok := w.U16(6); return ok }, true},
		{"U32 straddling end", func() bool { _, ok := w.U32(5); return ok }, false},
		{"U32 at end boundary", func() bool { _, ok := w.U32(4); return ok }, true},
		{"U64 full window", func() bool { _, ok := w.U64(0); return ok }, true},
		{"U64 straddling end", func() bool { _, ok := w.U64(1); return ok }, false},
		{"U64 far past end", func() bool { _, ok := w.U64(1000); return ok }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.read(); got != tt.wantOK {
				t.Errorf("ok = %v, want %v", got, tt.wantOK)
			}
		})
	}
}

func TestWindowEmpty(t *testing.T) {
	w := newWindow(nil)
	if w.Len() != 0 {
		t.Errorf("Len = %d", w.Len())
	}
	if _, ok := w.U8(0); ok {
		t.Error("U8 on empty window should be absent")
	}
}
