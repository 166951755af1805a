package smbios

import (
	"slices"
	"testing"
)

func TestParseStrings(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		want     []string
		consumed int
		ok       bool
	}{
		{
			name:     "two strings",
			in:       []byte("Rear\x00SMP\x00\x00"),
			want:     []string{"Rear", "SMP"},
			consumed: 11,
			ok:       true,
		},
		{
			name:     "single string",
			in:       []byte("Default string\x00\x00"),
			want:     []string{"Default string"},
			consumed: 16,
			ok:       true,
		},
		{
			name:     "no strings canonical double NUL",
			in:       []byte{0x00, 0x00},
			want:     nil,
			consumed: 2,
			ok:       true,
		},
		{
			name:     "no strings sole NUL before next structure",
			in:       []byte{0x00, 0x16, 0x1A},
			want:     nil,
			consumed: 1,
			ok:       true,
		},
		{
			name:     "no strings sole NUL at buffer end",
			in:       []byte{0x00},
			want:     nil,
			consumed: 1,
			ok:       true,
		},
		{
			name:     "terminator consumed, trailing bytes untouched",
			in:       []byte("A\x00\x00\x42\x42"),
			want:     []string{"A"},
			consumed: 3,
			ok:       true,
		},
		{
			name: "unterminated string",
			in:   []byte("Rear"),
			ok:   false,
		},
		{
			name: "missing final terminator",
			in:   []byte("Rear\x00SMP"),
			ok:   false,
		},
		{
			name: "empty input",
			in:   nil,
			ok:   false,
		},
		{
			name:     "non UTF-8 bytes preserved",
			in:       []byte{0xFF, 0xFE, 0x00, 0x00},
			want:     []string{"\xff\xfe"},
			consumed: 4,
			ok:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, consumed, ok := parseStrings(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("strings = %q, want %q", got, tt.want)
			}
			if consumed != tt.consumed {
				t.Errorf("consumed = %d, want %d", consumed, tt.consumed)
			}
		})
	}
}
