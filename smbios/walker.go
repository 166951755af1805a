package smbios

import (
	"io"

	"github.com/wippyai/dmi-decode/errors"
)

// ErrTruncated is the errors.Is target for structural walk failures:
// a header length below the 4-byte minimum, a declared length that
// overruns the buffer, or an unterminated string table.
var ErrTruncated = &errors.Error{Phase: errors.PhaseWalk, Kind: errors.KindTruncated, Offset: -1}

// Walker iterates a raw table buffer, yielding one Structure per call
// to Next. The walk stops at the End-of-Table marker (type 127) even
// when buffer bytes remain, or at the buffer end.
//
// A Walker is consumed once and is not resumable after a structural
// failure; restart with a fresh Walker over the same buffer.
type Walker struct {
	buf  []byte
	pos  int
	done bool
	err  error
}

// NewWalker creates a walker over buf. The buffer is borrowed and must
// stay immutable for the lifetime of every yielded Structure.
func NewWalker(buf []byte) *Walker {
	return &Walker{buf: buf}
}

// Next yields the next structure in the table.
//
// It returns io.EOF once the table is exhausted (End-of-Table marker
// seen or buffer consumed). Structural failures return a *errors.Error
// matching ErrTruncated; structures yielded before the failure remain
// valid. After any error, further calls return the same error.
func (w *Walker) Next() (*Structure, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.done || w.pos >= len(w.buf) {
		w.err = io.EOF
		return nil, io.EOF
	}

	header, ok := parseHeader(w.buf[w.pos:])
	if !ok {
		return nil, w.fail(errors.Truncated(errors.PhaseWalk, w.pos,
			"%d trailing bytes, need %d for a header", len(w.buf)-w.pos, HeaderSize))
	}
	if header.Length < HeaderSize {
		return nil, w.fail(errors.Truncated(errors.PhaseWalk, w.pos,
			"declared length %d below the %d-byte minimum", header.Length, HeaderSize))
	}
	end := w.pos + int(header.Length)
	if end > len(w.buf) {
		return nil, w.fail(errors.Truncated(errors.PhaseWalk, w.pos,
			"declared length %d overruns buffer by %d bytes", header.Length, end-len(w.buf)))
	}
	formatted := w.buf[w.pos:end]

	if header.Type == TypeEndOfTable {
		// Terminal marker: anything after it is not interpreted as
		// structures, including a missing string-table terminator.
		strs, _, _ := parseStrings(w.buf[end:])
		w.done = true
		return NewStructure(header, formatted, strs), nil
	}

	strs, consumed, ok := parseStrings(w.buf[end:])
	if !ok {
		return nil, w.fail(errors.Truncated(errors.PhaseWalk, end,
			"unterminated string table for handle %s", header.Handle))
	}
	w.pos = end + consumed
	return NewStructure(header, formatted, strs), nil
}

func (w *Walker) fail(err error) error {
	w.err = err
	return err
}

// Decode runs a full walk over buf and materializes the result.
//
// On a structural failure the returned table still holds every record
// decoded before the failure, alongside the error.
func Decode(buf []byte) (*Table, error) {
	w := NewWalker(buf)
	t := newTable()
	for {
		s, err := w.Next()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return t, err
		}
		t.add(Record{Kind: KindOf(s.Header.Type), Structure: s})
	}
}
