package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEntryPoint Phase = "entrypoint" // anchor parsing
	PhaseWalk       Phase = "walk"       // table walking
	PhaseLoad       Phase = "load"       // buffer acquisition
	PhaseLookup     Phase = "lookup"     // handle/type queries
)

// Kind categorizes the error
type Kind string

const (
	KindTruncated        Kind = "truncated"
	KindBadAnchor        Kind = "bad_anchor"
	KindChecksumMismatch Kind = "checksum_mismatch"
	KindUnsupported      Kind = "unsupported"
	KindNotFound         Kind = "not_found"
	KindInvalidData      Kind = "invalid_data"
	KindIO               Kind = "io"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string

	// Offset is the byte offset into the raw buffer the error refers
	// to, or -1 when no offset applies.
	Offset int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset 0x%X", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the byte offset into the raw buffer
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Truncated creates a truncated-input error at the given buffer offset
func Truncated(phase Phase, offset int, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Offset: offset,
		Detail: detail,
	}
}

// BadAnchor creates an unrecognized entry-point anchor error
func BadAnchor(data []byte) *Error {
	preview := data
	if len(preview) > 8 {
		preview = preview[:8]
	}
	return &Error{
		Phase:  PhaseEntryPoint,
		Kind:   KindBadAnchor,
		Offset: 0,
		Detail: fmt.Sprintf("unrecognized anchor bytes: %x", preview),
	}
}

// ChecksumMismatch creates an entry-point checksum error
func ChecksumMismatch(what string, sum byte) *Error {
	return &Error{
		Phase:  PhaseEntryPoint,
		Kind:   KindChecksumMismatch,
		Offset: -1,
		Detail: fmt.Sprintf("%s checksum does not sum to zero (residue 0x%02X)", what, sum),
		Value:  sum,
	}
}

// NotFound creates a lookup-miss error
func NotFound(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Offset: -1,
		Detail: what,
	}
}

// Unsupported creates an unsupported input error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Offset: -1,
		Detail: what,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, offset int, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Offset: offset,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
