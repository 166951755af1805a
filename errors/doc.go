// Package errors provides structured error types for the dmi-decode library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the byte offset into the
// raw buffer, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseWalk, errors.KindTruncated).
//		Offset(0x40).
//		Detail("declared length %d overruns buffer", 27).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(errors.PhaseWalk, off, "structure overruns buffer")
//	err := errors.BadAnchor(data)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Phase and Kind agree.
package errors
