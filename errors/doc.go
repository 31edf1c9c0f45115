// Package errors provides structured error types for the widestr library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes the byte offset and offending
// code unit where applicable, plus a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMemory, errors.KindOutOfBounds).
//		Offset(off).
//		Detail("string extends past end of guest memory").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseMemory, off, size)
//	err := errors.Misaligned(errors.PhaseMemory, off, 2)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
