package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // building a view from a slice or pointer
	PhaseDecode    Phase = "decode"    // code units to scalar values
	PhaseMemory    Phase = "memory"    // foreign buffer access
)

// Kind categorizes the error
type Kind string

const (
	KindInteriorNul      Kind = "interior_nul"
	KindNotNulTerminated Kind = "not_nul_terminated"
	KindInvalidUnit      Kind = "invalid_unit"
	KindOutOfBounds      Kind = "out_of_bounds"
	KindMisaligned       Kind = "misaligned"
	KindNilPointer       Kind = "nil_pointer"
)

// Error is the structured error type used by the library's higher layers.
// The leaf packages (widechar, wcstr) keep their own small typed errors;
// code working against foreign memory wraps them in an Error for context.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Offset int64 // byte offset into the buffer, -1 when not applicable
	Unit   int64 // offending code unit bit pattern, -1 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %#x", e.Offset)
	}
	if e.Unit >= 0 {
		fmt.Fprintf(&b, ", unit %#04x", e.Unit)
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
			Unit:   -1,
		},
	}
}

// Offset sets the byte offset the error refers to
func (b *Builder) Offset(off uint32) *Builder {
	b.err.Offset = int64(off)
	return b
}

// Unit sets the offending code unit
func (b *Builder) Unit(u uint32) *Builder {
	b.err.Unit = int64(u)
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

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, offset, size uint32) *Error {
	return New(phase, KindOutOfBounds).
		Offset(offset).
		Detail("offset beyond memory of %d bytes", size).
		Build()
}

// Misaligned creates a misaligned offset error
func Misaligned(phase Phase, offset, align uint32) *Error {
	return New(phase, KindMisaligned).
		Offset(offset).
		Detail("offset is not %d-byte aligned", align).
		Build()
}

// NotNulTerminated creates an error for memory holding no terminating zero unit
func NotNulTerminated(phase Phase, offset uint32) *Error {
	return New(phase, KindNotNulTerminated).
		Offset(offset).
		Detail("no NUL-terminator before end of memory").
		Build()
}

// InteriorNul creates an error for a zero unit before the final position
func InteriorNul(phase Phase, pos uint32) *Error {
	return New(phase, KindInteriorNul).
		Detail("interior NUL unit at index %d", pos).
		Build()
}

// InvalidUnit creates an error for a code unit that cannot be decoded
func InvalidUnit(phase Phase, unit uint32) *Error {
	return New(phase, KindInvalidUnit).
		Unit(unit).
		Build()
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, what string) *Error {
	return New(phase, KindNilPointer).
		Detail("%s is nil", what).
		Build()
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	e := New(phase, kind).Cause(cause).Build()
	e.Detail = detail
	return e
}
