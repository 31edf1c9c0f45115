// Package wcstr provides a borrowed view type for C-style, NUL-terminated
// wide strings.
//
// A [WCStr] does not own or copy the memory it names: it is a single
// pointer into a buffer owned by something else, usually a foreign API. It
// computes its length on demand by scanning for the terminator, exposes
// bounded slice views, and decodes its contents through the widechar
// package.
package wcstr

import (
	"io"
	"iter"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/wippyai/widestr/widechar"
)

// WCStr is a borrowed view of a NUL-terminated wide string: a contiguous
// run of code units ending in exactly one zero unit, with no zero unit
// before it.
//
// Any live WCStr must point at memory satisfying that contract, and the
// memory must stay valid and unmodified for as long as the view or
// anything derived from it is used. The checked constructor establishes
// the contract by scanning; the unchecked constructors trust the caller.
//
// The view is copyable; copies alias the same buffer. All operations are
// read-only, so any number of views may read the same buffer from any
// number of goroutines without synchronization.
type WCStr[T widechar.Unit] struct {
	ptr *T
}

// The view must stay pointer-sized for every unit width, so that a
// trusted raw pointer can be reinterpreted as a view with no
// transformation. Adding a field would break this; the assertions below
// fail to compile if the size ever diverges.
const (
	_ = unsafe.Sizeof(WCStr[uint16]{}) - unsafe.Sizeof((*uint16)(nil))
	_ = unsafe.Sizeof((*uint16)(nil)) - unsafe.Sizeof(WCStr[uint16]{})
	_ = unsafe.Sizeof(WCStr[int16]{}) - unsafe.Sizeof((*int16)(nil))
	_ = unsafe.Sizeof((*int16)(nil)) - unsafe.Sizeof(WCStr[int16]{})
	_ = unsafe.Sizeof(WCStr[uint32]{}) - unsafe.Sizeof((*uint32)(nil))
	_ = unsafe.Sizeof((*uint32)(nil)) - unsafe.Sizeof(WCStr[uint32]{})
	_ = unsafe.Sizeof(WCStr[int32]{}) - unsafe.Sizeof((*int32)(nil))
	_ = unsafe.Sizeof((*int32)(nil)) - unsafe.Sizeof(WCStr[int32]{})
)

// FromPtr reinterprets a raw pointer to a NUL-terminated wide string as a
// view. No scanning is performed.
//
// The caller must guarantee that ptr is non-nil, that a zero code unit is
// reachable from it without leaving the allocation, that no zero unit
// precedes the terminator, and that the memory is neither modified nor
// freed while the view is in use. Violating any of these is not a
// reported error; it is undefined behavior.
func FromPtr[T widechar.Unit](ptr *T) WCStr[T] {
	return WCStr[T]{ptr: ptr}
}

// FromSliceWithNulUnchecked wraps a slice already known to hold exactly
// one zero code unit, at its final index. No checks are performed; the
// caller's guarantee stands in for the scan done by [FromSliceWithNul].
func FromSliceWithNulUnchecked[T widechar.Unit](s []T) WCStr[T] {
	return WCStr[T]{ptr: unsafe.SliceData(s)}
}

// FromSliceWithNul scans s for a zero code unit and wraps the slice.
//
// It fails with a *[FromSliceWithNulError] if s holds no zero unit, or
// holds one anywhere but the final index.
func FromSliceWithNul[T widechar.Unit](s []T) (WCStr[T], error) {
	nul := widechar.Wmemchr(T(0), s)
	switch {
	case nul < 0:
		return WCStr[T]{}, &FromSliceWithNulError{kind: notNulTerminated}
	case nul+1 != len(s):
		return WCStr[T]{}, &FromSliceWithNulError{kind: interiorNul, pos: nul}
	}
	return FromSliceWithNulUnchecked(s), nil
}

// Len returns the number of code units before the NUL-terminator. The
// view stores no length; every call rescans the buffer.
func (s WCStr[T]) Len() int {
	return widechar.Wcslen(s.ptr)
}

// Ptr returns the view's starting address, suitable for passing to
// foreign code that expects a NUL-terminated wide string. The pointer is
// read-only and valid only as long as the underlying memory.
func (s WCStr[T]) Ptr() *T {
	return s.ptr
}

// Slice returns the code units of the string, excluding the terminator.
// Costs a scan for the length.
func (s WCStr[T]) Slice() []T {
	return unsafe.Slice(s.ptr, s.Len())
}

// SliceWithNul returns the code units of the string including the
// terminator. Costs a scan for the length.
func (s WCStr[T]) SliceWithNul() []T {
	return unsafe.Slice(s.ptr, s.Len()+1)
}

// Chars returns a fresh decode cursor positioned at the start of the
// view, independent of any previous cursor or length computation.
func (s WCStr[T]) Chars() *widechar.Chars[T] {
	return widechar.NewChars(s.ptr)
}

// Runes returns an iterator over the decode results of the string. Each
// pass over the sequence starts a fresh cursor.
func (s WCStr[T]) Runes() iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		c := s.Chars()
		for {
			r, err := c.Next()
			if err == io.EOF {
				return
			}
			if !yield(r, err) {
				return
			}
		}
	}
}

// StringLossy decodes the whole string, substituting U+FFFD for every
// code unit that fails to decode.
func (s WCStr[T]) StringLossy() string {
	var b strings.Builder
	c := s.Chars()
	for {
		r, err := c.Next()
		if err == io.EOF {
			return b.String()
		}
		if err != nil {
			r = utf8.RuneError
		}
		b.WriteRune(r)
	}
}

// String implements fmt.Stringer via [WCStr.StringLossy].
func (s WCStr[T]) String() string {
	return s.StringLossy()
}
