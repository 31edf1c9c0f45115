package widechar

import (
	"fmt"
	"io"
	"iter"
	"unicode"
	"unsafe"
)

// UTF-16 surrogate ranges: [surr1, surr2) leading, [surr2, surr3)
// trailing. surrSelf is the value added back when combining a pair.
const (
	surr1    = 0xD800
	surr2    = 0xDC00
	surr3    = 0xE000
	surrSelf = 0x10000
)

// DecodeError reports a code unit that does not begin a valid scalar value
// encoding: an unpaired or out-of-order surrogate for 16-bit units, or an
// out-of-range value for 32-bit units.
type DecodeError[T Unit] struct {
	code T
}

// Code returns the code unit that caused the error.
func (e *DecodeError[T]) Code() T {
	return e.code
}

func (e *DecodeError[T]) Error() string {
	return fmt.Sprintf("widechar: cannot decode unit %#04x", raw(e.code))
}

// Chars is a forward-only decode cursor over a NUL-terminated buffer of
// code units. It holds only the current position; the remaining length is
// implied by the terminator. The cursor never rewinds.
type Chars[T Unit] struct {
	ptr *T
}

// NewChars returns a cursor positioned at ptr.
//
// The caller must guarantee that a zero code unit is reachable from ptr
// without leaving the allocation, and that the buffer is neither modified
// nor freed while the cursor is in use.
func NewChars[T Unit](ptr *T) *Chars[T] {
	return &Chars[T]{ptr: ptr}
}

// advance moves the cursor forward by one unit.
func (c *Chars[T]) advance() {
	c.ptr = (*T)(unsafe.Add(unsafe.Pointer(c.ptr), unitSize[T]()))
}

// Next decodes the next scalar value. It returns io.EOF once the cursor
// sits on the terminating zero unit, which is never consumed.
//
// A malformed sequence yields a *[DecodeError] carrying the offending
// unit. The cursor advances by exactly one unit on error, so the next call
// resumes at the following unit; one bad unit never poisons later steps.
func (c *Chars[T]) Next() (rune, error) {
	u := raw(*c.ptr)
	if u == 0 {
		return 0, io.EOF
	}
	lead := *c.ptr
	c.advance()

	if !wide16[T]() {
		if (surr1 <= u && u < surr3) || u > unicode.MaxRune {
			return 0, &DecodeError[T]{code: lead}
		}
		return rune(u), nil
	}

	if u < surr1 || surr3 <= u {
		return rune(u), nil
	}
	if u >= surr2 {
		// Trailing surrogate where a leading one is expected.
		return 0, &DecodeError[T]{code: lead}
	}
	u2 := raw(*c.ptr)
	if u2 < surr2 || surr3 <= u2 {
		// Unpaired leading surrogate. The lookahead unit, which may be
		// the terminator, is re-examined on the next call.
		return 0, &DecodeError[T]{code: lead}
	}
	c.advance()
	return rune((u-surr1)<<10|(u2-surr2)) + surrSelf, nil
}

// SizeHint bounds the number of decode steps remaining. For 16-bit units
// the lower bound assumes every remaining unit pairs into a surrogate
// pair; for 32-bit units each unit is exactly one step. The hint rescans
// for the terminator and is meant for iteration planning, not
// correctness.
func (c *Chars[T]) SizeHint() (lo, hi int) {
	rem := Wcslen(c.ptr)
	if wide16[T]() {
		return rem / 2, rem
	}
	return rem, rem
}

// All returns an iterator over the remaining decode results. The iterator
// pulls from the cursor itself, so breaking out and resuming later
// continues where decoding stopped.
func (c *Chars[T]) All() iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
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

// Decode returns an iterator over the decode results of a bounded slice of
// code units. Unlike [Chars] it needs no NUL terminator: iteration stops
// at the end of the slice, zero units decode as U+0000, and a leading
// surrogate truncated by the end of the slice is a decode error. Per-step
// error semantics match [Chars.Next].
func Decode[T Unit](units []T) iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		for i := 0; i < len(units); {
			u := raw(units[i])
			lead := units[i]
			i++

			if !wide16[T]() {
				if (surr1 <= u && u < surr3) || u > unicode.MaxRune {
					if !yield(0, &DecodeError[T]{code: lead}) {
						return
					}
					continue
				}
				if !yield(rune(u), nil) {
					return
				}
				continue
			}

			if u < surr1 || surr3 <= u {
				if !yield(rune(u), nil) {
					return
				}
				continue
			}
			if u >= surr2 {
				if !yield(0, &DecodeError[T]{code: lead}) {
					return
				}
				continue
			}
			if i == len(units) {
				// Leading surrogate cut off by the end of the slice.
				if !yield(0, &DecodeError[T]{code: lead}) {
					return
				}
				continue
			}
			u2 := raw(units[i])
			if u2 < surr2 || surr3 <= u2 {
				if !yield(0, &DecodeError[T]{code: lead}) {
					return
				}
				continue
			}
			i++
			if !yield(rune((u-surr1)<<10|(u2-surr2))+surrSelf, nil) {
				return
			}
		}
	}
}
