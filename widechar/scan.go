package widechar

import "unsafe"

// Wcslen returns the number of code units before the terminating zero
// unit, the wide equivalent of C's wcslen. The length is a unit count, not
// a scalar value count: a surrogate pair contributes two.
//
// The caller must guarantee that a zero unit is reachable from p without
// leaving the allocation. On platforms with a word-at-a-time fast path the
// scan may read a few bytes beyond the terminator, but never beyond the
// aligned word containing it.
func Wcslen[T Unit](p *T) int {
	return wcslenNative(p)
}

// Wmemchr returns the index of the first unit in hay equal to needle, or
// -1 if there is none, the wide equivalent of C's wmemchr. hay is bounded;
// no terminator is required and the scan never reads outside it.
func Wmemchr[T Unit](needle T, hay []T) int {
	return wmemchrNative(needle, hay)
}

// wcslenScalar is the portable unit-by-unit scan. The specialized path
// must agree with it on every input.
func wcslenScalar[T Unit](p *T) int {
	n := 0
	for *p != 0 {
		p = (*T)(unsafe.Add(unsafe.Pointer(p), unitSize[T]()))
		n++
	}
	return n
}

// wmemchrScalar is the portable linear scan counterpart of wmemchr.
func wmemchrScalar[T Unit](needle T, hay []T) int {
	for i, u := range hay {
		if u == needle {
			return i
		}
	}
	return -1
}
