//go:build amd64 || arm64

package widechar

import (
	"math/bits"
	"unsafe"
)

// Word-at-a-time scanning in the manner of libc wcslen: load aligned
// 64-bit words and detect a zero (or matching) lane arithmetically. Both
// supported targets are little-endian, so the first matching lane is found
// with a trailing-zero count.

const wordBytes = 8

const (
	ones16 = 0x0001_0001_0001_0001
	high16 = 0x8000_8000_8000_8000
	ones32 = 0x0000_0001_0000_0001
	high32 = 0x8000_0000_8000_0000
)

// matchLanes returns a mask with the high bit set in every lane of w that
// is zero. Borrow propagation can set spurious bits in lanes above the
// first zero lane; the lowest set bit is always exact, which is all the
// forward scans need.
func matchLanes(w uint64, size int) uint64 {
	if size == 2 {
		return (w - ones16) &^ w & high16
	}
	return (w - ones32) &^ w & high32
}

// wcslenNative scans a word at a time for a zero lane. The first load is
// aligned down to a word boundary and the lanes before p are forced
// non-zero; an aligned load never crosses a page, so the scan stays within
// memory the contract already guarantees readable.
func wcslenNative[T Unit](p *T) int {
	size := unitSize[T]()
	off := int(uintptr(unsafe.Pointer(p)) & (wordBytes - 1))
	wp := unsafe.Add(unsafe.Pointer(p), -off)
	w := *(*uint64)(wp)
	if off != 0 {
		w |= uint64(1)<<(8*uint(off)) - 1
	}
	scanned := -off // bytes from p to the start of the current word
	for {
		if m := matchLanes(w, size); m != 0 {
			zero := bits.TrailingZeros64(m) / (8 * size) * size
			return (scanned + zero) / size
		}
		scanned += wordBytes
		wp = unsafe.Add(wp, wordBytes)
		w = *(*uint64)(wp)
	}
}

// wmemchrNative compares whole words against a broadcast needle. The
// unaligned head and the partial tail fall back to the scalar scan; short
// inputs skip the word loop entirely.
func wmemchrNative[T Unit](needle T, hay []T) int {
	size := unitSize[T]()
	lanes := wordBytes / size
	if len(hay)*size < 2*wordBytes {
		return wmemchrScalar(needle, hay)
	}

	head := 0
	if rem := int(uintptr(unsafe.Pointer(&hay[0])) & (wordBytes - 1)); rem != 0 {
		head = (wordBytes - rem) / size
		if i := wmemchrScalar(needle, hay[:head]); i >= 0 {
			return i
		}
	}

	pat := broadcast(raw(needle), size)
	i := head
	for ; i+lanes <= len(hay); i += lanes {
		w := *(*uint64)(unsafe.Pointer(&hay[i]))
		if m := matchLanes(w^pat, size); m != 0 {
			return i + bits.TrailingZeros64(m)/(8*size)
		}
	}
	if j := wmemchrScalar(needle, hay[i:]); j >= 0 {
		return i + j
	}
	return -1
}

// broadcast replicates a lane value across a 64-bit word.
func broadcast(u uint32, size int) uint64 {
	if size == 2 {
		return uint64(u) * ones16
	}
	return uint64(u) * ones32
}
