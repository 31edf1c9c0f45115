// Package widechar provides decoding and scanning primitives for wide
// character data: buffers of 16-bit or 32-bit code units as used by
// platform APIs that store text as UTF-16 or UTF-32.
//
// The package is generic over the code unit type. Four instantiations are
// supported, constrained by [Unit]: uint16, int16, uint32 and int32. The
// signed forms exist only to match foreign ABIs whose wide character type
// is signed; all decoding operates on the unit's bit pattern.
//
// # Decoding
//
// [Chars] is a forward-only cursor over a NUL-terminated buffer. Each call
// to [Chars.Next] decodes one Unicode scalar value or reports a
// *[DecodeError] carrying the offending code unit. Decode errors are per
// step and recoverable: the cursor advances past the bad unit and the next
// call resumes decoding.
//
//	c := widechar.NewChars(ptr)
//	for {
//	    r, err := c.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // malformed unit, err.(*widechar.DecodeError[uint16]).Code()
//	        continue
//	    }
//	    // use r
//	}
//
// [Decode] offers the same per-step semantics over a bounded slice with no
// NUL terminator.
//
// # Scanning
//
// [Wcslen] counts code units up to a terminating zero; [Wmemchr] finds a
// unit in a bounded slice. On 64-bit little-endian targets both use a
// word-at-a-time scan; elsewhere a portable unit-by-unit scan is used. The
// two paths produce identical results on every input.
package widechar
