package widechar

// Unit is the set of code unit types a wide string can be stored as: the
// 16-bit and 32-bit fixed-width storage elements, each in an unsigned and
// a signed form. Signedness is cosmetic; decoding and scanning treat units
// as raw bit patterns.
type Unit interface {
	~uint16 | ~int16 | ~uint32 | ~int32
}

// wide16 reports whether T is a 16-bit unit type. The conversion truncates
// to zero for the 16-bit types and keeps the bit for the 32-bit ones.
func wide16[T Unit]() bool {
	n := 1 << 16
	return T(n) == 0
}

// unitSize returns the size of T's code units in bytes.
func unitSize[T Unit]() int {
	if wide16[T]() {
		return 2
	}
	return 4
}

// raw widens u to its 32-bit bit pattern. 16-bit units are masked first so
// that negative int16 values do not sign-extend into the upper half.
func raw[T Unit](u T) uint32 {
	if wide16[T]() {
		return uint32(uint16(u))
	}
	return uint32(u)
}
