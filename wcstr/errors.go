package wcstr

import "strconv"

type nulErrorKind int

const (
	interiorNul nulErrorKind = iota
	notNulTerminated
)

// FromSliceWithNulError reports a slice whose NUL-terminator is missing
// or misplaced. A slice accepted by [FromSliceWithNul] must hold exactly
// one zero code unit, at its final index.
type FromSliceWithNulError struct {
	kind nulErrorKind
	pos  int
}

// InteriorNul reports whether the slice held a zero unit before its final
// index, and if so at which position. When it returns false the slice
// held no zero unit at all.
func (e *FromSliceWithNulError) InteriorNul() (pos int, ok bool) {
	if e.kind != interiorNul {
		return 0, false
	}
	return e.pos, true
}

func (e *FromSliceWithNulError) Error() string {
	if e.kind == interiorNul {
		return "wcstr: interior NUL unit at index " + strconv.Itoa(e.pos)
	}
	return "wcstr: slice is not NUL-terminated"
}
