package guestmem

import (
	"encoding/binary"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/widestr"
	"github.com/wippyai/widestr/errors"
	"github.com/wippyai/widestr/wcstr"
	"github.com/wippyai/widestr/widechar"
)

// UTF16View wraps the NUL-terminated UTF-16 string starting at byte
// offset off in mem. The offset must be 2-byte aligned. The view is valid
// until the guest grows or mutates its memory.
func UTF16View(mem widestr.Memory, off uint32) (wcstr.WCStr[uint16], error) {
	units, err := units16(mem, off)
	if err != nil {
		return wcstr.WCStr[uint16]{}, err
	}
	nul := widechar.Wmemchr(uint16(0), units)
	if nul < 0 {
		return wcstr.WCStr[uint16]{}, errors.NotNulTerminated(errors.PhaseMemory, off)
	}
	return wcstr.FromSliceWithNulUnchecked(units[:nul+1]), nil
}

// UTF16String decodes the NUL-terminated UTF-16 string at off into an
// owned Go string, substituting U+FFFD for malformed units.
func UTF16String(mem widestr.Memory, off uint32) (string, error) {
	s, err := UTF16View(mem, off)
	if err != nil {
		return "", err
	}
	return s.StringLossy(), nil
}

// UTF32View wraps the NUL-terminated UTF-32 string starting at byte
// offset off in mem. The offset must be 4-byte aligned.
func UTF32View(mem widestr.Memory, off uint32) (wcstr.WCStr[uint32], error) {
	units, err := units32(mem, off)
	if err != nil {
		return wcstr.WCStr[uint32]{}, err
	}
	nul := widechar.Wmemchr(uint32(0), units)
	if nul < 0 {
		return wcstr.WCStr[uint32]{}, errors.NotNulTerminated(errors.PhaseMemory, off)
	}
	return wcstr.FromSliceWithNulUnchecked(units[:nul+1]), nil
}

// UTF32String decodes the NUL-terminated UTF-32 string at off into an
// owned Go string, substituting U+FFFD for malformed units.
func UTF32String(mem widestr.Memory, off uint32) (string, error) {
	s, err := UTF32View(mem, off)
	if err != nil {
		return "", err
	}
	return s.StringLossy(), nil
}

// units16 exposes mem from off to its end as 16-bit code units.
func units16(mem widestr.Memory, off uint32) ([]uint16, error) {
	b, err := tail(mem, off, 2)
	if err != nil {
		return nil, err
	}
	n := len(b) / 2
	if n == 0 {
		return nil, nil
	}
	if hostLittleEndian {
		data := unsafe.SliceData(b)
		if uintptr(unsafe.Pointer(data))%2 == 0 {
			return unsafe.Slice((*uint16)(unsafe.Pointer(data)), n), nil
		}
		Logger().Debug("guest buffer is not unit aligned, copying",
			zap.Uint32("offset", off),
			zap.Int("units", n))
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return units, nil
}

// units32 exposes mem from off to its end as 32-bit code units.
func units32(mem widestr.Memory, off uint32) ([]uint32, error) {
	b, err := tail(mem, off, 4)
	if err != nil {
		return nil, err
	}
	n := len(b) / 4
	if n == 0 {
		return nil, nil
	}
	if hostLittleEndian {
		data := unsafe.SliceData(b)
		if uintptr(unsafe.Pointer(data))%4 == 0 {
			return unsafe.Slice((*uint32)(unsafe.Pointer(data)), n), nil
		}
		Logger().Debug("guest buffer is not unit aligned, copying",
			zap.Uint32("offset", off),
			zap.Int("units", n))
	}
	units := make([]uint32, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return units, nil
}

// tail reads everything from off to the end of mem, truncated to a whole
// number of units.
func tail(mem widestr.Memory, off, align uint32) ([]byte, error) {
	if mem == nil {
		return nil, errors.NilPointer(errors.PhaseMemory, "memory")
	}
	size := mem.Size()
	if off >= size {
		return nil, errors.OutOfBounds(errors.PhaseMemory, off, size)
	}
	if off%align != 0 {
		return nil, errors.Misaligned(errors.PhaseMemory, off, align)
	}
	length := (size - off) &^ (align - 1)
	if length == 0 {
		return nil, errors.NotNulTerminated(errors.PhaseMemory, off)
	}
	b, err := mem.Read(off, length)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseMemory, errors.KindOutOfBounds, err, "reading guest memory")
	}
	return b, nil
}
