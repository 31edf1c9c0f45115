package guestmem_test

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
	"testing"
	"unicode/utf16"
	"unsafe"

	werrors "github.com/wippyai/widestr/errors"
	"github.com/wippyai/widestr/guestmem"
)

// fakeMemory is an in-process widestr.Memory over a plain byte slice.
// Read returns a view into the slice, like wazero does.
type fakeMemory struct {
	data []byte
}

func (m *fakeMemory) Size() uint32 {
	return uint32(len(m.data))
}

func (m *fakeMemory) Read(off, n uint32) ([]byte, error) {
	if uint64(off)+uint64(n) > uint64(len(m.data)) {
		return nil, fmt.Errorf("read [%d, %d) out of range", off, off+n)
	}
	return m.data[off : off+n], nil
}

// memoryWithString lays out the UTF-16 encoding of text (plus terminator)
// at off inside a larger zeroed memory.
func memoryWithString(t *testing.T, off uint32, units []uint16) *fakeMemory {
	t.Helper()
	data := make([]byte, int(off)+2*len(units)+2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(data[int(off)+2*i:], u)
	}
	return &fakeMemory{data: data}
}

func TestUTF16View(t *testing.T) {
	units := append(utf16.Encode([]rune("guest 💖")), 0)
	mem := memoryWithString(t, 0x40, units)

	s, err := guestmem.UTF16View(mem, 0x40)
	if err != nil {
		t.Fatalf("UTF16View: %v", err)
	}
	if got, want := s.Len(), len(units)-1; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
	if got := s.StringLossy(); got != "guest 💖" {
		t.Errorf("StringLossy: got %q", got)
	}
}

func TestUTF16String(t *testing.T) {
	units := []uint16{'h', 'i', 0xDC00, '!', 0}
	mem := memoryWithString(t, 0, units)

	got, err := guestmem.UTF16String(mem, 0)
	if err != nil {
		t.Fatalf("UTF16String: %v", err)
	}
	if want := "hi�!"; got != want {
		t.Errorf("UTF16String: got %q, want %q", got, want)
	}
}

func TestUTF16ViewStopsAtFirstNul(t *testing.T) {
	// Two strings back to back; the view must cover only the first.
	units := append(utf16.Encode([]rune("one")), 0)
	units = append(units, utf16.Encode([]rune("two"))...)
	units = append(units, 0)
	mem := memoryWithString(t, 0, units)

	s, err := guestmem.UTF16View(mem, 0)
	if err != nil {
		t.Fatalf("UTF16View: %v", err)
	}
	if got := s.StringLossy(); got != "one" {
		t.Errorf("StringLossy: got %q, want \"one\"", got)
	}

	second, err := guestmem.UTF16View(mem, uint32(2*4))
	if err != nil {
		t.Fatalf("UTF16View at second string: %v", err)
	}
	if got := second.StringLossy(); got != "two" {
		t.Errorf("StringLossy: got %q, want \"two\"", got)
	}
}

func TestUTF32(t *testing.T) {
	text := []rune("wide 🦀")
	data := make([]byte, 4*len(text)+8)
	for i, r := range text {
		binary.LittleEndian.PutUint32(data[4*i:], uint32(r))
	}
	mem := &fakeMemory{data: data}

	s, err := guestmem.UTF32View(mem, 0)
	if err != nil {
		t.Fatalf("UTF32View: %v", err)
	}
	if got, want := s.Len(), len(text); got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
	got, err := guestmem.UTF32String(mem, 0)
	if err != nil {
		t.Fatalf("UTF32String: %v", err)
	}
	if got != "wide 🦀" {
		t.Errorf("UTF32String: got %q", got)
	}
}

func TestErrors(t *testing.T) {
	mem := memoryWithString(t, 0, []uint16{'a', 0})

	tests := []struct {
		name string
		off  uint32
		want *werrors.Error
	}{
		{
			name: "offset past end",
			off:  1 << 20,
			want: &werrors.Error{Phase: werrors.PhaseMemory, Kind: werrors.KindOutOfBounds},
		},
		{
			name: "odd offset",
			off:  1,
			want: &werrors.Error{Phase: werrors.PhaseMemory, Kind: werrors.KindMisaligned},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := guestmem.UTF16View(mem, tt.off)
			if !errors.Is(err, tt.want) {
				t.Errorf("UTF16View: got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNoTerminator(t *testing.T) {
	data := make([]byte, 8)
	for i := range data {
		data[i] = 0x41
	}
	mem := &fakeMemory{data: data}

	_, err := guestmem.UTF16View(mem, 0)
	want := &werrors.Error{Phase: werrors.PhaseMemory, Kind: werrors.KindNotNulTerminated}
	if !errors.Is(err, want) {
		t.Errorf("UTF16View: got %v, want %v", err, want)
	}
}

func TestNilMemory(t *testing.T) {
	_, err := guestmem.UTF16View(nil, 0)
	want := &werrors.Error{Phase: werrors.PhaseMemory, Kind: werrors.KindNilPointer}
	if !errors.Is(err, want) {
		t.Errorf("UTF16View(nil): got %v, want %v", err, want)
	}
}

// The aliasing and copying paths must return the same units for the same
// guest bytes. The unit values are byte-order asymmetric, so a swap on
// either path breaks the comparison.
func TestAliasAndCopyAgree(t *testing.T) {
	units := []uint16{0x0041, 0x4100, 0xD834, 0xDD1E, 0x00FF, 0}

	mk := func(misaligned bool) *fakeMemory {
		backing := make([]byte, 2*len(units)+1)
		data := backing[:2*len(units)]
		base := uintptr(unsafe.Pointer(unsafe.SliceData(backing)))
		if (base%2 == 0) == misaligned {
			data = backing[1 : 2*len(units)+1]
		}
		for i, u := range units {
			binary.LittleEndian.PutUint16(data[2*i:], u)
		}
		return &fakeMemory{data: data}
	}

	aligned, err := guestmem.UTF16View(mk(false), 0)
	if err != nil {
		t.Fatalf("UTF16View aligned: %v", err)
	}
	shifted, err := guestmem.UTF16View(mk(true), 0)
	if err != nil {
		t.Fatalf("UTF16View shifted: %v", err)
	}

	if got := aligned.Slice(); !slices.Equal(got, units[:len(units)-1]) {
		t.Errorf("aligned units: got %04X, want %04X", got, units[:len(units)-1])
	}
	if got := shifted.Slice(); !slices.Equal(got, units[:len(units)-1]) {
		t.Errorf("shifted units: got %04X, want %04X", got, units[:len(units)-1])
	}
	if a, s := aligned.StringLossy(), shifted.StringLossy(); a != s {
		t.Errorf("paths disagree: %q vs %q", a, s)
	}
}

// The copying fallback must behave exactly like the aliasing path. Force
// it by handing out a buffer whose base address is odd.
func TestUnalignedHostBuffer(t *testing.T) {
	units := append(utf16.Encode([]rune("shifted 💖")), 0)

	backing := make([]byte, 2*len(units)+1)
	data := backing[1:]
	if uintptr(unsafe.Pointer(unsafe.SliceData(data)))%2 != 1 {
		// Allocator handed us an odd base; the unshifted slice is the
		// misaligned one instead.
		data = backing[:len(backing)-1]
	}
	for i, u := range units {
		binary.LittleEndian.PutUint16(data[2*i:], u)
	}
	mem := &fakeMemory{data: data}

	s, err := guestmem.UTF16View(mem, 0)
	if err != nil {
		t.Fatalf("UTF16View: %v", err)
	}
	if got := s.StringLossy(); got != "shifted 💖" {
		t.Errorf("StringLossy: got %q", got)
	}
	if got, want := s.Len(), len(units)-1; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
}
