package guestmem

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/widestr"
	"github.com/wippyai/widestr/errors"
)

// Wazero adapts a wazero linear memory to the widestr.Memory interface.
// wazero's Read returns a view aliasing guest memory, so views built on
// it are zero-copy whenever alignment allows.
func Wazero(mem api.Memory) widestr.Memory {
	return wazeroMemory{mem: mem}
}

type wazeroMemory struct {
	mem api.Memory
}

func (m wazeroMemory) Read(offset, length uint32) ([]byte, error) {
	b, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseMemory, offset, m.mem.Size())
	}
	return b, nil
}

func (m wazeroMemory) Size() uint32 {
	return m.mem.Size()
}
