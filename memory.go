package widestr

// Memory represents a foreign linear memory that wide strings can be read
// from, such as a WebAssembly guest memory. Offsets are byte offsets from
// the start of the memory.
type Memory interface {
	// Read returns length bytes starting at offset. Implementations may
	// return a view aliasing the underlying memory rather than a copy;
	// such a view is invalidated if the memory grows or is mutated.
	Read(offset, length uint32) ([]byte, error)

	// Size returns the current size of the memory in bytes.
	Size() uint32
}
