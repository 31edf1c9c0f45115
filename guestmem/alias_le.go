//go:build amd64 || arm64

package guestmem

// Guest memory is little-endian per the WebAssembly spec, so its bytes
// may be reinterpreted as host-order code units only on little-endian
// hosts.
const hostLittleEndian = true
