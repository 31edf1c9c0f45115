// Package guestmem reads NUL-terminated wide strings out of foreign
// linear memory, in particular WebAssembly guest memory, where the
// canonical ABI's UTF-16 string encoding and Windows-targeting guests
// leave wide character data.
//
// The functions locate the terminator inside the bounds of the memory, so
// unlike raw pointer construction they never scan past the end of the
// buffer. On little-endian hosts, when the host buffer is suitably
// aligned, the returned view aliases guest memory directly; otherwise
// the little-endian guest units are copied into host order first.
// Either way the view's observable behavior is the same, but an aliasing
// view is invalidated if the guest grows or writes its memory.
//
//	mem := guestmem.Wazero(mod.Memory())
//	s, err := guestmem.UTF16View(mem, ptr)
//	if err != nil {
//	    return err
//	}
//	name := s.StringLossy()
package guestmem
