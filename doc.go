// Package widestr provides borrowed views of C-style, NUL-terminated wide
// character strings and a lazy decoder from 16-bit or 32-bit code units to
// Unicode scalar values.
//
// Platform APIs store text as sequences of fixed-width code units: UTF-16
// on Windows and in the WebAssembly canonical ABI, UTF-32 where C's
// wchar_t is 32 bits. This library wraps such buffers without copying or
// owning them.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	widestr/             Root package with the Memory interface for foreign buffers
//	├── widechar/        Code unit decoding and scanning primitives (wcslen, wmemchr)
//	├── wcstr/           Borrowed NUL-terminated wide string view
//	├── guestmem/        Wide strings in WebAssembly guest linear memory (wazero)
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Wrap a NUL-terminated buffer and decode it:
//
//	units := []uint16{0xD83D, 0xDC96, 0}
//
//	s, err := wcstr.FromSliceWithNul(units)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(s.Len())          // 2
//	fmt.Println(s.StringLossy())  // "💖"
//
//	for r, err := range s.Runes() {
//	    // err carries the offending unit for malformed sequences;
//	    // decoding continues at the next unit.
//	}
//
// # Error Model
//
// Decode errors are per step and recoverable: a malformed surrogate yields
// an error for that step and the next step resumes at the following unit.
// Checked construction returns typed errors; unchecked construction trades
// the scan for caller-upheld preconditions.
//
// # Thread Safety
//
// Every operation is read-only. Views and cursors may read a shared buffer
// from any number of goroutines without synchronization, provided nothing
// mutates the buffer while they are live.
package widestr
