//go:build !amd64 && !arm64

package guestmem

const hostLittleEndian = false
