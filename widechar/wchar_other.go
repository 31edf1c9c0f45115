//go:build !windows

package widechar

// WChar is the platform's native wide character type, matching C's
// wchar_t. On non-Windows platforms wchar_t is a signed 32-bit type and
// wide strings are UTF-32.
type WChar = int32
