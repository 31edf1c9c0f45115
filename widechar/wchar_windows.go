//go:build windows

package widechar

// WChar is the platform's native wide character type, matching C's
// wchar_t. Windows wide strings are UTF-16.
type WChar = uint16
