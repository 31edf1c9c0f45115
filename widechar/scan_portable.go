//go:build !amd64 && !arm64

package widechar

func wcslenNative[T Unit](p *T) int {
	return wcslenScalar(p)
}

func wmemchrNative[T Unit](needle T, hay []T) int {
	return wmemchrScalar(needle, hay)
}
