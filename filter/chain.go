package filter

import "io"

// Wrap nests a sequence of filter readers around src, applying each
// Transform in the order given: the first entry sees src's bytes
// directly, the second sees the first's output, and so on. Callers
// composing a block's filter chain pass transforms in the decode
// application order: LZMA2 output, then the filters in reverse of
// their declared source order.
func Wrap(src io.Reader, transforms ...Transform) io.Reader {
	r := src
	for _, t := range transforms {
		r = NewReader(r, t)
	}
	return r
}
