package lzma

import "errors"

// Sentinel errors returned by the range decoder and LZMA state machine.
var (
	// ErrTruncatedInput indicates a read past the end of the input buffer.
	ErrTruncatedInput = errors.New("lzma: truncated input")

	// ErrInvalidProperties indicates lc, lp, or pb are out of their
	// individually allowed ranges, or lc+lp exceeds 8.
	ErrInvalidProperties = errors.New("lzma: invalid properties")

	// ErrInvalidDistance indicates a decoded match distance is not
	// smaller than the current logical position or the dictionary size.
	ErrInvalidDistance = errors.New("lzma: invalid match distance")

	// ErrSizeMismatch indicates the decoder produced a different number
	// of bytes than the caller declared for this chunk.
	ErrSizeMismatch = errors.New("lzma: decoded size mismatch")

	// ErrWrongTermination indicates an explicit end-of-stream marker was
	// decoded before the declared uncompressed size was reached.
	ErrWrongTermination = errors.New("lzma: end-of-stream marker at wrong place")
)
