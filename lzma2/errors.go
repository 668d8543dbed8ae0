package lzma2

import "errors"

var (
	// ErrTruncatedChunk is returned when the source ends in the middle
	// of a chunk header or chunk payload.
	ErrTruncatedChunk = errors.New("lzma2: truncated chunk")

	// ErrBadControl is returned for a reserved control byte (0x03-0x7F).
	ErrBadControl = errors.New("lzma2: reserved control byte")

	// ErrMissingProperties is returned when an LZMA chunk arrives before
	// any chunk has carried lc/lp/pb properties.
	ErrMissingProperties = errors.New("lzma2: lzma chunk before properties were set")

	// ErrChunkSizeMismatch is returned when a chunk's decoded size
	// doesn't match the size declared in its header.
	ErrChunkSizeMismatch = errors.New("lzma2: chunk size mismatch")

	// ErrInvalidDictSize is returned by DictSize for a properties byte
	// greater than 40.
	ErrInvalidDictSize = errors.New("lzma2: invalid dictionary size byte")
)
