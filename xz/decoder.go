// Package xz decodes the XZ container format: stream header/footer,
// block index, per-block filter chains, and LZMA2 payloads.
package xz

// DecodeAll decodes a complete buffer that may hold one or more
// concatenated XZ streams, separated and followed by any multiple of
// four zero padding bytes, and returns the concatenated decoded output.
func DecodeAll(data []byte) ([]byte, error) {
	var out []byte
	pos := 0
	for pos < len(data) {
		for pos+4 <= len(data) && isZero4(data[pos:pos+4]) {
			pos += 4
		}
		if pos >= len(data) {
			break
		}
		streamOut, n, err := decodeStream(data[pos:])
		if err != nil {
			return nil, err
		}
		out = append(out, streamOut...)
		pos += n
	}
	return out, nil
}

func isZero4(b []byte) bool {
	return b[0] == 0 && b[1] == 0 && b[2] == 0 && b[3] == 0
}

// StreamingDecoder is a push-style decoder: feed input with Push, read
// available decoded output with Pull, and call Finish once all input
// has been supplied. This implementation buffers the complete input
// (the index needed to lay out blocks lives at the end of the stream)
// and only actually decodes once Finish is called.
type StreamingDecoder struct {
	buf      []byte
	out      []byte
	outPos   int
	finished bool
	err      error
}

// NewStreamingDecoder constructs an empty streaming decoder.
func NewStreamingDecoder() *StreamingDecoder {
	return &StreamingDecoder{}
}

// Push appends a chunk of input. It never itself produces output or
// errors; those surface from Pull/Finish once enough input is present.
func (s *StreamingDecoder) Push(chunk []byte) {
	if s.finished {
		return
	}
	s.buf = append(s.buf, chunk...)
}

// Finish signals that no more input will arrive and runs the decode.
// Call Pull afterward to drain output, or check the returned error.
func (s *StreamingDecoder) Finish() error {
	if s.finished {
		return s.err
	}
	s.finished = true
	s.out, s.err = DecodeAll(s.buf)
	s.buf = nil
	return s.err
}

// Pull returns the next chunk of decoded output (up to maxLen bytes,
// or all remaining output if maxLen <= 0), and whether any more output
// remains. Only meaningful after Finish.
func (s *StreamingDecoder) Pull(maxLen int) ([]byte, bool) {
	remaining := s.out[s.outPos:]
	if maxLen <= 0 || maxLen > len(remaining) {
		maxLen = len(remaining)
	}
	chunk := remaining[:maxLen]
	s.outPos += maxLen
	return chunk, s.outPos < len(s.out)
}
