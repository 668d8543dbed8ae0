package lzma2

import (
	"bufio"
	"fmt"
	"io"

	"github.com/coredecomp/xzcore/lzma"
)

// Reader decodes an LZMA2 chunk stream into a plain byte stream. It
// implements io.Reader so it composes with the simple-filter chain and
// the rest of the XZ pipeline the way any other decompressing reader
// does.
type Reader struct {
	src *bufio.Reader
	dec *lzma.Decoder

	hasProps bool
	sawChunk bool
	pending  []byte
	finished bool
}

// NewReader constructs an LZMA2 reader. dictSize is the dictionary size
// declared by the block's LZMA2 filter properties byte (see DictSize).
func NewReader(r io.Reader, dictSize uint32) (*Reader, error) {
	dec, err := lzma.NewDecoder(lzma.Params{}, dictSize)
	if err != nil {
		return nil, err
	}
	return &Reader{
		src: bufio.NewReader(r),
		dec: dec,
	}, nil
}

func (z *Reader) Read(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		if len(z.pending) == 0 {
			if z.finished {
				if total > 0 {
					return total, nil
				}
				return 0, io.EOF
			}
			out, err := z.readChunk()
			if err != nil {
				if err == io.EOF {
					z.finished = true
					if total > 0 {
						return total, nil
					}
					return 0, io.EOF
				}
				return total, err
			}
			z.pending = out
			continue
		}
		n := copy(p[total:], z.pending)
		z.pending = z.pending[n:]
		total += n
	}
	return total, nil
}

// readChunk reads and decodes exactly one chunk, returning its
// uncompressed bytes. It returns io.EOF only after the explicit
// end-of-stream control byte (0x00).
func (z *Reader) readChunk() ([]byte, error) {
	c, err := z.src.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: reading control byte", ErrTruncatedChunk)
	}

	// The very first chunk of a stream must establish both the
	// dictionary and the LZMA properties: an uncompressed chunk with a
	// dict reset (c == 0x01), or an LZMA chunk carrying new properties
	// and a dict reset (c >= 0xE0, which always implies new props). A
	// decoder with no prior chunk has nothing else to reset state from.
	// This only constrains chunk types that would otherwise be valid;
	// an unrecognized control byte still falls through to ErrBadControl.
	if !z.sawChunk {
		if c == 0x02 || (c >= 0x80 && c < 0xE0) {
			return nil, ErrMissingProperties
		}
		z.sawChunk = true
	}

	switch {
	case c == 0x00:
		z.finished = true
		return nil, io.EOF

	case c == 0x01 || c == 0x02:
		size, err := z.readUint16Plus1()
		if err != nil {
			return nil, err
		}
		buf := make([]byte, size)
		if _, err := io.ReadFull(z.src, buf); err != nil {
			return nil, fmt.Errorf("%w: reading uncompressed chunk", ErrTruncatedChunk)
		}
		if c == 0x01 {
			z.dec.ResetDict()
		}
		return z.dec.AppendUncompressed(buf), nil

	case c >= 0x80:
		return z.readLZMAChunk(c)

	default:
		return nil, ErrBadControl
	}
}

func (z *Reader) readLZMAChunk(c byte) ([]byte, error) {
	hdr := make([]byte, 4)
	if _, err := io.ReadFull(z.src, hdr); err != nil {
		return nil, fmt.Errorf("%w: reading lzma chunk header", ErrTruncatedChunk)
	}
	unpackSize := (uint32(c&0x1F)<<16 | uint32(hdr[0])<<8 | uint32(hdr[1])) + 1
	compSize := (uint32(hdr[2])<<8 | uint32(hdr[3])) + 1

	resetState := c >= 0xA0
	newProps := c >= 0xC0
	resetDict := c >= 0xE0

	if newProps {
		pb, err := z.src.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: reading properties byte", ErrTruncatedChunk)
		}
		params, err := lzma.ParamsFromByte(pb)
		if err != nil {
			return nil, err
		}
		if err := z.dec.ResetProps(params); err != nil {
			return nil, err
		}
		z.hasProps = true
	} else if !z.hasProps {
		return nil, ErrMissingProperties
	}

	if resetDict {
		z.dec.ResetDict()
	}
	if resetState {
		z.dec.ResetState()
	}

	buf := make([]byte, compSize)
	if _, err := io.ReadFull(z.src, buf); err != nil {
		return nil, fmt.Errorf("%w: reading lzma chunk payload", ErrTruncatedChunk)
	}

	out, err := z.dec.DecodeChunk(buf, int(unpackSize), true)
	if err != nil {
		return nil, err
	}
	if uint32(len(out)) != unpackSize {
		return nil, ErrChunkSizeMismatch
	}
	return out, nil
}

func (z *Reader) readUint16Plus1() (int, error) {
	var b [2]byte
	if _, err := io.ReadFull(z.src, b[:]); err != nil {
		return 0, fmt.Errorf("%w: reading size field", ErrTruncatedChunk)
	}
	return int(b[0])<<8 | int(b[1]) + 1, nil
}
