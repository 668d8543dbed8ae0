package xz

import (
	"bytes"
	"io"

	"github.com/coredecomp/xzcore/filter"
	"github.com/coredecomp/xzcore/lzma2"
)

// decodeBlock decodes one block's compressed data given its already
// parsed header, returning the block's uncompressed bytes.
func decodeBlock(h blockHeader, compressed []byte) ([]byte, error) {
	lzma2Filter := h.filters[len(h.filters)-1]
	dictSize, err := lzma2.DictSize(propsByte(lzma2Filter.props))
	if err != nil {
		return nil, err
	}

	lz2, err := lzma2.NewReader(bytes.NewReader(compressed), dictSize)
	if err != nil {
		return nil, err
	}

	var r io.Reader = lz2
	// Preprocessing filters run, in decode order, from the last
	// declared filter before LZMA2 back to the first.
	for i := len(h.filters) - 2; i >= 0; i-- {
		f := h.filters[i]
		t, err := filter.New(filter.ID(f.id), f.props)
		if err != nil {
			return nil, err
		}
		r = filter.NewReader(r, t)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if h.uncompressedSize >= 0 && int64(len(out)) != h.uncompressedSize {
		return nil, ErrSizeMismatch
	}
	return out, nil
}

func propsByte(props []byte) byte {
	if len(props) == 0 {
		return 0
	}
	return props[0]
}
