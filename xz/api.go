package xz

import (
	"bytes"
	"io"

	"github.com/coredecomp/xzcore/filter"
	"github.com/coredecomp/xzcore/lzma"
	"github.com/coredecomp/xzcore/lzma2"
)

// DecodeLZMA1 decodes a raw LZMA1 stream given its 5-byte classic
// properties (1 properties byte + 4-byte little-endian dictionary
// size) and the expected uncompressed size.
func DecodeLZMA1(data []byte, props [5]byte, unpackSize uint64) ([]byte, error) {
	params, err := lzma.ParamsFromByte(props[0])
	if err != nil {
		return nil, err
	}
	dictSize := uint32(props[1]) | uint32(props[2])<<8 | uint32(props[3])<<16 | uint32(props[4])<<24
	return lzma.DecodeRawWithParams(data, params, dictSize, unpackSize)
}

// DecodeLZMA2 decodes a framed LZMA2 stream given its single properties
// byte (dictionary size encoding).
func DecodeLZMA2(data []byte, props [1]byte) ([]byte, error) {
	dictSize, err := lzma2.DictSize(props[0])
	if err != nil {
		return nil, err
	}
	r, err := lzma2.NewReader(bytes.NewReader(data), dictSize)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

// DecodeBCJ reverses one of the seven BCJ branch-converter filters.
func DecodeBCJ(id filter.ID, data []byte) ([]byte, error) {
	t, err := filter.New(id, nil)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(filter.NewReader(bytes.NewReader(data), t))
}

// DecodeDelta reverses the Delta filter. props, if non-nil, carries the
// single distance-1 properties byte; a nil props defaults to distance 1.
func DecodeDelta(data []byte, props []byte) ([]byte, error) {
	if props == nil {
		props = []byte{0}
	}
	t, err := filter.New(filter.IDDelta, props)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(filter.NewReader(bytes.NewReader(data), t))
}
