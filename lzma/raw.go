package lzma

import "encoding/binary"

// classicHeaderSize is the length of the legacy LZMA1 ("LZMA_Alone")
// header: one properties byte, a 4-byte little-endian dictionary size,
// and an 8-byte little-endian uncompressed size (0xFFFFFFFFFFFFFFFF
// meaning "unknown, terminated by an end-of-stream marker").
const classicHeaderSize = 13

const unknownSize = 0xFFFFFFFFFFFFFFFF

// DecodeRaw decodes a complete classic-header LZMA1 stream (as embedded
// in, e.g., a .lzma file, or a raw hunk preceded by its own 13-byte
// header) in one call and returns the uncompressed bytes.
func DecodeRaw(src []byte) ([]byte, error) {
	if len(src) < classicHeaderSize {
		return nil, ErrTruncatedInput
	}
	params, err := ParamsFromByte(src[0])
	if err != nil {
		return nil, err
	}
	dictSize := binary.LittleEndian.Uint32(src[1:5])
	size := binary.LittleEndian.Uint64(src[5:13])

	dec, err := NewDecoder(params, dictSize)
	if err != nil {
		return nil, err
	}
	return decodeRawBody(dec, src[classicHeaderSize:], size)
}

// DecodeRawWithParams decodes a headerless LZMA1 stream whose properties,
// dictionary size, and uncompressed size are known out of band, as when
// a container format carries them in its own header.
func DecodeRawWithParams(src []byte, params Params, dictSize uint32, size uint64) ([]byte, error) {
	dec, err := NewDecoder(params, dictSize)
	if err != nil {
		return nil, err
	}
	return decodeRawBody(dec, src, size)
}

func decodeRawBody(dec *Decoder, body []byte, size uint64) ([]byte, error) {
	if size == unknownSize {
		return dec.DecodeUntilMarker(body)
	}
	if size > uint64(^uint(0)>>1) {
		return nil, ErrSizeMismatch
	}
	out, err := dec.DecodeChunk(body, int(size), true)
	if err != nil {
		return nil, err
	}
	if uint64(len(out)) != size {
		return nil, ErrSizeMismatch
	}
	return out, nil
}
