package xz

// decodeStream decodes a single complete XZ stream (header through
// footer) found at the start of data, returning the concatenated block
// output and the number of bytes consumed.
func decodeStream(data []byte) ([]byte, int, error) {
	check, err := parseHeader(data)
	if err != nil {
		return nil, 0, err
	}

	// This stream's footer is the first valid footer after the header with
	// a matching check type; searching forward keeps a stream concatenated
	// after this one from being taken for this one's end.
	footerOff := headerLen
	for ; footerOff+footerLen <= len(data); footerOff++ {
		if f, ferr := parseFooter(data[footerOff : footerOff+footerLen]); ferr == nil && f.check == check {
			break
		}
	}
	if footerOff+footerLen > len(data) {
		return nil, 0, ErrBadFooter
	}
	ft, err := parseFooter(data[footerOff : footerOff+footerLen])
	if err != nil {
		return nil, 0, err
	}
	if ft.check != check {
		return nil, 0, ErrBadFooter
	}

	indexOff := footerOff - int(ft.indexSize)
	if indexOff < headerLen {
		return nil, 0, ErrTruncatedIndex
	}
	records, indexEnd, err := parseIndex(data, indexOff)
	if err != nil {
		return nil, 0, err
	}
	if indexEnd != footerOff {
		return nil, 0, ErrBadIndex
	}

	checkSize := check.Size()
	if checkSize < 0 {
		return nil, 0, ErrUnsupportedCheck
	}

	var out []byte
	blockHeaderStart := headerLen
	for _, rec := range records {
		h, blockStart, isIndex, err := parseBlockHeader(data, blockHeaderStart)
		if err != nil {
			return nil, 0, err
		}
		if isIndex {
			return nil, 0, ErrBadIndex
		}
		compSize := int64(rec.unpaddedSize) - int64(h.headerSize) - int64(checkSize)
		if compSize < 0 || blockStart+int(compSize) > len(data) {
			return nil, 0, ErrSizeMismatch
		}
		compressed := data[blockStart : blockStart+int(compSize)]
		if h.compressedSize >= 0 && h.compressedSize != compSize {
			return nil, 0, ErrSizeMismatch
		}

		blockOut, err := decodeBlock(h, compressed)
		if err != nil {
			return nil, 0, err
		}
		if uint64(len(blockOut)) != rec.uncompressedSize {
			return nil, 0, ErrSizeMismatch
		}
		out = append(out, blockOut...)

		// Advance to the next block: ceil(unpadded / 4) * 4 bytes from
		// the start of this block's header.
		aligned := ((int(rec.unpaddedSize) + 3) / 4) * 4
		blockHeaderStart += aligned
	}

	return out, footerOff + footerLen, nil
}
