// Package filter implements the XZ "simple filter" preprocessing
// transforms: the BCJ branch-converters for seven CPU architectures and
// the Delta filter. Every filter is a stateful, in-place byte transform
// that may need to defer a few trailing bytes across chunk boundaries
// until enough data is available to recognize a complete instruction
// (Delta has no alignment requirement and never defers).
//
// Filter IDs below are the standard XZ-format filter IDs.
package filter

import "errors"

// ID identifies a filter by its XZ filter ID.
type ID uint64

const (
	IDDelta       ID = 0x03
	IDBCJX86      ID = 0x04
	IDBCJPowerPC  ID = 0x05
	IDBCJIA64     ID = 0x06
	IDBCJARM      ID = 0x07
	IDBCJARMThumb ID = 0x08
	IDBCJSPARC    ID = 0x09
	IDBCJARM64    ID = 0x0A
	IDLZMA2       ID = 0x21
)

// ErrUnsupportedFilter is returned for a filter ID this package doesn't
// implement.
var ErrUnsupportedFilter = errors.New("filter: unsupported filter id")

// Transform decodes as much of buf as forms complete, unambiguous
// instructions (or, for Delta, all of it), rewriting it in place, and
// reports how many leading bytes of buf are now finalized and safe to
// emit. pos is the absolute stream position corresponding to buf[0].
// Bytes from advance onward must be represented again, prefixed to
// whatever new bytes arrive, on the next call.
type Transform interface {
	Decode(pos uint32, buf []byte) (advance int)
}

// New constructs the decode-direction Transform for id, configured with
// the filter's single properties byte. Only Delta takes one; every BCJ
// filter ignores props.
func New(id ID, props []byte) (Transform, error) {
	switch id {
	case IDDelta:
		return newDelta(props)
	case IDBCJX86:
		return newX86(), nil
	case IDBCJARM:
		return newARM(), nil
	case IDBCJARMThumb:
		return newARMThumb(), nil
	case IDBCJARM64:
		return newARM64(), nil
	case IDBCJPowerPC:
		return newPowerPC(), nil
	case IDBCJSPARC:
		return newSPARC(), nil
	case IDBCJIA64:
		return newIA64(), nil
	default:
		return nil, ErrUnsupportedFilter
	}
}
