package lzma

import "fmt"

// Decoder is a single LZMA1 decoding engine: range coder, sliding-window
// dictionary, and the full probability-model state (literal, length,
// distance coders plus the 12-state machine and rep-distance queue).
//
// A Decoder is reused across LZMA2 chunks; Reset* methods implement the
// three independent reset axes LZMA2 control bytes select between:
// state, properties, and dictionary.
type Decoder struct {
	rd rangeDecoder
	d  *dict

	params Params
	lit    *literalCoder
	matchLen lengthCoder
	repLen   lengthCoder
	distC    distCoder

	state uint32
	rep   [4]uint32

	isMatch     [numStates << maxPosBits]prob
	isRep       [numStates]prob
	isRepG0     [numStates]prob
	isRepG1     [numStates]prob
	isRepG2     [numStates]prob
	isRepG0Long [numStates << maxPosBits]prob
}

// NewDecoder constructs a Decoder with the given literal/position
// parameters and dictionary size. Use GrowDict to grow the dictionary
// later (e.g. on an LZMA2 dictionary-reset chunk with a larger size).
func NewDecoder(p Params, dictSize uint32) (*Decoder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	dec := &Decoder{
		params: p,
		lit:    newLiteralCoder(p),
		d:      newDict(dictSize),
	}
	dec.ResetState()
	return dec, nil
}

// ResetState clears the state machine, rep-distance queue, and every
// probability table, without touching dictionary content.
func (dec *Decoder) ResetState() {
	dec.state = 0
	dec.rep = [4]uint32{0, 0, 0, 0}
	dec.lit.reset()
	dec.matchLen.reset()
	dec.repLen.reset()
	dec.distC.reset()
	for i := range dec.isMatch {
		dec.isMatch[i] = probInit
	}
	for i := range dec.isRep {
		dec.isRep[i] = probInit
		dec.isRepG0[i] = probInit
		dec.isRepG1[i] = probInit
		dec.isRepG2[i] = probInit
	}
	for i := range dec.isRepG0Long {
		dec.isRepG0Long[i] = probInit
	}
}

// ResetProps reinitializes the literal coder for new lc/lp/pb values,
// without touching the state machine or dictionary.
func (dec *Decoder) ResetProps(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	dec.params = p
	dec.lit = newLiteralCoder(p)
	return nil
}

// ResetDict clears logical dictionary position, discarding all match
// history (an LZMA2 dictionary-reset chunk, or the start of a fresh
// raw LZMA1 stream).
func (dec *Decoder) ResetDict() {
	dec.d.resetPosition()
}

// GrowDict enlarges the backing window buffer, used when a container
// declares a larger dictionary size than the decoder currently holds.
func (dec *Decoder) GrowDict(dictSize uint32) {
	dec.d.resize(dictSize)
}

// AppendUncompressed feeds literal bytes directly into the dictionary
// (an LZMA2 uncompressed chunk) and returns them back to the caller, so
// the dictionary's view of "what has been produced" stays consistent for
// later back-references.
func (dec *Decoder) AppendUncompressed(p []byte) []byte {
	dec.d.appendUncompressed(p)
	return dec.d.takeOutput()
}

func (dec *Decoder) posState(pos uint64) uint32 {
	mask := uint64(1)<<uint(dec.params.PB) - 1
	return uint32(pos & mask)
}

// DecodeChunk decodes from compressed, stopping once the dictionary has
// produced unpackedSize additional bytes or an end-of-stream marker is
// read, and returns the newly produced bytes. initRC selects whether a
// fresh range-coder is initialized from the first 5 bytes of compressed
// (true for every LZMA2 LZMA chunk and for raw LZMA1 streams).
func (dec *Decoder) DecodeChunk(compressed []byte, unpackedSize int, initRC bool) ([]byte, error) {
	if initRC {
		if err := dec.rd.init(compressed); err != nil {
			return nil, err
		}
	} else {
		dec.rd.in = compressed
		dec.rd.pos = 0
	}
	target := dec.d.totalPos() + uint64(unpackedSize)
	for dec.d.totalPos() < target {
		if err := dec.decodeSymbol(target); err != nil {
			if err == errEndOfStream {
				break
			}
			return nil, err
		}
	}
	return dec.d.takeOutput(), nil
}

// noLimit tells decodeSymbol that no fixed output size is known, so an
// end-of-stream marker is acceptable at any position rather than only
// exactly at a declared limit.
const noLimit = ^uint64(0)

// DecodeUntilMarker decodes from compressed (initializing a fresh range
// coder) until it reads the explicit LZMA end-of-stream marker, for
// streams whose uncompressed size was not recorded up front.
func (dec *Decoder) DecodeUntilMarker(compressed []byte) ([]byte, error) {
	if err := dec.rd.init(compressed); err != nil {
		return nil, err
	}
	for {
		if err := dec.decodeSymbol(noLimit); err != nil {
			if err == errEndOfStream {
				break
			}
			return nil, err
		}
	}
	return dec.d.takeOutput(), nil
}

// decodeSymbol decodes exactly one LZMA operation: a literal, a new
// match, or a repeated-distance match (normal or short).
func (dec *Decoder) decodeSymbol(limit uint64) error {
	posState := dec.posState(dec.d.totalPos())
	stIdx := (dec.state << maxPosBits) | posState

	isMatch, err := dec.rd.decodeBit(&dec.isMatch[stIdx])
	if err != nil {
		return err
	}
	if isMatch == 0 {
		return dec.decodeLiteral()
	}

	isRep, err := dec.rd.decodeBit(&dec.isRep[dec.state])
	if err != nil {
		return err
	}
	if isRep == 0 {
		return dec.decodeMatch(posState, limit)
	}
	return dec.decodeRep(posState, stIdx, limit)
}

func (dec *Decoder) decodeLiteral() error {
	litState := dec.lit.state(dec.d.prevByte, dec.d.totalPos())
	var match byte
	if !isLiteralState(dec.state) {
		match = dec.d.byteBack(dec.rep[0] + 1)
	}
	b, err := dec.lit.decode(&dec.rd, dec.state, match, litState)
	if err != nil {
		return err
	}
	dec.d.putByte(b)
	dec.state = stateAfterLiteral(dec.state)
	return nil
}

func (dec *Decoder) decodeMatch(posState uint32, limit uint64) error {
	rawLen, err := dec.matchLen.decode(&dec.rd, posState)
	if err != nil {
		return err
	}
	dist, err := dec.distC.decode(&dec.rd, rawLen)
	if err != nil {
		return err
	}
	if dist == eosDist {
		// End-of-stream marker: legal unconditionally when the caller
		// doesn't know the final size up front (limit == noLimit), and
		// otherwise only exactly at the requested limit.
		if limit != noLimit && dec.d.totalPos() != limit {
			return ErrWrongTermination
		}
		return errEndOfStream
	}
	dec.rep[3], dec.rep[2], dec.rep[1], dec.rep[0] = dec.rep[2], dec.rep[1], dec.rep[0], dist
	dec.state = stateAfterMatch(dec.state)
	return dec.copyMatchLen(dist, rawLen)
}

func (dec *Decoder) decodeRep(posState, stIdx uint32, limit uint64) error {
	g0, err := dec.rd.decodeBit(&dec.isRepG0[dec.state])
	if err != nil {
		return err
	}
	var dist uint32
	if g0 == 0 {
		long, err := dec.rd.decodeBit(&dec.isRepG0Long[stIdx])
		if err != nil {
			return err
		}
		if long == 0 {
			dec.state = stateAfterShortRep(dec.state)
			if err := dec.d.checkDistance(dec.rep[0]); err != nil {
				return err
			}
			dec.d.copyMatch(dec.rep[0], 1)
			return nil
		}
		dist = dec.rep[0]
	} else {
		g1, err := dec.rd.decodeBit(&dec.isRepG1[dec.state])
		if err != nil {
			return err
		}
		if g1 == 0 {
			dist = dec.rep[1]
			dec.rep[1] = dec.rep[0]
		} else {
			g2, err := dec.rd.decodeBit(&dec.isRepG2[dec.state])
			if err != nil {
				return err
			}
			if g2 == 0 {
				dist = dec.rep[2]
			} else {
				dist = dec.rep[3]
				dec.rep[3] = dec.rep[2]
			}
			dec.rep[2] = dec.rep[1]
			dec.rep[1] = dec.rep[0]
		}
		dec.rep[0] = dist
	}
	rawLen, err := dec.repLen.decode(&dec.rd, posState)
	if err != nil {
		return err
	}
	dec.state = stateAfterRep(dec.state)
	return dec.copyMatchLen(dist, rawLen)
}

func (dec *Decoder) copyMatchLen(dist, rawLen uint32) error {
	if err := dec.d.checkDistance(dist); err != nil {
		return err
	}
	dec.d.copyMatch(dist, int(rawLen)+minMatchLen)
	return nil
}

// errEndOfStream is an internal sentinel: decodeMatch returns it when it
// reads the explicit end marker, and DecodeRaw / the LZMA2 chunk loop
// treat it as a clean finish rather than an error.
var errEndOfStream = fmt.Errorf("lzma: end of stream marker")
