package lzma

const (
	maxPosStates = 1 << 4 // 2^pb, pb in [0,4]

	lenLowBits  = 3
	lenMidBits  = 3
	lenHighBits = 8

	lenLowSymbols  = 1 << lenLowBits
	lenMidSymbols  = 1 << lenMidBits
	lenHighSymbols = 1 << lenHighBits

	// kMatchMinLen, kMatchMaxLen are the length bounds a length coder
	// can represent, before accounting for rep length 1 (short rep).
	minMatchLen = 2
	maxMatchLen = minMatchLen + lenLowSymbols + lenMidSymbols + lenHighSymbols - 1
)

// lengthCoder implements the shared match-length / rep-length coding
// structure: a choice bit selecting low (2..9), a choice2 bit selecting
// mid (10..17), else high (18..273).
type lengthCoder struct {
	choice  prob
	choice2 prob
	low     [maxPosStates][lenLowSymbols]prob
	mid     [maxPosStates][lenMidSymbols]prob
	high    [lenHighSymbols]prob
}

func (c *lengthCoder) reset() {
	c.choice = probInit
	c.choice2 = probInit
	for i := range c.low {
		for j := range c.low[i] {
			c.low[i][j] = probInit
		}
	}
	for i := range c.mid {
		for j := range c.mid[i] {
			c.mid[i][j] = probInit
		}
	}
	for i := range c.high {
		c.high[i] = probInit
	}
}

func (c *lengthCoder) decode(r *rangeDecoder, posState uint32) (uint32, error) {
	b, err := r.decodeBit(&c.choice)
	if err != nil {
		return 0, err
	}
	if b == 0 {
		n, err := r.decodeBitTree(c.low[posState][:], lenLowBits)
		if err != nil {
			return 0, err
		}
		return n, nil
	}
	b, err = r.decodeBit(&c.choice2)
	if err != nil {
		return 0, err
	}
	if b == 0 {
		n, err := r.decodeBitTree(c.mid[posState][:], lenMidBits)
		if err != nil {
			return 0, err
		}
		return lenLowSymbols + n, nil
	}
	n, err := r.decodeBitTree(c.high[:], lenHighBits)
	if err != nil {
		return 0, err
	}
	return lenLowSymbols + lenMidSymbols + n, nil
}
