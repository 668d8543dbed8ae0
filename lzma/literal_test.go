package lzma

import "testing"

func TestLiteralCoderState(t *testing.T) {
	c := newLiteralCoder(Params{LC: 3, LP: 0, PB: 2})
	if got := c.state(0xFF, 0); got != 7 {
		t.Fatalf("state(0xFF, 0) = %d, want 7 (top 3 bits of 0xFF)", got)
	}
	if got := c.state(0x20, 0); got != 1 {
		t.Fatalf("state(0x20, 0) = %d, want 1", got)
	}

	c2 := newLiteralCoder(Params{LC: 0, LP: 2, PB: 0})
	if got := c2.state(0xFF, 5); got != 1 {
		t.Fatalf("state(0xFF, 5) = %d, want 1 (pos&3)", got)
	}
}

func TestLiteralCoderDecodeAllZeroBitsYieldsZeroByte(t *testing.T) {
	c := newLiteralCoder(Params{LC: 3, LP: 0, PB: 2})
	r := rangeDecoder{rng: 0xFFFFFFFF, code: 0}
	b, err := c.decode(&r, 0, 0, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b != 0x00 {
		t.Fatalf("got %#x, want 0x00", b)
	}
}

func TestLiteralCoderDecodeAllOneBitsYieldsMaxByte(t *testing.T) {
	c := newLiteralCoder(Params{LC: 3, LP: 0, PB: 2})
	r := rangeDecoder{rng: 0xFFFFFFFF, code: 0xFFFFFFFF}
	// lzState < 7 so the matched-literal branch never engages regardless
	// of the match byte passed.
	b, err := c.decode(&r, 0, 0xAA, 0)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b != 0xFF {
		t.Fatalf("got %#x, want 0xFF", b)
	}
}

func TestLiteralCoderResetReinitializesProbs(t *testing.T) {
	c := newLiteralCoder(Params{LC: 0, LP: 0, PB: 0})
	c.probs[5] = 1
	c.reset()
	for i, p := range c.probs {
		if p != probInit {
			t.Fatalf("probs[%d] = %d after reset, want %d", i, p, probInit)
		}
	}
}
