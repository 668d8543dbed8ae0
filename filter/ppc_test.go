package filter

import "testing"

func TestPowerPCDecodeBranch(t *testing.T) {
	// BL instruction 0x48000101 at stream position 4; decode subtracts
	// pos+i (4) from the 24-bit LI field, yielding 0x48000001|0xFC.
	buf := []byte{0x48, 0x00, 0x01, 0x01}
	f := newPowerPC()
	adv := f.Decode(4, buf)
	if adv != 4 {
		t.Fatalf("advance = %d, want 4", adv)
	}
	want := []byte{0x48, 0x00, 0x00, 0xFD}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = % x, want % x", buf, want)
		}
	}
}

func TestPowerPCDecodeIgnoresOtherOpcodes(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x00}
	orig := append([]byte(nil), buf...)
	f := newPowerPC()
	f.Decode(4, buf)
	for i := range orig {
		if buf[i] != orig[i] {
			t.Fatalf("non-branch word modified: got % x, want % x", buf, orig)
		}
	}
}
