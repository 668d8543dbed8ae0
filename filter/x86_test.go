package filter

import "testing"

func TestX86DecodeSingleCall(t *testing.T) {
	// A CALL (0xE8) at position 0 whose operand 0x00001000 is a plausible
	// absolute address (high byte 0x00); decode rewrites it to the
	// PC-relative displacement 0x1000-5 = 0x0FFB.
	buf := []byte{0xE8, 0x00, 0x10, 0x00, 0x00}
	f := newX86()
	adv := f.Decode(0, buf)
	if adv != 5 {
		t.Fatalf("advance = %d, want 5", adv)
	}
	want := []byte{0xE8, 0xFB, 0x0F, 0x00, 0x00}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf = % x, want % x", buf, want)
		}
	}
}

func TestX86DecodeIgnoresNonBranchBytes(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	f := newX86()
	adv := f.Decode(0, buf)
	if adv != len(buf)-4 {
		t.Fatalf("advance = %d, want %d", adv, len(buf)-4)
	}
}

func TestX86DecodeShortBufferDefersEntirely(t *testing.T) {
	buf := []byte{0xE8, 0x00, 0x00, 0x00}
	f := newX86()
	if adv := f.Decode(0, buf); adv != 0 {
		t.Fatalf("advance = %d, want 0 for a sub-5-byte buffer", adv)
	}
}
