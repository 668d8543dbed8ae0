package filter

import (
	"bytes"
	"io"
	"testing"
)

func deltaEncode(distance int, in []byte) []byte {
	out := make([]byte, len(in))
	for i, b := range in {
		var prev byte
		if i-distance >= 0 {
			prev = in[i-distance]
		}
		out[i] = b - prev
	}
	return out
}

func TestDeltaDecodeDistanceOne(t *testing.T) {
	original := []byte{10, 20, 15, 255, 0, 5}
	encoded := deltaEncode(1, original)

	f, err := New(IDDelta, []byte{0}) // props byte 0 -> distance 1
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	buf := append([]byte(nil), encoded...)
	adv := f.Decode(0, buf)
	if adv != len(buf) {
		t.Fatalf("advance = %d, want %d", adv, len(buf))
	}
	if !bytes.Equal(buf, original) {
		t.Fatalf("got %v, want %v", buf, original)
	}
}

func TestDeltaDecodeDistanceThree(t *testing.T) {
	original := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	encoded := deltaEncode(3, original)

	f, err := New(IDDelta, []byte{2}) // props byte 2 -> distance 3
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	buf := append([]byte(nil), encoded...)
	f.Decode(0, buf)
	if !bytes.Equal(buf, original) {
		t.Fatalf("got %v, want %v", buf, original)
	}
}

func TestDeltaRejectsEmptyProps(t *testing.T) {
	if _, err := New(IDDelta, nil); err != ErrInvalidDeltaDistance {
		t.Fatalf("got %v, want ErrInvalidDeltaDistance", err)
	}
}

func TestDeltaThroughReader(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog, repeatedly")
	encoded := deltaEncode(1, original)

	f, err := New(IDDelta, []byte{0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r := NewReader(bytes.NewReader(encoded), f)
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !bytes.Equal(out, original) {
		t.Fatalf("got %q, want %q", out, original)
	}
}
