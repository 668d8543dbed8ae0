package xz

import (
	"bytes"
	"testing"

	"github.com/coredecomp/xzcore/filter"
)

func TestDecodeLZMA2UncompressedChunk(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte("standalone lzma2 api surface")
	buf.WriteByte(0x01)
	size := len(payload) - 1
	buf.WriteByte(byte(size >> 8))
	buf.WriteByte(byte(size))
	buf.Write(payload)
	buf.WriteByte(0x00)

	out, err := DecodeLZMA2(buf.Bytes(), [1]byte{0x00})
	if err != nil {
		t.Fatalf("DecodeLZMA2: %v", err)
	}
	if string(out) != string(payload) {
		t.Fatalf("got %q, want %q", out, payload)
	}
}

func TestDecodeDeltaDefaultsToDistanceOne(t *testing.T) {
	original := []byte{5, 10, 15, 20}
	encoded := make([]byte, len(original))
	var prev byte
	for i, b := range original {
		encoded[i] = b - prev
		prev = b
	}
	out, err := DecodeDelta(encoded, nil)
	if err != nil {
		t.Fatalf("DecodeDelta: %v", err)
	}
	if !bytes.Equal(out, original) {
		t.Fatalf("got %v, want %v", out, original)
	}
}

func TestDecodeBCJRejectsUnknownFilter(t *testing.T) {
	if _, err := DecodeBCJ(filter.IDLZMA2, []byte{1, 2, 3, 4, 5}); err != filter.ErrUnsupportedFilter {
		t.Fatalf("got %v, want ErrUnsupportedFilter", err)
	}
}

func TestDecodeLZMA1RejectsBadProperties(t *testing.T) {
	var props [5]byte
	props[0] = 255
	if _, err := DecodeLZMA1(make([]byte, 5), props, 0); err == nil {
		t.Fatalf("expected an error for an invalid properties byte")
	}
}
