package mfm

import (
	"reflect"
	"testing"
)

func TestEncodeDecodeBitsRoundTrip(t *testing.T) {

	cases := []struct {
		name  string
		mode  Mode
		data  uint64
		nbits int
	}{
		{"all-byte-0x00", All, 0x00, 16},
		{"all-byte-0xff", All, 0xff, 16},
		{"all-byte-0xa5", All, 0xa5, 16},
		{"even-nibble", Even, 0x0d, 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw, _ := EncodeBits(c.mode, c.data, c.nbits, 0)
			got := DecodeBits(c.mode, raw, c.nbits)
			want := c.data & (uint64(1)<<uint(c.nbits/2) - 1)
			if got != want {
				t.Fatalf("round trip mismatch: got 0x%x, want 0x%x", got, want)
			}
		})
	}
}

func TestEncodeBitsAdjacency(t *testing.T) {
	// Two consecutive zero data bits must never encode two adjacent clock
	// bits of 1 - that's the MFM adjacency invariant spec.md section 8
	// property 4 requires.
	raw, last := EncodeBits(All, 0x00, 16, 0)
	if last != 0 {
		t.Fatalf("expected last data bit 0, got %d", last)
	}
	for i := 15; i > 0; i-- {
		a := (raw >> uint(i)) & 1
		b := (raw >> uint(i-1)) & 1
		if a == 1 && b == 1 {
			t.Fatalf("adjacent 1 bits at position %d in 0x%04x", i, raw)
		}
	}
}

func TestEvenOddBytesRoundTrip(t *testing.T) {

	src := []byte{0x00, 0xff, 0xa5, 0x5a, 0x81, 0x7e}

	encoded := EncodeBytes(EvenOdd, src)
	if len(encoded) != 2*len(src) {
		t.Fatalf("expected %d encoded bytes, got %d", 2*len(src), len(encoded))
	}

	decoded := DecodeBytes(EvenOdd, len(src), encoded)
	if !reflect.DeepEqual(decoded, src) {
		t.Fatalf("round trip mismatch: got %x, want %x", decoded, src)
	}
}

func TestDecodeBytesRejectsOtherModes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unsupported byte-buffer mode")
		}
	}()
	DecodeBytes(All, 1, []byte{0x00, 0x00})
}
