package longtrack

import (
	"github.com/xelalexv/mfmtrack/pkg/track/bitstream"
	"github.com/xelalexv/mfmtrack/pkg/track/mfm"
)

// checkSequence reads n successive 16-bit MFM words and requires each one
// to decode to byte. It returns false as soon as a mismatch is found or
// the stream ends, true if all n matched (spec.md section 4.4.c).
func checkSequence(s *bitstream.Stream, n int, b byte) bool {
	for i := 0; i < n; i++ {
		if end := s.NextBits(16); end {
			return false
		}
		if decoded := byte(mfm.DecodeBits(mfm.All, uint64(s.Word()&0xffff), 16)); decoded != b {
			return false
		}
	}
	return true
}

// checkBytes reads len(expected) successive 16-bit MFM words and requires
// each one to decode to the corresponding byte of expected, in order. It is
// checkSequence's sibling for matching a literal byte string (e.g. the
// "ROD0" marker crystals_of_arborea_longtrack looks for) instead of n
// repeats of one byte.
func checkBytes(s *bitstream.Stream, expected []byte) bool {
	for _, b := range expected {
		if end := s.NextBits(16); end {
			return false
		}
		if decoded := byte(mfm.DecodeBits(mfm.All, uint64(s.Word()&0xffff), 16)); decoded != b {
			return false
		}
	}
	return true
}

// checkLength advances to the next index pulse and requires the completed
// revolution to be at least minBits long. Unlike a sync/sequence mismatch,
// failure here is fatal to the handler's current scan attempt rather than
// a reason to keep looking (spec.md section 4.4.c / 7).
func checkLength(s *bitstream.Stream, minBits int) bool {
	s.NextIndex()
	return s.TrackLenBC() >= minBits
}
