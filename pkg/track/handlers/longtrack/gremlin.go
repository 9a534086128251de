package longtrack

import (
	"github.com/xelalexv/mfmtrack/pkg/track/bitstream"
	"github.com/xelalexv/mfmtrack/pkg/track/disk"
	"github.com/xelalexv/mfmtrack/pkg/track/handler"
	"github.com/xelalexv/mfmtrack/pkg/track/mfm"
	"github.com/xelalexv/mfmtrack/pkg/track/trackbuf"
	"github.com/xelalexv/mfmtrack/pkg/track/trackinfo"
)

const (
	gremlinSync          = 0x41244124
	gremlinSeqCount      = 8
	gremlinSeqByte       = 0x00
	gremlinTotalBits     = 105500
	gremlinFillerRepeats = 6000
)

// Gremlin and Tiertex share identical decode and encode logic: a 32-bit
// sync of 0x41244124 followed by 8 zero bytes. They are distinguished only
// by the tag under which they are registered; TotalBits is populated for
// gremlin_longtrack but deliberately left unset (zero) for
// tiertex_longtrack, matching the upstream handler pair this is ported
// from, which shares one pair of function pointers between two ti->type
// values and special-cases the TotalBits assignment on that type. Neither
// tag runs a track-length check.
func Gremlin() *handler.Handler {
	return &handler.Handler{
		Tag:      GremlinTag,
		WriteRaw: gremlinWriteRaw(GremlinTag),
		ReadRaw:  gremlinReadRaw,
	}
}

func Tiertex() *handler.Handler {
	return &handler.Handler{
		Tag:      TiertexTag,
		WriteRaw: gremlinWriteRaw(TiertexTag),
		ReadRaw:  gremlinReadRaw,
	}
}

func gremlinWriteRaw(tag string) handler.DecodeFunc {
	return func(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {

		for {
			if _, end := s.NextBit(); end {
				return nil
			}
			if s.Word() != gremlinSync {
				continue
			}

			dataBitoff := s.IndexOffsetBC() - 31

			if !checkSequence(s, gremlinSeqCount, gremlinSeqByte) {
				continue
			}

			ti := trackinfo.New(tag)
			ti.DataBitoff = dataBitoff
			if tag == GremlinTag {
				ti.TotalBits = gremlinTotalBits
			}
			return ti
		}
	}
}

func gremlinReadRaw(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer) {
	tbuf.Bits(trackbuf.SpeedAvg, mfm.Raw, 32, gremlinSync)
	for i := 0; i < gremlinSeqCount; i++ {
		tbuf.Bits(trackbuf.SpeedAvg, mfm.All, 8, gremlinSeqByte)
	}
}
