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
	infogramesSync      = 0xa144
	infogramesSeqCount  = 6510
	infogramesSeqByte   = 0x00
	infogramesMinBits   = 104160
	infogramesTotalBits = 105500
)

// Infogrames implements infogrames_longtrack: a bare 16-bit sync 0xa144
// (unlike crystals_of_arborea's 0xaaaa-prefixed variant) followed by 6510
// zero bytes.
func Infogrames() *handler.Handler {
	return &handler.Handler{
		Tag:      InfogramesTag,
		WriteRaw: infogramesWriteRaw,
		ReadRaw:  infogramesReadRaw,
	}
}

func infogramesWriteRaw(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {

	for {
		if _, end := s.NextBit(); end {
			return nil
		}
		if s.Word()&0xffff != infogramesSync {
			continue
		}

		dataBitoff := s.IndexOffsetBC() - 15

		if !checkSequence(s, infogramesSeqCount, infogramesSeqByte) {
			continue
		}
		if !checkLength(s, infogramesMinBits) {
			return nil
		}

		ti := trackinfo.New(InfogramesTag)
		ti.DataBitoff = dataBitoff
		ti.TotalBits = infogramesTotalBits
		return ti
	}
}

func infogramesReadRaw(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer) {
	tbuf.Bits(trackbuf.SpeedAvg, mfm.Raw, 16, infogramesSync)
	for i := 0; i < infogramesSeqCount; i++ {
		tbuf.Bits(trackbuf.SpeedAvg, mfm.All, 8, infogramesSeqByte)
	}
}
