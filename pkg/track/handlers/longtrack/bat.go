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
	batSync      = 0xaaaa8945
	batSeqCount  = 6826
	batSeqByte   = 0x00
	batMinBits   = 109500
	batTotalBits = 110000
)

// Bat implements bat_longtrack: sync 0x8945 preceded by 0xaaaa, followed by
// 6826 zero bytes.
func Bat() *handler.Handler {
	return &handler.Handler{
		Tag:      BatTag,
		WriteRaw: batWriteRaw,
		ReadRaw:  batReadRaw,
	}
}

func batWriteRaw(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {

	for {
		if _, end := s.NextBit(); end {
			return nil
		}
		if s.Word() != batSync {
			continue
		}

		dataBitoff := s.IndexOffsetBC() - 31

		if !checkSequence(s, batSeqCount, batSeqByte) {
			continue
		}
		if !checkLength(s, batMinBits) {
			return nil
		}

		ti := trackinfo.New(BatTag)
		ti.DataBitoff = dataBitoff
		ti.TotalBits = batTotalBits
		return ti
	}
}

func batReadRaw(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer) {
	tbuf.Bits(trackbuf.SpeedAvg, mfm.Raw, 32, batSync)
	for i := 0; i < batSeqCount; i++ {
		tbuf.Bits(trackbuf.SpeedAvg, mfm.All, 8, batSeqByte)
	}
}
