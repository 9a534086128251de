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
	appSync      = 0x924a
	appSeqCount  = 6600
	appSeqByte   = 0xdc
	appMinBits   = 110000
	appTotalBits = 111000
)

// App implements app_longtrack: bare 16-bit sync 0x924a followed by 6600
// repeats of filler byte 0xdc.
func App() *handler.Handler {
	return &handler.Handler{
		Tag:      AppTag,
		WriteRaw: appWriteRaw,
		ReadRaw:  appReadRaw,
	}
}

func appWriteRaw(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {

	for {
		if _, end := s.NextBit(); end {
			return nil
		}
		if s.Word()&0xffff != appSync {
			continue
		}

		dataBitoff := s.IndexOffsetBC() - 15

		if !checkSequence(s, appSeqCount, appSeqByte) {
			continue
		}
		if !checkLength(s, appMinBits) {
			return nil
		}

		ti := trackinfo.New(AppTag)
		ti.DataBitoff = dataBitoff
		ti.TotalBits = appTotalBits
		return ti
	}
}

func appReadRaw(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer) {
	tbuf.Bits(trackbuf.SpeedAvg, mfm.Raw, 16, appSync)
	for i := 0; i < appSeqCount; i++ {
		tbuf.Bits(trackbuf.SpeedAvg, mfm.All, 8, appSeqByte)
	}
}
