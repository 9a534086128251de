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
	protecSync          = 0x4454
	protecSeqCount      = 1000
	protecMinBits       = 107200
	protecTotalBits     = 110000
	protecFillerRepeats = 6000
)

// Protec implements the PROTEC protection track used on many releases:
// sync 0x4454 followed by 1000+ repeats of one MFM-encoded filler byte
// (the byte itself varies by release - SPS 1352's Robocod uses 0x44 where
// most others use 0x33 - so it is read from the stream and reused on
// re-encode rather than hardcoded).
func Protec() *handler.Handler {
	return &handler.Handler{
		Tag:      ProtecTag,
		WriteRaw: protecWriteRaw,
		ReadRaw:  protecReadRaw,
	}
}

func protecWriteRaw(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {

	for {
		if _, end := s.NextBit(); end {
			return nil
		}

		if (s.Word() >> 16) != protecSync {
			continue
		}

		dataBitoff := s.IndexOffsetBC() - 31
		filler := byte(mfm.DecodeBits(mfm.All, uint64(s.Word()&0xffff), 16))

		if !checkSequence(s, protecSeqCount, filler) {
			continue
		}
		if !checkLength(s, protecMinBits) {
			return nil
		}

		ti := trackinfo.New(ProtecTag)
		ti.DataBitoff = dataBitoff
		ti.TotalBits = protecTotalBits
		ti.Dat = []byte{filler}
		return ti
	}
}

func protecReadRaw(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer) {

	ti := d.Track(tracknr)
	filler := ti.Dat[0]

	tbuf.Bits(trackbuf.SpeedAvg, mfm.Raw, 16, protecSync)
	for i := 0; i < protecFillerRepeats; i++ {
		tbuf.Bits(trackbuf.SpeedAvg, mfm.All, 8, uint64(filler))
	}
}
