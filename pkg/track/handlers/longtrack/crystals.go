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
	crystalsSync      = 0xaaaaa144
	crystalsSeqCount  = 6500
	crystalsSeqByte   = 0x00
	crystalsMinBits   = 104128
	crystalsTotalBits = 110000
)

var crystalsMarker = []byte("ROD0")

// CrystalsOfArborea implements crystals_of_arborea_longtrack: sync 0xa144
// preceded by 0xaaaa, a four-byte "ROD0" marker, then 6500 zero bytes.
func CrystalsOfArborea() *handler.Handler {
	return &handler.Handler{
		Tag:      CrystalsOfArboreaTag,
		WriteRaw: crystalsWriteRaw,
		ReadRaw:  crystalsReadRaw,
	}
}

func crystalsWriteRaw(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {

	for {
		if _, end := s.NextBit(); end {
			return nil
		}
		if s.Word() != crystalsSync {
			continue
		}

		dataBitoff := s.IndexOffsetBC() - 15

		if !checkBytes(s, crystalsMarker) {
			continue
		}
		if !checkSequence(s, crystalsSeqCount, crystalsSeqByte) {
			continue
		}
		if !checkLength(s, crystalsMinBits) {
			return nil
		}

		ti := trackinfo.New(CrystalsOfArboreaTag)
		ti.DataBitoff = dataBitoff
		ti.TotalBits = crystalsTotalBits
		return ti
	}
}

func crystalsReadRaw(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer) {
	tbuf.Bits(trackbuf.SpeedAvg, mfm.Raw, 32, crystalsSync)
	for _, b := range crystalsMarker {
		tbuf.Bits(trackbuf.SpeedAvg, mfm.All, 8, uint64(b))
	}
	for i := 0; i < crystalsSeqCount; i++ {
		tbuf.Bits(trackbuf.SpeedAvg, mfm.All, 8, crystalsSeqByte)
	}
}
