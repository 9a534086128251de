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
	sevenCitiesTrailingSync = 0x924a
	sevenCitiesLeadingSync  = 0x9251
	sevenCitiesDataSize     = 122
	sevenCitiesCRC          = 0x010a
	sevenCitiesDataBitoff   = 76000
	sevenCitiesTotalBits    = 101500
)

// SevenCities implements sevencities_longtrack. Unlike its siblings this is
// not a pure structural long-track check: it carries a real 122-byte
// payload, found between a trailing sync (0x924a) and a leading sync
// (0x9251) and verified by its own CRC-16/CCITT trailer rather than a
// filler-repeat count.
func SevenCities() *handler.Handler {
	return &handler.Handler{
		Tag:      SevenCitiesTag,
		WriteRaw: sevenCitiesWriteRaw,
		ReadRaw:  sevenCitiesReadRaw,
	}
}

func sevenCitiesWriteRaw(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {

	for {
		if _, end := s.NextBit(); end {
			return nil
		}
		if s.Word()&0xffff != sevenCitiesTrailingSync {
			continue
		}

		for {
			if _, end := s.NextBit(); end {
				return nil
			}
			if s.Word()&0xffff == sevenCitiesLeadingSync {
				break
			}
		}

		s.StartCRC()
		dat := make([]byte, sevenCitiesDataSize)
		if end := s.NextBytes(dat); end {
			return nil
		}
		if s.CRC16CCITT() != sevenCitiesCRC {
			continue
		}

		ti := trackinfo.New(SevenCitiesTag)
		ti.Dat = dat
		ti.DataBitoff = sevenCitiesDataBitoff
		ti.TotalBits = sevenCitiesTotalBits
		return ti
	}
}

func sevenCitiesReadRaw(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer) {
	ti := d.Track(tracknr)

	tbuf.Bits(trackbuf.SpeedAvg, mfm.Raw, 16, sevenCitiesTrailingSync)
	tbuf.Bits(trackbuf.SpeedAvg, mfm.Raw, 16, sevenCitiesLeadingSync)
	tbuf.Bytes(trackbuf.SpeedAvg, mfm.Raw, len(ti.Dat), ti.Dat)
}
