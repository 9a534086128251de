package rtype

import (
	"github.com/xelalexv/mfmtrack/pkg/track/bitstream"
	"github.com/xelalexv/mfmtrack/pkg/track/disk"
	"github.com/xelalexv/mfmtrack/pkg/track/handler"
	"github.com/xelalexv/mfmtrack/pkg/track/mfm"
	"github.com/xelalexv/mfmtrack/pkg/track/trackbuf"
	"github.com/xelalexv/mfmtrack/pkg/track/trackinfo"
)

const (
	BTag = "rtype_b"

	bSync       = 0x9521
	bNrLongs    = 1638
	bPayloadLen = bNrLongs * 4 // 6552
	bTotalBits  = 105500
)

// B implements the rtype_b data track. Unlike A, its payload is not one
// contiguous even/odd block: it is 1638 4-byte longwords, each
// independently even/odd encoded, followed by a masked checksum longword
// of the same per-long encoding.
func B() *handler.Handler {
	return &handler.Handler{
		Tag:      BTag,
		WriteMFM: bWriteMFM,
		ReadMFM:  bReadMFM,
	}
}

func bWriteMFM(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {

	for {
		if _, end := s.NextBit(); end {
			return nil
		}
		if s.Word()&0xffff != bSync {
			continue
		}

		dataBitoff := s.IndexOffsetBC() - 15

		payload := make([]byte, 0, bPayloadLen)
		ok := true
		for i := 0; i < bNrLongs; i++ {
			long, end := readEvenOdd(s, 4)
			if end {
				ok = false
				break
			}
			payload = append(payload, long...)
		}
		if !ok {
			return nil
		}

		csumBytes, end := readEvenOdd(s, 4)
		if end {
			return nil
		}

		stored := (uint32(csumBytes[0])<<24 | uint32(csumBytes[1])<<16 |
			uint32(csumBytes[2])<<8 | uint32(csumBytes[3]))
		computed := maskedChecksum(mfm.AmigaDOSChecksum(payload))
		if maskedChecksum(stored) != computed {
			continue
		}

		ti := trackinfo.New(BTag)
		ti.Dat = payload
		ti.DataBitoff = dataBitoff
		ti.TotalBits = bTotalBits
		ti.ValidSectors = 1
		return ti
	}
}

func bReadMFM(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer) {

	ti := d.Track(tracknr)

	tbuf.Bits(trackbuf.SpeedAvg, mfm.Raw, 16, bSync)

	for i := 0; i < bNrLongs; i++ {
		tbuf.Bytes(trackbuf.SpeedAvg, mfm.EvenOdd, 4, ti.Dat[i*4:i*4+4])
	}

	csum := maskedChecksum(mfm.AmigaDOSChecksum(ti.Dat))
	tbuf.Bytes(trackbuf.SpeedAvg, mfm.EvenOdd, 4, checksumBytes(csum))
}
