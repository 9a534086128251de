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
	ATag = "rtype_a"

	aSync       = 0x9521
	aPayloadLen = 5968
)

// A implements the rtype_a data track: sync 0x9521, a one-byte filler,
// a 32-bit AmigaDOS checksum and a 5968-byte payload, the checksum and
// payload both carried in the even/odd interleaved byte layout.
func A() *handler.Handler {
	return &handler.Handler{
		Tag:      ATag,
		WriteMFM: aWriteMFM,
		ReadMFM:  aReadMFM,
	}
}

func aWriteMFM(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {

	for {
		if _, end := s.NextBit(); end {
			return nil
		}
		if s.Word()&0xffff != aSync {
			continue
		}

		dataBitoff := s.IndexOffsetBC() - 15

		// The filler byte carries no sector data; its value varies by
		// release and is only needed to keep the raw bit count aligned
		// with the stream during decode.
		if _, end := readAllByte(s); end {
			return nil
		}

		csumBytes, end := readEvenOdd(s, 4)
		if end {
			return nil
		}

		payload, end := readEvenOdd(s, aPayloadLen)
		if end {
			return nil
		}

		stored := (uint32(csumBytes[0])<<24 | uint32(csumBytes[1])<<16 |
			uint32(csumBytes[2])<<8 | uint32(csumBytes[3]))
		// Unlike rtype_b, variant A compares the AmigaDOS checksum exactly,
		// unmasked; the even/odd bit mask is variant B's rule only.
		if stored != mfm.AmigaDOSChecksum(payload) {
			continue
		}

		ti := trackinfo.New(ATag)
		ti.Dat = payload
		ti.DataBitoff = dataBitoff
		ti.ValidSectors = 1
		return ti
	}
}

func aReadMFM(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer) {

	ti := d.Track(tracknr)

	tbuf.Bits(trackbuf.SpeedAvg, mfm.Raw, 16, aSync)
	tbuf.Bits(trackbuf.SpeedAvg, mfm.All, 8, 0x00)

	csum := mfm.AmigaDOSChecksum(ti.Dat)
	tbuf.Bytes(trackbuf.SpeedAvg, mfm.EvenOdd, 4, checksumBytes(csum))
	tbuf.Bytes(trackbuf.SpeedAvg, mfm.EvenOdd, len(ti.Dat), ti.Dat)
}
