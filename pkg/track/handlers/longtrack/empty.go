package longtrack

import (
	"github.com/xelalexv/mfmtrack/pkg/track/bitstream"
	"github.com/xelalexv/mfmtrack/pkg/track/disk"
	"github.com/xelalexv/mfmtrack/pkg/track/handler"
	"github.com/xelalexv/mfmtrack/pkg/track/trackbuf"
	"github.com/xelalexv/mfmtrack/pkg/track/trackinfo"
)

const (
	emptyMinBits   = 105000
	emptyTotalBits = 110000
)

// Empty implements empty_longtrack, the catch-all for a revolution that
// carries no recognisable sync at all but is still long enough to be a
// deliberate protection track rather than a read error. It performs no
// sync scan, only the length check, and must be registered after every
// other handler in this package (spec.md section 4.5): a real sync-bearing
// track would also satisfy the length check.
func Empty() *handler.Handler {
	return &handler.Handler{
		Tag:      EmptyTag,
		WriteRaw: emptyWriteRaw,
		ReadRaw:  emptyReadRaw,
	}
}

func emptyWriteRaw(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {

	if !checkLength(s, emptyMinBits) {
		return nil
	}

	ti := trackinfo.New(EmptyTag)
	ti.TotalBits = emptyTotalBits
	ti.DataBitoff = emptyTotalBits / 2
	return ti
}

func emptyReadRaw(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer) {
	// empty_longtrack carries no payload; nothing to emit but the
	// revolution's worth of flux the format layer pads tracks to anyway.
}
