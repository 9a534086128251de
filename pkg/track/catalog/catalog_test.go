package catalog

import (
	"testing"

	"github.com/xelalexv/mfmtrack/pkg/track/handlers/longtrack"
	"github.com/xelalexv/mfmtrack/pkg/track/handlers/rtype"
)

func TestDefaultRegistersEveryHandler(t *testing.T) {

	want := []string{
		rtype.ATag, rtype.BTag,
		longtrack.ProtecTag, longtrack.BatTag, longtrack.AppTag,
		longtrack.CrystalsOfArboreaTag, longtrack.InfogramesTag,
		longtrack.GremlinTag, longtrack.TiertexTag,
		longtrack.SevenCitiesTag, longtrack.EmptyTag,
	}

	tags := Default.Tags()
	if len(tags) != len(want) {
		t.Fatalf("got %d tags, want %d: %v", len(tags), len(want), tags)
	}
	for i, w := range want {
		if tags[i] != w {
			t.Fatalf("tags[%d] = %q, want %q", i, tags[i], w)
		}
	}
}

func TestEmptyLongtrackIsLast(t *testing.T) {
	tags := Default.Tags()
	if tags[len(tags)-1] != longtrack.EmptyTag {
		t.Fatalf("empty_longtrack must be registered last, got order %v", tags)
	}
}
