package registry

import (
	"testing"

	"github.com/xelalexv/mfmtrack/pkg/track/bitstream"
	"github.com/xelalexv/mfmtrack/pkg/track/disk"
	"github.com/xelalexv/mfmtrack/pkg/track/handler"
	"github.com/xelalexv/mfmtrack/pkg/track/trackinfo"
)

func alwaysMatch(tag string) *handler.Handler {
	return &handler.Handler{
		Tag: tag,
		WriteRaw: func(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {
			return trackinfo.New(tag)
		},
	}
}

func neverMatch(tag string) *handler.Handler {
	return &handler.Handler{
		Tag: tag,
		WriteRaw: func(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {
			return nil
		},
	}
}

func TestInferTriesInRegistrationOrder(t *testing.T) {

	r := New()
	r.Register(neverMatch("a"))
	r.Register(alwaysMatch("b"))
	r.Register(alwaysMatch("c"))
	r.Seal()

	dk := disk.New(1)
	newStream := func() *bitstream.Stream { return bitstream.New(nil, nil) }

	tag, info := r.Infer(dk, 0, newStream)
	if tag != "b" || info == nil {
		t.Fatalf("expected first matching handler b, got tag=%q info=%v", tag, info)
	}
}

func TestInferReturnsEmptyWhenNoneMatch(t *testing.T) {

	r := New()
	r.Register(neverMatch("a"))
	r.Seal()

	dk := disk.New(1)
	newStream := func() *bitstream.Stream { return bitstream.New(nil, nil) }

	tag, info := r.Infer(dk, 0, newStream)
	if tag != "" || info != nil {
		t.Fatalf("expected no match, got tag=%q info=%v", tag, info)
	}
}

func TestRegisterAfterSealPanics(t *testing.T) {
	r := New()
	r.Seal()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic registering after Seal")
		}
	}()
	r.Register(alwaysMatch("a"))
}

func TestRegisterDuplicateTagPanics(t *testing.T) {
	r := New()
	r.Register(alwaysMatch("a"))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate tag")
		}
	}()
	r.Register(alwaysMatch("a"))
}

func TestGetUnknownTagPanics(t *testing.T) {
	r := New()
	r.Seal()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown tag")
		}
	}()
	r.Get("nonexistent")
}

func TestTagsPreservesOrder(t *testing.T) {
	r := New()
	r.Register(alwaysMatch("a"))
	r.Register(alwaysMatch("b"))
	r.Register(alwaysMatch("c"))

	tags := r.Tags()
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if tags[i] != w {
			t.Fatalf("tags[%d] = %q, want %q", i, tags[i], w)
		}
	}
}
