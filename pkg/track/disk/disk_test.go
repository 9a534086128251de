package disk

import "testing"

func TestNewAllocatesEmptyTracks(t *testing.T) {
	d := New(3)
	if len(d.Tracks) != 3 {
		t.Fatalf("got %d tracks, want 3", len(d.Tracks))
	}
	for i, ti := range d.Tracks {
		if ti == nil {
			t.Fatalf("track %d is nil", i)
		}
		if ti.Dat != nil {
			t.Fatalf("track %d expected nil Dat, got %v", i, ti.Dat)
		}
	}
}

func TestTrackOutOfRangePanics(t *testing.T) {
	d := New(2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range tracknr")
		}
	}()
	d.Track(2)
}
