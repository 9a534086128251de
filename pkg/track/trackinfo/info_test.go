package trackinfo

import "testing"

func TestValidateValidSectorsRequiresDat(t *testing.T) {
	i := New("x")
	i.ValidSectors = 1
	if err := i.Validate(); err == nil {
		t.Fatal("expected error: valid_sectors set but dat nil")
	}
	i.Dat = []byte{0x00}
	if err := i.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateDataBitoffMustBeLessThanTotalBits(t *testing.T) {
	i := New("x")
	i.TotalBits = 100
	i.DataBitoff = 100
	if err := i.Validate(); err == nil {
		t.Fatal("expected error: data_bitoff >= total_bits")
	}
	i.DataBitoff = 99
	if err := i.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLen(t *testing.T) {
	i := New("x")
	i.Dat = []byte{1, 2, 3}
	if i.Len() != 3 {
		t.Fatalf("got %d, want 3", i.Len())
	}
}
