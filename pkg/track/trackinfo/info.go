/*
   mfmtrack - Amiga floppy track-handler framework
   Copyright (c) 2026

   This file is part of mfmtrack.

   mfmtrack is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   mfmtrack is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with mfmtrack. If not, see <http://www.gnu.org/licenses/>.
*/

// Package trackinfo defines the per-track metadata and owned payload a
// handler's decode operation produces, per spec.md section 3.
package trackinfo

// Info is the canonical per-track record. A handler's decode op allocates,
// populates and returns a new Info; it does not write into the Info the
// disk container already holds for that tracknr.
type Info struct {
	// Type is the tag of the handler that produced (or should attempt to
	// produce) this track's payload.
	Type string

	// Dat is the owned, decoded payload. It is non-nil whenever
	// ValidSectors != 0; some handlers also set it with ValidSectors zero.
	Dat []byte

	// NrSectors and BytesPerSector describe the logical layout; Len is
	// normally NrSectors*BytesPerSector but a handler may override it
	// (long-track protections carry a tiny or empty payload).
	NrSectors      int
	BytesPerSector int

	// ValidSectors is a bitmask of sectors successfully recovered.
	ValidSectors uint32

	// DataBitoff is the raw-bit offset from index where the sync mark
	// begins; it informs re-encode alignment.
	DataBitoff int

	// TotalBits is the raw-bit length to use when re-encoding. Some
	// formats are intentionally over-long (copy-protection long tracks).
	TotalBits int
}

// New allocates an empty Info for the given handler tag.
func New(typ string) *Info {
	return &Info{Type: typ}
}

// Len returns len(Dat).
func (i *Info) Len() int {
	return len(i.Dat)
}

// Validate checks the invariants spec.md section 3 places on a populated
// Info. It is meant for tests and defensive assertions, not for the hot
// decode path.
func (i *Info) Validate() error {

	if i.ValidSectors != 0 && i.Dat == nil {
		return errInvalid("valid_sectors set but dat is nil")
	}

	if i.TotalBits > 0 && i.DataBitoff >= i.TotalBits {
		return errInvalid("data_bitoff must be less than total_bits")
	}

	return nil
}

type errInvalid string

func (e errInvalid) Error() string { return "trackinfo: " + string(e) }
