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

// Package disk implements the minimal in-memory container the handler
// framework is specified against: spec.md section 6 describes a "struct
// disk" exposing di->track[tracknr] as the only upstream interface the
// core consumes. The real container - the disk-image format, flux
// capture, and physical I/O - is explicitly out of scope (spec.md section
// 1); this stand-in exists so handlers can be driven end-to-end in tests
// and by the CLI without a real flux pipeline.
package disk

import "github.com/xelalexv/mfmtrack/pkg/track/trackinfo"

// Disk owns a fixed number of tracks, each a separate Info. Disk does no
// locking of its own; different tracks may be decoded concurrently as long
// as no two goroutines touch the same tracknr (spec.md section 5).
type Disk struct {
	Tracks []*trackinfo.Info
}

// New allocates a Disk with the given number of tracks, each starting out
// as an empty, unrecognised Info.
func New(nrTracks int) *Disk {
	d := &Disk{Tracks: make([]*trackinfo.Info, nrTracks)}
	for i := range d.Tracks {
		d.Tracks[i] = trackinfo.New("")
	}
	return d
}

// Track returns the Info for tracknr. Out-of-range tracknr is a
// programmer error (spec.md section 7) and panics.
func (d *Disk) Track(tracknr int) *trackinfo.Info {
	if tracknr < 0 || tracknr >= len(d.Tracks) {
		panic("disk: tracknr out of range")
	}
	return d.Tracks[tracknr]
}
