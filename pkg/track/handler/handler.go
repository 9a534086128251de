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

// Package handler defines the four-operation contract every named track
// format implements, per spec.md section 4.4. The source expresses this as
// a table of function pointers; a Go Handler is the same shape, a value
// holding up to four optional funcs rather than a dynamic method table
// (spec.md section 9's stated preference for "tagged variants ... over
// dynamic method tables when the target language supports it statically").
package handler

import (
	"github.com/xelalexv/mfmtrack/pkg/track/bitstream"
	"github.com/xelalexv/mfmtrack/pkg/track/disk"
	"github.com/xelalexv/mfmtrack/pkg/track/trackbuf"
	"github.com/xelalexv/mfmtrack/pkg/track/trackinfo"
)

// DecodeFunc scans stream for a format's sync and payload; on success it
// returns a newly populated trackinfo.Info, having set DataBitoff,
// ValidSectors and optionally TotalBits. It returns nil on failure -
// "not recognised" and "stream exhausted mid-record" share this return
// (spec.md section 7).
type DecodeFunc func(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info

// EncodeFunc emits the track's bits into tbuf from the stored payload.
type EncodeFunc func(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer)

// Handler is an immutable descriptor for one named track-type. Any of the
// four operations may be nil; a format built on MFM-encoded data sets
// WriteMFM/ReadMFM, a format whose signature is structural (long-track
// protections) sets WriteRaw/ReadRaw.
type Handler struct {
	Tag string

	BytesPerSector int
	NrSectors      int

	WriteMFM DecodeFunc
	ReadMFM  EncodeFunc
	WriteRaw DecodeFunc
	ReadRaw  EncodeFunc
}

// Decode runs whichever of WriteMFM/WriteRaw this handler implements.
func (h *Handler) Decode(d *disk.Disk, tracknr int, s *bitstream.Stream) *trackinfo.Info {
	switch {
	case h.WriteMFM != nil:
		return h.WriteMFM(d, tracknr, s)
	case h.WriteRaw != nil:
		return h.WriteRaw(d, tracknr, s)
	default:
		panic("handler: " + h.Tag + " has no decode operation")
	}
}

// Encode runs whichever of ReadMFM/ReadRaw this handler implements.
func (h *Handler) Encode(d *disk.Disk, tracknr int, tbuf *trackbuf.Buffer) {
	switch {
	case h.ReadMFM != nil:
		h.ReadMFM(d, tracknr, tbuf)
	case h.ReadRaw != nil:
		h.ReadRaw(d, tracknr, tbuf)
	default:
		panic("handler: " + h.Tag + " has no encode operation")
	}
}
