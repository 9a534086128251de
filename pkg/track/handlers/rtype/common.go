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

// Package rtype implements the two R-Type data-track variants (spec.md
// section 4.4.b): ordinary MFM-encoded sector data distinguishing them
// from the structural long-track protections in the sibling longtrack
// package.
package rtype

import (
	"encoding/binary"

	"github.com/xelalexv/mfmtrack/pkg/track/bitstream"
	"github.com/xelalexv/mfmtrack/pkg/track/mfm"
)

// readAllByte reads one MFM-encoded byte (16 raw bits, mfm.All) from s.
func readAllByte(s *bitstream.Stream) (byte, bool) {
	if end := s.NextBits(16); end {
		return 0, true
	}
	return byte(mfm.DecodeBits(mfm.All, uint64(s.Word()&0xffff), 16)), false
}

// readEvenOdd reads n decoded bytes from 2n raw bytes encoded with
// mfm.EvenOdd.
func readEvenOdd(s *bitstream.Stream, n int) ([]byte, bool) {
	raw := make([]byte, 2*n)
	if end := s.NextBytes(raw); end {
		return nil, true
	}
	return mfm.DecodeBytes(mfm.EvenOdd, n, raw), false
}

// checksumBytes renders csum as the 4-byte big-endian longword AmigaDOS
// checksums are conventionally stored as.
func checksumBytes(csum uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, csum)
	return buf
}

// maskedChecksum applies the even-bit/odd-bit masking convention spec.md
// section 8 property 6 documents: callers, not the checksum primitive
// itself, decide which bits of a computed checksum actually matter.
func maskedChecksum(csum uint32) uint32 {
	return (csum & mfm.EvenBitMask) | mfm.OddBitMask
}
