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

// Package bitsrc adapts byte-packed flux capture and trackbuf.Buffer output
// into the one-bit-per-byte layout bitstream.Stream expects, so test
// fixtures and round-trip checks can be written in ordinary packed bytes.
package bitsrc

import (
	"github.com/xelalexv/mfmtrack/pkg/track/bitstream"
	"github.com/xelalexv/mfmtrack/pkg/track/trackbuf"
)

// FromPacked unpacks a byte-packed bit sequence (MSB first within each
// byte, nbits total) into bitstream.Stream's one-bit-per-byte form and
// wraps it in a new Stream.
func FromPacked(packed []byte, nbits int, indexPositions []int) *bitstream.Stream {

	bits := make([]byte, nbits)
	for i := 0; i < nbits; i++ {
		byteIdx := i / 8
		bitIdx := uint(7 - i%8)
		bits[i] = (packed[byteIdx] >> bitIdx) & 1
	}
	return bitstream.New(bits, indexPositions)
}

// FromBuffer wraps a trackbuf.Buffer's appended bits directly into a new
// Stream, for round-tripping a handler's encode output back through its
// decode side.
func FromBuffer(buf *trackbuf.Buffer, indexPositions []int) *bitstream.Stream {
	return bitstream.New(buf.RawBits(), indexPositions)
}

// FromBits wraps an already one-bit-per-byte slice (as produced by a test
// fixture built bit by bit) into a new Stream.
func FromBits(bits []byte, indexPositions []int) *bitstream.Stream {
	return bitstream.New(bits, indexPositions)
}
