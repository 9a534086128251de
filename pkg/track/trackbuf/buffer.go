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

// Package trackbuf implements the write-side counterpart of bitstream.Stream:
// a bit appender that handlers use to synthesize an MFM-encoded (or raw)
// track from a decoded payload, per spec.md section 4.3.
package trackbuf

import "github.com/xelalexv/mfmtrack/pkg/track/mfm"

// Speed carries a per-cell timing hint for downstream flux generation. It
// does not affect any bit-level semantics in this package.
type Speed int

const (
	SpeedAvg Speed = iota
	SpeedFast
	SpeedSlow
)

// Buffer appends raw bits, tracking the last physical bit written so that
// consecutive MFM-clocked fields stay adjacency-safe across calls.
type Buffer struct {
	bits    []byte
	lastBit byte
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// Bits appends the raw encoding of the low n bits of value under mode.
// For Raw, n raw bits are appended unchanged. For All/Odd/Even, n is the
// number of data bits and 2n raw (clock+data) bits are appended.
func (b *Buffer) Bits(speed Speed, mode mfm.Mode, n int, value uint64) {

	switch mode {

	case mfm.Raw:
		for i := n - 1; i >= 0; i-- {
			bit := byte((value >> uint(i)) & 1)
			b.bits = append(b.bits, bit)
			b.lastBit = bit
		}

	case mfm.All, mfm.Odd, mfm.Even:
		raw, last := mfm.EncodeBits(mode, value, n*2, b.lastBit)
		b.lastBit = last
		for i := n*2 - 1; i >= 0; i-- {
			b.bits = append(b.bits, byte((raw>>uint(i))&1))
		}

	default:
		panic("trackbuf: unsupported bit mode")
	}
}

// Bytes appends n bytes from src under mode (Raw or EvenOdd).
func (b *Buffer) Bytes(speed Speed, mode mfm.Mode, n int, src []byte) {

	switch mode {

	case mfm.Raw:
		for i := 0; i < n; i++ {
			b.Bits(speed, mfm.Raw, 8, uint64(src[i]))
		}

	case mfm.EvenOdd:
		encoded := mfm.EncodeBytes(mfm.EvenOdd, src[:n])
		for _, rb := range encoded {
			// EncodeBytes encodes each byte assuming a zero data bit
			// before it; clear the leading clock cell after a one.
			if b.lastBit == 1 {
				rb &^= 0x80
			}
			for i := 7; i >= 0; i-- {
				bit := (rb >> uint(i)) & 1
				b.bits = append(b.bits, bit)
				b.lastBit = bit
			}
		}

	default:
		panic("trackbuf: unsupported byte mode")
	}
}

// RawBits reports the appended raw bits, one byte (0 or 1) per bit, in
// write order - the layout a bitstream.Stream expects.
func (b *Buffer) RawBits() []byte {
	return b.bits
}

// Len returns the number of raw bits appended so far.
func (b *Buffer) Len() int {
	return len(b.bits)
}
