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

// Package mfm implements the pure encode/decode primitives for Amiga-style
// MFM bit streams: clock-bit stripping/insertion, the even/odd interleaved
// byte layout used by AmigaDOS-derived formats, and the AmigaDOS checksum.
package mfm

// Mode describes how a raw bit-stream value maps onto decoded data bits.
type Mode int

const (
	// Raw values are read/written bit-for-bit, with no MFM clock bits -
	// used for sync words, which are deliberately illegal MFM patterns.
	Raw Mode = iota

	// All decodes/encodes every bit of a word as ordinary MFM: each data
	// bit is paired with one clock bit.
	All

	// Odd selects the data bits that occupy the "even" raw bit positions
	// of an MFM-encoded nibble/word (Amiga's first interleave half).
	Odd

	// Even selects the data bits that occupy the "odd" raw bit positions
	// of an MFM-encoded nibble/word (Amiga's second interleave half).
	Even

	// EvenOdd is a byte-buffer-only mode: n decoded bytes are carried by
	// 2n encoded bytes, the first n holding the even-position data bits
	// of every decoded byte, the next n holding the odd-position bits.
	EvenOdd
)

func (m Mode) String() string {
	switch m {
	case Raw:
		return "raw"
	case All:
		return "mfm_all"
	case Odd:
		return "mfm_odd"
	case Even:
		return "mfm_even"
	case EvenOdd:
		return "mfm_even_odd"
	default:
		return "<unknown mfm mode>"
	}
}
