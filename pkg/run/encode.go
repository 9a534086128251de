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

package run

import (
	"fmt"
	"io/ioutil"

	"github.com/xelalexv/mfmtrack/pkg/cli"
	"github.com/xelalexv/mfmtrack/pkg/track/catalog"
	"github.com/xelalexv/mfmtrack/pkg/track/disk"
	"github.com/xelalexv/mfmtrack/pkg/track/trackbuf"
)

// NewEncode creates the encode subcommand.
func NewEncode() *Encode {

	e := &Encode{}
	e.Command = *cli.NewCommand(
		"encode -t|--type {tag} -i|--input {file} -o|--output {file}",
		"encode a payload into a raw-bit track",
		"\nRead a decoded payload and re-encode it as the raw MFM (or "+
			"structural) bit stream the named handler produces, writing "+
			"the result packed MSB-first to the output file.", "", "",
		e.Run)

	e.AddSetting(&e.Type, "type", "t", "", nil, "track type tag to encode", true)
	e.AddSetting(&e.Input, "input", "i", "", "", "decoded payload file", false)
	e.AddSetting(&e.Output, "output", "o", "", nil, "raw-bit output file", true)

	return e
}

// Encode implements 'mfmtrackctl encode'.
type Encode struct {
	cli.Command
	Type   string
	Input  string
	Output string
}

// Run executes the encode subcommand.
func (e *Encode) Run() error {

	e.ParseSettings()

	dk := disk.New(1)

	if e.Input != "" {
		dat, err := ioutil.ReadFile(e.Input)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", e.Input, err)
		}
		dk.Track(0).Dat = dat
	}

	tbuf := trackbuf.New()
	catalog.Default.Get(e.Type).Encode(dk, 0, tbuf)

	if err := ioutil.WriteFile(e.Output, packBits(tbuf.RawBits()), 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", e.Output, err)
	}

	fmt.Printf("wrote %d raw bits to %s\n", tbuf.Len(), e.Output)
	return nil
}

// packBits packs a one-bit-per-byte slice (as produced by trackbuf.Buffer)
// MSB-first into ordinary bytes, zero-padding the final byte if needed.
func packBits(bits []byte) []byte {

	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}
