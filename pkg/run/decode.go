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
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/xelalexv/mfmtrack/pkg/cli"
	"github.com/xelalexv/mfmtrack/pkg/track/bitstream"
	"github.com/xelalexv/mfmtrack/pkg/track/bitsrc"
	"github.com/xelalexv/mfmtrack/pkg/track/catalog"
	"github.com/xelalexv/mfmtrack/pkg/track/disk"
)

// NewDecode creates the decode subcommand.
func NewDecode() *Decode {

	d := &Decode{}
	d.Command = *cli.NewCommand(
		"decode -i|--input {file} -n|--bits {n} [-t|--type {tag}]",
		"decode a raw-bit track capture",
		"\nRead a packed raw-bit track capture and either apply the named "+
			"handler or, when --type is omitted, try every registered "+
			"handler in order and report the first one that recognises "+
			"the track.", "", "", d.Run)

	d.AddSetting(&d.Input, "input", "i", "", nil, "raw-bit capture file", true)
	d.AddSetting(&d.Bits, "bits", "n", "", nil, "number of raw bits in the capture", true)
	d.AddSetting(&d.Type, "type", "t", "", "", "track type tag to decode as", false)

	return d
}

// Decode implements 'mfmtrackctl decode'.
type Decode struct {
	cli.Command
	Input string
	Bits  int
	Type  string
}

// Run executes the decode subcommand.
func (d *Decode) Run() error {

	d.ParseSettings()

	packed, err := ioutil.ReadFile(d.Input)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", d.Input, err)
	}

	dk := disk.New(1)
	newStream := func() *bitstream.Stream {
		return bitsrc.FromPacked(packed, d.Bits, nil)
	}

	if d.Type != "" {
		info := catalog.Default.Get(d.Type).Decode(dk, 0, newStream())
		if info == nil {
			return fmt.Errorf("track did not match handler %s", d.Type)
		}
		return printInfo(d.Type, info)
	}

	tag, info := catalog.Default.Infer(dk, 0, newStream)
	if info == nil {
		return fmt.Errorf("no registered handler recognised this track")
	}
	return printInfo(tag, info)
}

func printInfo(tag string, info interface{}) error {
	b, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("type: %s\n%s\n", tag, b)
	return nil
}
