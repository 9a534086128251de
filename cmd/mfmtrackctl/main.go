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

package main

import (
	"fmt"
	"os"

	"github.com/xelalexv/mfmtrack/pkg/cli"
	"github.com/xelalexv/mfmtrack/pkg/run"
)

var Version string

func synopsis() {
	fmt.Print(`
synopsis: mfmtrackctl {decode|encode|list|version} ...

run 'mfmtrackctl {action} -h|--help' to see detailed info

`)
}

func version() {
	fmt.Printf("\nmfmtrack %s\n\n", Version)
}

func main() {

	var action string
	var args []string

	if len(os.Args) > 1 {
		action = os.Args[1]
	}
	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	switch action {

	case "decode":
		cli.DieOnError(run.NewDecode().Execute(args))

	case "encode":
		cli.DieOnError(run.NewEncode().Execute(args))

	case "list":
		cli.DieOnError(run.NewList().Execute(args))

	case "version":
		version()

	case "":
		fallthrough
	case "-h":
		fallthrough
	case "--help":
		synopsis()

	default:
		cli.Die("unknown action: %s\n", action)
	}
}
