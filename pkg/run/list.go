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

	"github.com/xelalexv/mfmtrack/pkg/cli"
	"github.com/xelalexv/mfmtrack/pkg/track/catalog"
)

// NewList creates the list subcommand.
func NewList() *List {
	l := &List{}
	l.Command = *cli.NewCommand("list", "list registered track type tags",
		"\nPrint every track type tag registered in the default catalog, "+
			"in the order handlers are tried during type inference.",
		"", "", l.Run)
	return l
}

// List implements 'mfmtrackctl list'.
type List struct {
	cli.Command
}

// Run executes the list subcommand.
func (l *List) Run() error {
	l.ParseSettings()
	for _, tag := range catalog.Default.Tags() {
		fmt.Println(tag)
	}
	return nil
}
