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

// Package catalog wires every known handler into a single sealed Registry,
// in the order spec.md section 4.5 requires: real data-track formats
// first, then the structural long-track protections from most to least
// specific, with empty_longtrack registered last since it would also
// match anything ahead of it.
package catalog

import (
	"github.com/xelalexv/mfmtrack/pkg/track/handlers/longtrack"
	"github.com/xelalexv/mfmtrack/pkg/track/handlers/rtype"
	"github.com/xelalexv/mfmtrack/pkg/track/registry"
)

// Default is the process-wide registry used by callers that don't need a
// custom handler set.
var Default = New()

// New builds and seals a Registry containing every handler this module
// implements. Most callers use Default; New exists for tests that want an
// isolated registry or a subset of handlers.
func New() *registry.Registry {
	r := registry.New()

	r.Register(rtype.A())
	r.Register(rtype.B())

	r.Register(longtrack.Protec())
	r.Register(longtrack.Bat())
	r.Register(longtrack.App())
	r.Register(longtrack.CrystalsOfArborea())
	r.Register(longtrack.Infogrames())
	r.Register(longtrack.Gremlin())
	r.Register(longtrack.Tiertex())
	r.Register(longtrack.SevenCities())
	r.Register(longtrack.Empty())

	r.Seal()
	return r
}
