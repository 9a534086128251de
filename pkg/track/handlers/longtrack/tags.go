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

// Package longtrack implements the copy-protection "long track" handler
// family (spec.md section 4.4.c): formats that check track length and/or
// a repeated filler between sync occurrences, rather than carrying real
// sector data.
package longtrack

const (
	ProtecTag            = "protec_longtrack"
	GremlinTag           = "gremlin_longtrack"
	TiertexTag           = "tiertex_longtrack"
	CrystalsOfArboreaTag = "crystals_of_arborea_longtrack"
	InfogramesTag        = "infogrames_longtrack"
	BatTag               = "bat_longtrack"
	AppTag               = "app_longtrack"
	SevenCitiesTag       = "sevencities_longtrack"
	EmptyTag             = "empty_longtrack"
)
