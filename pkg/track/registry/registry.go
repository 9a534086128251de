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

// Package registry implements the dense tag-to-handler lookup described in
// spec.md section 4.5: process-wide, built once, read-only thereafter, and
// able to drive type inference by trying handlers in a fixed order.
package registry

import (
	log "github.com/sirupsen/logrus"

	"github.com/xelalexv/mfmtrack/pkg/track/bitstream"
	"github.com/xelalexv/mfmtrack/pkg/track/disk"
	"github.com/xelalexv/mfmtrack/pkg/track/handler"
	"github.com/xelalexv/mfmtrack/pkg/track/trackinfo"
)

// Registry maps a track-type tag to its Handler, preserving registration
// order for inference scans.
type Registry struct {
	byTag  map[string]*handler.Handler
	order  []string
	sealed bool
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byTag: make(map[string]*handler.Handler)}
}

// Register adds h, keyed by h.Tag. Order matters: weaker patterns (e.g.
// empty_longtrack) must be registered last, since Infer tries handlers in
// registration order and accepts the first match. Register panics if
// called after Seal, or with a tag already registered.
func (r *Registry) Register(h *handler.Handler) {

	if r.sealed {
		panic("registry: cannot register after Seal")
	}
	if _, exists := r.byTag[h.Tag]; exists {
		panic("registry: duplicate tag " + h.Tag)
	}

	r.byTag[h.Tag] = h
	r.order = append(r.order, h.Tag)

	log.WithField("tag", h.Tag).Debug("registered track handler")
}

// Seal marks the registry read-only. Startup code calls this once every
// handler is registered.
func (r *Registry) Seal() {
	r.sealed = true
}

// Get looks up a handler by tag. An unknown tag is a programmer error
// (spec.md section 7: the caller is expected to know the track's type a
// priori, or to have obtained the tag from Infer).
func (r *Registry) Get(tag string) *handler.Handler {
	h, ok := r.byTag[tag]
	if !ok {
		panic("registry: unknown track type tag " + tag)
	}
	return h
}

// Tags returns the registered tags in registration order.
func (r *Registry) Tags() []string {
	return append([]string(nil), r.order...)
}

// Infer tries every registered handler, in registration order, against a
// fresh stream obtained from newStream for each attempt (a bitstream.Stream
// is a single-use cursor - spec.md section 5). It returns the tag and
// Info of the first handler that returns a non-nil payload, or ("", nil)
// if none match.
func (r *Registry) Infer(
	d *disk.Disk, tracknr int, newStream func() *bitstream.Stream,
) (string, *trackinfo.Info) {

	for _, tag := range r.order {
		h := r.byTag[tag]
		s := newStream()

		log.WithFields(log.Fields{
			"tag": tag, "tracknr": tracknr,
		}).Trace("trying handler")

		if info := h.Decode(d, tracknr, s); info != nil {
			log.WithFields(log.Fields{
				"tag": tag, "tracknr": tracknr,
			}).Debug("handler recognised track")
			return tag, info
		}
	}

	return "", nil
}
