// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Cache defines the global flux variables cache
type Cache interface {
	Update() error                // Update fills all stale entries
	Invalidate()                  // Invalidate marks all entries as stale; e.g. new solution or new mesh
	Get(scvf int) (*Entry, error) // Get returns the flux variables of scvf
	Stats() Stats                 // Stats returns the fill statistics
}

// New returns an eager cache if cacheGlobally is true; a lazy one otherwise
func New(cacheGlobally bool, filler *Filler) Cache {
	if cacheGlobally {
		return NewEager(filler)
	}
	return NewLazy(filler)
}

// Eager stores one entry per scvf; each interaction volume is solved once per pass
type Eager struct {
	Filler  *Filler  // filler
	Verbose bool     // show statistics of fill passes
	entries []*Entry // one per scvf
}

// NewEager returns a new eager cache
func NewEager(filler *Filler) (o *Eager) {
	o = &Eager{Filler: filler}
	o.entries = make([]*Entry, len(filler.G.Scvfs))
	for i := range o.entries {
		o.entries[i] = new(Entry)
	}
	return
}

func (o *Eager) writer(scvf int) Writer { return Writer{o.entries[scvf]} }

// Fill fills the entry of scvf (and all entries of its interaction volume) if it is stale
func (o *Eager) Fill(scvf int) error {
	if o.entries[scvf].updated {
		return nil
	}
	return o.Filler.Fill(scvf, o.writer)
}

// Update traverses the cells and fills all stale entries
func (o *Eager) Update() (err error) {
	before := o.Filler.Stats()
	ghost := o.Filler.GhostCells
	for c, scvfs := range o.Filler.G.CellScvfs {
		if ghost != nil && ghost[c] {
			continue
		}
		for _, idx := range scvfs {
			err = o.Fill(idx)
			if err != nil {
				return chk.Err("cannot fill flux variables of scvf %d (cell %d):\n%v", idx, c, err)
			}
		}
	}
	if o.Verbose {
		after := o.Filler.Stats()
		io.Pfcyan("flux variables: %d local systems solved, %d scvfs written\n", after.IvSolves-before.IvSolves, after.Writes-before.Writes)
	}
	return
}

// Invalidate marks all entries as stale
func (o *Eager) Invalidate() {
	for _, e := range o.entries {
		e.reset()
	}
}

// Get returns the entry of scvf
//  Note: reading a stale entry is a programming error
func (o *Eager) Get(scvf int) (*Entry, error) {
	e := o.entries[scvf]
	if !e.updated {
		chk.Panic("flux variables of scvf %d are stale; Update must be called first", scvf)
	}
	return e, nil
}

// Stats returns the fill statistics
func (o *Eager) Stats() Stats { return o.Filler.Stats() }

// Lazy stores nothing; each Get solves the interaction volume of the scvf
type Lazy struct {
	Filler *Filler // filler
}

// NewLazy returns a new lazy cache
func NewLazy(filler *Filler) *Lazy { return &Lazy{Filler: filler} }

// Update does nothing
func (o *Lazy) Update() error { return nil }

// Invalidate does nothing
func (o *Lazy) Invalidate() {}

// Get solves the interaction volume of scvf and returns a fresh entry
func (o *Lazy) Get(scvf int) (e *Entry, err error) {
	entries := make(map[int]*Entry)
	err = o.Filler.Fill(scvf, func(idx int) Writer {
		if entries[idx] == nil {
			entries[idx] = new(Entry)
		}
		return Writer{entries[idx]}
	})
	if err != nil {
		return nil, chk.Err("cannot compute flux variables of scvf %d:\n%v", scvf, err)
	}
	return entries[scvf], nil
}

// Stats returns the fill statistics
func (o *Lazy) Stats() Stats { return o.Filler.Stats() }
