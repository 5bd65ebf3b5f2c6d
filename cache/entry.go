// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cache implements the flux variables cache: transmissibilities of all scvfs
// computed by interaction volumes and stored (eager) or recomputed on demand (lazy)
package cache

import "github.com/cpmech/gosl/chk"

// Record holds the transmissibilities of one quantity at one scvf
type Record struct {
	Stencil []int     // dofs: cells and ghosts of Dirichlet faces
	Tij     []float64 // coefficients aligned with Stencil
	Neumann float64   // flux due to Neumann conditions
}

// Flux returns Σ t・u + neumann where value returns the value of a dof
func (o *Record) Flux(value func(dof int) float64) (q float64) {
	for k, d := range o.Stencil {
		q += o.Tij[k] * value(d)
	}
	return q + o.Neumann
}

// Entry holds the flux variables of one scvf
type Entry struct {
	updated    bool
	adv        *Record     // advection (permeability)
	advNeumann []float64   // Neumann flux of each phase
	diff       [][]*Record // diffusion [phase][comp]; nil for the main component of a phase
	heat       *Record     // heat conduction
}

// Updated tells whether the entry has been filled since the last invalidation
func (o *Entry) Updated() bool { return o.updated }

// Advection returns the transmissibilities of advective fluxes
func (o *Entry) Advection() *Record { return o.adv }

// AdvNeumann returns the Neumann flux of phase α
func (o *Entry) AdvNeumann(α int) float64 {
	if α < len(o.advNeumann) {
		return o.advNeumann[α]
	}
	return 0
}

// Diffusion returns the transmissibilities of component κ in phase α; nil if not computed
func (o *Entry) Diffusion(α, κ int) *Record {
	if α < len(o.diff) && κ < len(o.diff[α]) {
		return o.diff[α][κ]
	}
	return nil
}

// Conduction returns the transmissibilities of heat conduction; nil if not computed
func (o *Entry) Conduction() *Record { return o.heat }

// Writer is the mutation handle of an entry, given to the filler only
type Writer struct {
	e *Entry
}

// SetAdvection sets the advective transmissibilities
func (o Writer) SetAdvection(stencil []int, tij []float64) {
	o.e.adv = &Record{Stencil: stencil, Tij: tij}
}

// SetAdvNeumann sets the Neumann flux of phase α
func (o Writer) SetAdvNeumann(nphases, α int, value float64) {
	if len(o.e.advNeumann) != nphases {
		o.e.advNeumann = make([]float64, nphases)
	}
	o.e.advNeumann[α] = value
}

// SetDiffusion sets the transmissibilities of component κ in phase α
func (o Writer) SetDiffusion(nphases, ncomps, α, κ int, rec *Record) {
	if len(o.e.diff) != nphases {
		o.e.diff = make([][]*Record, nphases)
	}
	if len(o.e.diff[α]) != ncomps {
		o.e.diff[α] = make([]*Record, ncomps)
	}
	o.e.diff[α][κ] = rec
}

// SetConduction sets the transmissibilities of heat conduction
func (o Writer) SetConduction(rec *Record) { o.e.heat = rec }

// MarkUpdated marks the entry as filled
func (o Writer) MarkUpdated() {
	if o.e.updated {
		chk.Panic("cache entry has already been filled")
	}
	o.e.updated = true
}

// reset makes the entry stale
func (o *Entry) reset() {
	o.updated = false
	o.adv = nil
	for α := range o.advNeumann {
		o.advNeumann[α] = 0
	}
	o.diff = nil
	o.heat = nil
}
