// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package relperm implements relative permeability models
package relperm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines relative permeability models
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Kr(s float64) float64            // Kr returns the relative permeability given the phase saturation
}

// New relative permeability model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'relperm' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// effective returns the effective saturation clamped to [0,1]
func effective(s, sr float64) float64 {
	if sr >= 1 {
		return 0
	}
	se := (s - sr) / (1 - sr)
	if se < 0 {
		return 0
	}
	if se > 1 {
		return 1
	}
	return se
}
