// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package perm implements models for the intrinsic permeability tensor
package perm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines permeability models
type Model interface {
	Init(ndim int, prms dbf.Params) error // Init initialises this structure
	GetPrms(example bool) dbf.Params      // gets (an example) of parameters
	Kten(kten [][]float64, phi float64)   // Kten computes the permeability tensor given the porosity
}

// New permeability model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'perm' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
