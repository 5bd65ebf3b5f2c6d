// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements kr = se where se is the effective saturation
type Lin struct {
	sr float64 // residual saturation
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises this structure
func (o *Lin) Init(prms dbf.Params) (err error) {
	*o = Lin{}
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "sr":
			o.sr = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.sr < 0 || o.sr >= 1 {
		return chk.Err("lin: residual saturation must be in [0,1). sr=%g is invalid", o.sr)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "sr", V: 0}}
	}
	return dbf.Params{&dbf.P{N: "sr", V: o.sr}}
}

// Kr returns the relative permeability
func (o Lin) Kr(s float64) float64 { return effective(s, o.sr) }
