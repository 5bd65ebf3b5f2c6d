// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relperm

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Pow implements a Brooks-Corey like power law: kr = seⁿ
type Pow struct {
	sr float64 // residual saturation
	n  float64 // exponent
}

// add model to factory
func init() {
	allocators["pow"] = func() Model { return new(Pow) }
}

// Init initialises this structure
func (o *Pow) Init(prms dbf.Params) (err error) {
	*o = Pow{}
	o.n = 3
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "sr":
			o.sr = p.V
		case "n":
			o.n = p.V
		default:
			return chk.Err("pow: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.sr < 0 || o.sr >= 1 || o.n <= 0 {
		return chk.Err("pow: invalid parameters. sr=%g n=%g", o.sr, o.n)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Pow) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "sr", V: 0.1},
			&dbf.P{N: "n", V: 3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "sr", V: o.sr},
		&dbf.P{N: "n", V: o.n},
	}
}

// Kr returns the relative permeability
func (o Pow) Kr(s float64) float64 { return math.Pow(effective(s, o.sr), o.n) }
