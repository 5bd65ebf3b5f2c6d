// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vars

import (
	"testing"

	"github.com/m-giraud/dumux3.0-sub000/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_vars01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vars01. volume variables from models")

	sim, err := inp.ReadSim("../inp/data/quad2x2.sim")
	require.NoError(tst, err)
	mdls, err := NewModels(sim, sim.CellData(-1))
	require.NoError(tst, err)
	assert.Nil(tst, mdls.Diffu)
	assert.Nil(tst, mdls.Relperm)

	var vv VolVars
	mdls.Calc(&vv, []float64{0.3})
	chk.Float64(tst, "p", 1e-15, vv.P[0], 0.3)
	chk.Float64(tst, "rho", 1e-15, vv.Rho[0], 1)
	chk.Float64(tst, "λ", 1e-15, vv.Mobility(0), 1)
	chk.Float64(tst, "phi", 1e-15, vv.Phi, 0.3)
	chk.Float64(tst, "ext", 1e-15, vv.Extrusion, 1)
	chk.Deep2(tst, "K", 1e-15, vv.K, [][]float64{{1, 0}, {0, 1}})

	// copies are independent
	cpy := vv.GetCopy()
	cpy.K[0][1] = 123
	cpy.P[0] = -1
	chk.Float64(tst, "K01", 1e-15, vv.K[0][1], 0)
	chk.Float64(tst, "p", 1e-15, vv.P[0], 0.3)

	// provider
	states := States{&vv, cpy}
	chk.Float64(tst, "p1", 1e-15, states.VolVars(1).P[0], -1)

	// missing material
	cd := *sim.CellData(-1)
	cd.Perm = "rock"
	_, err = NewModels(sim, &cd)
	assert.Error(tst, err)
}
