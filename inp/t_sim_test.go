// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkQuad2x2(tst *testing.T, sim *Simulation) {
	chk.IntAssert(sim.Ndim, 2)
	chk.IntAssert(sim.Eqs.Neq(), 1)
	chk.Float64(tst, "upwind", 1e-15, sim.Mpfa.Upwind, 0.5)
	assert.True(tst, sim.Mpfa.CacheGlobally)
	assert.NotNil(tst, sim.Materials.Get("sand").Perm)
	assert.NotNil(tst, sim.Materials.Get("water").Fluid)
	assert.Equal(tst, "sand", sim.CellData(-1).Perm)
	chk.Float64(tst, "extrusion", 1e-15, sim.CellData(-1).Extrusion, 1)

	types, err := sim.BcTypes(-10)
	require.NoError(tst, err)
	assert.Equal(tst, BcTypes{BcDirichlet}, types)
	types, err = sim.BcTypes(-21)
	require.NoError(tst, err)
	assert.Equal(tst, BcTypes{BcNeumann}, types)
	chk.Float64(tst, "p(left)", 1e-15, sim.BcValue(-10, 0, 0, []float64{0, 0.25}), 1)
	chk.Float64(tst, "p(right)", 1e-15, sim.BcValue(-11, 0, 0, []float64{1, 0.25}), 0)

	_, err = sim.BcTypes(-99)
	assert.Error(tst, err)
}

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. json")

	sim, err := ReadSim("data/quad2x2.sim")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("key = %v\n", sim.Key)
	assert.Equal(tst, "quad2x2", sim.Key)
	checkQuad2x2(tst, sim)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. yaml")

	sim, err := ReadSim("data/quad2x2.yaml")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	checkQuad2x2(tst, sim)
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. equations and keys")

	eqs := EqLayout{Nphases: 2, Ncomps: 2, Heat: true}
	chk.IntAssert(eqs.Neq(), 7)
	chk.IntAssert(eqs.Diffusion(1, 0), 4)
	chk.IntAssert(eqs.HeatEq(), 6)

	for eq := 0; eq < eqs.Neq(); eq++ {
		e, typ, err := eqs.Parse(eqs.Key(eq))
		require.NoError(tst, err)
		chk.IntAssert(e, eq)
		assert.Equal(tst, BcDirichlet, typ)
	}

	eq, typ, err := eqs.Parse("j10")
	require.NoError(tst, err)
	chk.IntAssert(eq, 4)
	assert.Equal(tst, BcNeumann, typ)

	for _, bad := range []string{"p2", "x22", "w0", "j1"} {
		_, _, err = eqs.Parse(bad)
		assert.Error(tst, err, bad)
	}
	_, _, err = EqLayout{Nphases: 1}.Parse("T")
	assert.Error(tst, err)

	q, upw, cache := GetMpfaFlags(0, 1, true, "!q:0.25 !cache:0")
	chk.Float64(tst, "q", 1e-15, q, 0.25)
	chk.Float64(tst, "upw", 1e-15, upw, 1)
	assert.False(tst, cache)
}

func Test_sim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim04. invalid input")

	msh, err := GenQuads(1, 1, 1, 1)
	require.NoError(tst, err)

	sim := &Simulation{Msh: msh}
	sim.Mpfa.SetDefault()
	sim.Materials = MatsData{{Name: "sand", Type: "perm", Model: "nothing"}}
	assert.Error(tst, sim.PostProcess(), "unknown model")

	sim = &Simulation{Msh: msh}
	sim.Mpfa.SetDefault()
	sim.Mpfa.Q = 1
	assert.Error(tst, sim.PostProcess(), "q out of range")

	sim = &Simulation{Msh: msh}
	sim.Mpfa.SetDefault()
	assert.Error(tst, sim.PostProcess(), "missing cell data")

	sim = &Simulation{Msh: msh}
	sim.Mpfa.SetDefault()
	sim.Cells = []*CellData{{Tag: -1, Fluids: []string{"water"}}}
	sim.FaceBcs = []*FaceBc{{Tag: -10, Keys: []string{"p0"}, Funcs: []string{"nothing"}}}
	assert.Error(tst, sim.PostProcess(), "unknown function")
}

func Test_sim05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim05. missing files and bad functions return errors")

	assert.NotPanics(tst, func() {
		_, err := ReadSim("data/nothing.sim")
		assert.Error(tst, err)
		_, err = ReadMsh("data", "nothing.msh")
		assert.Error(tst, err)
	})

	funcs := FuncsData{
		{Name: "bad", Type: "nothing"},
		{Name: "noprm", Type: "cte"},
		{Name: "left", Type: "cte", Prms: dbf.Params{&dbf.P{N: "c", V: 2}}},
	}
	assert.NotPanics(tst, func() {
		_, err := funcs.Get("bad")
		assert.Error(tst, err, "unknown type")
		_, err = funcs.Get("noprm")
		assert.Error(tst, err, "missing parameter")
	})
	fcn, err := funcs.Get("left")
	require.NoError(tst, err)
	chk.Float64(tst, "left", 1e-15, fcn.F(0, nil), 2)
	fcn, err = funcs.Get("zero")
	require.NoError(tst, err)
	chk.Float64(tst, "zero", 1e-15, fcn.F(1, nil), 0)
}

func Test_sim06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim06. every equation of a boundary face needs a condition")

	eqs := EqLayout{Nphases: 2}
	facebcs := []*FaceBc{{Tag: -10, Keys: []string{"p0"}, Funcs: []string{"zero"}}}
	_, err := setFaceConds(facebcs, eqs, nil)
	assert.Error(tst, err)

	facebcs[0] = &FaceBc{Tag: -10, Keys: []string{"p0", "q1"}, Funcs: []string{"zero", "zero"}}
	conds, err := setFaceConds(facebcs, eqs, nil)
	require.NoError(tst, err)
	types, err := conds[-10].Types(eqs.Neq())
	require.NoError(tst, err)
	assert.Equal(tst, BcTypes{BcDirichlet, BcNeumann}, types)

	_, err = conds[-10].Types(3)
	assert.Error(tst, err)
}
