// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"
	"testing"

	"github.com/m-giraud/dumux3.0-sub000/ana"
	"github.com/m-giraud/dumux3.0-sub000/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// channelSim returns a simulation on generated tri3 cells with Dirichlet x-faces and no-flow y-faces
func channelSim(tst *testing.T, fluid inp.Material, cacheGlobally bool) *inp.Simulation {
	msh, err := inp.GenTris(3, 3, 1.5, 1.2)
	require.NoError(tst, err)
	sim := &inp.Simulation{Msh: msh, Key: "channel"}
	sim.Mpfa.SetDefault()
	sim.Mpfa.CacheGlobally = cacheGlobally
	sim.Functions = inp.FuncsData{
		{Name: "left", Type: "cte", Prms: dbf.Params{&dbf.P{N: "c", V: 1}}},
	}
	sim.Materials = inp.MatsData{
		{Name: "sand", Type: "perm", Model: "cte", Prms: dbf.Params{&dbf.P{N: "kx", V: 2}, &dbf.P{N: "ky", V: 1}}},
		&fluid,
	}
	sim.Cells = []*inp.CellData{
		{Tag: inp.TagCells, Perm: "sand", Fluids: []string{fluid.Name}, Porosity: 0.3},
	}
	sim.FaceBcs = []*inp.FaceBc{
		{Tag: inp.TagXmin, Keys: []string{"p0"}, Funcs: []string{"left"}},
		{Tag: inp.TagXmax, Keys: []string{"p0"}, Funcs: []string{"zero"}},
		{Tag: inp.TagYmin, Keys: []string{"q0"}, Funcs: []string{"zero"}},
		{Tag: inp.TagYmax, Keys: []string{"q0"}, Funcs: []string{"zero"}},
	}
	require.NoError(tst, sim.PostProcess())
	return sim
}

func water() inp.Material {
	return inp.Material{Name: "water", Type: "fluid", Model: "cte", Prms: dbf.Params{&dbf.P{N: "rho", V: 1}, &dbf.P{N: "mu", V: 1}}}
}

// channelSolution returns the analytical solution along x of the channel problem
func channelSolution(tst *testing.T, cf float64) (sol ana.Channel) {
	require.NoError(tst, sol.Init(dbf.Params{
		&dbf.P{N: "L", V: 1.5},
		&dbf.P{N: "k", V: 2},
		&dbf.P{N: "cf", V: cf},
	}))
	return
}

func centers(dom *Domain) (x [][]float64) {
	for _, scv := range dom.G.Scvs {
		x = append(x, scv.Center)
	}
	return
}

func Test_fvm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fvm01. 2x2 quadrilaterals. end-to-end")

	for _, fn := range []string{"../inp/data/quad2x2.sim", "../inp/data/quad2x2.yaml"} {
		sim, err := inp.ReadSim(fn)
		require.NoError(tst, err)
		dom, err := NewDomain(sim)
		require.NoError(tst, err)
		require.NoError(tst, dom.SolveSteady())

		chk.Array(tst, "p", 1e-10, dom.Pressures(0), []float64{0.75, 0.25, 0.75, 0.25})
		chk.IntAssert(dom.Sum.Iterations, 2)
		require.True(tst, dom.Sum.Converged)

		// each interior sub-face carries half of the cell-to-cell flux
		q, err := dom.CellPairFlux(0, 1, 0)
		require.NoError(tst, err)
		chk.Float64(tst, "q(0→1)", 1e-10, q, 0.5)
		q, err = dom.CellPairFlux(1, 0, 0)
		require.NoError(tst, err)
		chk.Float64(tst, "q(1→0)", 1e-10, q, -0.5)
		q, err = dom.CellPairFlux(0, 2, 0)
		require.NoError(tst, err)
		chk.Float64(tst, "q(0→2)", 1e-10, q, 0)
		_, err = dom.CellPairFlux(0, 3, 0)
		require.Error(tst, err)

		// boundaries
		qin, err := dom.BoundaryFlux(inp.TagXmin, 0)
		require.NoError(tst, err)
		qout, err := dom.BoundaryFlux(inp.TagXmax, 0)
		require.NoError(tst, err)
		chk.Float64(tst, "qin", 1e-10, qin, -1)
		chk.Float64(tst, "qout", 1e-10, qout, 1)

		fluxes, err := dom.FaceFluxes(0)
		require.NoError(tst, err)
		for _, f := range dom.G.CellScvfs[0] {
			s := dom.G.Scvfs[f]
			if !s.Boundary && s.OutsideCells[0] == 1 {
				chk.Float64(tst, io.Sf("scvf %d", f), 1e-10, fluxes[f], 0.25)
			}
		}
	}
}

func Test_fvm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fvm02. linear solution on triangles. eager and lazy caches")

	sol := channelSolution(tst, 0)
	var pEager []float64
	for _, cacheGlobally := range []bool{true, false} {
		dom, err := NewDomain(channelSim(tst, water(), cacheGlobally))
		require.NoError(tst, err)
		require.NoError(tst, dom.SolveSteady())

		// linear pressure is reproduced
		p := dom.Pressures(0)
		for c, e := range sol.CompareP(centers(dom), p, 1e-10, chk.Verbose) {
			chk.Float64(tst, io.Sf("error @ cell %d", c), 1e-10, e, 0)
		}
		qout, err := dom.BoundaryFlux(inp.TagXmax, 0)
		require.NoError(tst, err)
		chk.Float64(tst, "qout", 1e-10, qout, sol.MassFlux()*1.2)

		if cacheGlobally {
			pEager = p
			chk.IntAssert(dom.Sum.IvSolves, 3*len(dom.Dual.Sets)) // two iterations and the final state
		} else {
			chk.Array(tst, "p(lazy)", 1e-12, p, pEager)
		}
	}
}

func Test_fvm03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fvm03. compressible fluid. Picard iterations")

	comp := inp.Material{Name: "brine", Type: "fluid", Model: "comp", Prms: dbf.Params{
		&dbf.P{N: "rho0", V: 1},
		&dbf.P{N: "cf", V: 0.5},
		&dbf.P{N: "mu", V: 1},
	}}
	sim := channelSim(tst, comp, true)
	sim.Mpfa.Upwind = 1
	dom, err := NewDomain(sim)
	require.NoError(tst, err)
	require.NoError(tst, dom.SolveSteady())
	require.True(tst, dom.Sum.Iterations > 2)
	require.True(tst, dom.Sum.Resids[len(dom.Sum.Resids)-1] < sim.Mpfa.Tol)

	// mass is conserved
	qin, err := dom.BoundaryFlux(inp.TagXmin, 0)
	require.NoError(tst, err)
	qout, err := dom.BoundaryFlux(inp.TagXmax, 0)
	require.NoError(tst, err)
	chk.Float64(tst, "qin+qout", 1e-8, qin+qout, 0)
	require.True(tst, qout > 0)

	// close to the analytical solution
	sol := channelSolution(tst, 0.5)
	for c, e := range sol.CompareP(centers(dom), dom.Pressures(0), 0.03, chk.Verbose) {
		if e > 0.03 {
			tst.Errorf("pressure of cell %d is too far from the analytical solution. error = %g", c, e)
		}
	}
	if math.Abs(qout-sol.MassFlux()*1.2) > 0.15*sol.MassFlux()*1.2 {
		tst.Errorf("outflow %g is too far from the analytical one %g", qout, sol.MassFlux()*1.2)
	}

	// no convergence
	sim.Mpfa.NmaxIt = 1
	dom, err = NewDomain(sim)
	require.NoError(tst, err)
	require.Error(tst, dom.SolveSteady())
}

func Test_fvm04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fvm04. summary and errors")

	sim, err := inp.ReadSim("../inp/data/quad2x2.sim")
	require.NoError(tst, err)
	dom, err := NewDomain(sim)
	require.NoError(tst, err)
	dirout := tst.TempDir()
	require.Error(tst, dom.SaveSummary(dirout, "json"))

	require.NoError(tst, dom.SolveSteady())
	for _, enc := range []string{"json", "gob"} {
		require.NoError(tst, dom.SaveSummary(dirout, enc))
		sum, err := ReadSummary(dirout, sim.Key, enc)
		require.NoError(tst, err)
		chk.IntAssert(sum.Iterations, dom.Sum.Iterations)
		chk.Array(tst, "p", 1e-15, sum.Pressures, dom.Pressures(0))
		chk.IntAssert(len(sum.Fluxes), len(dom.G.Scvfs))
	}
	_, err = ReadSummary(dirout, "unknown", "json")
	require.Error(tst, err)

	// boundary face without conditions
	sim.FaceBcs = sim.FaceBcs[:3]
	require.NoError(tst, sim.PostProcess())
	_, err = NewDomain(sim)
	require.Error(tst, err)
}

func Test_fvm05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fvm05. hanging vertex. end-to-end")

	sim, err := inp.ReadSim("../examples/hanging2d/hanging.sim")
	require.NoError(tst, err)
	dom, err := NewDomain(sim)
	require.NoError(tst, err)
	require.NoError(tst, dom.SolveSteady())

	// p = 1 - x/3
	chk.Array(tst, "p", 1e-10, dom.Pressures(0), []float64{2.0 / 3.0, 1.0 / 6.0, 1.0 / 6.0})

	// the coarse cell sends the same flux to each small cell
	q1, err := dom.CellPairFlux(0, 1, 0)
	require.NoError(tst, err)
	q2, err := dom.CellPairFlux(0, 2, 0)
	require.NoError(tst, err)
	chk.Float64(tst, "q(0→1)", 1e-10, q1, 1.0/3.0)
	chk.Float64(tst, "q(0→2)", 1e-10, q2, 1.0/3.0)
	q, err := dom.CellPairFlux(1, 2, 0)
	require.NoError(tst, err)
	chk.Float64(tst, "q(1→2)", 1e-10, q, 0)
	qout, err := dom.BoundaryFlux(inp.TagXmax, 0)
	require.NoError(tst, err)
	chk.Float64(tst, "qout", 1e-10, qout, 2.0/3.0)

	// fluxes of flipped scvfs are opposite
	fluxes, err := dom.FaceFluxes(0)
	require.NoError(tst, err)
	for i, s := range dom.G.Scvfs {
		for _, j := range s.Flips {
			chk.Float64(tst, io.Sf("q%d+q%d", i, j), 1e-12, fluxes[i]+fluxes[j], 0)
		}
	}
}

func Test_fvm06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fvm06. prescribed inflow with non-unit mobility")

	for _, mu := range []float64{1, 2, 10} {
		fluid := inp.Material{Name: "oil", Type: "fluid", Model: "cte", Prms: dbf.Params{&dbf.P{N: "rho", V: 1}, &dbf.P{N: "mu", V: mu}}}
		sim := channelSim(tst, fluid, true)
		sim.Functions = append(sim.Functions, &inp.FuncData{Name: "inflow", Type: "cte", Prms: dbf.Params{&dbf.P{N: "c", V: -1}}})
		sim.FaceBcs[0] = &inp.FaceBc{Tag: inp.TagXmin, Keys: []string{"q0"}, Funcs: []string{"inflow"}}
		require.NoError(tst, sim.PostProcess())
		dom, err := NewDomain(sim)
		require.NoError(tst, err)
		require.NoError(tst, dom.SolveSteady())

		// p = μ/2・(1.5 - x) gives a unit mass flux along x with kx = 2
		p := dom.Pressures(0)
		for c, x := range centers(dom) {
			chk.Float64(tst, io.Sf("μ=%g p%d", mu, c), 1e-10, p[c], mu/2*(1.5-x[0]))
		}
		qin, err := dom.BoundaryFlux(inp.TagXmin, 0)
		require.NoError(tst, err)
		qout, err := dom.BoundaryFlux(inp.TagXmax, 0)
		require.NoError(tst, err)
		chk.Float64(tst, "qin", 1e-10, qin, -1.2)
		chk.Float64(tst, "qout", 1e-10, qout, 1.2)
	}
}
