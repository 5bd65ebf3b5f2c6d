// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/m-giraud/dumux3.0-sub000/fvm"
	"github.com/m-giraud/dumux3.0-sub000/inp"
	"github.com/m-giraud/dumux3.0-sub000/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	dirout := io.ArgToString(2, "")
	enctype := io.ArgToString(3, "json")

	// message
	if verbose {
		io.PfWhite("\nMultipoint flux approximation on cell-centred finite volumes\n\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"directory for summary", "dirout", dirout,
			"encoding of summary", "enctype", enctype,
		))
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}
	sim.Data.Verbose = sim.Data.Verbose || verbose

	// domain
	dom, err := fvm.NewDomain(sim)
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}

	// solve
	err = dom.SolveSteady()
	if err != nil {
		chk.Panic("SolveSteady failed:\n%v", err)
	}

	// results
	p := dom.Pressures(0)
	fluxes, err := dom.FaceFluxes(0)
	if err != nil {
		chk.Panic("cannot compute fluxes:\n%v", err)
	}
	if verbose {
		io.Pforan("\n%6s%23s\n", "cell", "pressure")
		for c, v := range p {
			io.Pf("%6d%23.15e\n", c, v)
		}
		io.Pforan("\n%6s%6s%6s%23s\n", "scvf", "cell", "vert", "flux")
		for i, s := range dom.G.Scvfs {
			io.Pf("%6d%6d%6d%23.15e\n", i, s.CellId, s.VertexId, fluxes[i])
		}
		io.Pfgreen("\n%d iterations, %d interaction volumes solved\n", dom.Sum.Iterations, dom.Sum.IvSolves)
	}

	// summary and visualisation
	if dirout != "" {
		err = dom.SaveSummary(dirout, enctype)
		if err != nil {
			chk.Panic("cannot save summary:\n%v", err)
		}
		err = out.SaveVtu(dirout, sim.Key, sim.Msh, map[string][]float64{"p0": p}, verbose)
		if err != nil {
			chk.Panic("cannot save vtu file:\n%v", err)
		}
	}
}
