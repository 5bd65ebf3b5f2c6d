// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc    string  `json:"desc" yaml:"desc"`       // description of simulation
	Mshfile string  `json:"mshfile" yaml:"mshfile"` // file path of file with mesh data
	AbsPath bool    `json:"abspath" yaml:"abspath"` // mesh filename is given in absolute path
	MyPart  int     `json:"mypart" yaml:"mypart"`   // partition owned by this process
	Time    float64 `json:"time" yaml:"time"`       // time used to evaluate boundary functions
	Verbose bool    `json:"verbose" yaml:"verbose"` // show messages
}

// MpfaData holds the options of the multi-point flux approximation
type MpfaData struct {
	Q                float64 `json:"q" yaml:"q"`                               // position of continuity point on facets: ip = xf + q・(xv - xf)
	Upwind           float64 `json:"upwind" yaml:"upwind"`                     // upwind weight; 1 => full upwind, 0.5 => central
	CacheGlobally    bool    `json:"cacheglobally" yaml:"cacheglobally"`       // store transmissibilities of all faces
	Nphases          int     `json:"nphases" yaml:"nphases"`                   // number of fluid phases
	Ncomps           int     `json:"ncomps" yaml:"ncomps"`                     // number of components
	Diffusion        bool    `json:"diffusion" yaml:"diffusion"`               // compute molecular diffusion
	Heat             bool    `json:"heat" yaml:"heat"`                         // compute heat conduction
	NeumannDiffusive bool    `json:"neumanndiffusive" yaml:"neumanndiffusive"` // Neumann fluxes belong to the diffusive law when diffusion is active
	NmaxIt           int     `json:"nmaxit" yaml:"nmaxit"`                     // max number of Picard iterations of the steady driver
	Tol              float64 `json:"tol" yaml:"tol"`                           // tolerance of the Picard iterations
	Extra            string  `json:"extra" yaml:"extra"`                       // extra flags (in keycode format). ex: "!q:0.5 !upw:1"
}

// CellData holds the data of cells with a given tag
type CellData struct {
	Tag       int       `json:"tag" yaml:"tag"`             // tag of cells
	Perm      string    `json:"perm" yaml:"perm"`           // permeability material
	Diffu     string    `json:"diffu" yaml:"diffu"`         // diffusion material
	Thermal   string    `json:"thermal" yaml:"thermal"`     // thermal conductivity material
	Fluids    []string  `json:"fluids" yaml:"fluids"`       // fluid material of each phase
	Relperm   string    `json:"relperm" yaml:"relperm"`     // relative permeability material
	Extrusion float64   `json:"extrusion" yaml:"extrusion"` // extrusion factor; e.g. aperture of fractures. 0 => 1
	Porosity  float64   `json:"porosity" yaml:"porosity"`   // porosity
	Sats      []float64 `json:"sats" yaml:"sats"`           // saturation of each phase
	Temp      float64   `json:"temp" yaml:"temp"`           // initial temperature
}

// FaceBc holds face boundary condition
type FaceBc struct {
	Tag   int      `json:"tag" yaml:"tag"`     // tag of face
	Keys  []string `json:"keys" yaml:"keys"`   // key indicating type of bcs. ex: p0, q0, x01, j01, T, qT
	Funcs []string `json:"funcs" yaml:"funcs"` // name of function. ex: zero, left, myfunction1, etc.
	Extra string   `json:"extra" yaml:"extra"` // extra information
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data" yaml:"data"`           // stores global simulation data
	Mpfa      MpfaData    `json:"mpfa" yaml:"mpfa"`           // discretisation options
	Functions FuncsData   `json:"functions" yaml:"functions"` // stores all boundary condition functions
	Materials MatsData    `json:"materials" yaml:"materials"` // stores all materials
	Cells     []*CellData `json:"cells" yaml:"cells"`         // stores data of cells
	FaceBcs   []*FaceBc   `json:"facebcs" yaml:"facebcs"`     // face boundary conditions

	// derived
	Msh   *Mesh             `json:"-" yaml:"-"` // the mesh
	Key   string            `json:"-" yaml:"-"` // simulation key; e.g. mysim01.sim => mysim01
	Ndim  int               `json:"-" yaml:"-"` // space dimension
	Eqs   EqLayout          `json:"-" yaml:"-"` // numbering of equations
	conds map[int]FaceConds // face tag => conditions
	ctag  map[int]*CellData // cell tag => cell data
}

// ReadSim reads all simulation data from a .sim (JSON) or .yaml/.yml file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// new sim
	o = new(Simulation)

	// read file
	b, err := readFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// set default values
	o.Mpfa.SetDefault()

	// decode
	ext := strings.ToLower(filepath.Ext(simfilepath))
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := os.ExpandEnv(filepath.Dir(simfilepath))
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// read mesh
	ddir := dir
	if o.Data.AbsPath {
		ddir = ""
	}
	o.Msh, err = ReadMsh(ddir, o.Data.Mshfile)
	if err != nil {
		return nil, chk.Err("cannot read mesh of simulation %q:\n%v", o.Key, err)
	}

	// derived data
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("simulation %q is invalid:\n%v", o.Key, err)
	}
	return
}

// PostProcess checks the input data and computes derived data; Msh must be set
func (o *Simulation) PostProcess() (err error) {

	// mesh
	if o.Msh == nil {
		return chk.Err("mesh is not available")
	}
	o.Msh.MyPart = o.Data.MyPart
	o.Ndim = o.Msh.Ndim

	// options
	err = o.Mpfa.PostProcess()
	if err != nil {
		return
	}
	o.Eqs = EqLayout{Nphases: o.Mpfa.Nphases, Heat: o.Mpfa.Heat}
	if o.Mpfa.Diffusion {
		o.Eqs.Ncomps = o.Mpfa.Ncomps
	}

	// materials
	err = o.Materials.Init(o.Ndim)
	if err != nil {
		return
	}

	// cells data
	o.ctag = make(map[int]*CellData)
	for _, cd := range o.Cells {
		if _, ok := o.ctag[cd.Tag]; ok {
			return chk.Err("cell tag %d is defined more than once in \"cells\"", cd.Tag)
		}
		if cd.Extrusion <= 0 {
			cd.Extrusion = 1
		}
		if len(cd.Sats) == 0 {
			cd.Sats = make([]float64, o.Mpfa.Nphases)
			for α := range cd.Sats {
				cd.Sats[α] = 1.0 / float64(o.Mpfa.Nphases)
			}
		}
		if len(cd.Sats) != o.Mpfa.Nphases {
			return chk.Err("cell tag %d: number of saturations (%d) must equal nphases (%d)", cd.Tag, len(cd.Sats), o.Mpfa.Nphases)
		}
		if len(cd.Fluids) != o.Mpfa.Nphases {
			return chk.Err("cell tag %d: number of fluids (%d) must equal nphases (%d)", cd.Tag, len(cd.Fluids), o.Mpfa.Nphases)
		}
		o.ctag[cd.Tag] = cd
	}
	for tag := range o.Msh.CellTag2cells {
		if _, ok := o.ctag[tag]; !ok {
			return chk.Err("cannot find data of cells with tag %d", tag)
		}
	}

	// boundary conditions
	o.conds, err = setFaceConds(o.FaceBcs, o.Eqs, o.Functions)
	return
}

// CellData returns the data of cells with a given tag
//  Note: returns nil if not found
func (o *Simulation) CellData(tag int) *CellData {
	return o.ctag[tag]
}

// BcTypes returns the boundary condition types of all equations on faces with tag ftag
func (o *Simulation) BcTypes(ftag int) (BcTypes, error) {
	conds, ok := o.conds[ftag]
	if !ok {
		return nil, chk.Err("boundary face with tag %d has neither Dirichlet nor Neumann conditions", ftag)
	}
	types, err := conds.Types(o.Eqs.Neq())
	if err != nil {
		return nil, chk.Err("face tag %d:\n%v", ftag, err)
	}
	return types, nil
}

// BcValue returns the boundary value of equation eq on faces with tag ftag at (t,x)
func (o *Simulation) BcValue(ftag, eq int, t float64, x []float64) float64 {
	fc := o.conds[ftag].Get(eq)
	if fc == nil {
		return 0
	}
	return fc.Func.F(t, x)
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets defaults values
func (o *MpfaData) SetDefault() {
	o.Upwind = 1
	o.CacheGlobally = true
	o.Nphases = 1
	o.NmaxIt = 20
	o.Tol = 1e-10
}

// PostProcess performs a post-processing of the just read data
func (o *MpfaData) PostProcess() (err error) {
	q, upw, cache := GetMpfaFlags(o.Q, o.Upwind, o.CacheGlobally, o.Extra)
	o.Q, o.Upwind, o.CacheGlobally = q, upw, cache
	if o.Q < 0 || o.Q >= 1 {
		return chk.Err("continuity point parameter must be in [0,1). q=%g is invalid", o.Q)
	}
	if o.Upwind < 0 || o.Upwind > 1 {
		return chk.Err("upwind weight must be in [0,1]. upwind=%g is invalid", o.Upwind)
	}
	if o.Nphases < 1 {
		return chk.Err("number of phases must be at least 1. nphases=%d is invalid", o.Nphases)
	}
	if o.Diffusion && o.Ncomps < 1 {
		return chk.Err("diffusion requires at least one component. ncomps=%d is invalid", o.Ncomps)
	}
	if o.NmaxIt < 1 {
		o.NmaxIt = 1
	}
	return
}
