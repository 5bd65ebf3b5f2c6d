// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/m-giraud/dumux3.0-sub000/mdl/diffu"
	"github.com/m-giraud/dumux3.0-sub000/mdl/fluid"
	"github.com/m-giraud/dumux3.0-sub000/mdl/perm"
	"github.com/m-giraud/dumux3.0-sub000/mdl/relperm"
	"github.com/m-giraud/dumux3.0-sub000/mdl/thermal"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material
	Type  string     `json:"type"`  // type of material; "perm", "diffu", "thermal", "fluid" or "relperm"
	Model string     `json:"model"` // name of model; e.g. "cte", "rot", "mq", etc.
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Perm    perm.Model    `json:"-"` // pointer to actual permeability model
	Diffu   diffu.Model   `json:"-"` // pointer to actual diffusion model
	Thermal thermal.Model `json:"-"` // pointer to actual thermal conductivity model
	Fluid   fluid.Model   `json:"-"` // pointer to actual fluid model
	Relperm relperm.Model `json:"-"` // pointer to actual relative permeability model
}

// MatsData holds materials
type MatsData []*Material

// Init allocates and initialises all models
func (o MatsData) Init(ndim int) (err error) {
	names := make(map[string]bool)
	for _, m := range o {
		if names[m.Name] {
			return chk.Err("material named %q is defined more than once", m.Name)
		}
		names[m.Name] = true
		switch m.Type {
		case "perm":
			if m.Perm, err = perm.New(m.Model); err == nil {
				err = m.Perm.Init(ndim, m.Prms)
			}
		case "diffu":
			if m.Diffu, err = diffu.New(m.Model); err == nil {
				err = m.Diffu.Init(ndim, m.Prms)
			}
		case "thermal":
			if m.Thermal, err = thermal.New(m.Model); err == nil {
				err = m.Thermal.Init(ndim, m.Prms)
			}
		case "fluid":
			if m.Fluid, err = fluid.New(m.Model); err == nil {
				err = m.Fluid.Init(m.Prms)
			}
		case "relperm":
			if m.Relperm, err = relperm.New(m.Model); err == nil {
				err = m.Relperm.Init(m.Prms)
			}
		default:
			return chk.Err("material type %q is incorrect; options are \"perm\", \"diffu\", \"thermal\", \"fluid\" and \"relperm\"", m.Type)
		}
		if err != nil {
			return chk.Err("cannot initialise material %q:\n%v", m.Name, err)
		}
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatsData) Get(name string) *Material {
	for _, mat := range o {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// GetOfType returns a material with the given name and type
func (o MatsData) GetOfType(name, typ string) (*Material, error) {
	mat := o.Get(name)
	if mat == nil {
		return nil, chk.Err("cannot find material named %q", name)
	}
	if mat.Type != typ {
		return nil, chk.Err("material %q has type %q but %q is required", name, mat.Type, typ)
	}
	return mat, nil
}

// String prints one material
func (o *Material) String() string {
	return io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n%v\n    }", o.Name, o.Type, o.Model, o.Extra, o.Prms)
}
