// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Elastic implements a generic linear elastic material given by E and either ν or G
type Elastic struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	G   float64 // shear modulus
	Alp float64 // coefficient of thermal expansion
	Rho float64 // density (informative)
}

// add model to factory
func init() {
	allocators["elastic"] = func() Model { return new(Elastic) }
}

func (o *Elastic) Name() string     { return "elastic" }
func (o *Elastic) Young() float64   { return o.E }
func (o *Elastic) Poisson() float64 { return o.Nu }
func (o *Elastic) Alpha() float64   { return o.Alp }

// ShearModulus returns G; computed from ν if G was not given
func (o *Elastic) ShearModulus() (float64, error) {
	if o.G > 0 {
		return o.G, nil
	}
	return o.E / (2.0 * (1.0 + o.Nu)), nil
}

// Init initialises model
func (o *Elastic) Init(prms dbf.Params) (err error) {
	*o = Elastic{}
	if err = connect(prms, &o.E, "E", "elastic model"); err != nil {
		return
	}
	hasNu := prms.Find("nu") != nil
	hasG := prms.Find("G") != nil
	if hasNu == hasG {
		return chk.Err("elastic model: either nu or G must be given")
	}
	o.Nu = prms.GetValueOrDefault("nu", 0)
	o.G = prms.GetValueOrDefault("G", 0)
	if hasG {
		o.Nu = o.E/(2.0*o.G) - 1.0
	}
	o.Alp = prms.GetValueOrDefault("alpha", 0)
	o.Rho = prms.GetValueOrDefault("rho", 0)
	return
}

// GetPrms gets (an example) of parameters
func (o Elastic) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: 2.0e8},
		&dbf.P{N: "G", V: 7.5758e+07},
		&dbf.P{N: "alpha", V: 1.2e-5},
		&dbf.P{N: "rho", V: 7.85},
	}
}
