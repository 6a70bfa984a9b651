// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import "github.com/cpmech/gosl/fun/dbf"

// Concrete implements a linear elastic concrete. Its shear modulus is not
// defined, thus it can only be used by elements without torsion
type Concrete struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Fy  float64 // yield strength at 0.2% offset (informative)
	Fck float64 // characteristic strength (informative)
}

// add model to factory
func init() {
	allocators["concrete"] = func() Model { return new(Concrete) }
}

func (o *Concrete) Name() string     { return "concrete" }
func (o *Concrete) Young() float64   { return o.E }
func (o *Concrete) Poisson() float64 { return o.Nu }

// Alpha returns the coefficient of thermal expansion of concrete [1/°C]
func (o *Concrete) Alpha() float64 { return 10e-6 }

// ShearModulus is undefined
func (o *Concrete) ShearModulus() (float64, error) {
	return 0, ErrNoShearModulus
}

// Init initialises model
func (o *Concrete) Init(prms dbf.Params) (err error) {
	if err = connect(prms, &o.E, "E", "concrete model"); err != nil {
		return
	}
	o.Nu = prms.GetValueOrDefault("nu", o.Nu)
	o.Fy = prms.GetValueOrDefault("fy", o.Fy)
	o.Fck = prms.GetValueOrDefault("fck", o.Fck)
	return
}

// GetPrms gets (an example) of parameters
func (o Concrete) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: 3.0e7},
		&dbf.P{N: "nu", V: 0.2},
		&dbf.P{N: "fck", V: 3.0e4},
	}
}
