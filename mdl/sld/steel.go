// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import "github.com/cpmech/gosl/fun/dbf"

// Steel implements an isotropic linear elastic steel
type Steel struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient
	Fy float64 // yield strength (informative)
	Fu float64 // ultimate strength (informative)
}

// add model to factory
func init() {
	allocators["steel"] = func() Model { return new(Steel) }
}

func (o *Steel) Name() string     { return "steel" }
func (o *Steel) Young() float64   { return o.E }
func (o *Steel) Poisson() float64 { return o.Nu }

// Alpha returns the coefficient of thermal expansion of steel [1/°C]
func (o *Steel) Alpha() float64 { return 11.7e-6 }

// ShearModulus returns G = E / (2 (1 + ν))
func (o *Steel) ShearModulus() (float64, error) {
	return o.E / (2.0 * (1.0 + o.Nu)), nil
}

// Init initialises model
func (o *Steel) Init(prms dbf.Params) (err error) {
	if err = connect(prms, &o.E, "E", "steel model"); err != nil {
		return
	}
	if err = connect(prms, &o.Nu, "nu", "steel model"); err != nil {
		return
	}
	o.Fy = prms.GetValueOrDefault("fy", o.Fy)
	o.Fu = prms.GetValueOrDefault("fu", o.Fu)
	return
}

// GetPrms gets (an example) of parameters
func (o Steel) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: 2.0e8},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "fy", V: 2.5e5},
		&dbf.P{N: "fu", V: 4.0e5},
	}
}
