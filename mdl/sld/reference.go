// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sld

import "github.com/cpmech/gosl/chk"

// Reference returns a material with reference parameters
//  Input:
//   typ      -- "steel", "concrete-low" or "concrete-high"
//   unitPres -- "kPa", "MPa" or "GPa": unit of E, fy, fu and fck
func Reference(typ, unitPres string) (Model, error) {

	// conversion from MPa
	var c float64
	switch unitPres {
	case "kPa":
		c = 1e3
	case "MPa":
		c = 1
	case "GPa":
		c = 1e-3
	default:
		return nil, chk.Err("unit of pressure %q is invalid", unitPres)
	}

	// material data [MPa]
	switch typ {
	case "steel": // structural A36
		return &Steel{E: 200000.0 * c, Nu: 0.32, Fy: 250.0 * c, Fu: 400.0 * c}, nil
	case "concrete-low":
		return &Concrete{E: 22100.0 * c, Nu: 0.15, Fck: 20.0 * c}, nil
	case "concrete-high":
		return &Concrete{E: 30000.0 * c, Nu: 0.15, Fck: 40.0 * c}, nil
	}
	return nil, chk.Err("material type %q is unavailable", typ)
}
