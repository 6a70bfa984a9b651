// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import "github.com/cpmech/goframe/ele"

// ThermalLoad holds a uniform change of temperature along an element
//  The restrained expansion α⋅ΔT corresponds to the axial force P = E⋅A⋅α⋅ΔT,
//  which pushes the start node with +P and the end node with -P (local x).
type ThermalLoad struct {
	DeltaT float64 // change of temperature [°C]
}

// Force returns the force P = E⋅A⋅α⋅ΔT of a fully restrained element
func (o ThermalLoad) Force(e ele.Element) float64 {
	b := e.Data()
	return b.Mdl.Young() * b.Sec.Area() * b.Mdl.Alpha() * o.DeltaT
}

// AssignToElement accumulates the fixed-end reactions due to the change of temperature
func (o ThermalLoad) AssignToElement(e ele.Element) {
	b := e.Data()
	P := o.Force(e)
	fer := make([]float64, b.Nu)
	fer[b.Iax[0]] = P
	fer[b.Iax[1]] = -P
	ele.AddFer(e, fer)
}
