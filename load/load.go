// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package load converts applied loads into nodal forces and fixed-end reactions
package load

import (
	"fmt"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/geo"
	"github.com/cpmech/gosl/la"
)

// PointLoad holds a concentrated force/moment {fx, fy, fz, mx, my, mz}
type PointLoad struct {
	F [6]float64
}

// NewPointLoad returns a new concentrated load
func NewPointLoad(fx, fy, fz, mx, my, mz float64) *PointLoad {
	return &PointLoad{F: [6]float64{fx, fy, fz, mx, my, mz}}
}

// AssignToNode adds the load (global components) to the forces of the node dofs
func (o *PointLoad) AssignToNode(n *ele.Node) {
	for i, d := range n.Dofs {
		d.F += o.F[i]
	}
	n.Loads = append(n.Loads, o.F)
}

// AssignToElement applies the load between the nodes of an element
//  Input:
//   x     -- distance from the start node; 0 ≤ x ≤ L
//   local -- the components are given in the local system of the element;
//            otherwise they are global and are converted here
func (o *PointLoad) AssignToElement(e ele.Element, x float64, local bool) (err error) {
	b := e.Data()
	if x < 0 || x > b.L {
		return fmt.Errorf("location of point load x = %g is outside element %d with L = %g: %w", x, b.Id, b.L, ele.ErrInvalidGeometry)
	}
	fl := o.F
	if !local {
		fl = toLocal(b.Csys, o.F)
	}
	valid, err := e.ValidLoad(fl)
	if err != nil {
		return
	}
	addFer(e, e.FerConcentrated(x), valid)
	b.Conc = append(b.Conc, ele.ConcLoad{F: fl, At: x})
	ele.UpdateSpanField(e)
	return
}

// DistributedLoad holds the intensities {fx, fy, fz, mx, my, mz} of a load
// uniformly distributed along the whole element
type DistributedLoad struct {
	W [6]float64
}

// NewDistributedLoad returns a new uniformly distributed load
func NewDistributedLoad(fx, fy, fz, mx, my, mz float64) *DistributedLoad {
	return &DistributedLoad{W: [6]float64{fx, fy, fz, mx, my, mz}}
}

// AssignToElement applies the load along the element. See PointLoad.AssignToElement
func (o *DistributedLoad) AssignToElement(e ele.Element, local bool) (err error) {
	b := e.Data()
	wl := o.W
	if !local {
		wl = toLocal(b.Csys, o.W)
	}
	valid, err := e.ValidLoad(wl)
	if err != nil {
		return
	}
	addFer(e, e.FerDistributed(), valid)
	b.Dist = append(b.Dist, ele.DistLoad{F: wl})
	ele.UpdateSpanField(e)
	return
}

// toLocal converts the force and moment parts of a 6-vector into local components
func toLocal(cs *geo.CoordinateSystem, v [6]float64) (l [6]float64) {
	f := cs.ToLocal(geo.Vector{v[0], v[1], v[2]})
	m := cs.ToLocal(geo.Vector{v[3], v[4], v[5]})
	copy(l[:3], f[:])
	copy(l[3:], m[:])
	return
}

// addFer computes fer = F ⋅ valid and accumulates it into the element
func addFer(e ele.Element, F *la.Matrix, valid []float64) {
	fer := make([]float64, F.M)
	la.MatVecMul(fer, 1, F, valid) // fer := F * valid
	ele.AddFer(e, fer)
}
