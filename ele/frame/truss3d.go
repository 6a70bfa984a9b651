// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/mdl/sec"
	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/la"
)

// Truss3d implements a pin-jointed bar in 3D; it only carries axial forces
type Truss3d struct {
	ele.Base
	EA float64 // axial rigidity
}

// register element
func init() {
	ele.SetAllocator(ele.KindTruss3d, func(start, end *ele.Node, s sec.Section, m sld.Material, twist float64) (ele.Element, error) {
		return NewTruss3d(start, end, s, m, twist)
	})
}

// NewTruss3d returns a new 3D truss element
func NewTruss3d(start, end *ele.Node, s sec.Section, m sld.Material, twist float64) (o *Truss3d, err error) {
	o = new(Truss3d)
	err = o.Init(ele.KindTruss3d, start, end, s, m, twist, 2, [2]int{0, 1})
	if err != nil {
		return nil, err
	}
	o.EA = m.Young() * s.Area()
	return
}

// Kind returns KindTruss3d
func (o *Truss3d) Kind() ele.Kind { return ele.KindTruss3d }

// Dofs returns the translations of both nodes
func (o *Truss3d) Dofs() []*ele.Dof {
	return []*ele.Dof{
		o.Start.Dofs[ele.Ux], o.Start.Dofs[ele.Uy], o.Start.Dofs[ele.Uz],
		o.End.Dofs[ele.Ux], o.End.Dofs[ele.Uy], o.End.Dofs[ele.Uz],
	}
}

// LocalK returns the 2x2 axial stiffness matrix
func (o *Truss3d) LocalK() *la.Matrix {
	return axialK(o.EA / o.L)
}

// Trans returns the 2x6 transformation matrix
func (o *Truss3d) Trans() *la.Matrix {
	return axialTrans(o.Csys.T, 3)
}

// ShapeMatrix returns the (linear) interpolation matrix at x
func (o *Truss3d) ShapeMatrix(x float64) *la.Matrix {
	return shapeMatrix(o.L, x, false, false)
}

// ValidLoad returns the axial component only
func (o *Truss3d) ValidLoad(local [6]float64) ([]float64, error) {
	return selectLoad(ele.KindTruss3d, local, []int{0})
}

func (o *Truss3d) FerConcentrated(a float64) *la.Matrix { return axialFerConc(o.L, a) }
func (o *Truss3d) FerDistributed() *la.Matrix          { return axialFerDist(o.L) }

// axialK returns k ⋅ [[1, -1], [-1, 1]]
func axialK(k float64) (Kl *la.Matrix) {
	Kl = la.NewMatrix(2, 2)
	Kl.Set(0, 0, k)
	Kl.Set(0, 1, -k)
	Kl.Set(1, 0, -k)
	Kl.Set(1, 1, k)
	return
}

// axialFerConc returns the 2x1 fixed-end reactions of an axial point load at a
func axialFerConc(l, a float64) (F *la.Matrix) {
	F = la.NewMatrix(2, 1)
	F.Set(0, 0, -(l-a)/l)
	F.Set(1, 0, -a/l)
	return
}

// axialFerDist returns the 2x1 fixed-end reactions of a uniform axial load
func axialFerDist(l float64) (F *la.Matrix) {
	F = la.NewMatrix(2, 1)
	F.Set(0, 0, -l/2.0)
	F.Set(1, 0, -l/2.0)
	return
}
