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

// Truss2d implements a pin-jointed bar lying on a plane parallel to X-Y
type Truss2d struct {
	ele.Base
	EA float64 // axial rigidity
}

// register element
func init() {
	ele.SetAllocator(ele.KindTruss2d, func(start, end *ele.Node, s sec.Section, m sld.Material, twist float64) (ele.Element, error) {
		return NewTruss2d(start, end, s, m, twist)
	})
}

// NewTruss2d returns a new 2D truss element
func NewTruss2d(start, end *ele.Node, s sec.Section, m sld.Material, twist float64) (o *Truss2d, err error) {
	o = new(Truss2d)
	err = o.Init(ele.KindTruss2d, start, end, s, m, twist, 2, [2]int{0, 1})
	if err != nil {
		return nil, err
	}
	if err = checkPlanar(ele.KindTruss2d, &o.Base); err != nil {
		return nil, err
	}
	o.EA = m.Young() * s.Area()
	return
}

// Kind returns KindTruss2d
func (o *Truss2d) Kind() ele.Kind { return ele.KindTruss2d }

// Dofs returns the in-plane translations of both nodes
func (o *Truss2d) Dofs() []*ele.Dof {
	return []*ele.Dof{
		o.Start.Dofs[ele.Ux], o.Start.Dofs[ele.Uy],
		o.End.Dofs[ele.Ux], o.End.Dofs[ele.Uy],
	}
}

func (o *Truss2d) LocalK() *la.Matrix { return axialK(o.EA / o.L) }
func (o *Truss2d) Trans() *la.Matrix  { return axialTrans(o.Csys.T, 2) }

// ShapeMatrix returns the (linear) in-plane interpolation matrix at x
func (o *Truss2d) ShapeMatrix(x float64) *la.Matrix {
	return shapeMatrix(o.L, x, false, true)
}

// ValidLoad returns the axial component only
func (o *Truss2d) ValidLoad(local [6]float64) ([]float64, error) {
	return selectLoad(ele.KindTruss2d, local, []int{0})
}

func (o *Truss2d) FerConcentrated(a float64) *la.Matrix { return axialFerConc(o.L, a) }
func (o *Truss2d) FerDistributed() *la.Matrix          { return axialFerDist(o.L) }
