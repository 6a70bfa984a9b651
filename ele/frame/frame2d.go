// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/geo"
	"github.com/cpmech/goframe/mdl/sec"
	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/la"
)

// Frame2d implements an Euler-Bernoulli frame element lying on a plane parallel to X-Y
//  Local dofs: [ux uy rz]₀ [ux uy rz]₁
type Frame2d struct {
	ele.Base
	EA  float64 // axial rigidity
	EIz float64 // flexural rigidity about z
}

// register element
func init() {
	ele.SetAllocator(ele.KindFrame2d, func(start, end *ele.Node, s sec.Section, m sld.Material, twist float64) (ele.Element, error) {
		return NewFrame2d(start, end, s, m, twist)
	})
}

// NewFrame2d returns a new 2D frame element
func NewFrame2d(start, end *ele.Node, s sec.Section, m sld.Material, twist float64) (o *Frame2d, err error) {
	o = new(Frame2d)
	err = o.Init(ele.KindFrame2d, start, end, s, m, twist, 6, [2]int{0, 3})
	if err != nil {
		return nil, err
	}
	if err = checkPlanar(ele.KindFrame2d, &o.Base); err != nil {
		return nil, err
	}
	E := m.Young()
	o.EA = E * s.Area()
	o.EIz = E * s.Iz()
	return
}

// Kind returns KindFrame2d
func (o *Frame2d) Kind() ele.Kind { return ele.KindFrame2d }

// Dofs returns [ux uy rz] of the start node followed by [ux uy rz] of the end node
func (o *Frame2d) Dofs() []*ele.Dof {
	return []*ele.Dof{
		o.Start.Dofs[ele.Ux], o.Start.Dofs[ele.Uy], o.Start.Dofs[ele.Rz],
		o.End.Dofs[ele.Ux], o.End.Dofs[ele.Uy], o.End.Dofs[ele.Rz],
	}
}

// LocalK returns the 6x6 stiffness matrix in local axes
func (o *Frame2d) LocalK() (Kl *la.Matrix) {
	l := o.L
	a := o.EA / l
	b := 12.0 * o.EIz / (l * l * l)
	c := 6.0 * o.EIz / (l * l)
	d := 4.0 * o.EIz / l
	e := 2.0 * o.EIz / l
	Kl = la.NewMatrix(6, 6)
	Kl.Set(0, 0, a)
	Kl.Set(0, 3, -a)
	Kl.Set(3, 0, -a)
	Kl.Set(3, 3, a)
	Kl.Set(1, 1, b)
	Kl.Set(1, 2, c)
	Kl.Set(1, 4, -b)
	Kl.Set(1, 5, c)
	Kl.Set(2, 1, c)
	Kl.Set(2, 2, d)
	Kl.Set(2, 4, -c)
	Kl.Set(2, 5, e)
	Kl.Set(4, 1, -b)
	Kl.Set(4, 2, -c)
	Kl.Set(4, 4, b)
	Kl.Set(4, 5, -c)
	Kl.Set(5, 1, c)
	Kl.Set(5, 2, e)
	Kl.Set(5, 4, -c)
	Kl.Set(5, 5, d)
	return
}

// Trans returns the 6x6 transformation matrix; the rotation about Z is unchanged
func (o *Frame2d) Trans() (M *la.Matrix) {
	T := o.Csys.T
	M = la.NewMatrix(6, 6)
	for k := 0; k < 2; k++ {
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				M.Set(3*k+i, 3*k+j, T[i][j])
			}
		}
		M.Set(3*k+2, 3*k+2, T[2][2])
	}
	return
}

// ShapeMatrix returns the in-plane interpolation matrix at x
func (o *Frame2d) ShapeMatrix(x float64) *la.Matrix {
	return shapeMatrix(o.L, x, true, true)
}

// ValidLoad returns [fx fy mz]
func (o *Frame2d) ValidLoad(local [6]float64) ([]float64, error) {
	return selectLoad(ele.KindFrame2d, local, []int{0, 1, 5})
}

// FerConcentrated returns the 6x3 fixed-end reactions matrix of a load at a
func (o *Frame2d) FerConcentrated(a float64) (F *la.Matrix) {
	l := o.L
	b := l - a
	ll := l * l
	lll := ll * l
	F = la.NewMatrix(6, 3)
	F.Set(0, 0, -b/l)
	F.Set(1, 1, -b*b*(3.0*a+b)/lll)
	F.Set(1, 2, 6.0*a*b/lll)
	F.Set(2, 1, -a*b*b/ll)
	F.Set(2, 2, b*(2.0*a-b)/ll)
	F.Set(3, 0, -a/l)
	F.Set(4, 1, -a*a*(a+3.0*b)/lll)
	F.Set(4, 2, -6.0*a*b/lll)
	F.Set(5, 1, a*a*b/ll)
	F.Set(5, 2, a*(2.0*b-a)/ll)
	return
}

// FerDistributed returns the 6x3 fixed-end reactions matrix of a uniform load
func (o *Frame2d) FerDistributed() (F *la.Matrix) {
	l := o.L
	F = la.NewMatrix(6, 3)
	F.Set(0, 0, -l/2.0)
	F.Set(1, 1, -l/2.0)
	F.Set(1, 2, 1)
	F.Set(2, 1, -l*l/12.0)
	F.Set(3, 0, -l/2.0)
	F.Set(4, 1, -l/2.0)
	F.Set(4, 2, -1)
	F.Set(5, 1, l*l/12.0)
	return
}

// SpanField returns the local displacements at x due to the loads between the nodes
func (o *Frame2d) SpanField(x float64) (u geo.Vector) {
	for _, c := range o.Conc {
		f, f2 := hermiteConc(o.L, c.At, x)
		u[1] += (c.F[1]*f + c.F[5]*f2) / o.EIz
	}
	f := hermiteDist(o.L, x)
	for _, d := range o.Dist {
		u[1] += d.F[1] * f / o.EIz
	}
	return
}

// BendingMomentZ returns the bending moment about the local z-axis at x
func (o *Frame2d) BendingMomentZ(x float64) (float64, error) {
	f := ele.TotalEndForces(o)
	return momentZ(f[2], f[1], o.Conc, o.Dist, x), nil
}
