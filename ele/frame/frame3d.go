// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package frame implements the frame and truss formulations of line elements
package frame

import (
	"fmt"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/geo"
	"github.com/cpmech/goframe/mdl/sec"
	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/la"
)

// Frame3d implements a 3D Euler-Bernoulli frame element (linear elastic)
//
//                      y
//                      ^
//                      |
//         (0)==========|=================(1)------> x
//                    ,'
//                  z
//
//  Local dofs: [ux uy uz rx ry rz]₀ [ux uy uz rx ry rz]₁
//  Bending about z (v-plane) uses Iz; bending about y (w-plane) uses Iy.
//
type Frame3d struct {
	ele.Base

	// constants
	EA  float64 // axial rigidity
	EIy float64 // flexural rigidity about y
	EIz float64 // flexural rigidity about z
	GJ  float64 // torsional rigidity
}

// register element
func init() {
	ele.SetAllocator(ele.KindFrame3d, func(start, end *ele.Node, s sec.Section, m sld.Material, twist float64) (ele.Element, error) {
		return NewFrame3d(start, end, s, m, twist)
	})
}

// NewFrame3d returns a new 3D frame element
func NewFrame3d(start, end *ele.Node, s sec.Section, m sld.Material, twist float64) (o *Frame3d, err error) {
	o = new(Frame3d)
	err = o.Init(ele.KindFrame3d, start, end, s, m, twist, 12, [2]int{0, 6})
	if err != nil {
		return nil, err
	}
	G, err := m.ShearModulus()
	if err != nil {
		return nil, fmt.Errorf("%w: %v with %q material: %w", ele.ErrUnsupportedOperation, ele.KindFrame3d, m.Name(), err)
	}
	E := m.Young()
	o.EA = E * s.Area()
	o.EIy = E * s.Iy()
	o.EIz = E * s.Iz()
	o.GJ = G * s.J()
	return
}

// Kind returns KindFrame3d
func (o *Frame3d) Kind() ele.Kind { return ele.KindFrame3d }

// Dofs returns the six dofs of the start node followed by the six dofs of the end node
func (o *Frame3d) Dofs() []*ele.Dof {
	return append(append([]*ele.Dof{}, o.Start.Dofs...), o.End.Dofs...)
}

// LocalK returns the stiffness matrix in local axes
func (o *Frame3d) LocalK() (Kl *la.Matrix) {

	// auxiliary
	l := o.L
	ll := l * l
	lll := l * ll
	a := o.EA / l
	t := o.GJ / l
	bz, cz, dz, ez := 12.0*o.EIz/lll, 6.0*o.EIz/ll, 4.0*o.EIz/l, 2.0*o.EIz/l
	by, cy, dy, ey := 12.0*o.EIy/lll, 6.0*o.EIy/ll, 4.0*o.EIy/l, 2.0*o.EIy/l

	// axial and torsion
	Kl = la.NewMatrix(12, 12)
	Kl.Set(0, 0, a)
	Kl.Set(0, 6, -a)
	Kl.Set(6, 0, -a)
	Kl.Set(6, 6, a)
	Kl.Set(3, 3, t)
	Kl.Set(3, 9, -t)
	Kl.Set(9, 3, -t)
	Kl.Set(9, 9, t)

	// bending about z: dofs 1, 5, 7, 11
	Kl.Set(1, 1, bz)
	Kl.Set(1, 5, cz)
	Kl.Set(1, 7, -bz)
	Kl.Set(1, 11, cz)
	Kl.Set(5, 1, cz)
	Kl.Set(5, 5, dz)
	Kl.Set(5, 7, -cz)
	Kl.Set(5, 11, ez)
	Kl.Set(7, 1, -bz)
	Kl.Set(7, 5, -cz)
	Kl.Set(7, 7, bz)
	Kl.Set(7, 11, -cz)
	Kl.Set(11, 1, cz)
	Kl.Set(11, 5, ez)
	Kl.Set(11, 7, -cz)
	Kl.Set(11, 11, dz)

	// bending about y: dofs 2, 4, 8, 10
	Kl.Set(2, 2, by)
	Kl.Set(2, 4, -cy)
	Kl.Set(2, 8, -by)
	Kl.Set(2, 10, -cy)
	Kl.Set(4, 2, -cy)
	Kl.Set(4, 4, dy)
	Kl.Set(4, 8, cy)
	Kl.Set(4, 10, ey)
	Kl.Set(8, 2, -by)
	Kl.Set(8, 4, cy)
	Kl.Set(8, 8, by)
	Kl.Set(8, 10, cy)
	Kl.Set(10, 2, -cy)
	Kl.Set(10, 4, ey)
	Kl.Set(10, 8, cy)
	Kl.Set(10, 10, dy)
	return
}

// Trans returns the 12x12 global-to-local transformation matrix
func (o *Frame3d) Trans() *la.Matrix {
	return blockTrans(o.Csys.T, 4)
}

// ShapeMatrix returns the interpolation matrix at x
func (o *Frame3d) ShapeMatrix(x float64) *la.Matrix {
	return shapeMatrix(o.L, x, true, false)
}

// ValidLoad returns all six components
func (o *Frame3d) ValidLoad(local [6]float64) ([]float64, error) {
	return selectLoad(ele.KindFrame3d, local, []int{0, 1, 2, 3, 4, 5})
}

// FerConcentrated returns the 12x6 fixed-end reactions matrix of a load at a
func (o *Frame3d) FerConcentrated(a float64) (F *la.Matrix) {
	l := o.L
	b := l - a
	ll := l * l
	lll := ll * l
	F = la.NewMatrix(12, 6)
	F.Set(0, 0, -b/l)
	F.Set(1, 1, -b*b*(3.0*a+b)/lll)
	F.Set(1, 5, 6.0*a*b/lll)
	F.Set(2, 2, -b*b*(3.0*a+b)/lll)
	F.Set(2, 4, -6.0*a*b/lll)
	F.Set(3, 3, -b/l)
	F.Set(4, 2, a*b*b/ll)
	F.Set(4, 4, b*(2.0*a-b)/ll)
	F.Set(5, 1, -a*b*b/ll)
	F.Set(5, 5, b*(2.0*a-b)/ll)
	F.Set(6, 0, -a/l)
	F.Set(7, 1, -a*a*(a+3.0*b)/lll)
	F.Set(7, 5, -6.0*a*b/lll)
	F.Set(8, 2, -a*a*(a+3.0*b)/lll)
	F.Set(8, 4, 6.0*a*b/lll)
	F.Set(9, 3, -a/l)
	F.Set(10, 2, -a*a*b/ll)
	F.Set(10, 4, a*(2.0*b-a)/ll)
	F.Set(11, 1, a*a*b/ll)
	F.Set(11, 5, a*(2.0*b-a)/ll)
	return
}

// FerDistributed returns the 12x6 fixed-end reactions matrix of a uniform load
func (o *Frame3d) FerDistributed() (F *la.Matrix) {
	l := o.L
	F = la.NewMatrix(12, 6)
	for _, i := range []int{0, 6} {
		F.Set(i, 0, -l/2.0)
		F.Set(i+1, 1, -l/2.0)
		F.Set(i+2, 2, -l/2.0)
		F.Set(i+3, 3, -l/2.0)
	}
	F.Set(1, 5, 1)
	F.Set(2, 4, -1)
	F.Set(7, 5, -1)
	F.Set(8, 4, 1)
	F.Set(4, 2, l*l/12.0)
	F.Set(5, 1, -l*l/12.0)
	F.Set(10, 2, -l*l/12.0)
	F.Set(11, 1, l*l/12.0)
	return
}

// SpanField returns the local displacements at x due to the loads between the nodes
func (o *Frame3d) SpanField(x float64) (u geo.Vector) {
	for _, c := range o.Conc {
		f, f2 := hermiteConc(o.L, c.At, x)
		u[1] += (c.F[1]*f + c.F[5]*f2) / o.EIz
		u[2] += (c.F[2]*f - c.F[4]*f2) / o.EIy
	}
	f := hermiteDist(o.L, x)
	for _, d := range o.Dist {
		u[1] += d.F[1] * f / o.EIz
		u[2] += d.F[2] * f / o.EIy
	}
	return
}

// BendingMomentZ returns the bending moment about the local z-axis at x
func (o *Frame3d) BendingMomentZ(x float64) (float64, error) {
	f := ele.TotalEndForces(o)
	return momentZ(f[5], f[1], o.Conc, o.Dist, x), nil
}

// BendingMomentY returns the bending moment about the local y-axis at x
func (o *Frame3d) BendingMomentY(x float64) (float64, error) {
	f := ele.TotalEndForces(o)
	m := f[4] + f[2]*x
	for _, c := range o.Conc {
		m += c.F[2]*macaulay(x-c.At) + c.F[4]*heaviside(x-c.At)
	}
	for _, d := range o.Dist {
		m += d.F[2]*x*x/2.0 + d.F[4]*x
	}
	return -m, nil
}

// momentZ computes the bending moment about z from the start end forces and span loads
func momentZ(m0, v0 float64, conc []ele.ConcLoad, dist []ele.DistLoad, x float64) float64 {
	m := m0 - v0*x
	for _, c := range conc {
		m += -c.F[1]*macaulay(x-c.At) + c.F[5]*heaviside(x-c.At)
	}
	for _, d := range dist {
		m += -d.F[1]*x*x/2.0 + d.F[5]*x
	}
	return m
}
