// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"errors"

	"github.com/cpmech/goframe/geo"
	"github.com/cpmech/gosl/la"
)

// GlobalK returns the stiffness matrix in global axes: K = Tᵀ ⋅ Kl ⋅ T
func GlobalK(e Element) *la.Matrix {
	T := e.Trans()
	Kl := e.LocalK()
	KlT := la.NewMatrix(Kl.M, T.N)
	la.MatMatMul(KlT, 1, Kl, T) // KlT := Kl * T
	K := la.NewMatrix(T.N, T.N)
	la.MatTrMatMul(K, 1, T, KlT) // K := trans(T) * KlT
	return K
}

// GlobalU returns the displacements of the element dofs
func GlobalU(e Element) (u []float64) {
	dofs := e.Dofs()
	u = make([]float64, len(dofs))
	for i, d := range dofs {
		u[i] = d.U
	}
	return
}

// LocalEndDisplacements returns T ⋅ u for the element dofs
func LocalEndDisplacements(e Element) (ul []float64) {
	T := e.Trans()
	ul = make([]float64, T.M)
	la.MatVecMul(ul, 1, T, GlobalU(e)) // ul := T * u
	return
}

// EndForces returns Kl ⋅ ul; i.e. the end forces due to the end displacements only
func EndForces(e Element) (fl []float64) {
	ul := LocalEndDisplacements(e)
	fl = make([]float64, len(ul))
	la.MatVecMul(fl, 1, e.LocalK(), ul) // fl := Kl * ul
	return
}

// TotalEndForces returns Fer + Kl ⋅ ul; i.e. the local end forces including the
// fixed-end reactions of span loads
func TotalEndForces(e Element) (fl []float64) {
	fl = EndForces(e)
	for i, r := range e.Data().Fer {
		fl[i] += r
	}
	return
}

// AddFer accumulates local fixed-end reactions into the element and, after
// rotation to global axes, into the element dofs
func AddFer(e Element, local []float64) {
	b := e.Data()
	T := e.Trans()
	g := make([]float64, T.N)
	la.MatTrVecMul(g, 1, T, local) // g := trans(T) * local
	for i, d := range e.Dofs() {
		d.Fer += g[i]
	}
	for i, r := range local {
		b.Fer[i] += r
	}
}

// LocalEndDisplacements12 returns the six displacements of both nodes in local axes
//  Note: unlike LocalEndDisplacements, all twelve node values are used
//        whatever the formulation is; they feed ShapeMatrix
func LocalEndDisplacements12(e Element) (u []float64) {
	b := e.Data()
	u = make([]float64, 12)
	for n, nod := range []*Node{b.Start, b.End} {
		for blk := 0; blk < 2; blk++ {
			var v geo.Vector
			for i := 0; i < 3; i++ {
				v[i] = nod.Dofs[3*blk+i].U
			}
			v = b.Csys.ToLocal(v)
			for i := 0; i < 3; i++ {
				u[6*n+3*blk+i] = v[i]
			}
		}
	}
	return
}

// LocalMesh returns the stations in local coordinates
func LocalMesh(e Element) (x []geo.Vector) {
	xs := e.Data().Stations()
	x = make([]geo.Vector, len(xs))
	for k, s := range xs {
		x[k] = geo.Vector{s, 0, 0}
	}
	return
}

// GlobalMesh returns the stations in global coordinates
func GlobalMesh(e Element) (x []geo.Vector) {
	b := e.Data()
	x = LocalMesh(e)
	for k := range x {
		x[k] = b.Csys.Origin.Add(b.Csys.ToGlobal(x[k]))
	}
	return
}

// LocalDisplacementField returns the displacements at stations in local axes,
// interpolated from the end displacements plus the field due to span loads
func LocalDisplacementField(e Element) (u []geo.Vector) {
	b := e.Data()
	u12 := LocalEndDisplacements12(e)
	xs := b.Stations()
	u = make([]geo.Vector, len(xs))
	tmp := make([]float64, 3)
	for k, x := range xs {
		la.MatVecMul(tmp, 1, e.ShapeMatrix(x), u12) // tmp := N(x) * u12
		u[k] = geo.Vector{tmp[0], tmp[1], tmp[2]}.Add(b.NonNodal[k])
	}
	return
}

// GlobalDisplacementField returns the scaled displacements at stations in global axes
func GlobalDisplacementField(e Element, scale float64) (u []geo.Vector) {
	b := e.Data()
	u = LocalDisplacementField(e)
	for k := range u {
		u[k] = b.Csys.ToGlobal(u[k]).Scale(scale)
	}
	return
}

// DeformedPosition returns the global positions of stations after deformation
func DeformedPosition(e Element, scale float64) (x []geo.Vector) {
	x = GlobalMesh(e)
	u := GlobalDisplacementField(e, scale)
	for k := range x {
		x[k] = x[k].Add(u[k])
	}
	return
}

// UpdateSpanField recomputes the displacement field due to span loads
func UpdateSpanField(e Element) {
	b := e.Data()
	for k, x := range b.Stations() {
		b.NonNodal[k] = e.SpanField(x)
	}
}

// UpdateMoments computes the bending moments at stations; formulations
// without bending moments are skipped
func UpdateMoments(e Element) (err error) {
	b := e.Data()
	xs := b.Stations()
	b.Mz, b.My = nil, nil
	mz := make([]float64, len(xs))
	my := make([]float64, len(xs))
	hasZ, hasY := true, true
	for k, x := range xs {
		if hasZ {
			if mz[k], err = e.BendingMomentZ(x); err != nil {
				if !errors.Is(err, ErrUnsupportedOperation) {
					return
				}
				hasZ = false
			}
		}
		if hasY {
			if my[k], err = e.BendingMomentY(x); err != nil {
				if !errors.Is(err, ErrUnsupportedOperation) {
					return
				}
				hasY = false
			}
		}
	}
	if hasZ {
		b.Mz = mz
	}
	if hasY {
		b.My = my
	}
	return nil
}
