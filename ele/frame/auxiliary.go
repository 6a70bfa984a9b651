// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"math"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/la"
)

// tolerance to consider a load component as zero, relative to the largest one
const loadTol = 1e-12

// shapeMatrix returns the 3x12 interpolation matrix of a beam
//  Row 0 interpolates the axial displacement linearly; rows 1 and 2 interpolate
//  the transverse displacements with Hermite cubics. With hermite == false, the
//  transverse displacements are interpolated linearly (trusses).
//  If inplane == true, row 2 is zero (2D formulations).
func shapeMatrix(L, x float64, hermite, inplane bool) (N *la.Matrix) {
	N = la.NewMatrix(3, 12)
	ξ := x / L
	n1 := 1.0 - ξ
	n2 := ξ
	N.Set(0, 0, n1)
	N.Set(0, 6, n2)
	if !hermite {
		N.Set(1, 1, n1)
		N.Set(1, 7, n2)
		if !inplane {
			N.Set(2, 2, n1)
			N.Set(2, 8, n2)
		}
		return
	}
	n3 := 1.0 - 3.0*ξ*ξ + 2.0*ξ*ξ*ξ
	n4 := 3.0*ξ*ξ - 2.0*ξ*ξ*ξ
	n5 := x * (1.0 - ξ) * (1.0 - ξ)
	n6 := x * (ξ*ξ - ξ)
	N.Set(1, 1, n3)
	N.Set(1, 5, n5)
	N.Set(1, 7, n4)
	N.Set(1, 11, n6)
	if !inplane {
		N.Set(2, 2, n3)
		N.Set(2, 4, -n5)
		N.Set(2, 8, n4)
		N.Set(2, 10, -n6)
	}
	return
}

// blockTrans replicates the 3x3 transformation along the diagonal
func blockTrans(T [3][3]float64, nblocks int) (M *la.Matrix) {
	M = la.NewMatrix(3*nblocks, 3*nblocks)
	for k := 0; k < nblocks; k++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				M.Set(3*k+i, 3*k+j, T[i][j])
			}
		}
	}
	return
}

// axialTrans returns the transformation of trusses: the direction cosines of the
// local x-axis (first ndim components) placed on the row of each node
func axialTrans(T [3][3]float64, ndim int) (M *la.Matrix) {
	M = la.NewMatrix(2, 2*ndim)
	for j := 0; j < ndim; j++ {
		M.Set(0, j, T[0][j])
		M.Set(1, ndim+j, T[0][j])
	}
	return
}

// selectLoad returns the components idx of a local load; any other non-zero
// component is rejected
func selectLoad(kind ele.Kind, local [6]float64, idx []int) (valid []float64, err error) {
	var fmax float64
	for _, f := range local {
		fmax = math.Max(fmax, math.Abs(f))
	}
	used := make([]bool, 6)
	valid = make([]float64, len(idx))
	for i, k := range idx {
		used[k] = true
		valid[i] = local[k]
	}
	for k, f := range local {
		if !used[k] && math.Abs(f) > loadTol*fmax {
			return nil, fmt.Errorf("%v cannot carry %s = %g: %w", kind, ele.DofKey(k).ForceKey(), f, ele.ErrUnsupportedLoadComponent)
		}
	}
	return
}

// hermiteConc returns the deflection functions of a fixed-fixed beam due to a
// unit transverse force (f) and a unit moment (f2) applied at a
func hermiteConc(L, a, x float64) (f, f2 float64) {
	b := L - a
	l2 := L * L
	l3 := l2 * L
	f = a*b*b/l2*x*x/2.0 - b*b*(3.0*a+b)/(6.0*l3)*x*x*x + math.Pow(macaulay(x-a), 3)/6.0
	f2 = a*b/l3*x*x*x - b*(2.0*a-b)/(2.0*l2)*x*x - 0.5*math.Pow(macaulay(x-a), 2)
	return
}

// hermiteDist returns the deflection function of a fixed-fixed beam due to a
// unit uniformly distributed force
func hermiteDist(L, x float64) float64 {
	return math.Pow(x, 4)/24.0 - L/12.0*math.Pow(x, 3) + L*L/24.0*x*x
}

// heaviside returns 1 if x > 0 and 0 otherwise
func heaviside(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// macaulay returns <x> = max(x, 0)
func macaulay(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// checkPlanar returns an error if the element does not lie on the X-Y plane
func checkPlanar(kind ele.Kind, b *ele.Base) error {
	if math.Abs(b.End.X[2]-b.Start.X[2]) > 1e-12*b.L {
		return fmt.Errorf("%v: nodes must lie on a plane parallel to X-Y: %w", kind, ele.ErrInvalidGeometry)
	}
	if b.Twist != 0 {
		return fmt.Errorf("%v: twist angle must be zero. twist = %g: %w", kind, b.Twist, ele.ErrInvalidGeometry)
	}
	return nil
}
