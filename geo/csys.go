// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrZeroDirection is returned when a coordinate system is requested for a null direction
var ErrZeroDirection = errors.New("direction vector has zero length")

// CoordinateSystem holds the local right-handed basis of a line element
//
//           j   (y)
//           ^
//           |        i = dir/|dir|
//           o------------------------------o-----> i  (x)
//         ,'  origin                        end
//       k   (z)
//
//  The basis is obtained by rotating the global basis by
//
//     R = Ry(β) ⋅ Rz(α) ⋅ Rx(twist)
//
//  where β is the azimuth of dir measured on the X-Z plane and α its elevation
//  above that plane. T = transpose(R) converts global components into local ones;
//  hence the rows of T hold i, j and k written in global components.
//
type CoordinateSystem struct {
	Dir    Vector        // direction of the local x-axis (not normalised)
	Twist  float64       // rotation about the local x-axis [degrees]
	Origin Vector        // position of the origin
	Beta   float64       // azimuth [degrees]
	Alpha  float64       // elevation [degrees]
	T      [3][3]float64 // global-to-local transformation: local = T ⋅ global
}

// NewCoordinateSystem computes the local basis of a line with direction dir
func NewCoordinateSystem(dir Vector, twist float64, origin Vector) (o *CoordinateSystem, err error) {
	if dir.Norm() == 0 {
		return nil, ErrZeroDirection
	}
	o = &CoordinateSystem{Dir: dir, Twist: twist, Origin: origin}

	// azimuth and elevation
	xz := dir.ProjectOnPlane(E1)
	px := dir.ScalarProjection(E0)
	py := dir.ScalarProjection(E1)
	pz := dir.ScalarProjection(E2)
	if xz.Norm() == 0 {
		o.Beta = 0
		o.Alpha = -90
		if py > 0 {
			o.Alpha = 90
		}
	} else {
		o.Beta = math.Atan2(px, pz)*180.0/math.Pi - 90.0
		o.Alpha = math.Atan(py/xz.Norm()) * 180.0 / math.Pi
	}

	// rotations
	r1 := Rotation(E0, twist)
	r2 := Rotation(E2, o.Alpha)
	r3 := Rotation(E1, o.Beta)
	R := MatMul(r3, MatMul(r2, r1))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			o.T[i][j] = R[j][i]
		}
	}
	return
}

// Basis returns the local unit vectors in global components
func (o *CoordinateSystem) Basis() (i, j, k Vector) {
	return o.T[0], o.T[1], o.T[2]
}

// ToLocal converts global components into local ones
func (o *CoordinateSystem) ToLocal(v Vector) Vector {
	return v.Transform(o.T)
}

// ToGlobal converts local components into global ones
func (o *CoordinateSystem) ToGlobal(v Vector) Vector {
	return v.TransformTr(o.T)
}

// Relative returns the matrix converting components in this system into
// components in the other system
func (o *CoordinateSystem) Relative(other *CoordinateSystem) [3][3]float64 {
	var m r3.Mat
	m.Mul(toMat(other.T), toMat(o.T).T()) // m := other.T * trans(o.T)
	return fromMat(&m)
}

// Rotation returns the matrix of a rotation about axis by angle (in degrees)
func Rotation(axis Vector, deg float64) [3][3]float64 {
	if axis.Norm() == 0 {
		chk.Panic("cannot rotate about a null axis")
	}
	return fromMat(r3.NewRotation(deg*math.Pi/180.0, axis.Unit().Vec()).Mat())
}

// MatMul returns a ⋅ b for 3x3 matrices
func MatMul(a, b [3][3]float64) [3][3]float64 {
	var m r3.Mat
	m.Mul(toMat(a), toMat(b))
	return fromMat(&m)
}

// toMat copies M into an r3 matrix
func toMat(M [3][3]float64) *r3.Mat {
	return r3.NewMat([]float64{
		M[0][0], M[0][1], M[0][2],
		M[1][0], M[1][1], M[1][2],
		M[2][0], M[2][1], M[2][2],
	})
}

// fromMat copies an r3 matrix
func fromMat(m *r3.Mat) (M [3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			M[i][j] = m.At(i, j)
		}
	}
	return
}
