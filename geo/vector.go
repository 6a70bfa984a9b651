// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements 3D vectors and the local coordinate systems of line elements
package geo

import "gonum.org/v1/gonum/spatial/r3"

// Vector holds the three components of a vector in some Cartesian system
type Vector [3]float64

// Unit vectors of the global system
var (
	E0 = Vector{1, 0, 0} // global X
	E1 = Vector{0, 1, 0} // global Y
	E2 = Vector{0, 0, 1} // global Z
)

// FromVec converts an r3 vector
func FromVec(p r3.Vec) Vector {
	return Vector{p.X, p.Y, p.Z}
}

// Vec returns the r3 equivalent
func (u Vector) Vec() r3.Vec {
	return r3.Vec{X: u[0], Y: u[1], Z: u[2]}
}

// Slice returns a copy of the components as a slice
func (u Vector) Slice() []float64 {
	return []float64{u[0], u[1], u[2]}
}

// Add returns u + v
func (u Vector) Add(v Vector) Vector {
	return FromVec(r3.Add(u.Vec(), v.Vec()))
}

// Sub returns u - v
func (u Vector) Sub(v Vector) Vector {
	return FromVec(r3.Sub(u.Vec(), v.Vec()))
}

// Scale returns α * u
func (u Vector) Scale(α float64) Vector {
	return FromVec(r3.Scale(α, u.Vec()))
}

// Dot returns u · v
func (u Vector) Dot(v Vector) float64 {
	return r3.Dot(u.Vec(), v.Vec())
}

// Cross returns u × v
func (u Vector) Cross(v Vector) Vector {
	return FromVec(r3.Cross(u.Vec(), v.Vec()))
}

// Norm returns the Euclidean norm
func (u Vector) Norm() float64 {
	return r3.Norm(u.Vec())
}

// Unit returns u/|u|. The zero vector is returned unchanged
func (u Vector) Unit() Vector {
	if u.Norm() == 0 {
		return u
	}
	return FromVec(r3.Unit(u.Vec()))
}

// ScalarProjection returns the (signed) length of the projection of u onto v
func (u Vector) ScalarProjection(v Vector) float64 {
	return u.Dot(v.Unit())
}

// ProjectOnPlane returns the projection of u onto the plane with normal n
func (u Vector) ProjectOnPlane(n Vector) Vector {
	nn := n.Unit()
	return u.Sub(nn.Scale(u.Dot(nn)))
}

// Transform returns M · u
func (u Vector) Transform(M [3][3]float64) Vector {
	return FromVec(toMat(M).MulVec(u.Vec()))
}

// TransformTr returns transpose(M) · u
func (u Vector) TransformTr(M [3][3]float64) Vector {
	return FromVec(toMat(M).MulVecTrans(u.Vec()))
}
