// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func Test_vector01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vector01. vector algebra")

	u := Vector{1, 2, 3}
	v := Vector{-2, 0, 1}
	chk.Array(tst, "u+v", 1e-15, u.Add(v).Slice(), []float64{-1, 2, 4})
	chk.Array(tst, "u-v", 1e-15, u.Sub(v).Slice(), []float64{3, 2, 2})
	chk.Float64(tst, "u·v", 1e-15, u.Dot(v), 1)
	chk.Array(tst, "u×v", 1e-15, u.Cross(v).Slice(), []float64{2, -7, 4})
	chk.Float64(tst, "|u|", 1e-15, u.Norm(), math.Sqrt(14))
	chk.Float64(tst, "|unit(u)|", 1e-15, u.Unit().Norm(), 1)
	chk.Float64(tst, "proj_X(u)", 1e-15, u.ScalarProjection(Vector{2, 0, 0}), 1)
	chk.Array(tst, "proj_XZ(u)", 1e-15, u.ProjectOnPlane(E1).Slice(), []float64{1, 0, 3})
	chk.Array(tst, "unit(0)", 1e-15, Vector{}.Unit().Slice(), []float64{0, 0, 0})
}

func Test_vector02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vector02. rotations and products of 3x3 matrices")

	Rz := Rotation(E2, 90)
	chk.Deep2(tst, "Rz(90)", 1e-15, mat2slice(Rz), [][]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}})
	Rx := Rotation(Vector{2, 0, 0}, 90)
	chk.Deep2(tst, "Rx(90)", 1e-15, mat2slice(Rx), [][]float64{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}})
	chk.Deep2(tst, "Rz⋅Rz", 1e-15, mat2slice(MatMul(Rz, Rz)), [][]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}})
	chk.Deep2(tst, "Rz⋅Rx", 1e-15, mat2slice(MatMul(Rz, Rx)), [][]float64{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}})

	u := Vector{1, 2, 3}
	chk.Array(tst, "Rz⋅u", 1e-15, u.Transform(Rz).Slice(), []float64{-2, 1, 3})
	chk.Array(tst, "Rzᵀ⋅u", 1e-15, u.TransformTr(Rz).Slice(), []float64{2, -1, 3})
	chk.Array(tst, "vec", 1e-17, FromVec(u.Vec()).Slice(), u.Slice())

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("rotation about a null axis should panic\n")
		}
	}()
	Rotation(Vector{}, 30)
}

func Test_csys01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("csys01. aligned and inclined elements")

	// aligned with X
	cs, err := NewCoordinateSystem(Vector{3, 0, 0}, 0, Vector{})
	if err != nil {
		tst.Errorf("NewCoordinateSystem failed:\n%v", err)
		return
	}
	chk.Deep2(tst, "T(X)", 1e-15, mat2slice(cs.T), [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	// aligned with Z
	cs, _ = NewCoordinateSystem(Vector{0, 0, 2}, 0, Vector{})
	i, j, k := cs.Basis()
	chk.Array(tst, "i(Z)", 1e-15, i[:], []float64{0, 0, 1})
	chk.Array(tst, "j(Z)", 1e-15, j[:], []float64{0, 1, 0})
	chk.Array(tst, "k(Z)", 1e-15, k[:], []float64{-1, 0, 0})

	// inclined on the X-Y plane
	c, s := math.Cos(math.Pi/6), math.Sin(math.Pi/6)
	cs, _ = NewCoordinateSystem(Vector{c, s, 0}, 0, Vector{})
	io.Pforan("α = %v  β = %v\n", cs.Alpha, cs.Beta)
	chk.Float64(tst, "α", 1e-13, cs.Alpha, 30)
	chk.Float64(tst, "β", 1e-13, cs.Beta, 0)
	chk.Deep2(tst, "T(30°)", 1e-15, mat2slice(cs.T), [][]float64{{c, s, 0}, {-s, c, 0}, {0, 0, 1}})

	// round trip
	v := Vector{0.3, -1.2, 4.5}
	w := cs.ToGlobal(cs.ToLocal(v))
	chk.Array(tst, "v", 1e-14, w[:], v[:])

	// twist by 90°
	cs, _ = NewCoordinateSystem(Vector{1, 0, 0}, 90, Vector{})
	_, j, k = cs.Basis()
	chk.Array(tst, "j(twist)", 1e-15, j[:], []float64{0, 0, 1})
	chk.Array(tst, "k(twist)", 1e-15, k[:], []float64{0, -1, 0})
}

func Test_csys02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("csys02. vertical elements")

	up, _ := NewCoordinateSystem(Vector{0, 5, 0}, 0, Vector{})
	chk.Float64(tst, "α(up)", 1e-15, up.Alpha, 90)
	chk.Float64(tst, "β(up)", 1e-15, up.Beta, 0)
	i, j, k := up.Basis()
	chk.Array(tst, "i(up)", 1e-15, i[:], []float64{0, 1, 0})
	chk.Array(tst, "j(up)", 1e-15, j[:], []float64{-1, 0, 0})
	chk.Array(tst, "k(up)", 1e-15, k[:], []float64{0, 0, 1})

	down, _ := NewCoordinateSystem(Vector{0, -5, 0}, 0, Vector{})
	chk.Float64(tst, "α(down)", 1e-15, down.Alpha, -90)
	i, j, _ = down.Basis()
	chk.Array(tst, "i(down)", 1e-15, i[:], []float64{0, -1, 0})
	chk.Array(tst, "j(down)", 1e-15, j[:], []float64{1, 0, 0})
	checkOrthonormal(tst, "up", up.T)
	checkOrthonormal(tst, "down", down.T)

	_, err := NewCoordinateSystem(Vector{}, 0, Vector{})
	if !errors.Is(err, ErrZeroDirection) {
		tst.Errorf("null direction should fail. err = %v", err)
	}
}

func Test_csys03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("csys03. relative transformation")

	a, _ := NewCoordinateSystem(Vector{1, 1, 0}, 0, Vector{})
	b, _ := NewCoordinateSystem(Vector{0, 1, 1}, 30, Vector{})
	M := a.Relative(b)
	v := Vector{1, 2, 3}
	va := a.ToLocal(v)
	vb := b.ToLocal(v)
	chk.Array(tst, "a→b", 1e-14, va.Transform(M).Slice(), vb[:])
}

func Test_csys04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("csys04. orthonormality and right-handedness")

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("T⋅Tᵀ = I and i×j = k", prop.ForAll(
		func(x, y, z, twist float64) bool {
			d := Vector{x, y, z}
			if d.Norm() < 1e-6 {
				return true
			}
			cs, err := NewCoordinateSystem(d, twist, Vector{})
			if err != nil {
				return false
			}
			for a := 0; a < 3; a++ {
				for b := 0; b < 3; b++ {
					δ := 0.0
					if a == b {
						δ = 1
					}
					if math.Abs(Vector(cs.T[a]).Dot(cs.T[b])-δ) > 1e-12 {
						return false
					}
				}
			}
			i, j, k := cs.Basis()
			if i.Cross(j).Sub(k).Norm() > 1e-12 {
				return false
			}
			return i.Sub(d.Unit()).Norm() < 1e-12
		},
		gen.Float64Range(-10, 10),
		gen.Float64Range(-10, 10),
		gen.Float64Range(-10, 10),
		gen.Float64Range(-180, 180),
	))

	properties.TestingRun(tst)
}

func mat2slice(M [3][3]float64) [][]float64 {
	return [][]float64{M[0][:], M[1][:], M[2][:]}
}

func checkOrthonormal(tst *testing.T, msg string, T [3][3]float64) {
	var P [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			P[i][j] = Vector(T[i]).Dot(T[j])
		}
	}
	chk.Deep2(tst, msg+": T⋅Tᵀ", 1e-15, mat2slice(P), [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
}
