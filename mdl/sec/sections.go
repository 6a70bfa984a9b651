// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sec implements cross-sections of line elements
package sec

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Section defines the properties of a cross-section
//
//          y (local)
//          ^
//          |
//     +----|----+
//     |    |    |     Iy : moment of inertia about the local y-axis
//     |    o----|---> z (local)
//     |         |     Iz : moment of inertia about the local z-axis
//     +---------+
//                      J : polar (torsional) moment of inertia
//
type Section interface {
	Area() float64                  // cross-sectional area
	Iy() float64                    // moment of inertia about the local y-axis
	Iz() float64                    // moment of inertia about the local z-axis
	J() float64                     // polar moment of inertia
	Warping() (cw float64, ok bool) // warping rigidity; ok == false if undefined
}

// Circle implements a solid circular section
type Circle struct {
	R float64 // radius
}

// Area returns πr²
func (o Circle) Area() float64 { return math.Pi * o.R * o.R }

// Iy returns πr⁴/4
func (o Circle) Iy() float64 { return math.Pi * math.Pow(o.R, 4) / 4.0 }

// Iz returns πr⁴/4
func (o Circle) Iz() float64 { return o.Iy() }

// J returns πr⁴/2
func (o Circle) J() float64 { return o.Iy() + o.Iz() }

// Warping is zero for circles
func (o Circle) Warping() (float64, bool) { return 0, true }

// Rectangle implements a solid rectangular section with breadth B along the local
// z-axis and depth D along the local y-axis
type Rectangle struct {
	B float64 // breadth
	D float64 // depth
}

func (o Rectangle) Area() float64 { return o.B * o.D }
func (o Rectangle) Iy() float64 { return o.D * o.B * o.B * o.B / 12.0 }
func (o Rectangle) Iz() float64 { return o.B * o.D * o.D * o.D / 12.0 }
func (o Rectangle) J() float64 { return o.Iy() + o.Iz() }

// Warping is undefined for rectangles
func (o Rectangle) Warping() (float64, bool) { return 0, false }

// ISection implements a doubly symmetric I-beam with strong axis z
//
//                   tw
//               -->| |<--
//          ___     | |     ___
//      tf   |   ########    |
//          ---  ########    |
//                  ##       |
//                  ##       | H
//                  ##       |
//          ---  ########    |
//      tf  _|_  ########   ---
//                  B
//
type ISection struct {
	B  float64 // flange width
	H  float64 // total height
	Tf float64 // flange thickness
	Tw float64 // web thickness
}

func (o ISection) Area() float64 {
	l := o.H - 2.0*o.Tf
	return o.B*o.H - l*(o.B-o.Tw)
}

func (o ISection) Iz() float64 {
	l := o.H - 2.0*o.Tf
	return o.B*math.Pow(o.H, 3)/12.0 - (o.B-o.Tw)*math.Pow(l, 3)/12.0
}

func (o ISection) Iy() float64 {
	l := o.H - 2.0*o.Tf
	return l*math.Pow(o.Tw, 3)/12.0 + o.Tf*math.Pow(o.B, 3)/6.0
}

// J returns the torsional constant of thin-walled open sections
func (o ISection) J() float64 {
	return (2.0*o.B*math.Pow(o.Tf, 3) + (o.H-2.0*o.Tf)*math.Pow(o.Tw, 3)) / 3.0
}

// Warping returns Iy⋅h²/4 with h the distance between flange centroids
func (o ISection) Warping() (float64, bool) {
	h := o.H - o.Tf
	return o.Tf * math.Pow(o.B, 3) / 12.0 * h * h / 2.0, true
}

// Arbitrary holds user-defined properties
type Arbitrary struct {
	A     float64 // area
	Iyy   float64 // moment of inertia about y
	Izz   float64 // moment of inertia about z
	Jxx   float64 // polar moment of inertia
	Cw    float64 // warping rigidity
	HasCw bool    // Cw was given
}

func (o Arbitrary) Area() float64 { return o.A }
func (o Arbitrary) Iy() float64 { return o.Iyy }
func (o Arbitrary) Iz() float64 { return o.Izz }
func (o Arbitrary) J() float64 { return o.Jxx }
func (o Arbitrary) Warping() (float64, bool) { return o.Cw, o.HasCw }

// New returns a section of the given type
//  typ -- "circle", "rectangle" or "I-beam"
//  wid -- breadth (rectangle) or flange width (I-beam)
//  hei -- depth (rectangle) or height (I-beam)
//  tf  -- flange thickness (I-beam)
//  tw  -- web thickness (I-beam)
//  rad -- radius (circle)
func New(typ string, wid, hei, tf, tw, rad float64) (Section, error) {
	switch typ {
	case "circle":
		if rad <= 0 {
			return nil, chk.Err("radius of circle must be positive. r = %g is invalid", rad)
		}
		return Circle{R: rad}, nil
	case "rectangle":
		if wid <= 0 || hei <= 0 {
			return nil, chk.Err("rectangle dimensions must be positive. b = %g, d = %g", wid, hei)
		}
		return Rectangle{B: wid, D: hei}, nil
	case "I-beam":
		if wid <= 0 || hei <= 0 || tf <= 0 || tw <= 0 || 2.0*tf >= hei || tw >= wid {
			return nil, chk.Err("I-beam dimensions are inconsistent. b=%g h=%g tf=%g tw=%g", wid, hei, tf, tw)
		}
		return ISection{B: wid, H: hei, Tf: tf, Tw: tw}, nil
	}
	return nil, chk.Err("cross-section type %q is unavailable", typ)
}
