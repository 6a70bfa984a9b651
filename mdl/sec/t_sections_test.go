// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sec

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sections01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections01. typical cross-sections")

	rect, err := New("rectangle", 4, 6, 0, 0, 0)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.Float64(tst, "rect: A ", 1e-17, rect.Area(), 24.0)
	chk.Float64(tst, "rect: Iz", 1e-17, rect.Iz(), 72.0)
	chk.Float64(tst, "rect: Iy", 1e-17, rect.Iy(), 32.0)
	chk.Float64(tst, "rect: J ", 1e-17, rect.J(), 104.0)
	if _, ok := rect.Warping(); ok {
		tst.Errorf("rectangle must not have warping rigidity\n")
	}

	ibeam, err := New("I-beam", 4, 6, 0.5, 0.3, 0)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.Float64(tst, "I-beam: A ", 1e-15, ibeam.Area(), 5.5)
	chk.Float64(tst, "I-beam: Iz", 1e-10, ibeam.Iz(), 33.4583333333)
	chk.Float64(tst, "I-beam: Iy", 1e-10, ibeam.Iy(), 5.3445833333)
	chk.Float64(tst, "I-beam: J ", 1e-10, ibeam.J(), 0.3783333333)

	circle, err := New("circle", 0, 0, 0, 0, 1)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	chk.Float64(tst, "circle: A ", 1e-17, circle.Area(), math.Pi)
	chk.Float64(tst, "circle: Iy", 1e-10, circle.Iy(), 0.7853981634)
	chk.Float64(tst, "circle: Iz", 1e-10, circle.Iz(), 0.7853981634)
	chk.Float64(tst, "circle: J ", 1e-10, circle.J(), 1.5707963268)
	cw, ok := circle.Warping()
	if !ok || cw != 0 {
		tst.Errorf("circle must have zero warping rigidity\n")
	}
}

func Test_sections02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sections02. arbitrary section and invalid input")

	s := Arbitrary{A: 1e-2, Iyy: 2e-5, Izz: 8e-5, Jxx: 1e-4}
	chk.Float64(tst, "A ", 1e-17, s.Area(), 1e-2)
	chk.Float64(tst, "Iy", 1e-17, s.Iy(), 2e-5)
	chk.Float64(tst, "Iz", 1e-17, s.Iz(), 8e-5)
	chk.Float64(tst, "J ", 1e-17, s.J(), 1e-4)
	if _, ok := s.Warping(); ok {
		tst.Errorf("warping rigidity was not given\n")
	}

	for _, typ := range []string{"rectangle", "circle", "I-beam", "hexagon"} {
		if _, err := New(typ, 0, 0, 0, 0, 0); err == nil {
			tst.Errorf("New(%q) with null dimensions should have failed\n", typ)
		}
	}
}
