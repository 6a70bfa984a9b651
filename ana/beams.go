// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"testing"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/chk"
)

// BeamCase defines the supports and the load of a prismatic beam
type BeamCase int

const (
	// CantileverTip: fixed at x = 0, point load P at x = L
	//
	//   |▒o--------------------o
	//   |▒                     ↓ P
	CantileverTip BeamCase = iota

	// CantileverUniform: fixed at x = 0, uniform load q
	//
	//     ↓  ↓  ↓  ↓  ↓  ↓  ↓  q
	//   |▒o--------------------o
	CantileverUniform

	// SimpleUniform: pinned at both ends, uniform load q
	//
	//     ↓  ↓  ↓  ↓  ↓  ↓  ↓  q
	//     o--------------------o
	//     △                    ○
	SimpleUniform

	// SimpleCentral: pinned at both ends, point load P at x = L/2
	//
	//                ↓ P
	//     o--------------------o
	//     △                    ○
	SimpleCentral

	// FixedUniform: fixed at both ends, uniform load q
	//
	//     ↓  ↓  ↓  ↓  ↓  ↓  ↓  q
	//   |▒o--------------------o▒|
	FixedUniform
)

// Beam computes the deflection and bending moment of a prismatic beam
//  Loads point downwards (negative local y); thus deflections are negative.
//  Moments follow the end-force convention of line elements: hogging is positive
type Beam struct {
	Case BeamCase // supports and load
	L    float64  // length
	EI   float64  // bending stiffness
	P    float64  // magnitude of point load P or load intensity q
}

// Init initialises this structure
//  prms -- "L", "EI" and "P" (or "q"); the defaults are L = 1, EI = 1000 and P = 1
func (o *Beam) Init(c BeamCase, prms dbf.Params) {
	o.Case = c
	o.L = prms.GetValueOrDefault("L", 1)
	o.EI = prms.GetValueOrDefault("EI", 1000)
	o.P = prms.GetValueOrDefault("P", 1)
	o.P = prms.GetValueOrDefault("q", o.P)
}

// Deflection returns v(x)
func (o Beam) Deflection(x float64) float64 {
	L, EI, P := o.L, o.EI, o.P
	switch o.Case {
	case CantileverTip:
		return -P * x * x * (3*L - x) / (6 * EI)
	case CantileverUniform:
		return -P * x * x * (6*L*L - 4*L*x + x*x) / (24 * EI)
	case SimpleUniform:
		return -P * x * (L*L*L - 2*L*x*x + x*x*x) / (24 * EI)
	case SimpleCentral:
		if x > L/2 {
			x = L - x
		}
		return -P * x * (3*L*L - 4*x*x) / (48 * EI)
	case FixedUniform:
		return -P * x * x * (L - x) * (L - x) / (24 * EI)
	}
	chk.Panic("beam case %d is unavailable", o.Case)
	return 0
}

// Moment returns Mz(x)
func (o Beam) Moment(x float64) float64 {
	L, P := o.L, o.P
	switch o.Case {
	case CantileverTip:
		return P * (L - x)
	case CantileverUniform:
		return P * (L - x) * (L - x) / 2
	case SimpleUniform:
		return -P * x * (L - x) / 2
	case SimpleCentral:
		if x > L/2 {
			x = L - x
		}
		return -P * x / 2
	case FixedUniform:
		return P * (L*L - 6*L*x + 6*x*x) / 12
	}
	chk.Panic("beam case %d is unavailable", o.Case)
	return 0
}

// CheckDeflection checks deflections v at stations x
func (o Beam) CheckDeflection(tst *testing.T, x, v []float64, tol float64) {
	vana := make([]float64, len(x))
	for i, xi := range x {
		vana[i] = o.Deflection(xi)
	}
	chk.Array(tst, "v", tol, v, vana)
}

// CheckMoment checks bending moments m at stations x
func (o Beam) CheckMoment(tst *testing.T, x, m []float64, tol float64) {
	mana := make([]float64, len(x))
	for i, xi := range x {
		mana[i] = o.Moment(xi)
	}
	chk.Array(tst, "M", tol, m, mana)
}
