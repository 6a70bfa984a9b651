// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/chk"

// DofKey identifies the direction of a degree of freedom in the global system
type DofKey int

// degrees of freedom of a node, in this order
const (
	Ux DofKey = iota // translation along X
	Uy               // translation along Y
	Uz               // translation along Z
	Rx               // rotation about X
	Ry               // rotation about Y
	Rz               // rotation about Z
)

// NdofPerNode is the number of degrees of freedom of each node
const NdofPerNode = 6

var (
	dofKeys   = []string{"ux", "uy", "uz", "rx", "ry", "rz"}
	forceKeys = []string{"fx", "fy", "fz", "mx", "my", "mz"}
)

// String returns "ux", "uy", "uz", "rx", "ry" or "rz"
func (k DofKey) String() string {
	return dofKeys[k]
}

// ForceKey returns the dual key; e.g. "ux" => "fx"
func (k DofKey) ForceKey() string {
	return forceKeys[k]
}

// ParseDofKey returns the key corresponding to "ux", "uy", ... or "rz"
func ParseDofKey(s string) (DofKey, error) {
	for i, key := range dofKeys {
		if s == key {
			return DofKey(i), nil
		}
	}
	return 0, chk.Err("degree of freedom %q is invalid", s)
}

// Dof holds a scalar unknown (one translation or one rotation) of a node
//  Note: a restrained Dof keeps U fixed; i.e. zero or a prescribed settlement
type Dof struct {
	Key        DofKey  // direction
	Node       *Node   // owner
	Eq         int     // equation number in the [free | restrained] layout; -1 if not in a structure
	U          float64 // displacement or rotation
	F          float64 // externally applied force or moment
	Fer        float64 // accumulated fixed-end reaction from element loads
	R          float64 // support reaction (restrained dofs only)
	Restrained bool    // excluded from the unknowns
}

// Prescribe sets an initial displacement; this also restrains the dof
func (o *Dof) Prescribe(u float64) {
	o.U = u
	o.Restrained = true
}
