// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/goframe/geo"

// Node holds a point in space and its six degrees of freedom
type Node struct {
	Id    int          // index in the structure; -1 if not in a structure
	X     geo.Vector   // position
	Dofs  []*Dof       // [6] dofs ordered as ux, uy, uz, rx, ry, rz
	Loads [][6]float64 // applied point loads {fx, fy, fz, mx, my, mz} (global)
}

// NewNode returns a new node at (x, y, z)
func NewNode(x, y, z float64) (o *Node) {
	o = &Node{Id: -1, X: geo.Vector{x, y, z}}
	o.Dofs = make([]*Dof, NdofPerNode)
	for i := 0; i < NdofPerNode; i++ {
		o.Dofs[i] = &Dof{Key: DofKey(i), Node: o, Eq: -1}
	}
	return
}

// Dof returns the degree of freedom corresponding to key
func (o *Node) Dof(key DofKey) *Dof {
	return o.Dofs[key]
}

// Restrain restrains the given dofs
func (o *Node) Restrain(keys ...DofKey) {
	for _, key := range keys {
		o.Dofs[key].Restrained = true
	}
}

// Fix restrains all dofs
func (o *Node) Fix() {
	o.Restrain(Ux, Uy, Uz, Rx, Ry, Rz)
}

// Pin restrains the translations
func (o *Node) Pin() {
	o.Restrain(Ux, Uy, Uz)
}

// Displacements returns the six displacements
func (o *Node) Displacements() (u []float64) {
	u = make([]float64, NdofPerNode)
	for i, d := range o.Dofs {
		u[i] = d.U
	}
	return
}
