// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/geo"
	"github.com/cpmech/gosl/chk"
)

// Structure holds the elements of an analysis and the nodes and dofs they reference
//  Note: only the dofs used by at least one element are part of the structure;
//        e.g. rotations of nodes connected to trusses only are not
type Structure struct {
	Elems []ele.Element // all elements; Id = index
	Nodes []*ele.Node   // nodes in the order they were found; Id = index
	Dofs  []*ele.Dof    // [free | restrained] dofs; Eq = index
	Nfree int           // number of free dofs
}

// NewStructure scans the elements and numbers nodes, elements and equations
func NewStructure(elems []ele.Element) (o *Structure, err error) {
	if len(elems) == 0 {
		return nil, chk.Err("structure must have at least one element")
	}
	o = new(Structure)
	seenElem := make(map[ele.Element]bool)
	seenNode := make(map[*ele.Node]bool)
	seenDof := make(map[*ele.Dof]bool)
	for i, e := range elems {
		if e == nil {
			return nil, chk.Err("element # %d is nil", i)
		}
		if seenElem[e] {
			return nil, chk.Err("element # %d appears more than once", i)
		}
		seenElem[e] = true
		b := e.Data()
		b.Id = len(o.Elems)
		o.Elems = append(o.Elems, e)
		for _, n := range []*ele.Node{b.Start, b.End} {
			if !seenNode[n] {
				seenNode[n] = true
				n.Id = len(o.Nodes)
				o.Nodes = append(o.Nodes, n)
			}
		}
		for _, d := range e.Dofs() {
			if !seenDof[d] {
				seenDof[d] = true
				o.Dofs = append(o.Dofs, d)
			}
		}
	}
	o.Number()
	return
}

// Number sets the equation numbers: free dofs first, then restrained dofs, each
// group in discovery order. It must be called again if restraints are changed
func (o *Structure) Number() {
	free := make([]*ele.Dof, 0, len(o.Dofs))
	fixed := make([]*ele.Dof, 0, len(o.Dofs))
	for _, d := range o.Dofs {
		if d.Restrained {
			fixed = append(fixed, d)
		} else {
			free = append(free, d)
		}
	}
	o.Nfree = len(free)
	o.Dofs = append(free, fixed...)
	for i, d := range o.Dofs {
		d.Eq = i
	}
}

// Ndof returns the total number of dofs
func (o *Structure) Ndof() int { return len(o.Dofs) }

// Free returns the free dofs
func (o *Structure) Free() []*ele.Dof { return o.Dofs[:o.Nfree] }

// Restrained returns the restrained dofs
func (o *Structure) Restrained() []*ele.Dof { return o.Dofs[o.Nfree:] }

// Reset clears loads and results such that another analysis can be run.
// Prescribed displacements of restrained dofs are kept
func (o *Structure) Reset() {
	for _, n := range o.Nodes {
		n.Loads = nil
		for _, d := range n.Dofs {
			d.F, d.Fer, d.R = 0, 0, 0
			if !d.Restrained {
				d.U = 0
			}
		}
	}
	for _, e := range o.Elems {
		e.Data().ClearLoads()
	}
}

// Unbalanced returns the resultant of applied forces minus fixed-end reactions plus
// support reactions {fx, fy, fz, mx, my, mz}, with moments about the origin.
// It vanishes for a structure in equilibrium
func (o *Structure) Unbalanced() (res [6]float64) {
	for _, n := range o.Nodes {
		var f, m geo.Vector
		for i, d := range n.Dofs {
			if d.Eq < 0 || d.Eq >= len(o.Dofs) || o.Dofs[d.Eq] != d {
				continue // not in structure
			}
			v := d.F - d.Fer + d.R
			if i < 3 {
				f[i] = v
			} else {
				m[i-3] = v
			}
		}
		m = m.Add(n.X.Cross(f))
		for i := 0; i < 3; i++ {
			res[i] += f[i]
			res[3+i] += m[i]
		}
	}
	return
}
