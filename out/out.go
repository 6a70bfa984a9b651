// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of analyses: tables, CSV files and diagrams
package out

import (
	"sort"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/fem"
	"github.com/cpmech/gosl/io"
)

// NumFmt is the format of numbers in tables and files
var NumFmt = "%.6g"

// Results holds a solved structure and the labels of its nodes and elements
type Results struct {
	Str  *fem.Structure // solved structure
	Nids []int          // [nnodes] labels of nodes; e.g. ids in model file
	Eids []int          // [nelems] labels of elements
}

// NewResults returns results labelled by the indices in the structure
func NewResults(str *fem.Structure) (o *Results) {
	o = &Results{Str: str}
	o.Nids = make([]int, len(str.Nodes))
	for i := range o.Nids {
		o.Nids[i] = i
	}
	o.Eids = make([]int, len(str.Elems))
	for i := range o.Eids {
		o.Eids[i] = i
	}
	return
}

// FromMain returns results labelled by the ids given in the model file
func FromMain(analysis *fem.Main) (o *Results) {
	o = NewResults(analysis.Str)
	for id, n := range analysis.Vid2node {
		if n.Id >= 0 {
			o.Nids[n.Id] = id
		}
	}
	for id, e := range analysis.Eid2elem {
		if b := e.Data(); b.Id >= 0 {
			o.Eids[b.Id] = id
		}
	}
	return
}

// Node returns the node with the given label or nil
func (o *Results) Node(id int) *ele.Node {
	for i, nid := range o.Nids {
		if nid == id {
			return o.Str.Nodes[i]
		}
	}
	return nil
}

// Elem returns the element with the given label or nil
func (o *Results) Elem(id int) ele.Element {
	for i, eid := range o.Eids {
		if eid == id {
			return o.Str.Elems[i]
		}
	}
	return nil
}

// sortedNodes returns the nodes ordered by label
func (o *Results) sortedNodes() (nodes []*ele.Node) {
	nodes = append(nodes, o.Str.Nodes...)
	sort.Slice(nodes, func(i, j int) bool { return o.Nids[nodes[i].Id] < o.Nids[nodes[j].Id] })
	return
}

// sortedElems returns the elements ordered by label
func (o *Results) sortedElems() (elems []ele.Element) {
	elems = append(elems, o.Str.Elems...)
	sort.Slice(elems, func(i, j int) bool { return o.Eids[elems[i].Data().Id] < o.Eids[elems[j].Data().Id] })
	return
}

// end forces //////////////////////////////////////////////////////////////////////////////////////

// EndForceKeys holds the names of the twelve local end forces
var EndForceKeys = []string{"N1", "Vy1", "Vz1", "T1", "My1", "Mz1", "N2", "Vy2", "Vz2", "T2", "My2", "Mz2"}

// positions of element end forces in the twelve local end forces
var endForceMap = map[ele.Kind][]int{
	ele.KindFrame3d: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	ele.KindTruss3d: {0, 6},
	ele.KindFrame2d: {0, 1, 5, 6, 7, 11},
	ele.KindTruss2d: {0, 6},
}

// EndForces12 returns the total local end forces of an element arranged as
// the twelve end forces of a 3D frame; forces not carried by the formulation are zero
func EndForces12(e ele.Element) (f []float64) {
	f = make([]float64, 12)
	for i, v := range ele.TotalEndForces(e) {
		f[endForceMap[e.Kind()][i]] = v
	}
	return
}

// num formats a number
func num(v float64) string {
	return io.Sf(NumFmt, v)
}
