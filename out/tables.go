// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/io"
)

// DisplacementTable returns a table with the displacements of all nodes.
// Dofs that are not used by any element are shown as "-"
func (o *Results) DisplacementTable() string {
	headers := []string{"node", "ux", "uy", "uz", "rx", "ry", "rz"}
	var rows [][]string
	for _, n := range o.sortedNodes() {
		row := []string{io.Sf("%d", o.Nids[n.Id])}
		for _, d := range n.Dofs {
			if d.Eq < 0 {
				row = append(row, "-")
				continue
			}
			row = append(row, num(d.U))
		}
		rows = append(rows, row)
	}
	return newTable("Displacements", 1, headers, rows)
}

// ReactionTable returns a table with the support reactions
func (o *Results) ReactionTable() string {
	headers := []string{"node", "dof", "reaction", "settlement"}
	var rows [][]string
	var sum [6]float64
	for _, n := range o.sortedNodes() {
		for _, d := range n.Dofs {
			if d.Eq < 0 || !d.Restrained {
				continue
			}
			rows = append(rows, []string{io.Sf("%d", o.Nids[n.Id]), d.Key.ForceKey(), num(d.R), num(d.U)})
			sum[d.Key] += d.R
		}
	}
	for k, s := range sum {
		if s != 0 {
			rows = append(rows, []string{"Σ", ele.DofKey(k).ForceKey(), num(s), ""})
		}
	}
	return newTable("Reactions", 2, headers, rows)
}

// EndForceTable returns a table with the local end forces of all elements,
// including the fixed-end reactions of span loads
func (o *Results) EndForceTable() string {
	headers := append([]string{"elem", "kind"}, EndForceKeys...)
	var rows [][]string
	for _, e := range o.sortedElems() {
		row := []string{io.Sf("%d", o.Eids[e.Data().Id]), e.Kind().String()}
		for _, f := range EndForces12(e) {
			row = append(row, num(f))
		}
		rows = append(rows, row)
	}
	return newTable("End forces (local axes)", 2, headers, rows)
}

// Summary returns the three tables
func (o *Results) Summary() string {
	return o.DisplacementTable() + "\n" + o.ReactionTable() + "\n" + o.EndForceTable() + "\n"
}
