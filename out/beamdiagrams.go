// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"
)

// PlotHeight is the number of rows of diagrams
var PlotHeight = 8

// MomentDiagram plots the bending moment diagram of an element
//  Input
//   e     -- element
//   about -- "z" or "y"
//  Output
//   the diagram or "" if the element has no bending moments about this axis
func MomentDiagram(e ele.Element, about string) string {
	b := e.Data()
	m := b.Mz
	if about == "y" {
		m = b.My
	}
	if m == nil {
		return ""
	}
	caption := io.Sf("M%s along element %d (L = %g); max|M| = %s", about, b.Id, b.L, num(maxAbs(m)))
	return plot(m, caption)
}

// DeflectionDiagram plots the local deflection v (about = "z") or w (about = "y") of an element
func DeflectionDiagram(e ele.Element, about string) string {
	b := e.Data()
	idx, key := 1, "v"
	if about == "y" {
		idx, key = 2, "w"
	}
	u := ele.LocalDisplacementField(e)
	v := make([]float64, len(u))
	for k := range u {
		v[k] = u[k][idx]
	}
	caption := io.Sf("deflection %s along element %d (L = %g); max|%s| = %s", key, b.Id, b.L, key, num(maxAbs(v)))
	return plot(v, caption)
}

// MomentDiagrams plots the bending moment diagrams about z of all elements with bending moments
func (o *Results) MomentDiagrams() string {
	var sb strings.Builder
	for _, e := range o.sortedElems() {
		if d := MomentDiagram(e, "z"); d != "" {
			sb.WriteString(TitleStyle.Render(io.Sf("element %d", o.Eids[e.Data().Id])))
			sb.WriteString("\n")
			sb.WriteString(d)
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// plot draws one diagram; zero diagrams are drawn as a flat line
func plot(y []float64, caption string) string {
	width := max(len(y), 60)
	if maxAbs(y) == 0 {
		return GraphStyle.Render(" 0.00 ┼" + strings.Repeat("─", width-1) + "\n " + caption)
	}
	g := asciigraph.Plot(y, asciigraph.Height(PlotHeight), asciigraph.Width(width), asciigraph.Caption(caption))
	return GraphStyle.Render(g)
}

// maxAbs returns max(|y|)
func maxAbs(y []float64) (res float64) {
	for _, v := range y {
		if v < 0 {
			v = -v
		}
		if v > res {
			res = v
		}
	}
	return
}
