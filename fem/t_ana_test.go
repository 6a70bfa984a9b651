// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/goframe/ana"
	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/ele/frame"
	"github.com/cpmech/goframe/load"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_ana01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ana01. deflections and moments along beams")

	L, P := 5.0, 8.0
	for _, c := range []ana.BeamCase{ana.CantileverTip, ana.CantileverUniform, ana.SimpleUniform, ana.SimpleCentral, ana.FixedUniform} {

		// beam
		a, b := ele.NewNode(0, 0, 0), ele.NewNode(L, 0, 0)
		e, err := frame.NewFrame2d(a, b, rect, steel, 0)
		if err != nil {
			tst.Errorf("NewFrame2d failed:\n%v", err)
			return
		}
		e.SetSubdivisions(8)

		// supports and loads
		switch c {
		case ana.CantileverTip:
			a.Fix()
			load.NewPointLoad(0, -P, 0, 0, 0, 0).AssignToNode(b)
		case ana.CantileverUniform:
			a.Fix()
			err = load.NewDistributedLoad(0, -P, 0, 0, 0, 0).AssignToElement(e, false)
		case ana.SimpleUniform:
			a.Pin()
			b.Restrain(ele.Uy)
			err = load.NewDistributedLoad(0, -P, 0, 0, 0, 0).AssignToElement(e, false)
		case ana.SimpleCentral:
			a.Pin()
			b.Restrain(ele.Uy)
			err = load.NewPointLoad(0, -P, 0, 0, 0, 0).AssignToElement(e, L/2, false)
		case ana.FixedUniform:
			a.Fix()
			b.Fix()
			err = load.NewDistributedLoad(0, -P, 0, 0, 0, 0).AssignToElement(e, true)
		}
		if err != nil {
			tst.Errorf("AssignToElement failed:\n%v", err)
			return
		}

		// run
		if _, ok := solve(tst, e); !ok {
			return
		}

		// check
		var sol ana.Beam
		sol.Init(c, dbf.Params{
			&dbf.P{N: "L", V: L},
			&dbf.P{N: "EI", V: e.EIz},
			&dbf.P{N: "P", V: P},
		})
		x := e.Stations()
		u := ele.LocalDisplacementField(e)
		v := make([]float64, len(u))
		for k := range u {
			v[k] = u[k][1]
		}
		io.Pforan("case %d: v = %v\n", c, v)
		sol.CheckDeflection(tst, x, v, 1e-12)
		sol.CheckMoment(tst, x, e.Mz, 1e-9)
	}
}
