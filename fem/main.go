// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the direct stiffness method for frames and trusses
package fem

import (
	"fmt"
	"time"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/goframe/inp"
	"github.com/cpmech/goframe/load"
	"github.com/cpmech/goframe/mdl/sec"
	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/io"
)

// Main holds all data for an analysis defined by a model file
type Main struct {
	Model    *inp.Model             // input data
	Mats     map[string]sld.Model   // materials
	Secs     map[string]sec.Section // cross-sections
	Vid2node map[int]*ele.Node      // node id (in model) => node
	Eid2elem map[int]ele.Element    // element id (in model) => element
	Str      *Structure             // structure
	Solver   *Solver                // linear solver
	ShowMsg  bool                   // show messages
}

// ReadMain reads a model file and returns a new Main structure
func ReadMain(fn string, verbose bool) (o *Main, err error) {
	m, err := inp.ReadModel(fn)
	if err != nil {
		return
	}
	if verbose {
		io.Pf("> Model file %q read\n", fn)
	}
	return NewMain(m, verbose)
}

// NewMain allocates the structure and applies supports and loads
func NewMain(model *inp.Model, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.Model = model
	o.ShowMsg = verbose

	// materials and sections
	if err = o.setMaterials(); err != nil {
		return nil, err
	}
	if err = o.setSections(); err != nil {
		return nil, err
	}

	// nodes
	o.Vid2node = make(map[int]*ele.Node)
	for _, n := range model.Nodes {
		var z float64
		if len(n.X) > 2 {
			z = n.X[2]
		}
		o.Vid2node[n.Id] = ele.NewNode(n.X[0], n.X[1], z)
	}

	// elements
	o.Eid2elem = make(map[int]ele.Element)
	elems := make([]ele.Element, len(model.Elems))
	for i, ed := range model.Elems {
		var kind ele.Kind
		if kind, err = ele.ParseKind(model.ElemKind(ed)); err != nil {
			return nil, err
		}
		a, b := o.Vid2node[ed.Nodes[0]], o.Vid2node[ed.Nodes[1]]
		if elems[i], err = ele.New(kind, a, b, o.Secs[ed.Sec], o.Mats[ed.Mat], ed.Twist); err != nil {
			return nil, fmt.Errorf("cannot allocate element %d:\n%w", ed.Id, err)
		}
		elems[i].Data().SetSubdivisions(model.Nsub)
		o.Eid2elem[ed.Id] = elems[i]
	}

	// supports
	if err = o.setSupports(); err != nil {
		return nil, err
	}

	// structure
	if o.Str, err = NewStructure(elems); err != nil {
		return nil, err
	}

	// loads
	if err = o.setLoads(); err != nil {
		return nil, err
	}

	// solver
	o.Solver = NewSolver(o.Str)
	o.Solver.Verbose = verbose
	if o.ShowMsg {
		io.Pf("> Structure with %d nodes and %d elements allocated\n", len(o.Str.Nodes), len(o.Str.Elems))
	}
	return
}

// Run runs the analysis
func (o *Main) Run() (err error) {
	cputime := time.Now()
	defer func() {
		if o.ShowMsg {
			if err == nil {
				io.PfGreen("> Success\n")
				io.Pf("> CPU time = %v\n", time.Since(cputime))
			} else {
				io.PfRed("> Failed\n")
			}
		}
	}()
	return o.Solver.Run()
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

func (o *Main) setMaterials() (err error) {
	o.Mats = make(map[string]sld.Model)
	for _, md := range o.Model.Materials {
		var m sld.Model
		if md.Ref != "" {
			m, err = sld.Reference(md.Ref, md.Unit)
		} else {
			if m, err = sld.New(md.Model); err == nil {
				err = m.Init(md.Params())
			}
		}
		if err != nil {
			return fmt.Errorf("cannot set material %q:\n%w", md.Name, err)
		}
		o.Mats[md.Name] = m
	}
	return
}

func (o *Main) setSections() (err error) {
	o.Secs = make(map[string]sec.Section)
	for _, sd := range o.Model.Sections {
		var s sec.Section
		if sd.Type == "arbitrary" {
			a := sec.Arbitrary{A: sd.A, Iyy: sd.Iy, Izz: sd.Iz, Jxx: sd.J}
			if sd.Cw != nil {
				a.Cw, a.HasCw = *sd.Cw, true
			}
			s = a
		} else {
			s, err = sec.New(sd.Type, sd.B, sd.H, sd.Tf, sd.Tw, sd.R)
			if err != nil {
				return fmt.Errorf("cannot set section %q:\n%w", sd.Name, err)
			}
		}
		o.Secs[sd.Name] = s
	}
	return
}

func (o *Main) setSupports() (err error) {
	for _, sd := range o.Model.Supports {
		n := o.Vid2node[sd.Node]
		for _, key := range sd.Dofs {
			switch key {
			case "fixed":
				n.Fix()
			case "pinned":
				n.Pin()
			default:
				var k ele.DofKey
				if k, err = ele.ParseDofKey(key); err != nil {
					return
				}
				n.Restrain(k)
			}
		}
		for key, u := range sd.Prescribed {
			var k ele.DofKey
			if k, err = ele.ParseDofKey(key); err != nil {
				return
			}
			n.Dof(k).Prescribe(u)
		}
	}
	return
}

func (o *Main) setLoads() (err error) {
	for _, ld := range o.Model.NodalLoads {
		f := ld.F
		load.NewPointLoad(f[0], f[1], f[2], f[3], f[4], f[5]).AssignToNode(o.Vid2node[ld.Node])
	}
	for _, ld := range o.Model.PointLoads {
		f := ld.F
		err = load.NewPointLoad(f[0], f[1], f[2], f[3], f[4], f[5]).AssignToElement(o.Eid2elem[ld.Elem], ld.At, ld.Local)
		if err != nil {
			return fmt.Errorf("cannot apply point load to element %d:\n%w", ld.Elem, err)
		}
	}
	for _, ld := range o.Model.DistLoads {
		w := ld.W
		err = load.NewDistributedLoad(w[0], w[1], w[2], w[3], w[4], w[5]).AssignToElement(o.Eid2elem[ld.Elem], ld.Local)
		if err != nil {
			return fmt.Errorf("cannot apply distributed load to element %d:\n%w", ld.Elem, err)
		}
	}
	for _, ld := range o.Model.Thermal {
		load.ThermalLoad{DeltaT: ld.DeltaT}.AssignToElement(o.Eid2elem[ld.Elem])
	}
	if o.ShowMsg {
		io.Pf("> Loads applied: %d nodal, %d concentrated, %d distributed, %d thermal\n",
			len(o.Model.NodalLoads), len(o.Model.PointLoads), len(o.Model.DistLoads), len(o.Model.Thermal))
	}
	return
}
