// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from model files
package inp

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// MatData holds material data
//  Either Model and Prms or Ref and Unit must be given
type MatData struct {
	Name  string             `json:"name" yaml:"name" toml:"name" validate:"required"`                                      // name of material; e.g. "S275"
	Model string             `json:"model" yaml:"model" toml:"model" validate:"required_without=Ref"`                       // model name; e.g. "steel", "concrete"
	Prms  map[string]float64 `json:"prms" yaml:"prms" toml:"prms"`                                                          // parameters; e.g. {"E": 2e8, "nu": 0.3}
	Ref   string             `json:"ref" yaml:"ref" toml:"ref" validate:"omitempty,oneof=steel concrete-low concrete-high"` // reference material
	Unit  string             `json:"unit" yaml:"unit" toml:"unit" validate:"required_with=Ref"`                             // unit of pressure of reference material
}

// Params returns the material parameters sorted by name
func (o *MatData) Params() (prms dbf.Params) {
	names := make([]string, 0, len(o.Prms))
	for name := range o.Prms {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		prms = append(prms, &dbf.P{N: name, V: o.Prms[name]})
	}
	return
}

// SecData holds cross-section data
type SecData struct {
	Name string   `json:"name" yaml:"name" toml:"name" validate:"required"`                                         // name of section
	Type string   `json:"type" yaml:"type" toml:"type" validate:"required,oneof=circle rectangle I-beam arbitrary"` // type of section
	B    float64  `json:"b" yaml:"b" toml:"b" validate:"gte=0"`                                                     // width (rectangle, I-beam)
	H    float64  `json:"h" yaml:"h" toml:"h" validate:"gte=0"`                                                     // height (rectangle, I-beam)
	Tf   float64  `json:"tf" yaml:"tf" toml:"tf" validate:"gte=0"`                                                  // flange thickness (I-beam)
	Tw   float64  `json:"tw" yaml:"tw" toml:"tw" validate:"gte=0"`                                                  // web thickness (I-beam)
	R    float64  `json:"r" yaml:"r" toml:"r" validate:"gte=0"`                                                     // radius (circle)
	A    float64  `json:"a" yaml:"a" toml:"a" validate:"gte=0"`                                                     // area (arbitrary)
	Iy   float64  `json:"iy" yaml:"iy" toml:"iy" validate:"gte=0"`                                                  // second moment of area about y (arbitrary)
	Iz   float64  `json:"iz" yaml:"iz" toml:"iz" validate:"gte=0"`                                                  // second moment of area about z (arbitrary)
	J    float64  `json:"j" yaml:"j" toml:"j" validate:"gte=0"`                                                     // torsion constant (arbitrary)
	Cw   *float64 `json:"cw" yaml:"cw" toml:"cw"`                                                                   // warping constant (arbitrary, optional)
}

// NodeData holds node data
type NodeData struct {
	Id int       `json:"id" yaml:"id" toml:"id" validate:"gte=0"`    // identifier
	X  []float64 `json:"x" yaml:"x" toml:"x" validate:"min=2,max=3"` // coordinates; z = 0 if omitted
}

// ElemData holds element data
type ElemData struct {
	Id    int     `json:"id" yaml:"id" toml:"id" validate:"gte=0"`                                                 // identifier
	Kind  string  `json:"kind" yaml:"kind" toml:"kind" validate:"omitempty,oneof=frame3d truss3d frame2d truss2d"` // formulation; Model.Kind if empty
	Nodes []int   `json:"nodes" yaml:"nodes" toml:"nodes" validate:"len=2"`                                        // start and end node ids
	Sec   string  `json:"sec" yaml:"sec" toml:"sec" validate:"required"`                                           // section name
	Mat   string  `json:"mat" yaml:"mat" toml:"mat" validate:"required"`                                           // material name
	Twist float64 `json:"twist" yaml:"twist" toml:"twist"`                                                         // rotation about the local x-axis [degrees]
}

// SupportData holds the restraints of a node
//  Dofs may contain "ux", "uy", "uz", "rx", "ry", "rz", "fixed" (all) or "pinned" (translations)
type SupportData struct {
	Node       int                `json:"node" yaml:"node" toml:"node" validate:"gte=0"`                                                       // node id
	Dofs       []string           `json:"dofs" yaml:"dofs" toml:"dofs" validate:"dive,oneof=ux uy uz rx ry rz fixed pinned"`                   // restrained dofs
	Prescribed map[string]float64 `json:"prescribed" yaml:"prescribed" toml:"prescribed" validate:"dive,keys,oneof=ux uy uz rx ry rz,endkeys"` // settlements; dofs become restrained
}

// NodalLoadData holds a load applied at a node (global components)
type NodalLoadData struct {
	Node int       `json:"node" yaml:"node" toml:"node" validate:"gte=0"` // node id
	F    []float64 `json:"f" yaml:"f" toml:"f" validate:"len=6"`          // {fx, fy, fz, mx, my, mz}
}

// PointLoadData holds a concentrated load applied between the nodes of an element
type PointLoadData struct {
	Elem  int       `json:"elem" yaml:"elem" toml:"elem" validate:"gte=0"` // element id
	At    float64   `json:"at" yaml:"at" toml:"at" validate:"gte=0"`       // distance from the start node
	F     []float64 `json:"f" yaml:"f" toml:"f" validate:"len=6"`          // {fx, fy, fz, mx, my, mz}
	Local bool      `json:"local" yaml:"local" toml:"local"`               // components in local axes
}

// DistLoadData holds a load uniformly distributed along an element
type DistLoadData struct {
	Elem  int       `json:"elem" yaml:"elem" toml:"elem" validate:"gte=0"` // element id
	W     []float64 `json:"w" yaml:"w" toml:"w" validate:"len=6"`          // intensities {fx, fy, fz, mx, my, mz}
	Local bool      `json:"local" yaml:"local" toml:"local"`               // components in local axes
}

// ThermalData holds a uniform change of temperature along an element
type ThermalData struct {
	Elem   int     `json:"elem" yaml:"elem" toml:"elem" validate:"gte=0"` // element id
	DeltaT float64 `json:"dT" yaml:"dT" toml:"dT"`                        // change of temperature
}

// Model holds all data of a structural model
type Model struct {

	// global
	Desc string `json:"desc" yaml:"desc" toml:"desc"`                                                  // description of model
	Kind string `json:"kind" yaml:"kind" toml:"kind" validate:"oneof=frame3d truss3d frame2d truss2d"` // default element formulation
	Nsub int    `json:"nsub" yaml:"nsub" toml:"nsub" validate:"gte=1"`                                 // number of subdivisions along elements

	// data
	Materials []*MatData     `json:"materials" yaml:"materials" toml:"materials" validate:"required,min=1,dive"` // materials
	Sections  []*SecData     `json:"sections" yaml:"sections" toml:"sections" validate:"required,min=1,dive"`    // cross-sections
	Nodes     []*NodeData    `json:"nodes" yaml:"nodes" toml:"nodes" validate:"required,min=2,dive"`             // nodes
	Elems     []*ElemData    `json:"elems" yaml:"elems" toml:"elems" validate:"required,min=1,dive"`             // elements
	Supports  []*SupportData `json:"supports" yaml:"supports" toml:"supports" validate:"dive"`                   // restraints

	// loads
	NodalLoads []*NodalLoadData `json:"nodalloads" yaml:"nodalloads" toml:"nodalloads" validate:"dive"` // loads at nodes
	PointLoads []*PointLoadData `json:"pointloads" yaml:"pointloads" toml:"pointloads" validate:"dive"` // concentrated loads on elements
	DistLoads  []*DistLoadData  `json:"distloads" yaml:"distloads" toml:"distloads" validate:"dive"`    // distributed loads on elements
	Thermal    []*ThermalData   `json:"thermal" yaml:"thermal" toml:"thermal" validate:"dive"`          // thermal loads on elements

	// derived
	Key string `json:"-" yaml:"-" toml:"-"` // filename key; e.g. mymodel.yaml => mymodel
}

// SetDefault sets default values
func (o *Model) SetDefault() {
	o.Kind = "frame3d"
	o.Nsub = 20
}

// ReadModel reads a model file; the format is selected by the extension: .json, .yaml, .yml or .toml
func ReadModel(fn string) (o *Model, err error) {

	// read file
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, fmt.Errorf("cannot read model file %q: %w", fn, err)
	}

	// decode
	o = new(Model)
	o.SetDefault()
	ext := strings.ToLower(filepath.Ext(fn))
	switch ext {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	case ".toml":
		err = toml.Unmarshal(b, o)
	default:
		return nil, chk.Err("model file %q has unknown extension %q. use .json, .yaml, .yml or .toml", fn, ext)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal model file %q:\n%v", fn, err)
	}
	o.Key = io.FnKey(filepath.Base(fn))

	// check
	if err = o.Validate(); err != nil {
		return nil, chk.Err("model file %q is invalid:\n%v", fn, err)
	}
	return
}

// Node returns the node data with the given id or nil
func (o *Model) Node(id int) *NodeData {
	for _, n := range o.Nodes {
		if n.Id == id {
			return n
		}
	}
	return nil
}

// Elem returns the element data with the given id or nil
func (o *Model) Elem(id int) *ElemData {
	for _, e := range o.Elems {
		if e.Id == id {
			return e
		}
	}
	return nil
}

// Material returns the material data with the given name or nil
func (o *Model) Material(name string) *MatData {
	for _, m := range o.Materials {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Section returns the section data with the given name or nil
func (o *Model) Section(name string) *SecData {
	for _, s := range o.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// ElemKind returns the formulation of an element
func (o *Model) ElemKind(e *ElemData) string {
	if e.Kind == "" {
		return o.Kind
	}
	return e.Kind
}
