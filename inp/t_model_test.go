// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// cantilever returns a valid model with one element
func cantilever() *Model {
	m := new(Model)
	m.SetDefault()
	m.Materials = []*MatData{{Name: "steel", Model: "steel", Prms: map[string]float64{"E": 2e8, "nu": 0.3}}}
	m.Sections = []*SecData{{Name: "rect", Type: "rectangle", B: 0.2, H: 0.4}}
	m.Nodes = []*NodeData{{Id: 1, X: []float64{0, 0, 0}}, {Id: 2, X: []float64{3, 0, 0}}}
	m.Elems = []*ElemData{{Id: 1, Nodes: []int{1, 2}, Sec: "rect", Mat: "steel"}}
	m.Supports = []*SupportData{{Node: 1, Dofs: []string{"fixed"}}}
	m.NodalLoads = []*NodalLoadData{{Node: 2, F: []float64{0, -10, 0, 0, 0, 0}}}
	return m
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. yaml, json and toml files")

	var models []*Model
	for _, ext := range []string{".yaml", ".json", ".toml"} {
		m, err := ReadModel(filepath.Join("..", "examples", "cantilever"+ext))
		if err != nil {
			tst.Errorf("ReadModel failed:\n%v", err)
			return
		}
		io.Pforan("%s: %q\n", ext, m.Desc)
		models = append(models, m)
	}

	m := models[0]
	chk.String(tst, m.Key, "cantilever")
	chk.String(tst, m.Kind, "frame3d")
	chk.Int(tst, "nsub", m.Nsub, 10)
	chk.Int(tst, "nnodes", len(m.Nodes), 2)
	chk.Array(tst, "x(2)", 1e-17, m.Node(2).X, []float64{3, 0, 0})
	chk.Array(tst, "f(2)", 1e-17, m.NodalLoads[0].F, []float64{0, -10, 0, 0, 0, 0})
	chk.Float64(tst, "E", 1e-17, m.Material("steel").Prms["E"], 2e8)
	prms := m.Material("steel").Params()
	chk.Strings(tst, "prms", []string{prms[0].N, prms[1].N}, []string{"E", "nu"})
	chk.Float64(tst, "E(prms)", 1e-17, prms.GetValue("E"), 2e8)
	chk.Float64(tst, "h", 1e-17, m.Section("rect").H, 0.4)
	chk.String(tst, m.ElemKind(m.Elem(1)), "frame3d")

	for i := 1; i < len(models); i++ {
		if !reflect.DeepEqual(models[0], models[i]) {
			tst.Errorf("model %d differs from yaml model:\n%+v\n", i, models[i])
			return
		}
	}
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. defaults and other examples")

	m, err := ReadModel(filepath.Join("..", "examples", "hingedframe.yaml"))
	if err != nil {
		tst.Errorf("ReadModel failed:\n%v", err)
		return
	}
	chk.String(tst, m.Kind, "frame2d")
	chk.Int(tst, "nsub", m.Nsub, 20)
	chk.Array(tst, "x(3)", 1e-17, m.Node(3).X, []float64{8000, 6000})
	chk.String(tst, m.Material("steel").Ref, "steel")
	chk.Float64(tst, "Iz", 1e-17, m.Section("sec").Iz, 1e6)
	if m.Section("sec").Cw != nil {
		tst.Errorf("warping constant should not be set\n")
	}

	m, err = ReadModel(filepath.Join("..", "examples", "pyramid.yaml"))
	if err != nil {
		tst.Errorf("ReadModel failed:\n%v", err)
		return
	}
	chk.String(tst, m.ElemKind(m.Elem(4)), "truss3d")
	chk.String(tst, m.ElemKind(m.Elem(3)), "frame3d")
	chk.Float64(tst, "twist", 1e-17, m.Elem(2).Twist, 30)
	if !m.PointLoads[0].Local {
		tst.Errorf("point load should be given in local axes\n")
	}
	if m.Elem(7) != nil || m.Node(7) != nil || m.Material("wood") != nil || m.Section("box") != nil {
		tst.Errorf("lookup of missing data should return nil\n")
	}
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. read errors")

	dir := tst.TempDir()
	write := func(fn, content string) string {
		path := filepath.Join(dir, fn)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			tst.Fatalf("cannot write %q: %v", path, err)
		}
		return path
	}

	if _, err := ReadModel(filepath.Join(dir, "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
		tst.Errorf("reading missing file should fail with fs.ErrNotExist. err = %v\n", err)
	}
	if _, err := ReadModel(write("model.txt", "desc: x\n")); err == nil {
		tst.Errorf("reading file with unknown extension should have failed\n")
	}
	if _, err := ReadModel(write("bad.json", "{ \"nodes\": [ }")); err == nil {
		tst.Errorf("reading malformed json should have failed\n")
	}
	_, err := ReadModel(write("empty.yaml", "desc: nothing\n"))
	if err == nil {
		tst.Errorf("reading model without data should have failed\n")
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.Contains(err.Error(), "invalid") {
		tst.Errorf("error message is incorrect: %v\n", err)
	}
}

func Test_validate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("validate01. field and reference checks")

	if err := cantilever().Validate(); err != nil {
		tst.Errorf("Validate failed:\n%v", err)
		return
	}

	tests := []struct {
		modify func(m *Model)
		msg    string
	}{
		{func(m *Model) { m.Sections[0].Type = "triangle" }, "Sections[0].Type"},
		{func(m *Model) { m.Nodes[1].X = []float64{3} }, "Nodes[1].X: must be at least 2"},
		{func(m *Model) { m.Elems[0].Nodes = []int{1} }, "must have 2 components"},
		{func(m *Model) { m.Kind = "shell" }, "Kind"},
		{func(m *Model) { m.Nsub = 0 }, "Nsub"},
		{func(m *Model) { m.Supports[0].Dofs = []string{"uw"} }, "Dofs[0]"},
		{func(m *Model) { m.Supports[0].Prescribed = map[string]float64{"u": 1} }, "Prescribed"},
		{func(m *Model) { m.NodalLoads[0].F = []float64{1, 2} }, "must have 6 components"},
		{func(m *Model) { m.Materials[0].Model = "" }, "required when Ref is missing"},
		{func(m *Model) { m.Materials[0].Ref = "steel" }, "required when Ref is given"},
		{func(m *Model) { m.Materials[0].Name = "" }, "field is required"},
		{func(m *Model) { m.Nodes[1].Id = 1 }, "node 1 is defined more than once"},
		{func(m *Model) { m.Elems = append(m.Elems, m.Elems[0]) }, "element 1 is defined more than once"},
		{func(m *Model) { m.Materials = append(m.Materials, m.Materials[0]) }, "material \"steel\""},
		{func(m *Model) { m.Sections = append(m.Sections, m.Sections[0]) }, "section \"rect\""},
		{func(m *Model) { m.Elems[0].Nodes[1] = 3 }, "node 3 does not exist"},
		{func(m *Model) { m.Elems[0].Sec = "box" }, "section \"box\" does not exist"},
		{func(m *Model) { m.Elems[0].Mat = "wood" }, "material \"wood\" does not exist"},
		{func(m *Model) { m.Supports[0].Node = 5 }, "support: node 5"},
		{func(m *Model) { m.NodalLoads[0].Node = 5 }, "nodal load: node 5"},
		{func(m *Model) {
			m.PointLoads = []*PointLoadData{{Elem: 2, At: 1, F: make([]float64, 6)}}
		}, "point load: element 2"},
		{func(m *Model) {
			m.DistLoads = []*DistLoadData{{Elem: 2, W: make([]float64, 6)}}
		}, "distributed load: element 2"},
		{func(m *Model) { m.Thermal = []*ThermalData{{Elem: 2, DeltaT: 10}} }, "thermal load: element 2"},
	}
	for i, t := range tests {
		m := cantilever()
		t.modify(m)
		err := m.Validate()
		if err == nil {
			tst.Errorf("test %d: Validate should have failed\n", i)
			continue
		}
		io.Pfyel("%2d: %v\n", i, err)
		if !strings.Contains(err.Error(), t.msg) {
			tst.Errorf("test %d: error message should contain %q. err = %v\n", i, t.msg, err)
		}
	}
}
