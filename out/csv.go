// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/io"
)

// WriteCSV writes nodes.csv, elements.csv and stations.csv into dir
//  nodes.csv    -- coordinates, displacements and reactions of nodes
//  elements.csv -- connectivity, length and twelve local end forces of elements
//  stations.csv -- local displacements and bending moments along elements
func (o *Results) WriteCSV(dir string) (err error) {
	if err = os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("cannot create directory %q: %w", dir, err)
	}
	if err = o.writeFile(filepath.Join(dir, "nodes.csv"), o.nodeRecords()); err != nil {
		return
	}
	if err = o.writeFile(filepath.Join(dir, "elements.csv"), o.elemRecords()); err != nil {
		return
	}
	return o.writeFile(filepath.Join(dir, "stations.csv"), o.stationRecords())
}

func (o *Results) writeFile(fn string, records [][]string) (err error) {
	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("cannot create file %q: %w", fn, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.WriteAll(records); err != nil {
		return fmt.Errorf("cannot write file %q: %w", fn, err)
	}
	return
}

func (o *Results) nodeRecords() (res [][]string) {
	res = append(res, []string{"node", "x", "y", "z", "ux", "uy", "uz", "rx", "ry", "rz", "Rfx", "Rfy", "Rfz", "Rmx", "Rmy", "Rmz"})
	for _, n := range o.sortedNodes() {
		row := []string{io.Sf("%d", o.Nids[n.Id]), num(n.X[0]), num(n.X[1]), num(n.X[2])}
		for _, d := range n.Dofs {
			row = append(row, num(d.U))
		}
		for _, d := range n.Dofs {
			row = append(row, num(d.R))
		}
		res = append(res, row)
	}
	return
}

func (o *Results) elemRecords() (res [][]string) {
	res = append(res, append([]string{"elem", "kind", "start", "end", "L"}, EndForceKeys...))
	for _, e := range o.sortedElems() {
		b := e.Data()
		row := []string{io.Sf("%d", o.Eids[b.Id]), e.Kind().String(), io.Sf("%d", o.Nids[b.Start.Id]), io.Sf("%d", o.Nids[b.End.Id]), num(b.L)}
		for _, f := range EndForces12(e) {
			row = append(row, num(f))
		}
		res = append(res, row)
	}
	return
}

func (o *Results) stationRecords() (res [][]string) {
	res = append(res, []string{"elem", "x", "u", "v", "w", "Mz", "My"})
	for _, e := range o.sortedElems() {
		b := e.Data()
		u := ele.LocalDisplacementField(e)
		for k, x := range b.Stations() {
			row := []string{io.Sf("%d", o.Eids[b.Id]), num(x), num(u[k][0]), num(u[k][1]), num(u[k][2]), "", ""}
			if b.Mz != nil {
				row[5] = num(b.Mz[k])
			}
			if b.My != nil {
				row[6] = num(b.My[k])
			}
			res = append(res, row)
		}
	}
	return
}
