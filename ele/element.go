// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements line elements for frame and truss structures
package ele

import (
	"fmt"

	"github.com/cpmech/goframe/geo"
	"github.com/cpmech/goframe/mdl/sec"
	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Kind identifies one of the available element formulations
type Kind int

// available formulations
const (
	KindFrame3d Kind = iota // 12 dofs: axial, bending in two planes and torsion
	KindTruss3d             // 6 dofs: axial only
	KindFrame2d             // 6 dofs: axial and bending in the X-Y plane
	KindTruss2d             // 4 dofs: axial only, in the X-Y plane
)

var kindNames = []string{"frame3d", "truss3d", "frame2d", "truss2d"}

// String returns the name of the formulation
func (k Kind) String() string {
	return kindNames[k]
}

// ParseKind returns the kind corresponding to a name
func ParseKind(name string) (Kind, error) {
	for i, s := range kindNames {
		if s == name {
			return Kind(i), nil
		}
	}
	return 0, chk.Err("element kind %q is unavailable", name)
}

// Element defines what all line elements must implement
type Element interface {

	// information
	Data() *Base  // returns the data shared by all formulations
	Kind() Kind   // returns the formulation
	Dofs() []*Dof // degrees of freedom: start node's then end node's

	// matrices
	LocalK() *la.Matrix                            // stiffness matrix in local axes [nu][nu]
	Trans() *la.Matrix                             // transformation of local stiffness to global axes [nu][6 or 12]
	ShapeMatrix(x float64) *la.Matrix              // local displacements at x from the 12 local end values [3][12]
	FerConcentrated(a float64) *la.Matrix          // fixed-end reactions due to a load at a [nu][nvalid]
	FerDistributed() *la.Matrix                    // fixed-end reactions due to a uniform load [nu][nvalid]
	ValidLoad(local [6]float64) ([]float64, error) // load components carried by the formulation [nvalid]
	GeometricK() (*la.Matrix, error)               // geometric stiffness matrix

	// post-processing
	SpanField(x float64) geo.Vector            // local displacements at x due to loads between the nodes
	BendingMomentY(x float64) (float64, error) // bending moment about the local y-axis at x
	BendingMomentZ(x float64) (float64, error) // bending moment about the local z-axis at x
}

// DefaultSubdivisions is the default number of stations along elements minus one
const DefaultSubdivisions = 20

// ConcLoad holds a concentrated load applied between the nodes of an element
type ConcLoad struct {
	F  [6]float64 // {fx, fy, fz, mx, my, mz} in local axes
	At float64    // distance from the start node
}

// DistLoad holds a load uniformly distributed along an element
type DistLoad struct {
	F [6]float64 // intensities {fx, fy, fz, mx, my, mz} in local axes
}

// Base holds the data shared by all formulations
type Base struct {

	// essential
	Id    int                   // index in the structure; -1 if not in a structure
	Start *Node                 // start node (not owned)
	End   *Node                 // end node (not owned)
	Sec   sec.Section           // cross-section
	Mdl   sld.Material          // material
	Twist float64               // rotation about the local x-axis [degrees]
	L     float64               // length
	Csys  *geo.CoordinateSystem // local system
	Nu    int                   // number of local end values
	Iax   [2]int                // positions of the axial dofs in the element dofs

	// loads
	Conc []ConcLoad // concentrated loads in the order they were assigned
	Dist []DistLoad // distributed loads in the order they were assigned
	Fer  []float64  // accumulated fixed-end reactions in local axes [nu]

	// post-processing
	Nsub     int          // number of subdivisions
	NonNodal []geo.Vector // [nsub+1] local displacements due to loads between the nodes
	Mz       []float64    // [nsub+1] bending moments about z at stations (after solution)
	My       []float64    // [nsub+1] bending moments about y at stations (after solution)
}

// Init initialises the data shared by all formulations
func (o *Base) Init(kind Kind, start, end *Node, s sec.Section, m sld.Material, twist float64, nu int, iax [2]int) (err error) {
	if start == nil || end == nil || s == nil || m == nil {
		return chk.Err("%v: nodes, section and material must be given", kind)
	}
	if start == end {
		return fmt.Errorf("%v: start and end nodes are the same: %w", kind, ErrInvalidGeometry)
	}
	dir := end.X.Sub(start.X)
	o.Id, o.Start, o.End, o.Sec, o.Mdl, o.Twist = -1, start, end, s, m, twist
	o.L = dir.Norm()
	if o.L == 0 {
		return fmt.Errorf("%v: nodes are coincident at %v (zero length): %w", kind, start.X, ErrInvalidGeometry)
	}
	o.Csys, err = geo.NewCoordinateSystem(dir, twist, start.X)
	if err != nil {
		return fmt.Errorf("%v: %v: %w", kind, err, ErrInvalidGeometry)
	}
	o.Nu, o.Iax = nu, iax
	o.Fer = make([]float64, nu)
	o.SetSubdivisions(DefaultSubdivisions)
	return
}

// Data returns the shared data
func (o *Base) Data() *Base { return o }

// SetSubdivisions sets the number of subdivisions used in post-processing.
// The displacement field due to span loads is cleared
func (o *Base) SetSubdivisions(nsub int) {
	if nsub < 1 {
		chk.Panic("number of subdivisions must be at least 1. nsub = %d is invalid", nsub)
	}
	o.Nsub = nsub
	o.NonNodal = make([]geo.Vector, nsub+1)
	o.Mz, o.My = nil, nil
}

// Stations returns the local x-coordinates of the stations
func (o *Base) Stations() []float64 {
	return utl.LinSpace(0, o.L, o.Nsub+1)
}

// HasSpanLoads tells whether loads were applied between the nodes
func (o *Base) HasSpanLoads() bool {
	return len(o.Conc) > 0 || len(o.Dist) > 0
}

// ClearLoads removes span loads and fixed-end reactions
func (o *Base) ClearLoads() {
	o.Conc, o.Dist = nil, nil
	for i := range o.Fer {
		o.Fer[i] = 0
	}
	for k := range o.NonNodal {
		o.NonNodal[k] = geo.Vector{}
	}
	o.Mz, o.My = nil, nil
}

// default implementations ////////////////////////////////////////////////////////////////////////

// GeometricK is not available
func (o *Base) GeometricK() (*la.Matrix, error) {
	return nil, fmt.Errorf("geometric stiffness matrix: %w", ErrUnsupportedOperation)
}

// SpanField returns zero; i.e. there is no deflection between nodes
func (o *Base) SpanField(x float64) geo.Vector {
	return geo.Vector{}
}

// BendingMomentY is not available
func (o *Base) BendingMomentY(x float64) (float64, error) {
	return 0, fmt.Errorf("bending moment about y: %w", ErrUnsupportedOperation)
}

// BendingMomentZ is not available
func (o *Base) BendingMomentZ(x float64) (float64, error) {
	return 0, fmt.Errorf("bending moment about z: %w", ErrUnsupportedOperation)
}
