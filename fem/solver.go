// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"fmt"
	"math"

	"github.com/cpmech/goframe/ele"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// State defines the stages of a linear static analysis
type State int

const (
	Unassembled State = iota // stiffness not assembled yet
	Assembled                // stiffness assembled and partitioned
	Solved                   // displacements and reactions computed
	Aborted                  // singular stiffness; nothing was written
)

var stateNames = []string{"unassembled", "assembled", "solved", "aborted"}

func (s State) String() string { return stateNames[s] }

// Solver implements the direct stiffness method
//
//   ┌          ┐ ┌    ┐   ┌                ┐
//   │ Kff  Kfs │ │ uf │   │ Ff - Ferf      │
//   │          │ │    │ = │                │
//   │ Ksf  Kss │ │ ds │   │ Fs - Fers + R  │
//   └          ┘ └    ┘   └                ┘
//
type Solver struct {
	Str     *Structure // structure
	State   State      // current state
	Verbose bool       // show messages
	Cond    float64    // 2-norm condition number of Kff

	// global matrices
	K   *la.Triplet // assembled stiffness in [free | restrained] order
	Kd  *la.Matrix  // dense version of K
	Kff *mat.Dense  // [nf][nf]; nil if nf == 0
	Kfs *mat.Dense  // [nf][ns]; nil if nf == 0 or ns == 0
	Ksf *mat.Dense  // [ns][nf]; nil if nf == 0 or ns == 0
	Kss *mat.Dense  // [ns][ns]; nil if ns == 0
}

// NewSolver returns a new solver
func NewSolver(str *Structure) *Solver {
	return &Solver{Str: str}
}

// Run assembles the stiffness matrix, solves for the free displacements, computes
// the reactions and updates the fields along elements
func (o *Solver) Run() (err error) {
	if err = o.Assemble(); err != nil {
		return
	}
	if err = o.Solve(); err != nil {
		return
	}
	return o.PostProcess()
}

// Assemble assembles and partitions the global stiffness matrix
func (o *Solver) Assemble() (err error) {

	// equations
	str := o.Str
	str.Number()
	n := str.Ndof()
	nf := str.Nfree
	if o.Verbose {
		io.Pf("> Assembling %d elements: %d dofs (%d free, %d restrained)\n", len(str.Elems), n, nf, n-nf)
	}

	// triplet
	nnz := 0
	for _, e := range str.Elems {
		m := len(e.Dofs())
		nnz += m * m
	}
	o.K = new(la.Triplet)
	o.K.Init(n, n, nnz)
	for _, e := range str.Elems {
		Ke := ele.GlobalK(e)
		dofs := e.Dofs()
		for i, I := range dofs {
			for j, J := range dofs {
				o.K.Put(I.Eq, J.Eq, Ke.Get(i, j))
			}
		}
	}
	o.Kd = o.K.ToDense()

	// partition
	o.Kff = block(o.Kd, 0, nf, 0, nf)
	o.Kfs = block(o.Kd, 0, nf, nf, n)
	o.Ksf = block(o.Kd, nf, n, 0, nf)
	o.Kss = block(o.Kd, nf, n, nf, n)
	o.State = Assembled
	return
}

// Solve computes the free displacements and the reactions
func (o *Solver) Solve() (err error) {

	// check
	if o.State != Assembled {
		return chk.Err("stiffness matrix must be assembled before solving. state = %v", o.State)
	}
	str := o.Str
	free, fixed := str.Free(), str.Restrained()
	nf, ns := len(free), len(fixed)

	// restrained displacements
	ds := make([]float64, ns)
	for i, d := range fixed {
		ds[i] = d.U
	}

	// free displacements
	uf := make([]float64, nf)
	if nf > 0 {

		// singularity
		o.Cond = mat.Cond(o.Kff, 2)
		if math.IsNaN(o.Cond) || o.Cond >= 1.0/epsilon {
			o.State = Aborted
			return fmt.Errorf("stiffness matrix of free dofs is singular (cond = %g). check supports and releases: %w", o.Cond, ele.ErrStructuralInstability)
		}

		// right-hand side: Ff - Ferf - Kfs ⋅ ds
		rhs := make([]float64, nf)
		for i, d := range free {
			rhs[i] = d.F - d.Fer
		}
		if ns > 0 {
			mulAdd(rhs, -1, o.Kfs, ds)
		}

		// solve
		var x mat.VecDense
		if err = x.SolveVec(o.Kff, mat.NewVecDense(nf, rhs)); err != nil {
			o.State = Aborted
			return fmt.Errorf("cannot solve for the free displacements: %v: %w", err, ele.ErrStructuralInstability)
		}
		for i := range uf {
			uf[i] = x.AtVec(i)
		}
		if o.Verbose {
			io.Pf("> Free displacements computed. cond(Kff) = %g\n", o.Cond)
		}
	}

	// reactions: Ksf ⋅ uf + Kss ⋅ ds + Fers - Fs
	r := make([]float64, ns)
	for i, d := range fixed {
		r[i] = d.Fer - d.F
	}
	if ns > 0 {
		if nf > 0 {
			mulAdd(r, 1, o.Ksf, uf)
		}
		mulAdd(r, 1, o.Kss, ds)
	}

	// write back
	for i, d := range free {
		d.U = uf[i]
		d.R = 0
	}
	for i, d := range fixed {
		d.R = r[i]
	}
	o.State = Solved
	return
}

// PostProcess updates the fields along the elements after the solution
func (o *Solver) PostProcess() (err error) {
	if o.State != Solved {
		return chk.Err("post-processing requires a solved structure. state = %v", o.State)
	}
	for _, e := range o.Str.Elems {
		ele.UpdateSpanField(e)
		if err = ele.UpdateMoments(e); err != nil {
			return
		}
	}
	if o.Verbose {
		io.Pfgreen("> Solution completed\n")
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// machine epsilon
var epsilon = math.Nextafter(1, 2) - 1

// block returns a copy of A[r0:r1, c0:c1] or nil if empty
func block(A *la.Matrix, r0, r1, c0, c1 int) (B *mat.Dense) {
	if r1 <= r0 || c1 <= c0 {
		return nil
	}
	B = mat.NewDense(r1-r0, c1-c0, nil)
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			B.Set(i-r0, j-c0, A.Get(i, j))
		}
	}
	return
}

// mulAdd computes v += α ⋅ A ⋅ u
func mulAdd(v []float64, α float64, A *mat.Dense, u []float64) {
	var tmp mat.VecDense
	tmp.MulVec(A, mat.NewVecDense(len(u), u))
	for i := range v {
		v[i] += α * tmp.AtVec(i)
	}
}
