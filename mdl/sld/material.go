// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sld implements linear elastic materials for line elements
package sld

import (
	"errors"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// ErrNoShearModulus is returned by materials without a shear modulus
var ErrNoShearModulus = errors.New("shear modulus is undefined for this material")

// Material defines the constants required by line elements
type Material interface {
	Name() string                   // model name
	Young() float64                 // Young's modulus E
	Poisson() float64               // Poisson's coefficient ν
	ShearModulus() (float64, error) // shear modulus G
	Alpha() float64                 // coefficient of thermal expansion
}

// Model defines materials that can be initialised from parameters
type Model interface {
	Material
	Init(prms dbf.Params) error // initialises model
	GetPrms() dbf.Params        // gets (an example) of parameters
}

// connect connects a required parameter to v
func connect(prms dbf.Params, v *float64, name, caller string) error {
	if msg := prms.Connect(v, name, caller); msg != "" {
		return chk.Err("%s", strings.TrimSpace(msg))
	}
	return nil
}

// New returns a new material model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'sld' database", name)
	}
	return allocator(), nil
}

// Models returns the names of the available models
func Models() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}
