// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// Validate checks the data fields and the references between nodes, elements,
// sections and materials
func (o *Model) Validate() (err error) {

	// fields
	if err = validate.Struct(o); err != nil {
		return formatValidationError(err)
	}

	// unique names and ids
	mats := make(map[string]bool)
	for _, m := range o.Materials {
		if mats[m.Name] {
			return chk.Err("material %q is defined more than once", m.Name)
		}
		mats[m.Name] = true
	}
	secs := make(map[string]bool)
	for _, s := range o.Sections {
		if secs[s.Name] {
			return chk.Err("section %q is defined more than once", s.Name)
		}
		secs[s.Name] = true
	}
	nodes := make(map[int]bool)
	for _, n := range o.Nodes {
		if nodes[n.Id] {
			return chk.Err("node %d is defined more than once", n.Id)
		}
		nodes[n.Id] = true
	}
	elems := make(map[int]bool)
	for _, e := range o.Elems {
		if elems[e.Id] {
			return chk.Err("element %d is defined more than once", e.Id)
		}
		elems[e.Id] = true
	}

	// references
	for _, e := range o.Elems {
		for _, n := range e.Nodes {
			if !nodes[n] {
				return chk.Err("element %d: node %d does not exist", e.Id, n)
			}
		}
		if !secs[e.Sec] {
			return chk.Err("element %d: section %q does not exist", e.Id, e.Sec)
		}
		if !mats[e.Mat] {
			return chk.Err("element %d: material %q does not exist", e.Id, e.Mat)
		}
	}
	for _, s := range o.Supports {
		if !nodes[s.Node] {
			return chk.Err("support: node %d does not exist", s.Node)
		}
	}
	for _, l := range o.NodalLoads {
		if !nodes[l.Node] {
			return chk.Err("nodal load: node %d does not exist", l.Node)
		}
	}
	for _, l := range o.PointLoads {
		if !elems[l.Elem] {
			return chk.Err("point load: element %d does not exist", l.Elem)
		}
	}
	for _, l := range o.DistLoads {
		if !elems[l.Elem] {
			return chk.Err("distributed load: element %d does not exist", l.Elem)
		}
	}
	for _, l := range o.Thermal {
		if !elems[l.Elem] {
			return chk.Err("thermal load: element %d does not exist", l.Elem)
		}
	}
	return
}

// formatValidationError converts validator errors into a shorter message
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return chk.Err("%s: field is required", field)
	case "required_without":
		return chk.Err("%s: field is required when %s is missing", field, e.Param())
	case "required_with":
		return chk.Err("%s: field is required when %s is given", field, e.Param())
	case "min", "gte":
		return chk.Err("%s: must be at least %s", field, e.Param())
	case "max":
		return chk.Err("%s: must not exceed %s", field, e.Param())
	case "len":
		return chk.Err("%s: must have %s components", field, e.Param())
	case "oneof":
		return chk.Err("%s: %q is invalid. options: %s", field, e.Value(), e.Param())
	}
	return chk.Err("%s: validation failed (%s)", field, e.Tag())
}
