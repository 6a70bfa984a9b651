// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/goframe/mdl/sec"
	"github.com/cpmech/goframe/mdl/sld"
	"github.com/cpmech/gosl/chk"
)

// AllocatorType defines a function that allocates an element
type AllocatorType func(start, end *Node, s sec.Section, m sld.Material, twist float64) (Element, error)

// New returns a new element from factory
func New(kind Kind, start, end *Node, s sec.Section, m sld.Material, twist float64) (e Element, err error) {
	fcn, ok := allocators[kind]
	if !ok {
		err = chk.Err("cannot get allocator for element {kind=%v}. Is package ele/frame linked?", kind)
		return
	}
	return fcn(start, end, s, m, twist)
}

// SetAllocator sets a new callback function to allocate an element
func SetAllocator(kind Kind, fcn AllocatorType) {
	if _, ok := allocators[kind]; ok {
		chk.Panic("cannot set allocator function for %q because element kind exists already", kind)
	}
	allocators[kind] = fcn
}

// GetAllocator gets callback function to allocate an element
func GetAllocator(kind Kind) AllocatorType {
	if fcn, ok := allocators[kind]; ok {
		return fcn
	}
	chk.Panic("cannot get allocator function for element %q", kind)
	return nil
}

// allocators holds all element allocators
var allocators = make(map[Kind]AllocatorType)
