// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/goframe/ele/frame"

// enforce loading of all elements
func init() {
	_ = frame.Frame3d{}
	_ = frame.Truss3d{}
	_ = frame.Frame2d{}
	_ = frame.Truss2d{}
}
