// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "errors"

// Error categories. Use errors.Is to test for them
var (
	ErrStructuralInstability    = errors.New("structural instability: stiffness matrix is singular or ill-conditioned")
	ErrUnsupportedOperation     = errors.New("unsupported operation")
	ErrInvalidGeometry          = errors.New("invalid geometry")
	ErrUnsupportedLoadComponent = errors.New("unsupported load component")
)
