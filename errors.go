// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlapack

import "errors"

var (
	// ErrShape is returned when a matrix dimension is negative.
	ErrShape = errors.New("tlapack: negative matrix dimension")

	// ErrBlockSize is returned when Opts.BlockSize is negative.
	ErrBlockSize = errors.New("tlapack: negative block size")

	// ErrShortTau is returned when tau is shorter than min(m,n).
	ErrShortTau = errors.New("tlapack: insufficient length of tau")

	// ErrShortWork is returned when a caller-supplied workspace is smaller
	// than the shape reported by the corresponding worksize query.
	ErrShortWork = errors.New("tlapack: insufficient length of work")
)
