// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package native is a pure-Go implementation of the LAPACK routines backing
// the blocked LQ and RQ factorizations: the elementary reflector kernels
// (Dlarfg, Dlarf), the compact WY aggregation pair (Dlarft, Dlarfb), the
// unblocked panel factorizers (Dgelq2, Dgerq2) and the blocked drivers
// (Dgelqf, Dgerqf), together with the routines that recover Q explicitly
// (Dorgl2, Dorglq).
//
// All matrices are stored in row-major order with a leading dimension, and
// all Level-1, -2 and -3 operations are delegated to the registered
// blas64.Implementation. Bad input parameters cause a panic before any
// mutation; there is no numerical failure mode in this package.
package native

// Implementation is the set of routines in this package. Its methods mirror
// the corresponding LAPACK routines.
type Implementation struct{}

// Machine parameters for float64.
const (
	dlamchE = 0x1p-53   // Machine epsilon.
	dlamchB = 2         // Radix.
	dlamchP = dlamchB * dlamchE
	dlamchS = 0x1p-1022 // Smallest normal number.
)

// defaultNB is the panel width the blocked drivers use when the caller
// supplies their optimal workspace.
const defaultNB = 32

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
