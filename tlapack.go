// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tlapack computes LQ and RQ factorizations of dense matrices by
// blocked Householder algorithms.
//
// An LQ factorization decomposes an m×n matrix A as
//
//	A = L * Q
//
// where L is lower trapezoidal and Q has orthonormal rows. An RQ
// factorization decomposes A as
//
//	A = R * Q
//
// where R is upper trapezoidal. In both cases Q is represented implicitly as
// a product of k = min(m,n) elementary reflectors stored in A together with
// their scalar factors in tau.
//
// The factorizations operate in place and use a scratch workspace whose
// exact shape can be queried beforehand with LQWorksize and RQWorksize. The
// computational kernels live in lapack/native and follow LAPACK's
// conventions; this package is the error-returning surface over them.
package tlapack

import (
	"gonum.org/v1/gonum/mat"

	"github.com/Xuan-1998/tlapack/lapack/native"
)

// DefaultBlockSize is the panel width used when Opts.BlockSize is zero.
const DefaultBlockSize = 32

// Opts configures a factorization call. The zero value is valid and selects
// the defaults.
type Opts struct {
	// BlockSize is the number of reflectors aggregated into one block
	// update. If zero, DefaultBlockSize is used. The effective block size
	// never exceeds min(m,n).
	BlockSize int
}

func (o *Opts) blockSize() int {
	if o == nil || o.BlockSize == 0 {
		return DefaultBlockSize
	}
	return o.BlockSize
}

// WorkInfo describes the shape of the scratch workspace required by a
// factorization call.
type WorkInfo struct {
	Rows, Cols int
}

// Len returns the total workspace length in elements.
func (w WorkInfo) Len() int {
	return w.Rows * w.Cols
}

// LQWorksize returns the workspace shape required to compute the LQ
// factorization of an m×n matrix with the given options.
//
// The query is a pure function of the problem shape: it performs no
// allocation and no computation. A workspace of the returned size is always
// sufficient for the corresponding LQ call.
func LQWorksize(m, n int, opts *Opts) (WorkInfo, error) {
	if m < 0 || n < 0 {
		return WorkInfo{}, ErrShape
	}
	nb := opts.blockSize()
	if nb < 0 {
		return WorkInfo{}, ErrBlockSize
	}
	nb = min(nb, min(m, n))
	return WorkInfo{Rows: max(1, m), Cols: max(1, nb)}, nil
}

// RQWorksize returns the workspace shape required to compute the RQ
// factorization of an m×n matrix with the given options.
//
// The backward sweep consumes scratch of the same shape as the forward one,
// so the result coincides with LQWorksize.
func RQWorksize(m, n int, opts *Opts) (WorkInfo, error) {
	return LQWorksize(m, n, opts)
}

// LQ computes the LQ factorization of the matrix a in place.
//
// On return, the elements on and below the diagonal of a contain the lower
// trapezoidal factor L, and the elements above the diagonal together with
// the first min(m,n) elements of tau represent Q as a product of elementary
// reflectors.
//
// tau must have length at least min(m,n). work may be nil, in which case a
// workspace sized per LQWorksize is allocated for the duration of the call;
// a non-nil work shorter than that size is an error. All argument checks
// happen before a or tau is mutated. Matrices with a zero dimension are a
// valid no-op input.
func LQ(a *mat.Dense, tau []float64, work []float64, opts *Opts) error {
	m, n := a.Dims()
	wi, err := LQWorksize(m, n, opts)
	if err != nil {
		return err
	}
	k := min(m, n)
	switch {
	case len(tau) < k:
		return ErrShortTau
	case work != nil && len(work) < wi.Len():
		return ErrShortWork
	}
	if k == 0 {
		return nil
	}
	if work == nil {
		work = make([]float64, wi.Len())
	}
	ra := a.RawMatrix()
	native.Implementation{}.Dgelqf(m, n, ra.Data, ra.Stride, tau, work[:wi.Len()], wi.Len())
	return nil
}

// RQ computes the RQ factorization of the matrix a in place.
//
// On return, if m <= n the upper triangle of the rightmost m×m block of a
// contains the upper triangular factor R; if m > n the elements on and above
// the (m-n)-th subdiagonal contain the upper trapezoidal factor R. The
// remaining elements together with the first min(m,n) elements of tau
// represent Q as a product of elementary reflectors.
//
// Argument and workspace handling is as in LQ, with RQWorksize describing
// the scratch shape.
func RQ(a *mat.Dense, tau []float64, work []float64, opts *Opts) error {
	m, n := a.Dims()
	wi, err := RQWorksize(m, n, opts)
	if err != nil {
		return err
	}
	k := min(m, n)
	switch {
	case len(tau) < k:
		return ErrShortTau
	case work != nil && len(work) < wi.Len():
		return ErrShortWork
	}
	if k == 0 {
		return nil
	}
	if work == nil {
		work = make([]float64, wi.Len())
	}
	ra := a.RawMatrix()
	native.Implementation{}.Dgerqf(m, n, ra.Data, ra.Stride, tau, work[:wi.Len()], wi.Len())
	return nil
}
