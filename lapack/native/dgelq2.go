// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import "gonum.org/v1/gonum/blas"

// Dgelq2 computes the LQ factorization of the m×n matrix A,
//
//	A = L * Q
//
// where L is an m×k lower trapezoidal matrix and Q is a k×n matrix with
// orthonormal rows, k = min(m,n).
//
// Q is represented as a product of elementary reflectors,
//
//	Q = H_{k-1} * ... * H_1 * H_0
//
// where each H_i = I - tau[i] * v * vᵀ and v is a vector with v[0:i] = 0,
// v[i] = 1 and v[i+1:n] stored on exit in A[i, i+1:n].
//
// On exit, the elements on and below the diagonal of a contain L, and the
// elements above the diagonal together with tau represent Q. tau must have
// length at least k and work must have length at least m, otherwise Dgelq2
// will panic.
//
// Dgelq2 is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dgelq2(m, n int, a []float64, lda int, tau, work []float64) {
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	}

	k := min(m, n)
	if k == 0 {
		return
	}

	switch {
	case len(a) < (m-1)*lda+n:
		panic(shortA)
	case len(tau) < k:
		panic(shortTau)
	case len(work) < m:
		panic(shortWork)
	}

	for i := 0; i < k; i++ {
		// Generate the reflector annihilating A[i, i+1:n].
		a[i*lda+i], tau[i] = impl.Dlarfg(n-i, a[i*lda+i], a[i*lda+min(i+1, n-1):], 1)
		if i < m-1 {
			// Apply H_i to A[i+1:m, i:n] from the right.
			aii := a[i*lda+i]
			a[i*lda+i] = 1
			impl.Dlarf(blas.Right, m-i-1, n-i, a[i*lda+i:], 1, tau[i], a[(i+1)*lda+i:], lda, work)
			a[i*lda+i] = aii
		}
	}
}
