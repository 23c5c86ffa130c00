// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import "gonum.org/v1/gonum/blas"

// Dgerq2 computes the RQ factorization of the m×n matrix A,
//
//	A = R * Q
//
// where R is an m×n upper trapezoidal matrix and Q is an n×n orthogonal
// matrix represented as a product of k = min(m,n) elementary reflectors,
//
//	Q = H_0 * H_1 * ... * H_{k-1}.
//
// Each H_i = I - tau[i] * v * vᵀ where v has v[n-k+i] = 1, v[n-k+i+1:n] = 0
// and v[0:n-k+i] stored on exit in A[m-k+i, 0:n-k+i]. The reflectors are
// generated from the bottom row of A upward, each one zeroing the leading
// part of its row.
//
// On exit, if m <= n the upper triangle of A[0:m, n-m:n] contains R; if
// m > n the elements on and above the (m-n)-th subdiagonal contain R. tau
// must have length at least k and work must have length at least m,
// otherwise Dgerq2 will panic.
//
// Dgerq2 is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dgerq2(m, n int, a []float64, lda int, tau, work []float64) {
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

	for i := k - 1; i >= 0; i-- {
		// Generate the reflector annihilating A[m-k+i, 0:n-k+i] with its
		// unit element at column n-k+i.
		mki := m - k + i
		nki := n - k + i
		var aii float64
		aii, tau[i] = impl.Dlarfg(nki+1, a[mki*lda+nki], a[mki*lda:], 1)

		// Apply H_i to A[0:m-k+i, 0:n-k+i+1] from the right.
		a[mki*lda+nki] = 1
		impl.Dlarf(blas.Right, mki, nki+1, a[mki*lda:], 1, tau[i], a, lda, work)
		a[mki*lda+nki] = aii
	}
}
