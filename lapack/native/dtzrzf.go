// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import "gonum.org/v1/gonum/blas/blas64"

// Dtzrzf reduces the m×n (m <= n) upper trapezoidal matrix A to upper
// triangular form by means of orthogonal transformations,
//
//	A = [R 0] * Z
//
// where Z is an n×n orthogonal matrix and R is an m×m upper triangular
// matrix. Z is stored as a product of m elementary reflectors
//
//	Z = Z_0 * Z_1 * ... * Z_{m-1}
//
// where each Z_i = I - tau[i] * v * vᵀ and v is a vector with
//
//	v[0:i] = 0, v[i] = 1, v[i+1:m] = 0, v[m:n] = A[i, m:n]
//
// on exit.
//
// tau must have length at least m. work must have length at least
// max(1,lwork) and lwork must be at least max(1,m), otherwise Dtzrzf will
// panic.
//
// If lwork is -1, instead of performing Dtzrzf, only the optimal workspace
// size is stored into work[0].
//
// Dtzrzf is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dtzrzf(m, n int, a []float64, lda int, tau, work []float64, lwork int) {
	switch {
	case m < 0:
		panic(mLT0)
	case n < m:
		panic(nLTM)
	case lda < max(1, n):
		panic(badLdA)
	case lwork < max(1, m) && lwork != -1:
		panic(badLWork)
	case len(work) < max(1, lwork):
		panic(shortWork)
	}

	if lwork == -1 {
		work[0] = float64(max(1, m))
		return
	}

	if m == 0 {
		work[0] = 1
		return
	}

	switch {
	case len(a) < (m-1)*lda+n:
		panic(shortA)
	case len(tau) < m:
		panic(shortTau)
	}

	if m == n {
		// A is already upper triangular and Z is the identity.
		for i := range tau[:m] {
			tau[i] = 0
		}
		work[0] = 1
		return
	}

	bi := blas64.Implementation()
	l := n - m
	for i := m - 1; i >= 0; i-- {
		// Generate the reflector Z_i annihilating A[i, m:n] into the
		// diagonal element.
		beta, taui := impl.Dlarfg(l+1, a[i*lda+i], a[i*lda+m:i*lda+n], 1)
		tau[i] = taui
		a[i*lda+i] = beta

		if taui == 0 || i == 0 {
			continue
		}

		// Apply Z_i to A[0:i, i:n] from the right:
		// w = A[0:i, i] + A[0:i, m:n] * v
		bi.Dcopy(i, a[i:], lda, work, 1)
		bi.Dgemv('N', i, l, 1, a[m:], lda, a[i*lda+m:], 1, 1, work, 1)
		// A[0:i, i] -= tau * w
		bi.Daxpy(i, -taui, work, 1, a[i:], lda)
		// A[0:i, m:n] -= tau * w * vᵀ
		bi.Dger(i, l, -taui, work, 1, a[i*lda+m:], 1, a[m:], lda)
	}
	work[0] = float64(m)
}
