// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"
)

// Dgerqf computes the RQ factorization of the m×n matrix A using a blocked
// algorithm. See the documentation for Dgerq2 for a description of the
// parameters at entry and exit.
//
// The sweep runs backward from the bottom-right corner of the matrix:
// after j2 reflectors have been generated, the current panel occupies rows
// [m-j2-ib, m-j2) and columns [0, n-j2), its scalar factors occupy
// tau[k-j2-ib : k-j2], and the aggregated block reflector is applied to the
// rows above the panel. The panel boundaries follow from the reflector
// count j2, which is bounded by k = min(m,n), while the row origin follows
// from m; the two coincide only for square A.
//
// work is temporary storage, and lwork specifies the usable memory length.
// At minimum, lwork >= m, and this function will panic otherwise. The block
// size of the algorithm is lwork/m, exactly as in Dgelqf, and work is
// likewise viewed as an m×nb row-major matrix holding the triangular block
// factor in its top rows and the Dlarfb scratch below.
//
// If lwork == -1, instead of performing Dgerqf, the optimal workspace
// length is stored into work[0].
//
// tau must have length at least min(m,n), and this function will panic
// otherwise.
//
// Dgerqf is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dgerqf(m, n int, a []float64, lda int, tau, work []float64, lwork int) {
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	case lwork < max(1, m) && lwork != -1:
		panic(badLWork)
	case len(work) < max(1, lwork):
		panic(shortWork)
	}

	k := min(m, n)
	ws := max(1, m*min(defaultNB, max(1, k)))
	if lwork == -1 {
		work[0] = float64(ws)
		return
	}

	if k == 0 {
		work[0] = 1
		return
	}

	switch {
	case len(a) < (m-1)*lda+n:
		panic(shortA)
	case len(tau) < k:
		panic(shortTau)
	}

	nb := min(lwork/m, k)
	if nb < 2 {
		// The workspace does not admit a blocked update.
		impl.Dgerq2(m, n, a, lda, tau, work)
		work[0] = float64(ws)
		return
	}

	ldwork := nb
	for j2 := 0; j2 < k; j2 += nb {
		ib := min(k-j2, nb)
		j := m - j2 - ib

		// Factor the panel A[j:j+ib, 0:n-j2].
		impl.Dgerq2(ib, n-j2, a[j*lda:], lda, tau[k-j2-ib:], work)

		if j > 0 {
			// Form the triangular factor of the block reflector
			// H = H_{k-j2-1} * ... * H_{k-j2-ib}.
			impl.Dlarft(lapack.Backward, lapack.RowWise, n-j2, ib,
				a[j*lda:], lda, tau[k-j2-ib:], work, ldwork)

			// Apply H to A[0:j, 0:n-j2] from the right.
			impl.Dlarfb(blas.Right, blas.NoTrans, lapack.Backward, lapack.RowWise,
				j, n-j2, ib, a[j*lda:], lda, work, ldwork,
				a, lda, work[ib*ldwork:], ldwork)
		}
	}
	work[0] = float64(ws)
}
