// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"
)

// Dgelqf computes the LQ factorization of the m×n matrix A using a blocked
// algorithm. See the documentation for Dgelq2 for a description of the
// parameters at entry and exit.
//
// The matrix is processed in panels of rows. Each panel is factored with
// the unblocked code, its reflectors are aggregated into a compact WY block
// with Dlarft, and the block is applied to the remaining rows in one fused
// Dlarfb update.
//
// work is temporary storage, and lwork specifies the usable memory length.
// At minimum, lwork >= m, and this function will panic otherwise. The block
// size of the algorithm is lwork/m, so for an nb-wide blocked update lwork
// must be at least m*nb; smaller values reduce the block size down to the
// unblocked algorithm. work is viewed as an m×nb row-major matrix whose top
// rows hold the triangular block factor and whose remaining rows are the
// Dlarfb scratch.
//
// If lwork == -1, instead of performing Dgelqf, the optimal workspace
// length is stored into work[0].
//
// tau must have length at least min(m,n), and this function will panic
// otherwise.
//
// Dgelqf is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dgelqf(m, n int, a []float64, lda int, tau, work []float64, lwork int) {
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
		impl.Dgelq2(m, n, a, lda, tau, work)
		work[0] = float64(ws)
		return
	}

	ldwork := nb
	for j := 0; j < k; j += nb {
		ib := min(k-j, nb)

		// Factor the panel A[j:j+ib, j:n].
		impl.Dgelq2(ib, n-j, a[j*lda+j:], lda, tau[j:], work)

		if j+ib < m {
			// Form the triangular factor of the block reflector
			// H = H_j * H_{j+1} * ... * H_{j+ib-1}.
			impl.Dlarft(lapack.Forward, lapack.RowWise, n-j, ib,
				a[j*lda+j:], lda, tau[j:], work, ldwork)

			// Apply H to A[j+ib:m, j:n] from the right.
			impl.Dlarfb(blas.Right, blas.NoTrans, lapack.Forward, lapack.RowWise,
				m-j-ib, n-j, ib, a[j*lda+j:], lda, work, ldwork,
				a[(j+ib)*lda+j:], lda, work[ib*ldwork:], ldwork)
		}
	}
	work[0] = float64(ws)
}
