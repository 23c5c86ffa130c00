// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"
)

// Dorglq generates an m×n matrix Q with orthonormal rows defined as the
// first m rows of a product of k elementary reflectors of order n
//
//	Q = H_{k-1} * ... * H_1 * H_0
//
// as returned by Dgelqf. It must hold that n >= m >= k, and this function
// will panic otherwise.
//
// The reflectors are consumed in panels from the last one backward. Each
// panel is aggregated with Dlarft and applied to the rows below it through
// Dlarfb before the panel rows themselves are generated with the unblocked
// code.
//
// work is temporary storage, and lwork specifies the usable memory length.
// At minimum, lwork >= m, and this function will panic otherwise. The block
// size is lwork/m, as in Dgelqf. If lwork == -1, instead of performing
// Dorglq, the optimal workspace length is stored into work[0].
//
// tau contains the scalar factors of the reflectors and must have length
// at least k.
//
// Dorglq is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dorglq(m, n, k int, a []float64, lda int, tau, work []float64, lwork int) {
	switch {
	case m < 0:
		panic(mLT0)
	case n < m:
		panic(nLTM)
	case k < 0:
		panic(kLT0)
	case k > m:
		panic(kGTM)
	case lda < max(1, n):
		panic(badLdA)
	case lwork < max(1, m) && lwork != -1:
		panic(badLWork)
	case len(work) < max(1, lwork):
		panic(shortWork)
	}

	ws := max(1, m*min(defaultNB, max(1, k)))
	if lwork == -1 {
		work[0] = float64(ws)
		return
	}

	if m == 0 {
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
	if nb < 2 || nb >= k {
		// A single panel covers all reflectors.
		impl.Dorgl2(m, n, k, a, lda, tau, work)
		work[0] = float64(ws)
		return
	}

	ldwork := nb
	ki := ((k - 1) / nb) * nb
	if k < m {
		// Rows k:m start out as rows of the unit matrix and pick up
		// their values from the block updates below.
		for i := k; i < m; i++ {
			for j := 0; j < n; j++ {
				a[i*lda+j] = 0
			}
			a[i*lda+i] = 1
		}
	}
	for i := ki; i >= 0; i -= nb {
		ib := min(nb, k-i)
		if i+ib < m {
			// Form the triangular factor of the block reflector
			// H = H_i * H_{i+1} * ... * H_{i+ib-1} and apply Hᵀ to
			// A[i+ib:m, i:n] from the right.
			impl.Dlarft(lapack.Forward, lapack.RowWise, n-i, ib,
				a[i*lda+i:], lda, tau[i:], work, ldwork)
			impl.Dlarfb(blas.Right, blas.Trans, lapack.Forward, lapack.RowWise,
				m-i-ib, n-i, ib, a[i*lda+i:], lda, work, ldwork,
				a[(i+ib)*lda+i:], lda, work[ib*ldwork:], ldwork)
		}

		// Generate the panel rows A[i:i+ib, i:n].
		impl.Dorgl2(ib, n-i, ib, a[i*lda+i:], lda, tau[i:], work)

		// Set A[i:i+ib, 0:i] to zero.
		for l := i; l < i+ib; l++ {
			for j := 0; j < i; j++ {
				a[l*lda+j] = 0
			}
		}
	}
	work[0] = float64(ws)
}
