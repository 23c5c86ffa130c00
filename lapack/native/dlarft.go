// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
)

// Dlarft forms the triangular factor T of the block reflector H, defined as
// a product of k elementary reflectors of order n.
//
// If direct == lapack.Forward,
//
//	H = H_0 * H_1 * ... * H_{k-1}
//
// and T is upper triangular. If direct == lapack.Backward,
//
//	H = H_{k-1} * ... * H_1 * H_0
//
// and T is lower triangular.
//
// If store == lapack.ColumnWise, the i-th reflector vector is stored in the
// i-th column of the n×k matrix V; the unit element sits at row i for the
// forward direction and at row n-k+i for the backward direction, and is not
// referenced. If store == lapack.RowWise, V is k×n and the reflector vectors
// are its rows, with the unit element at column i or n-k+i respectively.
// In all cases
//
//	H = I - V * T * Vᵀ   (store == lapack.ColumnWise)
//	H = I - Vᵀ * T * V   (store == lapack.RowWise)
//
// tau contains the scalar factors of the elementary reflectors and must
// have length at least k. The k×k matrix T is written to t; only the
// triangle determined by direct is referenced. If k is zero, Dlarft is a
// no-op.
//
// Dlarft is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dlarft(direct lapack.Direct, store lapack.StoreV, n, k int, v []float64, ldv int, tau []float64, t []float64, ldt int) {
	mv, nv := n, k
	if store == lapack.RowWise {
		mv, nv = k, n
	}
	switch {
	case direct != lapack.Forward && direct != lapack.Backward:
		panic(badDirect)
	case store != lapack.RowWise && store != lapack.ColumnWise:
		panic(badStore)
	case n < 0:
		panic(nLT0)
	case k < 0:
		panic(kLT0)
	case ldv < max(1, nv):
		panic(badLdV)
	case ldt < max(1, k):
		panic(badLdT)
	}

	if n == 0 || k == 0 {
		return
	}

	switch {
	case len(v) < (mv-1)*ldv+nv:
		panic(shortV)
	case len(tau) < k:
		panic(shortTau)
	case len(t) < (k-1)*ldt+k:
		panic(shortT)
	}

	bi := blas64.Implementation()

	if direct == lapack.Forward {
		for i := 0; i < k; i++ {
			if tau[i] == 0 {
				// H_i is the identity, so the column is zero.
				for j := 0; j <= i; j++ {
					t[j*ldt+i] = 0
				}
				continue
			}
			// T[0:i, i] = -tau[i] * V[0:i]ᵀ * v_i, using the unit
			// element of v_i explicitly and the implicit zeros of
			// the stored reflectors.
			if store == lapack.ColumnWise {
				for j := 0; j < i; j++ {
					t[j*ldt+i] = -tau[i] * v[i*ldv+j]
				}
				if i < n-1 {
					bi.Dgemv(blas.Trans, n-i-1, i, -tau[i],
						v[(i+1)*ldv:], ldv, v[(i+1)*ldv+i:], ldv,
						1, t[i:], ldt)
				}
			} else {
				for j := 0; j < i; j++ {
					t[j*ldt+i] = -tau[i] * v[j*ldv+i]
				}
				if i < n-1 {
					bi.Dgemv(blas.NoTrans, i, n-i-1, -tau[i],
						v[i+1:], ldv, v[i*ldv+i+1:], 1,
						1, t[i:], ldt)
				}
			}
			// T[0:i, i] = T[0:i, 0:i] * T[0:i, i].
			if i > 0 {
				bi.Dtrmv(blas.Upper, blas.NoTrans, blas.NonUnit, i, t, ldt, t[i:], ldt)
			}
			t[i*ldt+i] = tau[i]
		}
		return
	}

	// Backward direction. The unit element of the i-th reflector is at
	// position n-k+i and T is filled in from its bottom-right corner.
	for i := k - 1; i >= 0; i-- {
		if tau[i] == 0 {
			for j := i; j < k; j++ {
				t[j*ldt+i] = 0
			}
			continue
		}
		if i < k-1 {
			if store == lapack.ColumnWise {
				for j := i + 1; j < k; j++ {
					t[j*ldt+i] = -tau[i] * v[(n-k+i)*ldv+j]
				}
				if n-k+i > 0 {
					bi.Dgemv(blas.Trans, n-k+i, k-i-1, -tau[i],
						v[i+1:], ldv, v[i:], ldv,
						1, t[(i+1)*ldt+i:], ldt)
				}
			} else {
				for j := i + 1; j < k; j++ {
					t[j*ldt+i] = -tau[i] * v[j*ldv+n-k+i]
				}
				if n-k+i > 0 {
					bi.Dgemv(blas.NoTrans, k-i-1, n-k+i, -tau[i],
						v[(i+1)*ldv:], ldv, v[i*ldv:], 1,
						1, t[(i+1)*ldt+i:], ldt)
				}
			}
			// T[i+1:k, i] = T[i+1:k, i+1:k] * T[i+1:k, i].
			bi.Dtrmv(blas.Lower, blas.NoTrans, blas.NonUnit, k-i-1,
				t[(i+1)*ldt+i+1:], ldt, t[(i+1)*ldt+i:], ldt)
		}
		t[i*ldt+i] = tau[i]
	}
}
