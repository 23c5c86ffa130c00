// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
)

// Dlarfb applies a block reflector H or its transpose to the m×n matrix C,
//
//	C = H * C    if side == blas.Left  and trans == blas.NoTrans,
//	C = Hᵀ * C   if side == blas.Left  and trans == blas.Trans,
//	C = C * H    if side == blas.Right and trans == blas.NoTrans,
//	C = C * Hᵀ   if side == blas.Right and trans == blas.Trans.
//
// H is defined by its storage format (store) and direction (direct) together
// with the matrix V holding the k reflector vectors and the k×k triangular
// factor T computed by Dlarft for the same direct and store:
//
//	H = I - V * T * Vᵀ   (store == lapack.ColumnWise)
//	H = I - Vᵀ * T * V   (store == lapack.RowWise)
//
// The update is performed as two Level-3 sweeps, a contraction of C with V
// into the scratch matrix work followed by a rank-k update of C, rather
// than as k individual reflector applications.
//
// If store == lapack.ColumnWise, V is nv×k with nv = m for blas.Left and
// nv = n for blas.Right, and the reflector vectors are its columns. If
// store == lapack.RowWise, V is k×nv and the vectors are its rows. The
// triangular sub-block of V holding the implicit unit diagonal sits at the
// top (direct == lapack.Forward) or the bottom/right (lapack.Backward) of V.
//
// work is an nw×k scratch matrix with nw = n for blas.Left and nw = m for
// blas.Right, and ldwork >= k.
//
// Dlarfb is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dlarfb(side blas.Side, trans blas.Transpose, direct lapack.Direct, store lapack.StoreV, m, n, k int, v []float64, ldv int, t []float64, ldt int, c []float64, ldc int, work []float64, ldwork int) {
	nv := m
	if side == blas.Right {
		nv = n
	}
	switch {
	case side != blas.Left && side != blas.Right:
		panic(badSide)
	case trans != blas.Trans && trans != blas.NoTrans:
		panic(badTrans)
	case direct != lapack.Forward && direct != lapack.Backward:
		panic(badDirect)
	case store != lapack.ColumnWise && store != lapack.RowWise:
		panic(badStore)
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case k < 0:
		panic(kLT0)
	case store == lapack.ColumnWise && ldv < max(1, k):
		panic(badLdV)
	case store == lapack.RowWise && ldv < max(1, nv):
		panic(badLdV)
	case ldt < max(1, k):
		panic(badLdT)
	case ldc < max(1, n):
		panic(badLdC)
	case ldwork < max(1, k):
		panic(badLdWork)
	}

	if m == 0 || n == 0 || k == 0 {
		return
	}

	nw := n
	if side == blas.Right {
		nw = m
	}
	switch {
	case store == lapack.ColumnWise && len(v) < (nv-1)*ldv+k:
		panic(shortV)
	case store == lapack.RowWise && len(v) < (k-1)*ldv+nv:
		panic(shortV)
	case len(t) < (k-1)*ldt+k:
		panic(shortT)
	case len(c) < (m-1)*ldc+n:
		panic(shortC)
	case len(work) < (nw-1)*ldwork+k:
		panic(shortWork)
	}

	// When applying from the left, W = Cᵀ*V*T is formed so that the update
	// C -= V*Wᵀ expands to V*Tᵀ*Vᵀ*C; the effective transpose of T is
	// therefore the opposite of the requested transpose of H.
	transT := blas.Trans
	if trans == blas.Trans {
		transT = blas.NoTrans
	}

	bi := blas64.Implementation()

	if store == lapack.ColumnWise {
		if direct == lapack.Forward {
			// V = (V1)   V1 is k×k unit lower triangular.
			//     (V2)
			if side == blas.Left {
				// W = Cᵀ * V = C1ᵀ*V1 + C2ᵀ*V2, an n×k matrix.
				for j := 0; j < k; j++ {
					bi.Dcopy(n, c[j*ldc:], 1, work[j:], ldwork)
				}
				bi.Dtrmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, n, k, 1, v, ldv, work, ldwork)
				if m > k {
					bi.Dgemm(blas.Trans, blas.NoTrans, n, k, m-k, 1, c[k*ldc:], ldc, v[k*ldv:], ldv, 1, work, ldwork)
				}
				bi.Dtrmm(blas.Right, blas.Upper, transT, blas.NonUnit, n, k, 1, t, ldt, work, ldwork)
				// C -= V * Wᵀ.
				if m > k {
					bi.Dgemm(blas.NoTrans, blas.Trans, m-k, n, k, -1, v[k*ldv:], ldv, work, ldwork, 1, c[k*ldc:], ldc)
				}
				bi.Dtrmm(blas.Right, blas.Lower, blas.Trans, blas.Unit, n, k, 1, v, ldv, work, ldwork)
				for j := 0; j < k; j++ {
					for i := 0; i < n; i++ {
						c[j*ldc+i] -= work[i*ldwork+j]
					}
				}
				return
			}
			// side == blas.Right.
			// W = C * V = C1*V1 + C2*V2, an m×k matrix.
			for j := 0; j < k; j++ {
				bi.Dcopy(m, c[j:], ldc, work[j:], ldwork)
			}
			bi.Dtrmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, m, k, 1, v, ldv, work, ldwork)
			if n > k {
				bi.Dgemm(blas.NoTrans, blas.NoTrans, m, k, n-k, 1, c[k:], ldc, v[k*ldv:], ldv, 1, work, ldwork)
			}
			bi.Dtrmm(blas.Right, blas.Upper, trans, blas.NonUnit, m, k, 1, t, ldt, work, ldwork)
			// C -= W * Vᵀ.
			if n > k {
				bi.Dgemm(blas.NoTrans, blas.Trans, m, n-k, k, -1, work, ldwork, v[k*ldv:], ldv, 1, c[k:], ldc)
			}
			bi.Dtrmm(blas.Right, blas.Lower, blas.Trans, blas.Unit, m, k, 1, v, ldv, work, ldwork)
			for i := 0; i < m; i++ {
				for j := 0; j < k; j++ {
					c[i*ldc+j] -= work[i*ldwork+j]
				}
			}
			return
		}
		// direct == lapack.Backward.
		// V = (V1)   V2 is k×k unit upper triangular.
		//     (V2)
		if side == blas.Left {
			// W = Cᵀ * V = C1ᵀ*V1 + C2ᵀ*V2, an n×k matrix.
			for j := 0; j < k; j++ {
				bi.Dcopy(n, c[(m-k+j)*ldc:], 1, work[j:], ldwork)
			}
			bi.Dtrmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, n, k, 1, v[(m-k)*ldv:], ldv, work, ldwork)
			if m > k {
				bi.Dgemm(blas.Trans, blas.NoTrans, n, k, m-k, 1, c, ldc, v, ldv, 1, work, ldwork)
			}
			bi.Dtrmm(blas.Right, blas.Lower, transT, blas.NonUnit, n, k, 1, t, ldt, work, ldwork)
			// C -= V * Wᵀ.
			if m > k {
				bi.Dgemm(blas.NoTrans, blas.Trans, m-k, n, k, -1, v, ldv, work, ldwork, 1, c, ldc)
			}
			bi.Dtrmm(blas.Right, blas.Upper, blas.Trans, blas.Unit, n, k, 1, v[(m-k)*ldv:], ldv, work, ldwork)
			for j := 0; j < k; j++ {
				for i := 0; i < n; i++ {
					c[(m-k+j)*ldc+i] -= work[i*ldwork+j]
				}
			}
			return
		}
		// side == blas.Right.
		// W = C * V = C1*V1 + C2*V2, an m×k matrix.
		for j := 0; j < k; j++ {
			bi.Dcopy(m, c[n-k+j:], ldc, work[j:], ldwork)
		}
		bi.Dtrmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, m, k, 1, v[(n-k)*ldv:], ldv, work, ldwork)
		if n > k {
			bi.Dgemm(blas.NoTrans, blas.NoTrans, m, k, n-k, 1, c, ldc, v, ldv, 1, work, ldwork)
		}
		bi.Dtrmm(blas.Right, blas.Lower, trans, blas.NonUnit, m, k, 1, t, ldt, work, ldwork)
		// C -= W * Vᵀ.
		if n > k {
			bi.Dgemm(blas.NoTrans, blas.Trans, m, n-k, k, -1, work, ldwork, v, ldv, 1, c, ldc)
		}
		bi.Dtrmm(blas.Right, blas.Upper, blas.Trans, blas.Unit, m, k, 1, v[(n-k)*ldv:], ldv, work, ldwork)
		for i := 0; i < m; i++ {
			for j := 0; j < k; j++ {
				c[i*ldc+n-k+j] -= work[i*ldwork+j]
			}
		}
		return
	}

	// store == lapack.RowWise.
	if direct == lapack.Forward {
		// V = (V1 V2)   V1 is k×k unit upper triangular.
		if side == blas.Left {
			// W = Cᵀ * Vᵀ = C1ᵀ*V1ᵀ + C2ᵀ*V2ᵀ, an n×k matrix.
			for j := 0; j < k; j++ {
				bi.Dcopy(n, c[j*ldc:], 1, work[j:], ldwork)
			}
			bi.Dtrmm(blas.Right, blas.Upper, blas.Trans, blas.Unit, n, k, 1, v, ldv, work, ldwork)
			if m > k {
				bi.Dgemm(blas.Trans, blas.Trans, n, k, m-k, 1, c[k*ldc:], ldc, v[k:], ldv, 1, work, ldwork)
			}
			bi.Dtrmm(blas.Right, blas.Upper, transT, blas.NonUnit, n, k, 1, t, ldt, work, ldwork)
			// C -= Vᵀ * Wᵀ.
			if m > k {
				bi.Dgemm(blas.Trans, blas.Trans, m-k, n, k, -1, v[k:], ldv, work, ldwork, 1, c[k*ldc:], ldc)
			}
			bi.Dtrmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, n, k, 1, v, ldv, work, ldwork)
			for j := 0; j < k; j++ {
				for i := 0; i < n; i++ {
					c[j*ldc+i] -= work[i*ldwork+j]
				}
			}
			return
		}
		// side == blas.Right.
		// W = C * Vᵀ = C1*V1ᵀ + C2*V2ᵀ, an m×k matrix.
		for j := 0; j < k; j++ {
			bi.Dcopy(m, c[j:], ldc, work[j:], ldwork)
		}
		bi.Dtrmm(blas.Right, blas.Upper, blas.Trans, blas.Unit, m, k, 1, v, ldv, work, ldwork)
		if n > k {
			bi.Dgemm(blas.NoTrans, blas.Trans, m, k, n-k, 1, c[k:], ldc, v[k:], ldv, 1, work, ldwork)
		}
		bi.Dtrmm(blas.Right, blas.Upper, trans, blas.NonUnit, m, k, 1, t, ldt, work, ldwork)
		// C -= W * V.
		if n > k {
			bi.Dgemm(blas.NoTrans, blas.NoTrans, m, n-k, k, -1, work, ldwork, v[k:], ldv, 1, c[k:], ldc)
		}
		bi.Dtrmm(blas.Right, blas.Upper, blas.NoTrans, blas.Unit, m, k, 1, v, ldv, work, ldwork)
		for i := 0; i < m; i++ {
			for j := 0; j < k; j++ {
				c[i*ldc+j] -= work[i*ldwork+j]
			}
		}
		return
	}
	// direct == lapack.Backward.
	// V = (V1 V2)   V2 is k×k unit lower triangular.
	if side == blas.Left {
		// W = Cᵀ * Vᵀ = C1ᵀ*V1ᵀ + C2ᵀ*V2ᵀ, an n×k matrix.
		for j := 0; j < k; j++ {
			bi.Dcopy(n, c[(m-k+j)*ldc:], 1, work[j:], ldwork)
		}
		bi.Dtrmm(blas.Right, blas.Lower, blas.Trans, blas.Unit, n, k, 1, v[m-k:], ldv, work, ldwork)
		if m > k {
			bi.Dgemm(blas.Trans, blas.Trans, n, k, m-k, 1, c, ldc, v, ldv, 1, work, ldwork)
		}
		bi.Dtrmm(blas.Right, blas.Lower, transT, blas.NonUnit, n, k, 1, t, ldt, work, ldwork)
		// C -= Vᵀ * Wᵀ.
		if m > k {
			bi.Dgemm(blas.Trans, blas.Trans, m-k, n, k, -1, v, ldv, work, ldwork, 1, c, ldc)
		}
		bi.Dtrmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, n, k, 1, v[m-k:], ldv, work, ldwork)
		for j := 0; j < k; j++ {
			for i := 0; i < n; i++ {
				c[(m-k+j)*ldc+i] -= work[i*ldwork+j]
			}
		}
		return
	}
	// side == blas.Right.
	// W = C * Vᵀ = C1*V1ᵀ + C2*V2ᵀ, an m×k matrix.
	for j := 0; j < k; j++ {
		bi.Dcopy(m, c[n-k+j:], ldc, work[j:], ldwork)
	}
	bi.Dtrmm(blas.Right, blas.Lower, blas.Trans, blas.Unit, m, k, 1, v[n-k:], ldv, work, ldwork)
	if n > k {
		bi.Dgemm(blas.NoTrans, blas.Trans, m, k, n-k, 1, c, ldc, v, ldv, 1, work, ldwork)
	}
	bi.Dtrmm(blas.Right, blas.Lower, trans, blas.NonUnit, m, k, 1, t, ldt, work, ldwork)
	// C -= W * V.
	if n > k {
		bi.Dgemm(blas.NoTrans, blas.NoTrans, m, n-k, k, -1, work, ldwork, v, ldv, 1, c, ldc)
	}
	bi.Dtrmm(blas.Right, blas.Lower, blas.NoTrans, blas.Unit, m, k, 1, v[n-k:], ldv, work, ldwork)
	for i := 0; i < m; i++ {
		for j := 0; j < k; j++ {
			c[i*ldc+n-k+j] -= work[i*ldwork+j]
		}
	}
}
