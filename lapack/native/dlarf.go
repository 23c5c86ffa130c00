// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Dlarf applies an elementary reflector to the m×n matrix C,
//
//	C = (I - tau * v * vᵀ) * C  if side == blas.Left,
//	C = C * (I - tau * v * vᵀ)  if side == blas.Right.
//
// v is a vector of length m when side == blas.Left and of length n when
// side == blas.Right. Only C is modified. If tau is zero the reflector is
// the identity and C is left untouched; the trailing zero structure of v is
// also exploited to shorten the update.
//
// work must have length at least n when side == blas.Left and at least m
// when side == blas.Right.
//
// Dlarf is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dlarf(side blas.Side, m, n int, v []float64, incv int, tau float64, c []float64, ldc int, work []float64) {
	switch {
	case side != blas.Left && side != blas.Right:
		panic(badSide)
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case incv == 0:
		panic(zeroIncV)
	case ldc < max(1, n):
		panic(badLdC)
	}

	if m == 0 || n == 0 {
		return
	}

	applyleft := side == blas.Left
	lenV := n
	if applyleft {
		lenV = m
	}

	switch {
	case len(v) < 1+(lenV-1)*abs(incv):
		panic(shortV)
	case len(c) < (m-1)*ldc+n:
		panic(shortC)
	case applyleft && len(work) < n:
		panic(shortWork)
	case !applyleft && len(work) < m:
		panic(shortWork)
	}

	lastv := -1 // Index of the last non-zero element of v.
	lastc := -1 // Index of the last non-zero row or column of C.
	if tau != 0 {
		if applyleft {
			lastv = m - 1
		} else {
			lastv = n - 1
		}
		var i int
		if incv > 0 {
			i = lastv * incv
		}
		// Look for the last non-zero element in v.
		for lastv >= 0 && v[i] == 0 {
			lastv--
			i -= incv
		}
		if applyleft {
			// Scan for the last non-zero column in C[0:lastv+1, :].
			lastc = impl.Iladlc(lastv+1, n, c, ldc)
		} else {
			// Scan for the last non-zero row in C[:, 0:lastv+1].
			lastc = impl.Iladlr(m, lastv+1, c, ldc)
		}
	}
	if lastv == -1 || lastc == -1 {
		return
	}
	bi := blas64.Implementation()
	if applyleft {
		// Form H * C.
		// w[0:lastc+1] = Cᵀ[0:lastv+1, 0:lastc+1] * v[0:lastv+1]
		bi.Dgemv(blas.Trans, lastv+1, lastc+1, 1, c, ldc, v, incv, 0, work, 1)
		// C[0:lastv+1, 0:lastc+1] -= tau * v[0:lastv+1] * wᵀ[0:lastc+1]
		bi.Dger(lastv+1, lastc+1, -tau, v, incv, work, 1, c, ldc)
	} else {
		// Form C * H.
		// w[0:lastc+1] = C[0:lastc+1, 0:lastv+1] * v[0:lastv+1]
		bi.Dgemv(blas.NoTrans, lastc+1, lastv+1, 1, c, ldc, v, incv, 0, work, 1)
		// C[0:lastc+1, 0:lastv+1] -= tau * w[0:lastc+1] * vᵀ[0:lastv+1]
		bi.Dger(lastc+1, lastv+1, -tau, work, 1, v, incv, c, ldc)
	}
}
