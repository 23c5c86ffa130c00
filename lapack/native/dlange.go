// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
)

// Dlange returns the value of the specified norm of a general m×n matrix A:
//
//	lapack.MaxAbs:       the maximum absolute value of any element.
//	lapack.MaxColumnSum: the maximum column sum of absolute values (1-norm).
//	lapack.MaxRowSum:    the maximum row sum of absolute values (∞-norm).
//	lapack.Frobenius:    the square root of the sum of squares of all elements.
//
// If norm == lapack.MaxColumnSum, work must have length at least n,
// otherwise work is not referenced and may be nil.
//
// Dlange is an internal routine. It is exported for testing purposes.
func (impl Implementation) Dlange(norm lapack.MatrixNorm, m, n int, a []float64, lda int, work []float64) float64 {
	switch {
	case norm != lapack.MaxAbs && norm != lapack.MaxColumnSum && norm != lapack.MaxRowSum && norm != lapack.Frobenius:
		panic(badNorm)
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	}

	if m == 0 || n == 0 {
		return 0
	}

	switch {
	case len(a) < (m-1)*lda+n:
		panic(shortA)
	case norm == lapack.MaxColumnSum && len(work) < n:
		panic(shortWork)
	}

	bi := blas64.Implementation()
	switch norm {
	case lapack.MaxAbs:
		var value float64
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				value = math.Max(value, math.Abs(a[i*lda+j]))
			}
		}
		return value
	case lapack.MaxColumnSum:
		for j := 0; j < n; j++ {
			work[j] = 0
		}
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				work[j] += math.Abs(a[i*lda+j])
			}
		}
		var value float64
		for j := 0; j < n; j++ {
			value = math.Max(value, work[j])
		}
		return value
	case lapack.MaxRowSum:
		var value float64
		for i := 0; i < m; i++ {
			value = math.Max(value, bi.Dasum(n, a[i*lda:], 1))
		}
		return value
	default:
		// lapack.Frobenius
		var value float64
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				value = math.Hypot(value, a[i*lda+j])
			}
		}
		return value
	}
}
