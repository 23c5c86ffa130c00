// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

type Dtzrzfer interface {
	Dlarfger
	Dtzrzf(m, n int, a []float64, lda int, tau, work []float64, lwork int)
}

func DtzrzfTest(t *testing.T, impl Dtzrzfer) {
	const tol = 1e-13
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, test := range []struct {
		m, n, lda int
	}{
		{1, 1, 0},
		{1, 5, 0},
		{2, 2, 0},
		{2, 5, 0},
		{3, 5, 0},
		{3, 10, 0},
		{5, 5, 0},
		{5, 10, 0},
		{5, 20, 0},
		{10, 20, 0},
		{3, 10, 15},
		{5, 10, 15},
	} {
		m := test.m
		n := test.n
		lda := test.lda
		if lda == 0 {
			lda = n
		}

		// Dtzrzf factors an upper trapezoidal matrix.
		aOrig := make([]float64, m*lda)
		for i := 0; i < m; i++ {
			for j := i; j < n; j++ {
				aOrig[i*lda+j] = rnd.NormFloat64()
			}
		}

		a := make([]float64, len(aOrig))
		copy(a, aOrig)
		tau := make([]float64, m)

		// Workspace query.
		query := make([]float64, 1)
		impl.Dtzrzf(m, n, nil, lda, nil, query, -1)
		lwork := int(query[0])
		work := make([]float64, lwork)

		impl.Dtzrzf(m, n, a, lda, tau, work, lwork)

		for i := 0; i < m; i++ {
			for j := 0; j < i; j++ {
				if a[i*lda+j] != 0 {
					t.Errorf("m=%d n=%d: R not upper triangular at (%d,%d)", m, n, i, j)
				}
			}
		}

		// Assemble Z = Z_0 * Z_1 * ... * Z_{m-1}. Reflector i has its
		// unit element at i and its tail in columns [m, n) of row i.
		z := eye(n, n)
		zCopy := cloneGeneral(z)
		v := blas64.Vector{N: n, Inc: 1, Data: make([]float64, n)}
		zi := nanGeneral(n, n, n)
		for i := m - 1; i >= 0; i-- {
			if tau[i] == 0 {
				continue
			}
			for j := range v.Data {
				v.Data[j] = 0
			}
			v.Data[i] = 1
			for j := m; j < n; j++ {
				v.Data[j] = a[i*lda+j]
			}
			copy(zi.Data, eye(n, n).Data)
			blas64.Ger(-tau[i], v, v, zi)
			copy(zCopy.Data, z.Data)
			blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, zi, zCopy, 0, z)
		}

		if !isOrthogonal(z) {
			t.Errorf("m=%d n=%d: Z is not orthogonal", m, n)
		}

		// Verify [R 0] * Z reconstructs the original matrix.
		rMat := blas64.General{Rows: m, Cols: n, Stride: n, Data: make([]float64, m*n)}
		for i := 0; i < m; i++ {
			for j := i; j < m; j++ {
				rMat.Data[i*rMat.Stride+j] = a[i*lda+j]
			}
		}
		got := nanGeneral(m, n, n)
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, rMat, z, 0, got)
		want := blas64.General{Rows: m, Cols: n, Stride: lda, Data: aOrig}
		if !equalApproxGeneral(got, want, tol) {
			t.Errorf("m=%d n=%d: [R 0]*Z does not reconstruct A", m, n)
		}
	}
}
