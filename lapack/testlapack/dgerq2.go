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

type Dgerq2er interface {
	Dgerq2(m, n int, a []float64, lda int, tau, work []float64)
}

func Dgerq2Test(t *testing.T, impl Dgerq2er) {
	const tol = 1e-13
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, test := range []struct {
		m, n, lda int
	}{
		{1, 1, 0},
		{2, 2, 0},
		{3, 2, 0},
		{2, 3, 0},
		{1, 12, 0},
		{2, 4, 0},
		{3, 13, 0},
		{4, 4, 0},
		{12, 12, 0},
		{20, 4, 0},
		{4, 20, 0},
		{12, 30, 0},
		{8, 12, 15},
	} {
		m := test.m
		n := test.n
		lda := test.lda
		if lda == 0 {
			lda = n
		}
		k := min(m, n)

		a := make([]float64, m*lda)
		for i := range a {
			a[i] = rnd.NormFloat64()
		}
		aCopy := make([]float64, len(a))
		copy(aCopy, a)

		tau := make([]float64, k)
		work := make([]float64, m)
		impl.Dgerq2(m, n, a, lda, tau, work)

		checkRQFactorization(t, m, n, a, lda, tau, aCopy, tol)
	}
}

// checkRQFactorization verifies that the factored a and tau reconstruct
// the original matrix stored in aCopy, and that Q is orthonormal.
//
// On return from an RQ factorization the upper trapezoid holds R: row i
// of R occupies columns n-m+i and up when n >= m, and rows m-n..m-1
// form an upper triangle in the last n columns otherwise.
func checkRQFactorization(t *testing.T, m, n int, a []float64, lda int, tau, aCopy []float64, tol float64) {
	t.Helper()
	q := constructQ("RQ", m, n, a, lda, tau)
	if !isOrthogonal(q) {
		t.Errorf("m=%d n=%d: Q is not orthogonal", m, n)
	}
	r := blas64.General{
		Rows:   m,
		Cols:   n,
		Stride: n,
		Data:   make([]float64, m*n),
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if j >= i+n-m {
				r.Data[i*r.Stride+j] = a[i*lda+j]
			}
		}
	}
	got := nanGeneral(m, n, n)
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, r, q, 0, got)
	want := blas64.General{Rows: m, Cols: n, Stride: lda, Data: aCopy}
	if !equalApproxGeneral(got, want, tol) {
		t.Errorf("m=%d n=%d: R*Q does not reconstruct A", m, n)
	}
}
