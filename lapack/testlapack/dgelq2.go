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

type Dgelq2er interface {
	Dgelq2(m, n int, a []float64, lda int, tau, work []float64)
}

func Dgelq2Test(t *testing.T, impl Dgelq2er) {
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
		impl.Dgelq2(m, n, a, lda, tau, work)

		checkLQFactorization(t, m, n, a, lda, tau, aCopy, tol)
	}
}

// checkLQFactorization verifies that the factored a and tau reconstruct
// the original matrix stored in aCopy, and that Q is orthonormal.
func checkLQFactorization(t *testing.T, m, n int, a []float64, lda int, tau, aCopy []float64, tol float64) {
	t.Helper()
	q := constructQ("LQ", m, n, a, lda, tau)
	if !isOrthogonal(q) {
		t.Errorf("m=%d n=%d: Q is not orthogonal", m, n)
	}
	l := blas64.General{
		Rows:   m,
		Cols:   n,
		Stride: n,
		Data:   make([]float64, m*n),
	}
	for i := 0; i < m; i++ {
		for j := 0; j <= min(i, n-1); j++ {
			l.Data[i*l.Stride+j] = a[i*lda+j]
		}
	}
	got := nanGeneral(m, n, n)
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, l, q, 0, got)
	want := blas64.General{Rows: m, Cols: n, Stride: lda, Data: aCopy}
	if !equalApproxGeneral(got, want, tol) {
		t.Errorf("m=%d n=%d: L*Q does not reconstruct A", m, n)
	}
}
