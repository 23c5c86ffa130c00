// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math/rand/v2"
	"testing"
)

type Dorgl2er interface {
	Dgelqfer
	Dorgl2(m, n, k int, a []float64, lda int, tau, work []float64)
}

func Dorgl2Test(t *testing.T, impl Dorgl2er) {
	const tol = 1e-13
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, test := range []struct {
		m, n, k, lda int
	}{
		{1, 1, 1, 0},
		{2, 2, 1, 0},
		{2, 2, 2, 0},
		{3, 5, 3, 0},
		{3, 5, 2, 0},
		{5, 5, 5, 0},
		{5, 5, 3, 0},
		{7, 10, 7, 0},
		{7, 10, 4, 0},
		{7, 10, 7, 20},
	} {
		m := test.m
		n := test.n
		k := test.k
		lda := test.lda
		if lda == 0 {
			lda = n
		}

		// Factor a random matrix to obtain k genuine reflectors.
		a := make([]float64, m*lda)
		for i := range a {
			a[i] = rnd.NormFloat64()
		}
		tau := make([]float64, min(m, n))
		work := make([]float64, m)
		impl.Dgelq2(m, n, a, lda, tau, work)

		// The first k rows of the factored matrix hold exactly the k
		// reflectors that define Q.
		q := constructQ("LQ", k, n, a, lda, tau[:k])

		impl.Dorgl2(m, n, k, a, lda, tau[:k], work)

		// The first m rows of Q must land in a.
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				if diff := a[i*lda+j] - q.Data[i*q.Stride+j]; diff < -tol || diff > tol {
					t.Errorf("m=%d n=%d k=%d: unexpected Q[%d,%d]", m, n, k, i, j)
				}
			}
		}
		qa := nanGeneral(m, n, n)
		for i := 0; i < m; i++ {
			copy(qa.Data[i*qa.Stride:i*qa.Stride+n], a[i*lda:i*lda+n])
		}
		if !isOrthogonal(qa) {
			t.Errorf("m=%d n=%d k=%d: rows of Q are not orthonormal", m, n, k)
		}
	}
}
