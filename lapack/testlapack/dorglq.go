// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/floats"
)

type Dorglqer interface {
	Dorgl2er
	Dorglq(m, n, k int, a []float64, lda int, tau, work []float64, lwork int)
}

func DorglqTest(t *testing.T, impl Dorglqer) {
	const tol = 1e-12
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, test := range []struct {
		m, n, k, lda int
	}{
		{1, 1, 1, 0},
		{2, 2, 2, 0},
		{3, 5, 3, 0},
		{3, 5, 2, 0},
		{5, 5, 5, 0},
		{30, 40, 30, 0},
		{30, 40, 20, 0},
		{64, 64, 64, 0},
		{64, 100, 50, 0},
		{100, 129, 100, 0},
		{100, 129, 100, 140},
	} {
		m := test.m
		n := test.n
		k := test.k
		lda := test.lda
		if lda == 0 {
			lda = n
		}

		a := make([]float64, m*lda)
		for i := range a {
			a[i] = rnd.NormFloat64()
		}
		tau := make([]float64, min(m, n))
		impl.Dgelqf(m, n, a, lda, tau, make([]float64, m), m)

		aUnblocked := make([]float64, len(a))
		copy(aUnblocked, a)
		impl.Dorgl2(m, n, k, aUnblocked, lda, tau[:k], make([]float64, m))

		query := make([]float64, 1)
		impl.Dorglq(m, n, k, a, lda, tau[:k], query, -1)
		lworkOpt := int(query[0])

		for _, wl := range []worklen{minimumWork, mediumWork, optimumWork} {
			aBlocked := make([]float64, len(a))
			copy(aBlocked, a)

			var lwork int
			switch wl {
			case minimumWork:
				lwork = m
			case mediumWork:
				lwork = (m + lworkOpt) / 2
			case optimumWork:
				lwork = lworkOpt
			}
			work := make([]float64, lwork)
			for i := range work {
				work[i] = rnd.Float64()
			}

			impl.Dorglq(m, n, k, aBlocked, lda, tau[:k], work, lwork)

			if !floats.EqualApprox(aBlocked, aUnblocked, tol) {
				t.Errorf("m=%d n=%d k=%d lda=%d work=%v: unexpected Q", m, n, k, lda, wl)
			}
		}
	}
}
