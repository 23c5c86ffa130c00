// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/floats"
)

type Dgelqfer interface {
	Dgelq2er
	Dgelqf(m, n int, a []float64, lda int, tau, work []float64, lwork int)
}

func DgelqfTest(t *testing.T, impl Dgelqfer) {
	const tol = 1e-12
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, test := range []struct {
		m, n, lda int
	}{
		{1, 1, 0},
		{2, 2, 0},
		{6, 9, 0},
		{9, 6, 0},
		{12, 30, 0},
		{30, 12, 0},
		{12, 30, 40},
		{40, 40, 0},
		{64, 64, 0},
		{66, 100, 0},
		{100, 66, 0},
		{129, 256, 0},
		{300, 200, 0},
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
		aUnblocked := make([]float64, len(a))
		copy(aUnblocked, a)
		tauUnblocked := make([]float64, k)
		impl.Dgelq2(m, n, aUnblocked, lda, tauUnblocked, make([]float64, m))

		// The optimal work length comes from a workspace query.
		query := make([]float64, 1)
		impl.Dgelqf(m, n, a, lda, nil, query, -1)
		lworkOpt := int(query[0])

		for _, wl := range []worklen{minimumWork, mediumWork, optimumWork} {
			aBlocked := make([]float64, len(a))
			copy(aBlocked, a)
			tau := make([]float64, k)

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

			impl.Dgelqf(m, n, aBlocked, lda, tau, work, lwork)

			// The blocked and unblocked paths apply the same
			// reflectors, so the outputs must agree exactly up
			// to roundoff.
			if !floats.EqualApprox(aBlocked, aUnblocked, tol) {
				t.Errorf("m=%d n=%d lda=%d work=%v: unexpected factored A", m, n, lda, wl)
			}
			if !floats.EqualApprox(tau, tauUnblocked, tol) {
				t.Errorf("m=%d n=%d lda=%d work=%v: unexpected tau", m, n, lda, wl)
			}
		}
	}
}
