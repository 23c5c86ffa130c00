// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/lapack"
)

type Dlarfter interface {
	Dlarft(direct lapack.Direct, store lapack.StoreV, n, k int, v []float64, ldv int, tau []float64, t []float64, ldt int)
}

func DlarftTest(t *testing.T, impl Dlarfter) {
	const tol = 1e-13
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, direct := range []lapack.Direct{lapack.Forward, lapack.Backward} {
		for _, store := range []lapack.StoreV{lapack.ColumnWise, lapack.RowWise} {
			for _, test := range []struct {
				n, k, ldt int
			}{
				{1, 1, 0},
				{2, 1, 0},
				{2, 2, 0},
				{5, 1, 0},
				{5, 3, 0},
				{5, 5, 0},
				{10, 4, 0},
				{12, 7, 0},
				{12, 7, 15},
				{20, 15, 0},
			} {
				n := test.n
				k := test.k
				ldt := test.ldt
				if ldt == 0 {
					ldt = k
				}

				v := randBlockV(n, k, store, direct, rnd)
				tau := make([]float64, k)
				for i := range tau {
					tau[i] = rnd.NormFloat64()
				}
				if k > 2 {
					// An identity reflector inside the set must
					// not break the recurrence.
					tau[k/2] = 0
				}

				tMat := nanGeneral(k, k, ldt)
				impl.Dlarft(direct, store, n, k, v.Data, v.Stride, tau, tMat.Data, tMat.Stride)

				// The aggregated representation must match the
				// explicit product of the reflectors.
				got := blockH(v, tMat.Data, tMat.Stride, k, store, direct)
				want := constructH(tau, v, store, direct)
				if !equalApproxGeneral(got, want, tol) {
					t.Errorf("direct=%c store=%c n=%d k=%d ldt=%d: unexpected T",
						direct, store, n, k, ldt)
				}
			}
		}
	}
}
