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

type Dlarfer interface {
	Dlarf(side blas.Side, m, n int, v []float64, incv int, tau float64, c []float64, ldc int, work []float64)
}

func DlarfTest(t *testing.T, impl Dlarfer) {
	const tol = 1e-13
	rnd := rand.New(rand.NewPCG(1, 1))
	for c, test := range []struct {
		m, n, ldc    int
		side         blas.Side
		tau          float64
		trailingZero int
	}{
		{1, 1, 0, blas.Left, 0.5, 0},
		{3, 1, 0, blas.Left, 0.5, 0},
		{1, 3, 0, blas.Right, 2, 0},
		{4, 3, 0, blas.Left, 1.5, 0},
		{4, 3, 0, blas.Right, 1.5, 0},
		{5, 5, 0, blas.Left, -0.5, 0},
		{5, 5, 0, blas.Right, -0.5, 0},
		{7, 5, 11, blas.Left, 0.7, 2},
		{7, 5, 11, blas.Right, 0.7, 2},
		{10, 12, 0, blas.Left, 1, 4},
		{10, 12, 0, blas.Right, 1, 4},
		{6, 9, 0, blas.Left, 0, 0},
		{6, 9, 0, blas.Right, 0, 0},
	} {
		m := test.m
		n := test.n
		ldc := test.ldc
		if ldc == 0 {
			ldc = n
		}
		lenV := n
		if test.side == blas.Left {
			lenV = m
		}

		v := make([]float64, lenV)
		for i := range v {
			v[i] = rnd.NormFloat64()
		}
		// A trailing zero run in v exercises the shortened update.
		for i := lenV - test.trailingZero; i < lenV; i++ {
			v[i] = 0
		}

		cMat := randomGeneral(m, n, ldc, rnd)
		want := cloneGeneral(cMat)

		work := make([]float64, max(m, n))
		impl.Dlarf(test.side, m, n, v, 1, test.tau, cMat.Data, cMat.Stride, work)

		// Compute the expected result explicitly,
		// H = I - tau * v * vᵀ applied from the given side.
		vVec := blas64.Vector{N: lenV, Inc: 1, Data: v}
		h := eye(lenV, lenV)
		blas64.Ger(-test.tau, vVec, vVec, h)
		src := cloneGeneral(want)
		if test.side == blas.Left {
			blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, h, src, 0, want)
		} else {
			blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, src, h, 0, want)
		}

		if !equalApproxGeneral(cMat, want, tol) {
			t.Errorf("Case %v (side=%v): unexpected result", c, test.side)
		}
	}
}
