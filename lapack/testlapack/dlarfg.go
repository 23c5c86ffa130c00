// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

type Dlarfger interface {
	Dlarfg(n int, alpha float64, x []float64, incX int) (beta, tau float64)
}

func DlarfgTest(t *testing.T, impl Dlarfger) {
	const tol = 1e-13
	rnd := rand.New(rand.NewPCG(1, 1))
	for c, test := range []struct {
		n     int
		alpha float64
		tiny  bool
	}{
		{0, 2, false},
		{1, 3, false},
		{2, 1, false},
		{2, 0, false},
		{3, -1.5, false},
		{4, 0.5, false},
		{10, 2, false},
		{10, -3, false},
		{50, 1, false},
		{4, 1, true},
		{10, -1, true},
	} {
		n := test.n
		alpha := test.alpha
		scale := 1.0
		if test.tiny {
			// Force the underflow-guarded rescaling path.
			scale = 0x1p-1060
			alpha *= scale
		}
		x := make([]float64, max(0, n-1))
		for i := range x {
			x[i] = scale * rnd.NormFloat64()
		}
		xCopy := make([]float64, len(x))
		copy(xCopy, x)

		beta, tau := impl.Dlarfg(n, alpha, x, 1)

		if n <= 1 {
			if tau != 0 {
				t.Errorf("Case %v: expected tau == 0 for n <= 1, got %v", c, tau)
			}
			if beta != alpha {
				t.Errorf("Case %v: expected beta == alpha for n <= 1, got %v", c, beta)
			}
			continue
		}

		// Construct H = I - tau * (1; v) * (1 vᵀ) explicitly and check
		// that H * (alpha; x) == (beta; 0) and that H is orthogonal.
		v := make([]float64, n)
		v[0] = 1
		copy(v[1:], x)
		vVec := blas64.Vector{N: n, Inc: 1, Data: v}
		h := eye(n, n)
		blas64.Ger(-tau, vVec, vVec, h)

		if !isOrthogonal(h) {
			t.Errorf("Case %v: H not orthogonal", c)
		}

		in := blas64.Vector{N: n, Inc: 1, Data: make([]float64, n)}
		in.Data[0] = alpha
		copy(in.Data[1:], xCopy)
		out := blas64.Vector{N: n, Inc: 1, Data: make([]float64, n)}
		blas64.Gemv(blas.NoTrans, 1, h, in, 0, out)

		nrm := blas64.Nrm2(in)
		if math.Abs(out.Data[0]-beta) > tol*math.Max(1, nrm) {
			t.Errorf("Case %v: first element mismatch, got %v, want %v", c, out.Data[0], beta)
		}
		for i := 1; i < n; i++ {
			if math.Abs(out.Data[i]) > tol*math.Max(1, nrm) {
				t.Errorf("Case %v: element %v not annihilated, got %v", c, i, out.Data[i])
			}
		}
	}
}
