// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/lapack"
)

type Dlanger interface {
	Dlange(norm lapack.MatrixNorm, m, n int, a []float64, lda int, work []float64) float64
}

func DlangeTest(t *testing.T, impl Dlanger) {
	const tol = 1e-14
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, test := range []struct {
		m, n, lda int
	}{
		{1, 1, 0},
		{3, 3, 0},
		{5, 2, 0},
		{2, 5, 0},
		{10, 10, 15},
	} {
		m := test.m
		n := test.n
		lda := test.lda
		if lda == 0 {
			lda = n
		}
		a := make([]float64, m*lda)
		for i := range a {
			a[i] = rnd.NormFloat64()
		}
		work := make([]float64, n)

		var maxAbs float64
		colSums := make([]float64, n)
		rowSums := make([]float64, m)
		var frob float64
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				v := math.Abs(a[i*lda+j])
				maxAbs = math.Max(maxAbs, v)
				colSums[j] += v
				rowSums[i] += v
				frob = math.Hypot(frob, v)
			}
		}
		var maxCol, maxRow float64
		for _, v := range colSums {
			maxCol = math.Max(maxCol, v)
		}
		for _, v := range rowSums {
			maxRow = math.Max(maxRow, v)
		}

		for _, c := range []struct {
			norm lapack.MatrixNorm
			want float64
		}{
			{lapack.MaxAbs, maxAbs},
			{lapack.MaxColumnSum, maxCol},
			{lapack.MaxRowSum, maxRow},
			{lapack.Frobenius, frob},
		} {
			got := impl.Dlange(c.norm, m, n, a, lda, work)
			if math.Abs(got-c.want) > tol*math.Max(1, c.want) {
				t.Errorf("norm=%c m=%d n=%d: got %v, want %v", c.norm, m, n, got, c.want)
			}
		}
	}
}
