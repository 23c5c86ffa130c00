// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func DgelqfBenchmark(b *testing.B, impl Dgelqfer) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, m := range []int{10, 50, 100, 200, 500} {
		n := 2 * m
		lda := n
		aOrig := make([]float64, m*lda)
		for i := range aOrig {
			aOrig[i] = rnd.NormFloat64()
		}
		a := make([]float64, len(aOrig))
		tau := make([]float64, m)

		query := make([]float64, 1)
		impl.Dgelqf(m, n, a, lda, tau, query, -1)
		work := make([]float64, int(query[0]))

		b.Run(fmt.Sprintf("m=%d/n=%d", m, n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(a, aOrig)
				b.StartTimer()
				impl.Dgelqf(m, n, a, lda, tau, work, len(work))
			}
		})
	}
}
