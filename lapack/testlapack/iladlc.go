// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import "testing"

type Iladlcer interface {
	Iladlc(m, n int, a []float64, lda int) int
}

func IladlcTest(t *testing.T, impl Iladlcer) {
	for i, test := range []struct {
		m, n, lda int
		a         []float64
		want      int
	}{
		{0, 0, 1, nil, -1},
		{2, 1, 1, []float64{0, 0}, -1},
		{2, 1, 1, []float64{0, 3}, 0},
		{2, 3, 3, []float64{1, 0, 0, 2, 0, 0}, 0},
		{2, 3, 3, []float64{1, 0, 0, 2, 4, 0}, 1},
		{2, 3, 3, []float64{1, 0, 5, 2, 4, 0}, 2},
		{2, 2, 3, []float64{0, 0, 6, 0, 0, 6}, -1},
	} {
		got := impl.Iladlc(test.m, test.n, test.a, test.lda)
		if got != test.want {
			t.Errorf("case %d: got %d, want %d", i, got, test.want)
		}
	}
}
