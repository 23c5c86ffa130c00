// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math"
	"math/rand/v2"
	"testing"
)

type Dlapy2er interface {
	Dlapy2(x, y float64) float64
}

func Dlapy2Test(t *testing.T, impl Dlapy2er) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 10; i++ {
		// Construct a case where x^2 and y^2 would overflow.
		x := math.Abs(rnd.NormFloat64()) * math.Pow(10, 200)
		y := math.Abs(rnd.NormFloat64()) * math.Pow(10, 200)
		got := impl.Dlapy2(x, y)
		if math.IsInf(got, 0) || math.IsNaN(got) {
			t.Errorf("unexpected overflow for x=%v y=%v", x, y)
		}
		want := math.Max(x, y) * math.Sqrt(1+(math.Min(x, y)/math.Max(x, y))*(math.Min(x, y)/math.Max(x, y)))
		if math.Abs(got-want) > 1e-10*want {
			t.Errorf("x=%v y=%v: got %v, want %v", x, y, got, want)
		}
	}
}
