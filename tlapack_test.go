// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tlapack

import (
	"errors"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// reflectorQ builds the full n×n orthogonal factor from the reflectors left
// in a and tau by an LQ or RQ factorization of an m×n matrix.
func reflectorQ(kind string, m, n int, a *mat.Dense, tau []float64) *mat.Dense {
	k := min(m, n)
	q := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		q.Set(i, i, 1)
	}
	v := make([]float64, n)
	h := mat.NewDense(n, n, nil)
	for i := 0; i < k; i++ {
		for j := range v {
			v[j] = 0
		}
		switch kind {
		case "LQ":
			v[i] = 1
			for j := i + 1; j < n; j++ {
				v[j] = a.At(i, j)
			}
		case "RQ":
			for j := 0; j < n-k+i; j++ {
				v[j] = a.At(m-k+i, j)
			}
			v[n-k+i] = 1
		}
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				hrc := -tau[i] * v[r] * v[c]
				if r == c {
					hrc++
				}
				h.Set(r, c, hrc)
			}
		}
		if kind == "LQ" {
			q.Mul(h, q)
		} else {
			q.Mul(q, h)
		}
	}
	return q
}

func isOrthogonal(q *mat.Dense) bool {
	n, _ := q.Dims()
	var prod mat.Dense
	prod.Mul(q, q.T())
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}
	return mat.EqualApprox(&prod, id, 1e-12)
}

func randomDense(m, n int, rnd *rand.Rand) *mat.Dense {
	a := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, j, rnd.NormFloat64())
		}
	}
	return a
}

func TestLQ(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, size := range [][2]int{
		{1, 1}, {2, 4}, {4, 4}, {5, 3}, {8, 8}, {12, 30}, {30, 12}, {64, 100},
	} {
		m, n := size[0], size[1]
		a := randomDense(m, n, rnd)
		want := mat.DenseCopyOf(a)

		tau := make([]float64, min(m, n))
		if err := LQ(a, tau, nil, nil); err != nil {
			t.Fatalf("m=%d n=%d: unexpected error: %v", m, n, err)
		}

		l := mat.NewDense(m, n, nil)
		for i := 0; i < m; i++ {
			for j := 0; j <= min(i, n-1); j++ {
				l.Set(i, j, a.At(i, j))
			}
		}
		q := reflectorQ("LQ", m, n, a, tau)
		if !isOrthogonal(q) {
			t.Errorf("m=%d n=%d: Q is not orthogonal", m, n)
		}
		var got mat.Dense
		got.Mul(l, q)
		if !mat.EqualApprox(&got, want, 1e-12) {
			t.Errorf("m=%d n=%d: L*Q does not reconstruct A", m, n)
		}
	}
}

func TestLQKnown(t *testing.T) {
	a := mat.NewDense(2, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})
	want := mat.DenseCopyOf(a)
	tau := make([]float64, 2)
	if err := LQ(a, tau, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// L must be lower triangular with a nonzero diagonal for this
	// full-rank input.
	for i := 0; i < 2; i++ {
		if a.At(i, i) == 0 {
			t.Errorf("L[%d,%d] is zero", i, i)
		}
	}
	l := mat.NewDense(2, 4, nil)
	l.Set(0, 0, a.At(0, 0))
	l.Set(1, 0, a.At(1, 0))
	l.Set(1, 1, a.At(1, 1))
	q := reflectorQ("LQ", 2, 4, a, tau)
	var got mat.Dense
	got.Mul(l, q)
	if !mat.EqualApprox(&got, want, 1e-12) {
		t.Error("L*Q does not reconstruct A")
	}
}

func TestRQ(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, size := range [][2]int{
		{1, 1}, {2, 4}, {4, 4}, {5, 3}, {8, 8}, {12, 30}, {30, 12}, {64, 100},
	} {
		m, n := size[0], size[1]
		a := randomDense(m, n, rnd)
		want := mat.DenseCopyOf(a)

		tau := make([]float64, min(m, n))
		if err := RQ(a, tau, nil, nil); err != nil {
			t.Fatalf("m=%d n=%d: unexpected error: %v", m, n, err)
		}

		r := mat.NewDense(m, n, nil)
		for i := 0; i < m; i++ {
			for j := max(0, i+n-m); j < n; j++ {
				r.Set(i, j, a.At(i, j))
			}
		}
		q := reflectorQ("RQ", m, n, a, tau)
		if !isOrthogonal(q) {
			t.Errorf("m=%d n=%d: Q is not orthogonal", m, n)
		}
		var got mat.Dense
		got.Mul(r, q)
		if !mat.EqualApprox(&got, want, 1e-12) {
			t.Errorf("m=%d n=%d: R*Q does not reconstruct A", m, n)
		}
	}
}

func TestBlockSizes(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	const m, n = 16, 16
	orig := randomDense(m, n, rnd)

	baseA := mat.DenseCopyOf(orig)
	baseTau := make([]float64, m)
	if err := LQ(baseA, baseTau, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Any block size must produce the same factorization up to roundoff.
	for _, nb := range []int{1, 2, 3, 7, 32, 100} {
		a := mat.DenseCopyOf(orig)
		tau := make([]float64, m)
		opts := &Opts{BlockSize: nb}
		wi, err := LQWorksize(m, n, opts)
		if err != nil {
			t.Fatalf("nb=%d: unexpected worksize error: %v", nb, err)
		}
		work := make([]float64, wi.Len())
		if err := LQ(a, tau, work, opts); err != nil {
			t.Fatalf("nb=%d: unexpected error: %v", nb, err)
		}
		if !mat.EqualApprox(a, baseA, 1e-13) {
			t.Errorf("nb=%d: factored A differs from default", nb)
		}
	}
}

func TestWorksize(t *testing.T) {
	for _, size := range [][2]int{
		{0, 0}, {0, 5}, {5, 0}, {1, 1}, {4, 7}, {100, 50}, {50, 100},
	} {
		m, n := size[0], size[1]
		wi, err := LQWorksize(m, n, nil)
		if err != nil {
			t.Fatalf("m=%d n=%d: unexpected error: %v", m, n, err)
		}
		if wi.Len() < 1 {
			t.Errorf("m=%d n=%d: workspace length %d < 1", m, n, wi.Len())
		}
		if wi.Rows < max(1, m) {
			t.Errorf("m=%d n=%d: workspace rows %d < %d", m, n, wi.Rows, max(1, m))
		}
		// The query is deterministic.
		wi2, _ := LQWorksize(m, n, nil)
		if wi != wi2 {
			t.Errorf("m=%d n=%d: repeated query disagrees", m, n)
		}
		rwi, err := RQWorksize(m, n, nil)
		if err != nil {
			t.Fatalf("m=%d n=%d: unexpected error: %v", m, n, err)
		}
		if rwi != wi {
			t.Errorf("m=%d n=%d: LQ and RQ worksizes disagree", m, n)
		}
	}

	if _, err := LQWorksize(-1, 3, nil); !errors.Is(err, ErrShape) {
		t.Errorf("negative m: got %v, want ErrShape", err)
	}
	if _, err := LQWorksize(3, -1, nil); !errors.Is(err, ErrShape) {
		t.Errorf("negative n: got %v, want ErrShape", err)
	}
	if _, err := LQWorksize(3, 3, &Opts{BlockSize: -1}); !errors.Is(err, ErrBlockSize) {
		t.Errorf("negative block size: got %v, want ErrBlockSize", err)
	}
}

func TestEmptyMatrix(t *testing.T) {
	// A zero-dimension matrix is a valid no-op input.
	var a mat.Dense
	if err := LQ(&a, nil, nil, nil); err != nil {
		t.Errorf("LQ: unexpected error: %v", err)
	}
	if err := RQ(&a, nil, nil, nil); err != nil {
		t.Errorf("RQ: unexpected error: %v", err)
	}
}

func TestFactorizeErrors(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 1))
	orig := randomDense(4, 6, rnd)

	for _, fn := range []struct {
		name string
		call func(a *mat.Dense, tau, work []float64, opts *Opts) error
	}{
		{"LQ", LQ},
		{"RQ", RQ},
	} {
		a := mat.DenseCopyOf(orig)
		tau := make([]float64, 3)
		err := fn.call(a, tau, nil, nil)
		if !errors.Is(err, ErrShortTau) {
			t.Errorf("%s: short tau: got %v, want ErrShortTau", fn.name, err)
		}
		if !mat.Equal(a, orig) {
			t.Errorf("%s: A modified on error return", fn.name)
		}

		a = mat.DenseCopyOf(orig)
		tau = make([]float64, 4)
		err = fn.call(a, tau, make([]float64, 1), nil)
		if !errors.Is(err, ErrShortWork) {
			t.Errorf("%s: short work: got %v, want ErrShortWork", fn.name, err)
		}
		if !mat.Equal(a, orig) {
			t.Errorf("%s: A modified on error return", fn.name)
		}

		a = mat.DenseCopyOf(orig)
		err = fn.call(a, tau, nil, &Opts{BlockSize: -2})
		if !errors.Is(err, ErrBlockSize) {
			t.Errorf("%s: bad block size: got %v, want ErrBlockSize", fn.name, err)
		}
		if !mat.Equal(a, orig) {
			t.Errorf("%s: A modified on error return", fn.name)
		}
	}
}
