// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testlapack

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
)

type Dlarfber interface {
	Dlarfter
	Dlarfb(side blas.Side, trans blas.Transpose, direct lapack.Direct, store lapack.StoreV, m, n, k int, v []float64, ldv int, t []float64, ldt int, c []float64, ldc int, work []float64, ldwork int)
}

func DlarfbTest(t *testing.T, impl Dlarfber) {
	const tol = 1e-13
	rnd := rand.New(rand.NewPCG(1, 1))
	for _, side := range []blas.Side{blas.Left, blas.Right} {
		for _, trans := range []blas.Transpose{blas.NoTrans, blas.Trans} {
			for _, direct := range []lapack.Direct{lapack.Forward, lapack.Backward} {
				for _, store := range []lapack.StoreV{lapack.ColumnWise, lapack.RowWise} {
					for _, test := range []struct {
						m, n, k, ldc int
					}{
						{1, 1, 1, 0},
						{3, 2, 1, 0},
						{2, 3, 1, 0},
						{4, 4, 2, 0},
						{6, 5, 3, 0},
						{5, 6, 3, 0},
						{8, 8, 4, 11},
						{10, 7, 5, 0},
						{7, 10, 5, 0},
					} {
						m := test.m
						n := test.n
						k := test.k
						// k reflectors act on rows when applied
						// from the left and on columns from the
						// right.
						nv := m
						if side == blas.Right {
							nv = n
						}
						if k > nv {
							continue
						}
						ldc := test.ldc
						if ldc == 0 {
							ldc = n
						}

						v := randBlockV(nv, k, store, direct, rnd)
						tau := make([]float64, k)
						for i := range tau {
							tau[i] = rnd.NormFloat64()
						}
						tMat := nanGeneral(k, k, k)
						impl.Dlarft(direct, store, nv, k, v.Data, v.Stride, tau, tMat.Data, tMat.Stride)

						c := randomGeneral(m, n, ldc, rnd)
						want := cloneGeneral(c)

						// Apply the block reflector through the
						// explicit dense H for reference.
						h := constructH(tau, v, store, direct)
						if trans == blas.Trans {
							hT := nanGeneral(nv, nv, nv)
							for i := 0; i < nv; i++ {
								for j := 0; j < nv; j++ {
									hT.Data[i*hT.Stride+j] = h.Data[j*h.Stride+i]
								}
							}
							h = hT
						}
						src := cloneGeneral(want)
						if side == blas.Left {
							blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, h, src, 0, want)
						} else {
							blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, src, h, 0, want)
						}

						ldwork := k
						var work []float64
						if side == blas.Left {
							work = make([]float64, n*ldwork)
						} else {
							work = make([]float64, m*ldwork)
						}
						impl.Dlarfb(side, trans, direct, store, m, n, k,
							v.Data, v.Stride, tMat.Data, tMat.Stride,
							c.Data, c.Stride, work, ldwork)

						if !equalApproxGeneral(c, want, tol) {
							t.Errorf("side=%c trans=%c direct=%c store=%c m=%d n=%d k=%d: unexpected C",
								side, trans, direct, store, m, n, k)
						}
					}
				}
			}
		}
	}
}
