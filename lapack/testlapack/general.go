// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testlapack implements a set of testing routines for LAPACK
// functions.
package testlapack

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
)

type worklen int

const (
	minimumWork worklen = iota
	mediumWork
	optimumWork
)

func (wl worklen) String() string {
	switch wl {
	case minimumWork:
		return "minimum"
	case mediumWork:
		return "medium"
	case optimumWork:
		return "optimum"
	}
	return ""
}

// eye returns an identity matrix of the given order and stride.
func eye(n, stride int) blas64.General {
	a := nanGeneral(n, n, stride)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a.Data[i*stride+j] = 0
		}
		a.Data[i*stride+i] = 1
	}
	return a
}

// nanGeneral returns an m×n matrix filled with NaN values.
func nanGeneral(m, n, stride int) blas64.General {
	if m == 0 || n == 0 {
		return blas64.General{Rows: m, Cols: n, Stride: max(1, stride)}
	}
	data := make([]float64, (m-1)*stride+n)
	for i := range data {
		data[i] = math.NaN()
	}
	return blas64.General{
		Rows:   m,
		Cols:   n,
		Stride: stride,
		Data:   data,
	}
}

// randomGeneral returns an m×n matrix with random entries.
func randomGeneral(m, n, stride int, rnd *rand.Rand) blas64.General {
	a := nanGeneral(m, n, stride)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Data[i*stride+j] = rnd.NormFloat64()
		}
	}
	return a
}

// cloneGeneral returns a deep copy of a.
func cloneGeneral(a blas64.General) blas64.General {
	c := a
	c.Data = make([]float64, len(a.Data))
	copy(c.Data, a.Data)
	return c
}

// equalApproxGeneral returns whether the general matrices a and b are
// equal within absolute tolerance tol.
func equalApproxGeneral(a, b blas64.General, tol float64) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		panic("bad input")
	}
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			diff := a.Data[i*a.Stride+j] - b.Data[i*b.Stride+j]
			if math.IsNaN(diff) || math.Abs(diff) > tol {
				return false
			}
		}
	}
	return true
}

// isOrthogonal reports whether the rows of q are orthonormal to within
// tolerance 1e-13.
func isOrthogonal(q blas64.General) bool {
	const tol = 1e-13
	for i := 0; i < q.Rows; i++ {
		ri := blas64.Vector{N: q.Cols, Inc: 1, Data: q.Data[i*q.Stride:]}
		nrm := blas64.Nrm2(ri)
		if math.IsNaN(nrm) || math.Abs(nrm-1) > tol {
			return false
		}
		for j := i + 1; j < q.Rows; j++ {
			rj := blas64.Vector{N: q.Cols, Inc: 1, Data: q.Data[j*q.Stride:]}
			dot := blas64.Dot(ri, rj)
			if math.IsNaN(dot) || math.Abs(dot) > tol {
				return false
			}
		}
	}
	return true
}

// constructQ constructs the orthogonal matrix Q from the compact
// representation left in a and tau by an LQ ("LQ") or RQ ("RQ")
// factorization of an m×n matrix. The returned matrix is n×n.
func constructQ(kind string, m, n int, a []float64, lda int, tau []float64) blas64.General {
	k := min(m, n)
	q := eye(n, n)
	qCopy := cloneGeneral(q)
	v := blas64.Vector{N: n, Inc: 1, Data: make([]float64, n)}
	h := nanGeneral(n, n, n)
	for i := 0; i < k; i++ {
		for j := range v.Data {
			v.Data[j] = 0
		}
		switch kind {
		case "LQ":
			// Reflector i is stored in row i with its unit element
			// on the diagonal.
			v.Data[i] = 1
			for j := i + 1; j < n; j++ {
				v.Data[j] = a[i*lda+j]
			}
		case "RQ":
			// Reflector i is stored in row m-k+i with its unit
			// element at column n-k+i.
			for j := 0; j < n-k+i; j++ {
				v.Data[j] = a[(m-k+i)*lda+j]
			}
			v.Data[n-k+i] = 1
		default:
			panic("bad kind")
		}
		// h = I - tau[i] * v * vᵀ
		copy(h.Data, eye(n, n).Data)
		blas64.Ger(-tau[i], v, v, h)
		copy(qCopy.Data, q.Data)
		switch kind {
		case "LQ":
			// Q = H_{k-1} * ... * H_1 * H_0.
			blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, h, qCopy, 0, q)
		case "RQ":
			// Q = H_0 * H_1 * ... * H_{k-1}.
			blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, qCopy, h, 0, q)
		}
	}
	return q
}

// randBlockV returns a random matrix V of k elementary reflector vectors of
// order n in the given storage format and direction, with the implicit unit
// elements and zeros filled in explicitly.
func randBlockV(n, k int, store lapack.StoreV, direct lapack.Direct, rnd *rand.Rand) blas64.General {
	var v blas64.General
	if store == lapack.ColumnWise {
		v = randomGeneral(n, k, k, rnd)
		for i := 0; i < k; i++ {
			if direct == lapack.Forward {
				for j := 0; j < i; j++ {
					v.Data[j*v.Stride+i] = 0
				}
				v.Data[i*v.Stride+i] = 1
			} else {
				v.Data[(n-k+i)*v.Stride+i] = 1
				for j := n - k + i + 1; j < n; j++ {
					v.Data[j*v.Stride+i] = 0
				}
			}
		}
		return v
	}
	v = randomGeneral(k, n, n, rnd)
	for i := 0; i < k; i++ {
		if direct == lapack.Forward {
			for j := 0; j < i; j++ {
				v.Data[i*v.Stride+j] = 0
			}
			v.Data[i*v.Stride+i] = 1
		} else {
			v.Data[i*v.Stride+n-k+i] = 1
			for j := n - k + i + 1; j < n; j++ {
				v.Data[i*v.Stride+j] = 0
			}
		}
	}
	return v
}

// constructH returns the explicit n×n product of the k elementary
// reflectors held in v, in the order determined by direct:
//
//	H = H_0 * H_1 * ... * H_{k-1}   (direct == lapack.Forward)
//	H = H_{k-1} * ... * H_1 * H_0   (direct == lapack.Backward)
func constructH(tau []float64, v blas64.General, store lapack.StoreV, direct lapack.Direct) blas64.General {
	n := v.Cols
	k := v.Rows
	if store == lapack.ColumnWise {
		n, k = v.Rows, v.Cols
	}
	h := eye(n, n)
	hCopy := cloneGeneral(h)
	vec := blas64.Vector{N: n, Inc: 1, Data: make([]float64, n)}
	hi := nanGeneral(n, n, n)
	for i := 0; i < k; i++ {
		if store == lapack.ColumnWise {
			for j := 0; j < n; j++ {
				vec.Data[j] = v.Data[j*v.Stride+i]
			}
		} else {
			copy(vec.Data, v.Data[i*v.Stride:i*v.Stride+n])
		}
		// hi = I - tau[i] * v_i * v_iᵀ
		copy(hi.Data, eye(n, n).Data)
		blas64.Ger(-tau[i], vec, vec, hi)
		copy(hCopy.Data, h.Data)
		if direct == lapack.Forward {
			blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, hCopy, hi, 0, h)
		} else {
			blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, hi, hCopy, 0, h)
		}
	}
	return h
}

// blockH returns the explicit block reflector I - V*T*Vᵀ (columnwise
// storage) or I - Vᵀ*T*V (rowwise storage) for the k×k triangular factor
// stored in t with leading dimension ldt. Only the triangle of t selected
// by direct is referenced.
func blockH(v blas64.General, t []float64, ldt, k int, store lapack.StoreV, direct lapack.Direct) blas64.General {
	tt := nanGeneral(k, k, k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			inTriangle := j >= i // Upper triangle for Forward.
			if direct == lapack.Backward {
				inTriangle = j <= i
			}
			if inTriangle {
				tt.Data[i*k+j] = t[i*ldt+j]
			} else {
				tt.Data[i*k+j] = 0
			}
		}
	}
	n := v.Cols
	if store == lapack.ColumnWise {
		n = v.Rows
	}
	vt := nanGeneral(n, k, k) // V (columnwise) or Vᵀ (rowwise).
	if store == lapack.ColumnWise {
		copy(vt.Data, v.Data)
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < k; j++ {
				vt.Data[i*k+j] = v.Data[j*v.Stride+i]
			}
		}
	}
	// h = I - Vt * T * Vtᵀ
	tmp := nanGeneral(n, k, k)
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, vt, tt, 0, tmp)
	h := eye(n, n)
	blas64.Gemm(blas.NoTrans, blas.Trans, -1, tmp, vt, 1, h)
	return h
}
