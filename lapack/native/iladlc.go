// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

// Iladlc scans a matrix for its last non-zero column. Returns -1 if the
// matrix is all zeros.
//
// Iladlc is an internal routine. It is exported for testing purposes.
func (Implementation) Iladlc(m, n int, a []float64, lda int) int {
	switch {
	case m < 0:
		panic(mLT0)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	}
	if m == 0 || n == 0 {
		return -1
	}
	if len(a) < (m-1)*lda+n {
		panic(shortA)
	}
	// Check the common case where the corner is non-zero first.
	if a[n-1] != 0 || a[(m-1)*lda+n-1] != 0 {
		return n - 1
	}
	for j := n - 1; j >= 0; j-- {
		for i := 0; i < m; i++ {
			if a[i*lda+j] != 0 {
				return j
			}
		}
	}
	return -1
}
