// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

// Panic strings used during parameter checks.
const (
	// Bad enumeration values.
	badDirect = "lapack: bad reflector direction"
	badNorm   = "lapack: bad norm"
	badSide   = "lapack: bad side"
	badStore  = "lapack: bad reflector storage"
	badTrans  = "lapack: bad trans"

	// Bad numerical values.
	mLT0 = "lapack: m < 0"
	nLT0 = "lapack: n < 0"
	nLTM = "lapack: n < m"
	kLT0 = "lapack: k < 0"
	kGTM = "lapack: k > m"

	badLWork = "lapack: insufficient declared workspace length"

	// Bad slice lengths.
	shortA    = "lapack: insufficient length of a"
	shortC    = "lapack: insufficient length of c"
	shortT    = "lapack: insufficient length of t"
	shortTau  = "lapack: insufficient length of tau"
	shortV    = "lapack: insufficient length of v"
	shortWork = "lapack: insufficient length of work"
	shortX    = "lapack: insufficient length of x"

	// Bad leading dimensions.
	badLdA    = "lapack: bad leading dimension of A"
	badLdC    = "lapack: bad leading dimension of C"
	badLdT    = "lapack: bad leading dimension of T"
	badLdV    = "lapack: bad leading dimension of V"
	badLdWork = "lapack: bad leading dimension of Work"

	// Bad vector increments.
	badIncX  = "lapack: incX <= 0"
	zeroIncV = "lapack: incv == 0"
)
