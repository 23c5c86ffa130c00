// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

import (
	"testing"

	"github.com/Xuan-1998/tlapack/lapack/testlapack"
)

var impl = Implementation{}

func TestDlapy2(t *testing.T) { testlapack.Dlapy2Test(t, impl) }
func TestIladlr(t *testing.T) { testlapack.IladlrTest(t, impl) }
func TestIladlc(t *testing.T) { testlapack.IladlcTest(t, impl) }
func TestDlange(t *testing.T) { testlapack.DlangeTest(t, impl) }
func TestDlarfg(t *testing.T) { testlapack.DlarfgTest(t, impl) }
func TestDlarf(t *testing.T)   { testlapack.DlarfTest(t, impl) }
func TestDlarft(t *testing.T) { testlapack.DlarftTest(t, impl) }
func TestDlarfb(t *testing.T) { testlapack.DlarfbTest(t, impl) }
func TestDgelq2(t *testing.T) { testlapack.Dgelq2Test(t, impl) }
func TestDgerq2(t *testing.T) { testlapack.Dgerq2Test(t, impl) }
func TestDgelqf(t *testing.T) { testlapack.DgelqfTest(t, impl) }
func TestDgerqf(t *testing.T) { testlapack.DgerqfTest(t, impl) }
func TestDorgl2(t *testing.T) { testlapack.Dorgl2Test(t, impl) }
func TestDorglq(t *testing.T) { testlapack.DorglqTest(t, impl) }
func TestDtzrzf(t *testing.T) { testlapack.DtzrzfTest(t, impl) }

func BenchmarkDgelqf(b *testing.B) { testlapack.DgelqfBenchmark(b, impl) }
func BenchmarkDgerqf(b *testing.B) { testlapack.DgerqfBenchmark(b, impl) }
func BenchmarkDtzrzf(b *testing.B) { testlapack.DtzrzfBenchmark(b, impl) }
