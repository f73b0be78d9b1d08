// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModInverseSmall(t *testing.T) {
	tests := []struct {
		x, n, want int64
	}{
		{3, 7, 5},   // 3*5 = 15 = 2*7+1
		{1, 2, 1},
		{10, 17, 12}, // 10*12 = 120 = 7*17+1
		{17, 3120, 2753},
	}

	for i, test := range tests {
		x := NewIntFromInt64(test.x)
		n := NewIntFromInt64(test.n)

		got, err := x.ModInverse(n)
		require.NoErrorf(t, err, "test #%d", i)
		gotV, ok := got.Int64()
		require.Truef(t, ok, "test #%d", i)
		require.Equalf(t, test.want, gotV, "test #%d: ModInverse(%d, %d)", i, test.x, test.n)

		// The defining property holds regardless of hand-picked want
		// values: x*inverse ≡ 1 (mod n).
		prod, err := x.Mul(got)
		require.NoErrorf(t, err, "test #%d", i)
		_, r, err := prod.DivMod(n)
		require.NoErrorf(t, err, "test #%d", i)
		require.Equalf(t, int64(1), mustI64(t, r), "test #%d: x*x^-1 mod n", i)
	}
}

func TestModInverseBothEvenFails(t *testing.T) {
	x := NewIntFromInt64(4)
	n := NewIntFromInt64(6)

	_, err := x.ModInverse(n)
	require.Error(t, err)
}

func TestModInverseNoInverseFails(t *testing.T) {
	x := NewIntFromInt64(4)
	n := NewIntFromInt64(9)
	_, err := x.ModInverse(n)
	require.NoError(t, err) // gcd(4,9)=1, inverse exists

	x2 := NewIntFromInt64(6)
	n2 := NewIntFromInt64(9)
	_, err2 := x2.ModInverse(n2)
	require.Error(t, err2) // gcd(6,9)=3, no inverse
}

// TestModInverseZeroReductionFails exercises receivers that reduce to 0
// mod n, where gcd(z, n) = n rather than 1. binaryExtendedGCD's loop
// never advances when it starts at v == 0, so ModInverse must report
// ErrNoInverse for these without handing them to it.
func TestModInverseZeroReductionFails(t *testing.T) {
	tests := []struct{ x, n int64 }{
		{6, 3},
		{5, 5},
		{0, 7},
		{0, 2},
	}

	for i, test := range tests {
		x := NewIntFromInt64(test.x)
		n := NewIntFromInt64(test.n)

		_, err := x.ModInverse(n)
		require.Errorf(t, err, "test #%d: ModInverse(%d, %d)", i, test.x, test.n)
	}
}

func TestModInverseZeroModuloOne(t *testing.T) {
	got, err := Zero().ModInverse(NewIntFromInt64(1))
	require.NoError(t, err)
	require.True(t, got.IsZero())
}

func TestModInverseUnreducedInput(t *testing.T) {
	// x >= n folds into [0, n) before the xGCD loop, so it should agree
	// with the pre-reduced call.
	x := NewIntFromInt64(3 + 7*100)
	n := NewIntFromInt64(7)

	got, err := x.ModInverse(n)
	require.NoError(t, err)

	want, err := NewIntFromInt64(3).ModInverse(n)
	require.NoError(t, err)

	cmp, err := got.Cmp(want)
	require.NoError(t, err)
	require.Zero(t, cmp)
}

func TestGCD(t *testing.T) {
	tests := []struct {
		x, n, want int64
	}{
		{12, 18, 6},
		{17, 5, 1},
		{0, 5, 5},
		{5, 0, 5},
		{100, 75, 25},
	}

	for i, test := range tests {
		x := NewIntFromInt64(test.x)
		n := NewIntFromInt64(test.n)

		got, err := x.GCD(n)
		require.NoErrorf(t, err, "test #%d", i)
		require.Equalf(t, test.want, mustI64(t, got), "test #%d: GCD(%d, %d)", i, test.x, test.n)
	}
}
