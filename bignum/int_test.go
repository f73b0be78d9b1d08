// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum_test

import (
	"testing"

	"github.com/cryptonum/bignum/bignum"
)

func TestIntSignAndIsZero(t *testing.T) {
	tests := []struct {
		in       int64
		wantSign int
		wantZero bool
	}{
		{0, 0, true},
		{1, 1, false},
		{-1, -1, false},
		{12345, 1, false},
		{-12345, -1, false},
	}

	for i, test := range tests {
		z := bignum.NewIntFromInt64(test.in)
		if got := z.Sign(); got != test.wantSign {
			t.Errorf("test #%d: Sign() = %d, want %d", i, got, test.wantSign)
		}
		if got := z.IsZero(); got != test.wantZero {
			t.Errorf("test #%d: IsZero() = %v, want %v", i, got, test.wantZero)
		}
	}
}

func TestIntAbsAndNeg(t *testing.T) {
	tests := []struct {
		in       int64
		wantAbs  int64
		wantNeg  int64
	}{
		{0, 0, 0},
		{5, 5, -5},
		{-5, 5, 5},
	}

	for i, test := range tests {
		z := bignum.NewIntFromInt64(test.in)

		abs, ok := z.Abs().Int64()
		if !ok || abs != test.wantAbs {
			t.Errorf("test #%d: Abs() = %d, want %d", i, abs, test.wantAbs)
		}

		neg, ok := z.Neg().Int64()
		if !ok || neg != test.wantNeg {
			t.Errorf("test #%d: Neg() = %d, want %d", i, neg, test.wantNeg)
		}
	}
}

func TestIntBitLen(t *testing.T) {
	tests := []struct {
		in   int64
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{1023, 10},
		{1024, 11},
		{1 << 20, 21},
	}

	for i, test := range tests {
		z := bignum.NewIntFromInt64(test.in)
		if got := z.BitLen(); got != test.want {
			t.Errorf("test #%d: BitLen(%d) = %d, want %d", i, test.in, got, test.want)
		}
	}
}

func TestIntImmutability(t *testing.T) {
	x := bignum.NewIntFromInt64(7)
	y := bignum.NewIntFromInt64(3)

	sum, err := x.Add(y)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if xv, _ := x.Int64(); xv != 7 {
		t.Errorf("Add mutated its receiver: x = %d, want 7", xv)
	}
	if yv, _ := y.Int64(); yv != 3 {
		t.Errorf("Add mutated its argument: y = %d, want 3", yv)
	}
	if sv, _ := sum.Int64(); sv != 10 {
		t.Errorf("Add(7, 3) = %d, want 10", sv)
	}
}
