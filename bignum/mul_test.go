// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum_test

import (
	"testing"

	"github.com/cryptonum/bignum/bignum"
)

func TestIntMul(t *testing.T) {
	tests := []struct {
		x, y, want int64
	}{
		{0, 5, 0},
		{5, 0, 0},
		{1, 1, 1},
		{3, 4, 12},
		{-3, 4, -12},
		{3, -4, -12},
		{-3, -4, 12},
		{32767, 32767, 32767 * 32767},
		{1 << 20, 1 << 20, 1 << 40},
	}

	for i, test := range tests {
		x := bignum.NewIntFromInt64(test.x)
		y := bignum.NewIntFromInt64(test.y)
		prod, err := x.Mul(y)
		if err != nil {
			t.Fatalf("test #%d: Mul returned error: %v", i, err)
		}
		got, ok := prod.Int64()
		if !ok {
			t.Fatalf("test #%d: Mul(%d, %d) result did not fit in int64", i, test.x, test.y)
		}
		if got != test.want {
			t.Errorf("test #%d: Mul(%d, %d) = %d, want %d", i, test.x, test.y, got, test.want)
		}
	}
}

func TestIntSquare(t *testing.T) {
	tests := []int64{0, 1, 2, 255, 65535, 1 << 20}

	for i, in := range tests {
		x := bignum.NewIntFromInt64(in)
		sq := x.Square()
		got, ok := sq.Int64()
		if !ok {
			t.Fatalf("test #%d: Square(%d) result did not fit in int64", i, in)
		}
		want := in * in
		if got != want {
			t.Errorf("test #%d: Square(%d) = %d, want %d", i, in, got, want)
		}
	}
}

func TestIntMulLargeAgreesWithRepeatedAdd(t *testing.T) {
	x, _ := bignum.NewIntFromString("123456789123456789", 10)
	y := bignum.NewIntFromInt64(2)

	prod, err := x.Mul(y)
	if err != nil {
		t.Fatalf("Mul returned error: %v", err)
	}
	sum, err := x.Add(x)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	cmp, err := prod.Cmp(sum)
	if err != nil {
		t.Fatalf("Cmp returned error: %v", err)
	}
	if cmp != 0 {
		t.Errorf("x*2 = %s, want %s", prod, sum)
	}
}
