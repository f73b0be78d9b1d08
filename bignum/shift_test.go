// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import "testing"

func TestMagLsh(t *testing.T) {
	tests := []struct {
		in   []uint16
		k    int
		want []uint16
	}{
		{[]uint16{1}, 0, []uint16{1}},
		{[]uint16{1}, 1, []uint16{2}},
		{[]uint16{1}, limbBits, []uint16{0, 1}},
		{[]uint16{1}, limbBits + 1, []uint16{0, 2}},
		{nil, 5, nil},
	}

	for i, test := range tests {
		got := magLsh(test.in, test.k)
		if magCmp(got, test.want) != 0 {
			t.Errorf("test #%d: magLsh(%v, %d) = %v, want %v", i, test.in, test.k, got, test.want)
		}
	}
}

func TestMagRsh(t *testing.T) {
	tests := []struct {
		in   []uint16
		k    int
		want []uint16
	}{
		{[]uint16{2}, 1, []uint16{1}},
		{[]uint16{0, 1}, limbBits, []uint16{1}},
		{[]uint16{1}, 1, nil},
		{[]uint16{1}, limbBits, nil},
	}

	for i, test := range tests {
		got := magRsh(test.in, test.k)
		if magCmp(got, test.want) != 0 {
			t.Errorf("test #%d: magRsh(%v, %d) = %v, want %v", i, test.in, test.k, got, test.want)
		}
	}
}

func TestMagLshRshRoundTrip(t *testing.T) {
	mag := []uint16{12345, 6789, 1}
	for k := 0; k < 40; k++ {
		shifted := magLsh(mag, k)
		back := magRsh(shifted, k)
		if magCmp(back, mag) != 0 {
			t.Errorf("k=%d: round trip got %v, want %v", k, back, mag)
		}
	}
}

func TestWordShiftHelpers(t *testing.T) {
	mag := []uint16{1, 2, 3, 4}

	if got := wordTrunc(mag, 2); magCmp(got, []uint16{1, 2}) != 0 {
		t.Errorf("wordTrunc(mag, 2) = %v, want [1 2]", got)
	}
	if got := wordRsh(mag, 2); magCmp(got, []uint16{3, 4}) != 0 {
		t.Errorf("wordRsh(mag, 2) = %v, want [3 4]", got)
	}
	if got := wordLsh([]uint16{1, 2}, 2); magCmp(normalizeLimbs(got), []uint16{0, 0, 1, 2}) != 0 {
		t.Errorf("wordLsh([1 2], 2) = %v, want [0 0 1 2]", got)
	}
}

func TestMagAnd(t *testing.T) {
	x := []uint16{0x7fff, 0x0f0f}
	y := []uint16{0x0f0f, 0x7fff}
	want := []uint16{0x0f0f, 0x0f0f}
	if got := magAnd(x, y); magCmp(got, want) != 0 {
		t.Errorf("magAnd(%v, %v) = %v, want %v", x, y, got, want)
	}
}
