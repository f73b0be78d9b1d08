// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// Cmp compares z and y and returns:
//
//	-1 if z <  y
//	 0 if z == y
//	+1 if z >  y
func (z *Int) Cmp(y *Int) (int, error) {
	if z == nil || y == nil {
		return 0, newError(ErrNotBigInt, "Cmp: operand is not a valid Int")
	}
	switch {
	case z.neg && !y.neg:
		return -1, nil
	case !z.neg && y.neg:
		return 1, nil
	}
	c := magCmp(z.limbs, y.limbs)
	if z.neg {
		// Both negative: larger magnitude means smaller value.
		return -c, nil
	}
	return c, nil
}

// magCmp compares two magnitudes (canonical, no leading-zero limbs) and
// returns -1, 0, or +1.
func magCmp(x, y []uint16) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
