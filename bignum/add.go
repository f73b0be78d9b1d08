// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// Add returns z + y.
func (z *Int) Add(y *Int) (*Int, error) {
	if z == nil || y == nil {
		return nil, newError(ErrNotBigInt, "Add: operand is not a valid Int")
	}
	if z.neg == y.neg {
		return fromMag(magAdd(z.limbs, y.limbs), z.neg), nil
	}
	// Mixed signs: delegate to subtraction of magnitudes. The sign of
	// the result is that of the operand with the larger magnitude;
	// equal magnitudes yield zero.
	switch c := magCmp(z.limbs, y.limbs); {
	case c == 0:
		return Zero(), nil
	case c > 0:
		return fromMag(magSub(z.limbs, y.limbs), z.neg), nil
	default:
		return fromMag(magSub(y.limbs, z.limbs), y.neg), nil
	}
}

// magAdd returns the sum of two magnitudes as a normalized magnitude.
func magAdd(x, y []uint16) []uint16 {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	result := make([]uint16, n+1)
	var carry uint32
	for i := 0; i < n; i++ {
		var xi, yi uint32
		if i < len(x) {
			xi = uint32(x[i])
		}
		if i < len(y) {
			yi = uint32(y[i])
		}
		sum := xi + yi + carry
		result[i] = uint16(sum & limbMask)
		carry = sum >> limbBits
	}
	result[n] = uint16(carry)
	return normalizeLimbs(result)
}
