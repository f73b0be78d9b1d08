// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// Sub returns z - y.
func (z *Int) Sub(y *Int) (*Int, error) {
	if z == nil || y == nil {
		return nil, newError(ErrNotBigInt, "Sub: operand is not a valid Int")
	}
	if z.neg != y.neg {
		// Mixed signs: z - y == z + |y| with z's sign, or equivalently
		// the magnitudes simply add.
		return fromMag(magAdd(z.limbs, y.limbs), z.neg), nil
	}
	// Same sign: compare magnitudes. If |z| < |y|, swap operands and
	// flip the sign of the result.
	switch c := magCmp(z.limbs, y.limbs); {
	case c == 0:
		return Zero(), nil
	case c > 0:
		return fromMag(magSub(z.limbs, y.limbs), z.neg), nil
	default:
		return fromMag(magSub(y.limbs, z.limbs), !z.neg), nil
	}
}

// magSub returns x - y assuming x >= y, as a normalized magnitude. The
// caller is responsible for ensuring that precondition holds; violating it
// produces garbage (the terminal borrow is dropped).
func magSub(x, y []uint16) []uint16 {
	result := make([]uint16, len(x))
	var borrow int32
	for i := 0; i < len(x); i++ {
		var yi int32
		if i < len(y) {
			yi = int32(y[i])
		}
		diff := int32(x[i]) - yi - borrow
		if diff < 0 {
			diff += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		result[i] = uint16(diff)
	}
	return normalizeLimbs(result)
}
