// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// Mul returns z * y. When y is the same Int as z, this delegates to
// Square, which uses the diagonal/cross-term shortcut instead of full
// schoolbook multiplication.
func (z *Int) Mul(y *Int) (*Int, error) {
	if z == nil || y == nil {
		return nil, newError(ErrNotBigInt, "Mul: operand is not a valid Int")
	}
	if z == y {
		return z.Square(), nil
	}
	return fromMag(magMul(z.limbs, y.limbs), z.neg != y.neg), nil
}

// Square returns z * z.
func (z *Int) Square() *Int {
	return fromMag(magSquare(z.limbs), false)
}

// magMul multiplies two magnitudes using schoolbook multiplication. Each
// partial product accumulates into a 64-bit bin indexed by limb position;
// bins are allowed to overflow past 15 bits during accumulation (the same
// "accumulate with overflow headroom, normalize once at the end" approach
// used for fixed-precision field arithmetic) and are carry-propagated into
// canonical limbs by normalizeBins.
func magMul(x, y []uint16) []uint16 {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	bins := make([]uint64, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		xi64 := uint64(xi)
		for j, yj := range y {
			bins[i+j] += xi64 * uint64(yj)
		}
	}
	return normalizeBins(bins)
}

// magSquare computes x*x using the diagonal/cross-term identity
// x^2 = sum_i a[i]^2*B^2i + sum_{j>i} 2*a[i]*a[j]*B^(i+j), which touches
// roughly half as many pairwise products as a full schoolbook
// multiplication of x against itself.
func magSquare(x []uint16) []uint16 {
	n := len(x)
	if n == 0 {
		return nil
	}
	bins := make([]uint64, 2*n)
	for i := 0; i < n; i++ {
		xi := uint64(x[i])
		if xi == 0 {
			continue
		}
		bins[2*i] += xi * xi
		for j := i + 1; j < n; j++ {
			bins[i+j] += 2 * xi * uint64(x[j])
		}
	}
	return normalizeBins(bins)
}

// normalizeBins carry-propagates a slice of (possibly overflowing) 64-bit
// per-limb-position accumulators into a canonical limb slice.
func normalizeBins(bins []uint64) []uint16 {
	result := make([]uint16, len(bins))
	var carry uint64
	for i, b := range bins {
		t := b + carry
		result[i] = uint16(t & limbMask)
		carry = t >> limbBits
	}
	for carry > 0 {
		result = append(result, uint16(carry&limbMask))
		carry >>= limbBits
	}
	return normalizeLimbs(result)
}
