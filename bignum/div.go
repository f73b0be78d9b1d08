// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// DivMod returns the quotient and common-residue remainder of z / y, such
// that z == q*y + r when z >= 0, and z == q*y + (r - |y|) when z < 0 and
// r > 0. In both cases 0 <= r < |y|; the remainder is always reported as a
// non-negative "common residue" rather than carrying z's sign.
//
// This implements Knuth's Algorithm D (HAC 14.20) on base-2^15 limbs.
func (z *Int) DivMod(y *Int) (q, r *Int, err error) {
	if z == nil || y == nil {
		return nil, nil, newError(ErrNotBigInt, "DivMod: operand is not a valid Int")
	}
	if y.IsZero() {
		return nil, nil, newError(ErrDivideByZero, "DivMod: division by zero")
	}

	qMag, rMag := magDivMod(z.limbs, y.limbs)
	qNeg := z.neg != y.neg

	rOut := rMag
	if z.neg && len(rMag) != 0 {
		rOut = magSub(y.limbs, rMag)
	}

	return fromMag(qMag, qNeg), fromMag(rOut, false), nil
}

// magDivMod returns the truncating quotient and plain (non-common-residue)
// remainder of the magnitudes x / y. y must be non-zero.
func magDivMod(x, y []uint16) (q, r []uint16) {
	switch c := magCmp(x, y); {
	case c == 0:
		return []uint16{1}, nil
	case c < 0:
		rc := make([]uint16, len(x))
		copy(rc, x)
		return nil, normalizeLimbs(rc)
	}

	// Normalize so the divisor's top limb has its bit 14 set.
	s := 0
	top := y[len(y)-1]
	for top&(1<<(limbBits-1)) == 0 {
		top <<= 1
		s++
	}
	xs := magLsh(x, s)
	ys := magLsh(y, s)
	nx, ny := len(xs), len(ys)

	m := nx - ny
	// rem holds the evolving remainder. It is padded two limbs beyond
	// nx so that borrow propagation from the multiply-subtract step
	// always has a safe slot to write into.
	rem := make([]uint16, nx+2)
	copy(rem, xs)

	qOut := make([]uint16, m+1)

	// Topmost quotient digit, found by repeated subtraction of y
	// aligned at limb offset m.
	for compareAt(rem, m, ys) >= 0 {
		subtractAtInPlace(rem, m, ys)
		qOut[m]++
	}

	// Remaining digits via the standard estimate-refine-correct step.
	ytop := uint64(ys[ny-1])
	var ysecond uint64
	if ny >= 2 {
		ysecond = uint64(ys[ny-2])
	}
	for i := nx - 1; i >= ny; i-- {
		j := i - ny
		ri := uint64(limbAt(rem, i))
		ri1 := uint64(limbAt(rem, i-1))
		ri2 := uint64(limbAt(rem, i-2))

		num := (ri << limbBits) | ri1
		qhat := num / ytop
		if qhat > limbMask {
			qhat = limbMask
		}
		rhs := (ri << (2 * limbBits)) | (ri1 << limbBits) | ri2
		for qhat > 0 && qhat*((ytop<<limbBits)+ysecond) > rhs {
			qhat--
		}

		p := scalarMul(ys, qhat)
		if subtractAtInPlace(rem, j, p) {
			addAtInPlace(rem, j, ys)
			qhat--
		}
		qOut[j] = uint16(qhat)
	}

	remMag := normalizeLimbs(rem[:ny])
	remMag = magRsh(remMag, s)
	return normalizeLimbs(qOut), remMag
}

// limbAt returns mag[i], treating negative or out-of-range indices as 0.
func limbAt(mag []uint16, i int) uint16 {
	if i < 0 || i >= len(mag) {
		return 0
	}
	return mag[i]
}

// compareAt compares the value represented by rem[start:] against y.
func compareAt(rem []uint16, start int, y []uint16) int {
	window := make([]uint16, len(rem)-start)
	copy(window, rem[start:])
	return magCmp(normalizeLimbs(window), y)
}

// scalarMul returns y*k as an (unnormalized but minimal) limb slice.
func scalarMul(y []uint16, k uint64) []uint16 {
	result := make([]uint16, len(y))
	var carry uint64
	for i, yi := range y {
		t := k*uint64(yi) + carry
		result[i] = uint16(t & limbMask)
		carry = t >> limbBits
	}
	for carry > 0 {
		result = append(result, uint16(carry&limbMask))
		carry >>= limbBits
	}
	return result
}

// subtractAtInPlace subtracts p from rem starting at limb offset start,
// propagating any borrow into higher limbs of rem. It reports whether a
// borrow escaped past the end of rem (i.e. the subtraction went negative).
func subtractAtInPlace(rem []uint16, start int, p []uint16) bool {
	var borrow int64
	for i := 0; i < len(p); i++ {
		v := int64(rem[start+i]) - int64(p[i]) - borrow
		if v < 0 {
			v += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		rem[start+i] = uint16(v)
	}
	idx := start + len(p)
	for borrow != 0 {
		if idx >= len(rem) {
			return true
		}
		v := int64(rem[idx]) - borrow
		if v < 0 {
			v += limbBase
			borrow = 1
		} else {
			borrow = 0
		}
		rem[idx] = uint16(v)
		idx++
	}
	return false
}

// addAtInPlace adds y to rem starting at limb offset start, propagating
// carry into higher limbs of rem. Used to correct an over-large quotient
// digit estimate.
func addAtInPlace(rem []uint16, start int, y []uint16) {
	var carry uint64
	for i := 0; i < len(y); i++ {
		t := uint64(rem[start+i]) + uint64(y[i]) + carry
		rem[start+i] = uint16(t & limbMask)
		carry = t >> limbBits
	}
	idx := start + len(y)
	for carry != 0 && idx < len(rem) {
		t := uint64(rem[idx]) + carry
		rem[idx] = uint16(t & limbMask)
		carry = t >> limbBits
		idx++
	}
}
