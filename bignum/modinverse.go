// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// isEvenInt reports whether x's magnitude is even. Sign is irrelevant to
// parity in a sign-magnitude representation.
func isEvenInt(x *Int) bool {
	return x.IsZero() || x.limbs[0]&1 == 0
}

// halve returns x/2, valid only when x is known to be even; it preserves
// sign and simply right-shifts the magnitude by one bit.
func halve(x *Int) *Int {
	if x.IsZero() {
		return x
	}
	return fromMag(magRsh(x.limbs, 1), x.neg)
}

// binaryExtendedGCD runs the binary extended Euclidean algorithm (HAC
// 14.61-style) on x and n, both of which must already be non-negative.
// It loops until u reaches zero and returns v, which then holds gcd(x, n),
// along with the Bezout coefficient d such that x*d = gcd(x, n) (mod n).
// Factors of two are stripped from u and v independently, so when x and n
// are both even the returned v lacks their common power of two.
func binaryExtendedGCD(x, n *Int) (gcd, d *Int, err error) {
	u := n.clone()
	v := x.clone()
	a := NewIntFromInt64(1)
	b := Zero()
	c := Zero()
	dd := NewIntFromInt64(1)

	for !u.IsZero() {
		for isEvenInt(u) {
			u = halve(u)
			if !isEvenInt(a) || !isEvenInt(b) {
				if a, err = a.Add(x); err != nil {
					return nil, nil, err
				}
				if b, err = b.Sub(n); err != nil {
					return nil, nil, err
				}
			}
			a = halve(a)
			b = halve(b)
		}
		for !v.IsZero() && isEvenInt(v) {
			v = halve(v)
			if !isEvenInt(c) || !isEvenInt(dd) {
				if c, err = c.Add(x); err != nil {
					return nil, nil, err
				}
				if dd, err = dd.Sub(n); err != nil {
					return nil, nil, err
				}
			}
			c = halve(c)
			dd = halve(dd)
		}
		cmp, cmpErr := u.Cmp(v)
		if cmpErr != nil {
			return nil, nil, cmpErr
		}
		if cmp >= 0 {
			if u, err = u.Sub(v); err != nil {
				return nil, nil, err
			}
			if a, err = a.Sub(c); err != nil {
				return nil, nil, err
			}
			if b, err = b.Sub(dd); err != nil {
				return nil, nil, err
			}
		} else {
			if v, err = v.Sub(u); err != nil {
				return nil, nil, err
			}
			if c, err = c.Sub(a); err != nil {
				return nil, nil, err
			}
			if dd, err = dd.Sub(b); err != nil {
				return nil, nil, err
			}
		}
	}
	return v, dd, nil
}

// ModInverse returns z^-1 mod n using the binary extended GCD. z and n
// must both be non-negative and must not both be even; if gcd(z, n) != 1
// the inverse does not exist and ModInverse reports ErrNoInverse.
//
// z is folded into [0, n) before entering the xGCD loop, so callers do
// not need to pre-reduce.
func (z *Int) ModInverse(n *Int) (*Int, error) {
	if z == nil || n == nil {
		return nil, newError(ErrNotBigInt, "ModInverse: operand is not a valid Int")
	}
	if z.Sign() < 0 || n.Sign() < 0 {
		return nil, newError(ErrNegativeModPow, "ModInverse: negative operand")
	}
	if isEvenInt(z) && isEvenInt(n) {
		return nil, newError(ErrNoInverse, "ModInverse: both operands are even")
	}

	_, reduced, err := z.DivMod(n)
	if err != nil {
		return nil, err
	}
	one := NewIntFromInt64(1)
	if reduced.IsZero() {
		// gcd(z, n) = n here; binaryExtendedGCD's loop never advances
		// u when it starts at a zero v, so this must be special-cased
		// rather than handed to it, the same way GCD special-cases it.
		nCmp1, err := n.Cmp(one)
		if err != nil {
			return nil, err
		}
		if nCmp1 == 0 {
			return Zero(), nil
		}
		return nil, newError(ErrNoInverse, "ModInverse: gcd(this, n) != 1")
	}

	gcd, d, err := binaryExtendedGCD(reduced, n)
	if err != nil {
		return nil, err
	}
	cmp, err := gcd.Cmp(one)
	if err != nil {
		return nil, err
	}
	if cmp != 0 {
		return nil, newError(ErrNoInverse, "ModInverse: gcd(this, n) != 1")
	}
	if d.Sign() < 0 {
		return d.Add(n)
	}
	return d, nil
}

// GCD returns the greatest common divisor of z and n, both of which must
// be non-negative. This reuses the same binary extended GCD machinery
// ModInverse drives, discarding the Bezout coefficient it computes as a
// side effect.
func (z *Int) GCD(n *Int) (*Int, error) {
	if z == nil || n == nil {
		return nil, newError(ErrNotBigInt, "GCD: operand is not a valid Int")
	}
	if z.Sign() < 0 || n.Sign() < 0 {
		return nil, newError(ErrNegativeModPow, "GCD: negative operand")
	}
	if z.IsZero() {
		return n.clone(), nil
	}
	if n.IsZero() {
		return z.clone(), nil
	}

	_, reduced, err := z.DivMod(n)
	if err != nil {
		return nil, err
	}
	if reduced.IsZero() {
		return n.clone(), nil
	}
	// binaryExtendedGCD drops a power of two common to both operands, so
	// factor it out here and restore it on the result.
	m := n
	shift := 0
	for isEvenInt(reduced) && isEvenInt(m) {
		reduced = halve(reduced)
		m = halve(m)
		shift++
	}
	gcd, _, err := binaryExtendedGCD(reduced, m)
	if err != nil {
		return nil, err
	}
	return fromMag(magLsh(gcd.limbs, shift), false), nil
}
