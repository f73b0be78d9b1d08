// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// twoPow returns 2^j as an Int.
func twoPow(j int) *Int {
	if j == 0 {
		return NewIntFromInt64(1)
	}
	return fromMag(magLsh([]uint16{1}, j), false)
}

// splitPowerOfTwo factors n as 2^j * m with m odd, returning j and m.
func splitPowerOfTwo(n *Int) (j int, m *Int) {
	m = n.clone()
	for isEvenInt(m) {
		m = halve(m)
		j++
	}
	return j, m
}

// ModPow returns x^e mod n. x and e must both be non-negative; this
// reports ErrNegativeModPow for either rather than guessing at a
// convention. n == 0 is a division by zero.
//
// Odd moduli drive the Montgomery reducer directly. Even moduli are
// split by their largest power-of-two factor, 2^j * m with m odd, solved
// independently (Montgomery for the odd part, a mask for the power-of-two
// part) and recombined by the Chinese Remainder Theorem.
func (z *Int) ModPow(e, n *Int) (*Int, error) {
	if z == nil || e == nil || n == nil {
		return nil, newError(ErrNotBigInt, "ModPow: operand is not a valid Int")
	}
	if z.Sign() < 0 || e.Sign() < 0 {
		return nil, newError(ErrNegativeModPow, "ModPow: negative operand")
	}
	if n.IsZero() {
		return nil, newError(ErrDivideByZero, "ModPow: modulus is zero")
	}
	cmp, err := n.Cmp(NewIntFromInt64(1))
	if err != nil {
		return nil, err
	}
	if cmp == 0 {
		return Zero(), nil
	}

	eCmp1, err := e.Cmp(NewIntFromInt64(1))
	if err != nil {
		return nil, err
	}
	eCmp2, err := e.Cmp(NewIntFromInt64(2))
	if err != nil {
		return nil, err
	}
	switch {
	case e.IsZero():
		return NewIntFromInt64(1), nil
	case eCmp1 == 0:
		_, r, err := z.DivMod(n)
		return r, err
	case eCmp2 == 0:
		sq := z.Square()
		_, r, err := sq.DivMod(n)
		return r, err
	}

	if !isEvenInt(n) {
		log.Tracef("bignum: ModPow dispatching odd modulus %s to Montgomery reducer", n)
		return slidingWindowExp(z, e, n, modeMontgomery)
	}
	log.Tracef("bignum: ModPow dispatching even modulus %s to CRT split", n)

	j, m := splitPowerOfTwo(n)
	pow2j := twoPow(j)

	part2, err := slidingWindowExp(z, e, pow2j, modePowerOfTwo)
	if err != nil {
		return nil, err
	}
	mCmp1, err := m.Cmp(NewIntFromInt64(1))
	if err != nil {
		return nil, err
	}
	if mCmp1 == 0 {
		return part2, nil
	}

	part1, err := slidingWindowExp(z, e, m, modeMontgomery)
	if err != nil {
		return nil, err
	}

	y1, err := pow2j.ModInverse(m)
	if err != nil {
		return nil, err
	}
	y2, err := m.ModInverse(pow2j)
	if err != nil {
		return nil, err
	}

	t1, err := part1.Mul(pow2j)
	if err != nil {
		return nil, err
	}
	t1, err = t1.Mul(y1)
	if err != nil {
		return nil, err
	}
	t2, err := part2.Mul(m)
	if err != nil {
		return nil, err
	}
	t2, err = t2.Mul(y2)
	if err != nil {
		return nil, err
	}
	sum, err := t1.Add(t2)
	if err != nil {
		return nil, err
	}
	_, result, err := sum.DivMod(n)
	return result, err
}

// Exp returns x^e with no modular reduction. This is a convenience
// addition beyond modPow's CRT machinery, for callers exponentiating
// small values (e.g. computing a public-exponent check) where reducing
// would be pointless overhead; it uses the same square-and-multiply
// shape as slidingWindowExp but with no reducer to drive.
func (z *Int) Exp(e *Int) (*Int, error) {
	if z == nil || e == nil {
		return nil, newError(ErrNotBigInt, "Exp: operand is not a valid Int")
	}
	if e.Sign() < 0 {
		return nil, newError(ErrNegativeModPow, "Exp: negative exponent")
	}

	result := NewIntFromInt64(1)
	base := z.clone()
	rem := e.clone()
	for !rem.IsZero() {
		if !isEvenInt(rem) {
			var err error
			result, err = result.Mul(base)
			if err != nil {
				return nil, err
			}
		}
		base = base.Square()
		rem = halve(rem)
	}
	return result, nil
}
