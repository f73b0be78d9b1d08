// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// reducePowerOfTwo returns x mod n, where n is required to be a power of
// two (n == 2^e for some e). Under that precondition, reduction is just a
// bitwise AND against n-1. This is an internal helper reachable only from
// ModPow's CRT split (modpow.go), which guarantees the precondition by
// construction; it is not part of the exported operation table and does
// not validate its input.
func reducePowerOfTwo(x, n *Int) *Int {
	nMinusOne := &Int{limbs: magSub(n.limbs, []uint16{1})}
	return fromMag(magAnd(x.limbs, nMinusOne.limbs), false)
}
