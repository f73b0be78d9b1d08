// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// montgomeryCache memoizes n0inv = -n[0]^-1 mod 2^15 for the most
// recently seen odd modulus. Single process-wide slot, replaced wholesale
// on modulus change; see the concurrency note on barrettCache.
var montgomeryCache struct {
	modulus *Int
	k       int
	n0inv   uint64
}

// computeMontgomeryK0 computes -n0^-1 mod 2^15 for an odd limb n0, via
// Newton iteration: starting from an odd (so 1-bit-accurate) seed, each
// iteration doubles the number of correct low bits, so four iterations
// comfortably cover the 15-bit limb width. The loop converges to the
// plain inverse n0^-1 mod 2^15; the REDC step below needs its negation,
// so that is applied once at the end rather than on every iteration.
func computeMontgomeryK0(n0 uint16) uint64 {
	const mod = uint64(limbBase)
	n0u := uint64(n0)
	y := (mod - n0u%mod) & 3
	for i := 0; i < 4; i++ {
		t := (2 - (n0u*y)%mod + mod) % mod
		y = (y * t) % mod
	}
	return (mod - y) % mod
}

// reduceMontgomery performs one Montgomery reduction step, bringing x (at
// most 2k limbs, for k = len(n.limbs)) back down to a value below 2n.
// A single conditional subtraction suffices rather than a loop, since at
// most one subtraction is ever needed after a Montgomery reduction.
func reduceMontgomery(x, n *Int) (*Int, error) {
	k := len(n.limbs)
	stale := montgomeryCache.modulus == nil || montgomeryCache.k != k
	if !stale {
		cmp, err := montgomeryCache.modulus.Cmp(n)
		if err != nil {
			return nil, err
		}
		stale = cmp != 0
	}
	if stale {
		log.Debugf("bignum: montgomery reducer precomputing n0inv for %d-limb modulus", k)
		var n0 uint16
		if k > 0 {
			n0 = n.limbs[0]
		}
		montgomeryCache.modulus = n.clone()
		montgomeryCache.k = k
		montgomeryCache.n0inv = computeMontgomeryK0(n0)
	}
	n0inv := montgomeryCache.n0inv

	bufLen := len(x.limbs)
	if bufLen < 2*k+2 {
		bufLen = 2*k + 2
	}
	buf := make([]uint16, bufLen)
	copy(buf, x.limbs)

	for i := 0; i < k; i++ {
		u := (uint64(limbAt(buf, i)) * n0inv) & limbMask
		if u != 0 {
			p := scalarMul(n.limbs, u)
			addAtInPlace(buf, i, p)
		}
	}

	result := fromMag(wordRsh(buf, k), false)
	cmp, err := result.Cmp(n)
	if err != nil {
		return nil, err
	}
	if cmp >= 0 {
		result = fromMag(magSub(result.limbs, n.limbs), false)
	}
	return result, nil
}

// undoMontgomery lifts x into Montgomery form relative to modulus n, i.e.
// computes x * 2^(15k) mod n via classic division, where k = len(n.limbs).
func undoMontgomery(x, n *Int) *Int {
	k := len(n.limbs)
	lifted := wordLsh(x.limbs, k)
	_, r := magDivMod(lifted, n.limbs)
	return fromMag(r, false)
}
