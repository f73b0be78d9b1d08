// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// barrettCache memoizes the precomputed reciprocal mu for the most
// recently seen modulus. It is a single process-wide slot, replaced
// wholesale (never merged) when the modulus changes; it is a pure
// optimization and is not safe under unsynchronized concurrent use.
// Callers needing concurrent modPow calls against different moduli must
// provide their own synchronization.
var barrettCache struct {
	modulus *Int
	k       int
	mu      []uint16
}

// reduceBarrett returns x mod n using Barrett reduction (HAC 14.42),
// recomputing the cached reciprocal only when n differs from the cached
// modulus.
func reduceBarrett(x, n *Int) (*Int, error) {
	k := len(n.limbs)
	stale := barrettCache.modulus == nil || barrettCache.k != k
	if !stale {
		cmp, err := barrettCache.modulus.Cmp(n)
		if err != nil {
			return nil, err
		}
		stale = cmp != 0
	}
	if stale {
		log.Debugf("bignum: barrett reducer precomputing mu for %d-limb modulus", k)
		// mu = floor(b^(2k) / n)
		numerator := wordLsh([]uint16{1}, 2*k)
		mu, _ := magDivMod(numerator, n.limbs)
		barrettCache.modulus = n.clone()
		barrettCache.k = k
		barrettCache.mu = mu
	}
	mu := barrettCache.mu

	q1 := wordRsh(x.limbs, k-1)
	q1mu := magMul(q1, mu)
	q3 := wordRsh(q1mu, k+1)

	r1 := wordTrunc(x.limbs, k+1)
	r2 := wordTrunc(magMul(q3, n.limbs), k+1)

	if magCmp(r1, r2) < 0 {
		r1 = magAdd(r1, wordLsh([]uint16{1}, k+1))
	}
	rMag := magSub(r1, r2)

	result := fromMag(rMag, false)
	for {
		cmp, err := result.Cmp(n)
		if err != nil {
			return nil, err
		}
		if cmp < 0 {
			break
		}
		result = fromMag(magSub(result.limbs, n.limbs), false)
	}
	return result, nil
}
