// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// classicCacheModulus remembers the modulus most recently seen by
// reduceClassic purely so a modulus change can be logged; classic
// reduction via DivMod has no expensive setup worth memoizing, unlike the
// Barrett and Montgomery strategies.
var classicCacheModulus *Int

// classicModulusChanged reports whether n differs from the cached modulus.
func classicModulusChanged(n *Int) (bool, error) {
	if classicCacheModulus == nil {
		return true, nil
	}
	cmp, err := classicCacheModulus.Cmp(n)
	if err != nil {
		return false, err
	}
	return cmp != 0, nil
}

// reduceClassic returns the common-residue remainder of x mod n via long
// division.
func reduceClassic(x, n *Int) (*Int, error) {
	changed, err := classicModulusChanged(n)
	if err != nil {
		return nil, err
	}
	if changed {
		log.Debugf("bignum: classic reducer modulus changed (%d limbs)", len(n.limbs))
		classicCacheModulus = n.clone()
	}
	_, r, err := x.DivMod(n)
	return r, err
}
