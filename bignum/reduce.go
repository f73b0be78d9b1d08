// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// reduceMode selects one of the pluggable modular reduction strategies
// that the sliding-window exponentiator drives after every squaring and
// multiplication. This is modeled as a closed, tagged set rather than an
// open interface: there are exactly these variants and no caller
// extensibility.
type reduceMode int

const (
	modeNone reduceMode = iota
	modeClassic
	modePowerOfTwo
	modeBarrett
	modeMontgomery
)

// reduce computes x mod n under the given strategy. For modeNone it is the
// identity (a defensive copy of x).
func reduce(x, n *Int, mode reduceMode) (*Int, error) {
	switch mode {
	case modeNone:
		return x.clone(), nil
	case modeClassic:
		return reduceClassic(x, n)
	case modePowerOfTwo:
		return reducePowerOfTwo(x, n), nil
	case modeBarrett:
		return reduceBarrett(x, n)
	case modeMontgomery:
		return reduceMontgomery(x, n)
	default:
		return nil, newError(ErrNotBigInt, "reduce: unknown reduce mode")
	}
}

// undo maps x into the domain reduce works in. For every mode except
// Montgomery, undo is identical to reduce (there is no domain to enter);
// Montgomery's undo lifts x into Montgomery form, which reduce leaves.
func undo(x, n *Int, mode reduceMode) (*Int, error) {
	if mode == modeMontgomery {
		return undoMontgomery(x, n), nil
	}
	return reduce(x, n, mode)
}
