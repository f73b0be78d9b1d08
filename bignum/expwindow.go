// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

// windowRanges gives the bit-length thresholds used to pick a sliding
// window size: the smallest i+1 such that bitLen(e) <= windowRanges[i],
// clamped to 6 when e is longer than the largest threshold.
var windowRanges = [6]int{7, 25, 81, 241, 673, 1793}

// chooseWindowSize implements HAC 14.85's window-size heuristic.
func chooseWindowSize(bitLen int) int {
	for i, r := range windowRanges {
		if bitLen <= r {
			return i + 1
		}
	}
	return len(windowRanges)
}

// bitAt returns bit pos of e (0 = least significant), or 0 if pos is
// beyond e's magnitude.
func bitAt(e *Int, pos int) int {
	limbIdx := pos / limbBits
	bitIdx := pos % limbBits
	if limbIdx < 0 || limbIdx >= len(e.limbs) {
		return 0
	}
	return int((e.limbs[limbIdx] >> uint(bitIdx)) & 1)
}

// slidingWindowExp computes x^e mod n using a k-ary, left-to-right sliding
// window exponentiation (HAC 14.85), driving the given reduction strategy
// after every squaring and every window multiply. e must be non-negative
// and non-zero; callers (modpow.go) handle e == 0 and e == 1 themselves.
func slidingWindowExp(x, e, n *Int, mode reduceMode) (*Int, error) {
	bitLen := e.BitLen()
	w := chooseWindowSize(bitLen)
	maxOdd := (1 << uint(w)) - 1

	pow := make([]*Int, maxOdd+1)
	p1, err := undo(x, n, mode)
	if err != nil {
		return nil, err
	}
	pow[1] = p1

	if maxOdd >= 3 {
		p2, err := reduce(p1.Square(), n, mode)
		if err != nil {
			return nil, err
		}
		for idx := 3; idx <= maxOdd; idx += 2 {
			prod, err := pow[idx-2].Mul(p2)
			if err != nil {
				return nil, err
			}
			pow[idx], err = reduce(prod, n, mode)
			if err != nil {
				return nil, err
			}
		}
	}

	result, err := undo(NewIntFromInt64(1), n, mode)
	if err != nil {
		return nil, err
	}

	pos := bitLen - 1
	for pos >= 0 {
		if bitAt(e, pos) == 0 {
			result, err = reduce(result.Square(), n, mode)
			if err != nil {
				return nil, err
			}
			pos--
			continue
		}

		maxLook := w - 1
		if pos-maxLook < 0 {
			maxLook = pos
		}
		j := 0
		for k := 1; k <= maxLook; k++ {
			if bitAt(e, pos-k) == 1 {
				j = k
			}
		}

		for t := 0; t <= j; t++ {
			result, err = reduce(result.Square(), n, mode)
			if err != nil {
				return nil, err
			}
		}

		val := 0
		for b := pos; b >= pos-j; b-- {
			val = val*2 + bitAt(e, b)
		}
		prod, err := result.Mul(pow[val])
		if err != nil {
			return nil, err
		}
		result, err = reduce(prod, n, mode)
		if err != nil {
			return nil, err
		}
		pos -= j + 1
	}

	result, err = reduce(result, n, mode)
	if err != nil {
		return nil, err
	}
	return result, nil
}
