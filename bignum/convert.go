// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"strings"
)

// Bytes returns the big-endian, minimal two's-complement-free magnitude of
// z as raw bytes, discarding the sign. Zero yields an empty slice. Callers
// that need the sign should consult Sign separately; this codec is
// magnitude-only.
func (z *Int) Bytes() []byte {
	if z.IsZero() {
		return []byte{}
	}
	// Every limb contributes 15 bits; walk from the least significant
	// limb up, keeping a small bit buffer and draining whole bytes from
	// the end of out. The top limb's unused high bits can leave up to two
	// leading zero bytes, trimmed off at the end.
	totalBits := len(z.limbs) * limbBits
	nBytes := (totalBits + 7) / 8
	out := make([]byte, nBytes)

	var acc uint32
	accBits := 0
	pos := nBytes
	for _, limb := range z.limbs {
		acc |= uint32(limb) << uint(accBits)
		accBits += limbBits
		for accBits >= 8 {
			pos--
			out[pos] = byte(acc & 0xff)
			acc >>= 8
			accBits -= 8
		}
	}
	if accBits > 0 {
		pos--
		out[pos] = byte(acc & 0xff)
	}

	start := 0
	for start < len(out)-1 && out[start] == 0 {
		start++
	}
	return out[start:]
}

// String renders z as a base-10 string, with a leading '-' for negative
// values and "0" for zero. Implemented by repeatedly dividing by 10^9 and
// prepending each 9-digit remainder, zero-padded to 9 digits except for the
// most significant chunk, which is written without padding.
func (z *Int) String() string {
	if z.IsZero() {
		return "0"
	}
	mag := z.Abs()
	var chunks []int64
	for !mag.IsZero() {
		q, r, _ := mag.DivMod(nineDigitBase)
		chunks = append(chunks, r.mustInt64())
		mag = q
	}
	// chunks is least-significant-first; render most-significant-first,
	// padding every chunk but the topmost to 9 digits.
	var b strings.Builder
	if z.neg {
		b.WriteByte('-')
	}
	for i := len(chunks) - 1; i >= 0; i-- {
		if i == len(chunks)-1 {
			fmt.Fprintf(&b, "%d", chunks[i])
		} else {
			fmt.Fprintf(&b, "%09d", chunks[i])
		}
	}
	return b.String()
}

// HexString renders z's magnitude as lowercase hex (no "0x" prefix, no
// sign), the inverse of the "interpret as base-256 bytes" half of
// NewIntFromString's base-16 path. Zero renders as "00".
func (z *Int) HexString() string {
	b := z.Bytes()
	if len(b) == 0 {
		return "00"
	}
	return fmt.Sprintf("%x", b)
}

// mustInt64 converts the magnitude of z to int64, ignoring the sign. The
// magnitude must fit in 63 bits: String calls it on a 10^9 remainder, and
// Int64 calls it only after checking BitLen.
func (z *Int) mustInt64() int64 {
	var v int64
	for i := len(z.limbs) - 1; i >= 0; i-- {
		v = v<<limbBits | int64(z.limbs[i])
	}
	return v
}

// Int64 converts z to an int64. The second return value is false if z does
// not fit in an int64, in which case the first return value is 0.
func (z *Int) Int64() (int64, bool) {
	if z.BitLen() > 63 {
		// -2^63 is the one value needing 64 bits of magnitude that fits.
		if z.neg && z.BitLen() == 64 && magCmp(z.limbs, magLsh([]uint16{1}, 63)) == 0 {
			return -1 << 63, true
		}
		return 0, false
	}
	v := z.mustInt64()
	if z.neg {
		v = -v
	}
	return v, true
}
