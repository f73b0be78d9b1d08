// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bignum

import "strings"

// NewIntFromInt64 converts a native int64 to an Int. This is a convenience
// constructor outside the base-N family below, used throughout bignum
// itself for small fixed constants (0, 1, 2) and exposed for callers who
// would otherwise have to round-trip through NewIntFromString.
func NewIntFromInt64(v int64) *Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	var limbs []uint16
	for u != 0 {
		limbs = append(limbs, uint16(u&limbMask))
		u >>= limbBits
	}
	return fromMag(limbs, neg)
}

// hexNibble returns the value of a single hex digit, or -1 if c is not one.
func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// keepDigits filters s down to the bytes for which accept reports true,
// mirroring the base constructors' "keep only digits of this base" step.
func keepDigits(s string, accept func(byte) bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if accept(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// NewIntFromString parses a signed integer literal in the given base. The
// accepted bases are 2, 10 and 16; base 256 is not representable as a
// string and has its own constructor, NewIntFromBytes. Any base outside
// {2,10,16} yields zero, returned together with an ErrInvalidBase error,
// and non-digit characters (other than a leading sign and, for base 16, a
// leading "0x") are simply discarded rather than rejected.
func NewIntFromString(s string, base int) (*Int, error) {
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	switch base {
	case 16:
		return newIntFromHexDigits(s, neg)
	case 2:
		return newIntFromBinaryDigits(s, neg)
	case 10:
		return newIntFromDecimalDigits(s, neg)
	default:
		return Zero(), newError(ErrInvalidBase, "unsupported base")
	}
}

// newIntFromHexDigits strips an optional "0x" prefix, keeps only hex
// digits, left-pads to an even digit count, and interprets the result as
// base-256 bytes.
func newIntFromHexDigits(s string, neg bool) (*Int, error) {
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	s = keepDigits(s, func(c byte) bool { return hexNibble(c) >= 0 })
	if len(s)%2 != 0 {
		s = "0" + s
	}
	if s == "" {
		return Zero(), nil
	}
	bytes := make([]byte, len(s)/2)
	for i := range bytes {
		hi := hexNibble(s[2*i])
		lo := hexNibble(s[2*i+1])
		bytes[i] = byte(hi<<4 | lo)
	}
	v := NewIntFromBytes(bytes)
	v.neg = neg && !v.IsZero()
	return v, nil
}

// newIntFromBinaryDigits keeps only '0'/'1', left-pads to a multiple of
// 4, regroups into hex nibbles, and delegates to the base-16 constructor.
func newIntFromBinaryDigits(s string, neg bool) (*Int, error) {
	s = keepDigits(s, func(c byte) bool { return c == '0' || c == '1' })
	for len(s)%4 != 0 {
		s = "0" + s
	}
	var hex strings.Builder
	for i := 0; i < len(s); i += 4 {
		nibble := 0
		for j := 0; j < 4; j++ {
			nibble = nibble<<1 | int(s[i+j]-'0')
		}
		hex.WriteByte("0123456789abcdef"[nibble])
	}
	return newIntFromHexDigits(hex.String(), neg)
}

// nineDigitBase is 10^9, the chunk radix the base-10 constructor consumes
// decimal digits under; it fits two 15-bit limbs with headroom.
var nineDigitBase = NewIntFromInt64(1000000000)

// newIntFromDecimalDigits keeps only decimal digits, left-pads to a
// multiple of 9, and consumes 9 digits at a time, each chunk multiplying
// a running accumulator by 10^9 and adding the chunk's value.
func newIntFromDecimalDigits(s string, neg bool) (*Int, error) {
	s = keepDigits(s, func(c byte) bool { return c >= '0' && c <= '9' })
	for len(s)%9 != 0 {
		s = "0" + s
	}
	acc := Zero()
	for i := 0; i < len(s); i += 9 {
		chunk := int64(0)
		for j := 0; j < 9; j++ {
			chunk = chunk*10 + int64(s[i+j]-'0')
		}
		prod, err := acc.Mul(nineDigitBase)
		if err != nil {
			return nil, err
		}
		sum, err := prod.Add(NewIntFromInt64(chunk))
		if err != nil {
			return nil, err
		}
		acc = sum
	}
	acc.neg = neg && !acc.IsZero()
	return acc, nil
}

// NewIntFromBytes decodes a base-256 big-endian magnitude as a non-negative
// Int. This mirrors the wire format RSA moduli and ciphertexts are
// typically carried in.
func NewIntFromBytes(b []byte) *Int {
	limbs := []uint16{}
	acc := uint32(0)
	accBits := 0
	for i := len(b) - 1; i >= 0; i-- {
		acc |= uint32(b[i]) << uint(accBits)
		accBits += 8
		for accBits >= limbBits {
			limbs = append(limbs, uint16(acc&limbMask))
			acc >>= limbBits
			accBits -= limbBits
		}
	}
	if accBits > 0 && acc != 0 {
		limbs = append(limbs, uint16(acc&limbMask))
	}
	return fromMag(limbs, false)
}
