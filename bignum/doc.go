// Copyright (c) 2024 The cryptonum developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bignum implements arbitrary-precision signed integer arithmetic
// suitable for use in cryptographic primitives such as RSA.
//
// The magnitude of an Int is stored as a slice of 15-bit limbs, least
// significant limb first, paired with a sign flag. All arithmetic -
// addition, subtraction, schoolbook multiplication and squaring, long
// division, shifts, and comparison - operates on that representation.
// Modular exponentiation is built on top of a sliding-window exponentiator
// that can be driven by any of four pluggable reduction strategies
// (Montgomery, Barrett, power-of-two masking, or classic long division),
// and modular inversion uses a binary extended-GCD.
//
// This package is not constant-time. It is a functional reference for
// multi-precision arithmetic, not a side-channel-hardened primitive;
// callers with constant-time requirements must use a dedicated
// implementation instead.
package bignum
