// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic in GF(256) with the field
// polynomial x⁸+x⁴+x³+x²+1 and generator α = 2, polynomials over it,
// and the Reed-Solomon encoding used by QR codes.
package gf256 // import "github.com/unixdj/qrsym/gf256"

import "errors"

// ErrDomain is returned by Log for zero, which has no logarithm.
var ErrDomain = errors.New("gf256: logarithm of zero")

// Order is the order of the multiplicative group of the field.
const Order = 255

var (
	expTab [256]byte // expTab[i] = α^i, expTab[255] = 1
	logTab [256]byte // logTab[α^i] = i, logTab[0] unused
)

func init() {
	// α^8 = α^4 + α^3 + α^2 + 1, so for i >= 8
	// α^i = α^(i-4) + α^(i-5) + α^(i-6) + α^(i-8).
	for i := 0; i < 8; i++ {
		expTab[i] = 1 << i
	}
	for i := 8; i < len(expTab); i++ {
		expTab[i] = expTab[i-4] ^ expTab[i-5] ^ expTab[i-6] ^ expTab[i-8]
	}
	for i := 0; i < Order; i++ {
		logTab[expTab[i]] = byte(i)
	}
}

// Exp returns α^n.  n may be any integer; it is brought into [0, 255]
// by adding or subtracting 255.
func Exp(n int) byte {
	for n < 0 {
		n += Order
	}
	for n > Order {
		n -= Order
	}
	return expTab[n]
}

// Log returns the discrete logarithm of v in [0, 254].
// Log fails with ErrDomain if v is zero.
func Log(v byte) (int, error) {
	if v < 1 {
		return 0, ErrDomain
	}
	return int(logTab[v]), nil
}

// Add returns a+b, which is the same as a-b.
func Add(a, b byte) byte { return a ^ b }

// Mul returns a*b.
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTab[(int(logTab[a])+int(logTab[b]))%Order]
}

// Inv returns the multiplicative inverse of v.  Inv panics if v is zero.
func Inv(v byte) byte {
	if v == 0 {
		panic("gf256: inverse of zero")
	}
	return expTab[Order-int(logTab[v])]
}

// Div returns a/b.  Div panics if b is zero.
func Div(a, b byte) byte {
	if b == 0 {
		panic("gf256: division by zero")
	}
	if a == 0 {
		return 0
	}
	return Exp(int(logTab[a]) - int(logTab[b]))
}
