// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "sync"

// Generator polynomials by degree, built on first use.
var gen struct {
	sync.Mutex
	p []Poly
}

// Generator returns the Reed-Solomon generator polynomial of degree n,
// the product of (x - α^i) for i in [0, n).  The caller owns the
// returned slice.
func Generator(n int) Poly {
	return append(Poly(nil), generator(n)...)
}

// generator returns the cached generator of degree n, which must not
// be modified.
func generator(n int) Poly {
	gen.Lock()
	defer gen.Unlock()
	if len(gen.p) == 0 {
		gen.p = append(gen.p, Poly{1})
	}
	for d := len(gen.p); d <= n; d++ {
		gen.p = append(gen.p, gen.p[d-1].Multiply(Poly{1, Exp(d - 1)}))
	}
	return gen.p[n]
}

// An RSEncoder computes Reed-Solomon check bytes.
type RSEncoder struct {
	gen Poly
	c   int
}

// NewRSEncoder returns an RSEncoder producing c check bytes.
func NewRSEncoder(c int) *RSEncoder {
	return &RSEncoder{gen: generator(c), c: c}
}

// ECC writes the check bytes for data to check, which must have the
// length given to NewRSEncoder.  The check bytes are the remainder of
// data·x^c divided by the generator, left-padded with zeros.
func (rs *RSEncoder) ECC(data, check []byte) {
	if len(check) != rs.c {
		panic("gf256: invalid check byte length")
	}
	rem := NewPoly(data, rs.c).Mod(rs.gen)
	n := rs.c - len(rem)
	clear(check[:n])
	copy(check[n:], rem)
}
