// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// A Poly is a polynomial over GF(256) with coefficients stored from the
// highest power down.  A normalised Poly has no leading zero
// coefficients; the zero polynomial is empty.
type Poly []byte

// NewPoly returns coef multiplied by x^shift, with leading zero
// coefficients stripped.  coef is not modified.
func NewPoly(coef []byte, shift int) Poly {
	for len(coef) != 0 && coef[0] == 0 {
		coef = coef[1:]
	}
	if len(coef) == 0 {
		return nil
	}
	p := make(Poly, len(coef)+shift)
	copy(p, coef)
	return p
}

// Len returns the number of coefficients in p.
func (p Poly) Len() int { return len(p) }

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p) - 1 }

// At returns the i-th coefficient of p, counting from the highest power.
func (p Poly) At(i int) byte { return p[i] }

// Multiply returns p*q.
func (p Poly) Multiply(q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	r := make([]byte, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		la := int(logTab[a])
		for j, b := range q {
			if b != 0 {
				r[i+j] ^= Exp(la + int(logTab[b]))
			}
		}
	}
	return NewPoly(r, 0)
}

// Mod returns the remainder of p divided by d.  If p has a lower degree
// than d, p is returned unchanged.  Mod panics if d is zero.
func (p Poly) Mod(d Poly) Poly {
	d = NewPoly(d, 0)
	if len(d) == 0 {
		panic("gf256: division by zero polynomial")
	}
	p = NewPoly(p, 0)
	ld := int(logTab[d[0]])
	for len(p) >= len(d) {
		// Cancel the leading term with d scaled by p[0]/d[0].
		ratio := int(logTab[p[0]]) - ld
		r := make([]byte, len(p))
		copy(r, p)
		for i, c := range d {
			if c != 0 {
				r[i] ^= Exp(int(logTab[c]) + ratio)
			}
		}
		p = NewPoly(r, 0)
	}
	return p
}

// Eval returns p(x).
func (p Poly) Eval(x byte) byte {
	var v byte
	for _, c := range p {
		v = Mul(v, x) ^ c
	}
	return v
}
