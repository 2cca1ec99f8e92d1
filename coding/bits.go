// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is a bit buffer written most significant bit first.
// The zero value is an empty buffer ready to use.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, v.TotalBytes())}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written to b.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the contents of b.  It panics if b does not hold a
// whole number of bytes.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v to b, most significant first.
// nbit must be at most 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit <= 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// PutBit appends one bit to b, growing the buffer a byte at a time.
func (b *Bits) PutBit(bit bool) {
	if b.nbit&7 == 0 {
		b.b = append(b.b, 0)
	}
	if bit {
		b.b[len(b.b)-1] |= 0x80 >> (b.nbit & 7)
	}
	b.nbit++
}

// At reports whether bit i is set.  At panics if i is out of range.
func (b *Bits) At(i int) bool {
	if i < 0 || i >= b.nbit {
		panic("qr: bit index out of range")
	}
	return b.b[i>>3]>>(7&^i)&1 != 0
}

// Get returns nbit bits starting at bit i as an integer.
// nbit must be at most 32.
func (b *Bits) Get(i, nbit int) uint32 {
	var v uint32
	for end := i + nbit; i < end; i++ {
		v <<= 1
		if b.At(i) {
			v |= 1
		}
	}
	return v
}

// Pad appends a four bit terminator if it fits, zero bits up to a byte
// boundary, and alternating pad bytes 0xec and 0x11 until b holds n
// bytes.  Pad panics if b already holds more than n bytes.
func (b *Bits) Pad(n int) {
	if b.nbit > n*8 {
		panic("qr: too much data")
	}
	if b.nbit+4 <= n*8 {
		b.Write(0, 4)
	}
	for b.nbit&7 != 0 {
		b.PutBit(false)
	}
	for i := 0; len(b.b) < n; i++ {
		b.Write(uint32([2]byte{0xec, 0x11}[i&1]), 8)
	}
}
