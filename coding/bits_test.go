// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBitsWrite(t *testing.T) {
	var b Bits
	b.Write(0b0010, 4)
	b.Write(11, 9)
	assert.Equal(t, 13, b.Bits())
	b.Write(0, 3)
	assert.Equal(t, []byte{0x20, 0x58}, b.Bytes())
	assert.Equal(t, uint32(11), b.Get(4, 9))
}

func TestBitsRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var b Bits
		type field struct {
			v    uint32
			nbit int
		}
		var fields []field
		total := 0
		for _, n := range rapid.SliceOfN(rapid.IntRange(1, 32), 0, 20).Draw(t, "widths") {
			v := rapid.Uint32().Draw(t, "v")
			if n < 32 {
				v &= 1<<n - 1
			}
			b.Write(v, n)
			fields = append(fields, field{v, n})
			total += n
		}
		if b.Bits() != total {
			t.Fatalf("Bits() = %d, want %d", b.Bits(), total)
		}
		pos := 0
		for _, f := range fields {
			if got := b.Get(pos, f.nbit); got != f.v {
				t.Fatalf("Get(%d, %d) = %#x, want %#x", pos, f.nbit, got, f.v)
			}
			pos += f.nbit
		}
	})
}

func TestBitsPutBit(t *testing.T) {
	var b Bits
	for _, v := range []bool{true, false, true, true} {
		b.PutBit(v)
	}
	assert.Equal(t, 4, b.Bits())
	assert.True(t, b.At(0))
	assert.False(t, b.At(1))
	assert.Panics(t, func() { b.At(4) })
	assert.Panics(t, func() { b.Bytes() })
}

func TestBitsPad(t *testing.T) {
	var b Bits
	b.Write(1, 4)
	b.Pad(4)
	assert.Equal(t, []byte{0x10, 0xec, 0x11, 0xec}, b.Bytes())

	// no room for the terminator
	b.Reset()
	b.Write(0x1fffff, 21)
	b.Pad(3)
	assert.Equal(t, []byte{0xff, 0xff, 0xf8}, b.Bytes())

	b.Reset()
	b.Write(0, 25)
	require.Panics(t, func() { b.Pad(3) })
}
