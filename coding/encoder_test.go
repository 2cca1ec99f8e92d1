// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(c *Code) []string {
	r := make([]string, c.Size)
	for y := range r {
		var b strings.Builder
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		r[y] = b.String()
	}
	return r
}

var helloWorld1Q = []string{
	"111111100001001111111",
	"100000101100101000001",
	"101110100101101011101",
	"101110101111101011101",
	"101110101101001011101",
	"100000100100101000001",
	"111111101010101111111",
	"000000001101100000000",
	"010111101100111011010",
	"101111010000111101110",
	"001010110001001100000",
	"101101000101100011000",
	"110111111110111011111",
	"000000001000100101000",
	"111111100110011001111",
	"100000101010010010111",
	"101110101101001000111",
	"101110101011100010100",
	"101110100100001000011",
	"100000101110011100110",
	"111111100101000000010",
}

var numeric1M = []string{
	"111111101001101111111",
	"100000100100001000001",
	"101110100010101011101",
	"101110101010001011101",
	"101110101110101011101",
	"100000101011001000001",
	"111111101010101111111",
	"000000001111100000000",
	"100010111101011111001",
	"111110001001100101100",
	"010011111001001110001",
	"101001011010011011111",
	"011101110000111000001",
	"000000001100111000111",
	"111111101000110001010",
	"100000100001100101010",
	"101110101001001110111",
	"101110100011100101011",
	"101110100011001111100",
	"100000100010011010110",
	"111111101100111000111",
}

func TestCodewords(t *testing.T) {
	var b Bits
	require.NoError(t, Segment{"HELLO WORLD", Alphanumeric}.Encode(&b, 1))
	assert.Equal(t, []byte{
		32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236,
		168, 72, 22, 82, 217, 54, 156, 0, 46, 15, 180, 122, 16,
	}, Codewords(&b, 1, Q))
}

func TestCodewordsInterleave(t *testing.T) {
	// 5-Q: two blocks of 15 and two of 16 data codewords
	var b Bits
	for i := 0; i < 62; i++ {
		b.Write(uint32(i), 8)
	}
	cw := Codewords(&b, 5, Q)
	require.Len(t, cw, Version(5).TotalBytes())
	assert.Equal(t, []byte{0, 15, 30, 46, 1, 16, 31, 47}, cw[:8])
	// the last data codewords come from the longer blocks only
	assert.Equal(t, []byte{14, 29, 44, 60}, cw[56:60])
	assert.Equal(t, []byte{45, 61}, cw[60:62])
}

func TestEncodeGolden(t *testing.T) {
	for _, tt := range []struct {
		seg  Segment
		v    Version
		l    Level
		mask Mask
		pen  [MaxMask + 1]int
		rows []string
	}{
		{
			Segment{"HELLO WORLD", Alphanumeric}, 1, Q, 6,
			[8]int{1417, 1200, 1226, 1294, 1286, 1294, 1145, 1414},
			helloWorld1Q,
		},
		{
			Segment{"12345", Numeric}, 1, M, 4,
			[8]int{1158, 1335, 1219, 1252, 1125, 1202, 1336, 1205},
			numeric1M,
		},
	} {
		var b Bits
		require.NoError(t, tt.seg.Encode(&b, tt.v))
		p, err := NewPlan(tt.v)
		require.NoError(t, err)
		mask, pen, err := p.BestMask(Codewords(&b, tt.v, tt.l), tt.l)
		require.NoError(t, err)
		assert.Equal(t, tt.mask, mask)
		assert.Equal(t, tt.pen, pen)

		c, err := Encode(tt.v, tt.l, tt.seg)
		require.NoError(t, err)
		assert.Equal(t, tt.mask, c.Mask)
		assert.Equal(t, tt.v, c.Version)
		assert.Equal(t, tt.l, c.Level)
		assert.Equal(t, tt.rows, rows(c))
	}
}

func TestEncodeAutoVersion(t *testing.T) {
	c, err := Encode(0, Q, Segment{"HELLO WORLD", Alphanumeric})
	require.NoError(t, err)
	assert.Equal(t, Version(1), c.Version)
	assert.Equal(t, 21, c.Size)

	neg, err := Encode(-3, Q, Segment{"HELLO WORLD", Alphanumeric})
	require.NoError(t, err)
	assert.Equal(t, c, neg)

	// 1-Q holds 13 bytes: 4+8+13*8 = 116 > 104
	v, err := ChooseVersion(Q, Segment{strings.Repeat("a", 13), Byte})
	require.NoError(t, err)
	assert.Equal(t, Version(2), v)

	v, err = ChooseVersion(L, Segment{strings.Repeat("a", 17), Byte})
	require.NoError(t, err)
	assert.Equal(t, Version(1), v)
}

func TestEncodeAllCells(t *testing.T) {
	c, err := Encode(1, M, Segment{"12345", Numeric})
	require.NoError(t, err)
	require.Equal(t, 21, c.Size)
	for r := 0; r < 21; r++ {
		for col := 0; col < 21; col++ {
			_, err := c.IsDark(r, col)
			require.NoError(t, err)
		}
	}
	var re *RangeError
	_, err = c.IsDark(21, 0)
	require.True(t, errors.As(err, &re))
	assert.Equal(t, RangeError{Row: 21, Col: 0, Size: 21}, *re)
	_, err = c.IsDark(0, -1)
	assert.True(t, errors.As(err, &re))
}

func TestEncodeTooLong(t *testing.T) {
	long := Segment{strings.Repeat("x", 2954), Byte}
	_, err := Encode(0, L, long)
	assert.ErrorIs(t, err, ErrNoVersion)

	var ce *CapacityError
	_, err = Encode(40, L, long)
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, Version(40), ce.Version)
	assert.Equal(t, L, ce.Level)
	assert.Equal(t, 4+16+2954*8, ce.Bits)
	assert.Equal(t, 2956*8, ce.Max)

	// the largest byte segment that fits
	c, err := Encode(0, L, Segment{strings.Repeat("x", 2953), Byte})
	require.NoError(t, err)
	assert.Equal(t, Version(40), c.Version)
}

func TestEncodeInvalid(t *testing.T) {
	var se *SegmentError
	_, err := Encode(0, Q, Segment{"hello", Alphanumeric})
	require.True(t, errors.As(err, &se))
	assert.Zero(t, se.Offset)
	_, err = Encode(1, Q, Segment{"hello", Alphanumeric})
	assert.True(t, errors.As(err, &se))

	_, err = Encode(1, Level(4), Segment{"1", Numeric})
	assert.ErrorIs(t, err, ErrLevel)
	_, err = Encode(0, Level(-1), Segment{"1", Numeric})
	assert.ErrorIs(t, err, ErrLevel)
	_, err = Encode(41, L, Segment{"1", Numeric})
	assert.ErrorIs(t, err, ErrVersion)
	_, err = Encode(0, L, Segment{"1", Mode(9)})
	assert.Equal(t, ModeError(9), err)

	e, err := NewEncoder(1, L)
	require.NoError(t, err)
	require.NoError(t, e.Write(Segment{"1", Numeric}))
	_, err = e.CodeMask(8)
	assert.Equal(t, MaskError(8), err)
}

func TestEncodeMaskSelection(t *testing.T) {
	for _, tt := range []struct {
		seg Segment
		l   Level
	}{
		{Segment{"HELLO WORLD", Alphanumeric}, M},
		{Segment{"https://example.com/", Byte}, H},
		{Segment{strings.Repeat("31415926535", 20), Numeric}, L},
	} {
		v, err := ChooseVersion(tt.l, tt.seg)
		require.NoError(t, err)
		e, err := NewEncoder(v, tt.l)
		require.NoError(t, err)
		require.NoError(t, e.Write(tt.seg))
		c, err := e.Code()
		require.NoError(t, err)

		var b Bits
		require.NoError(t, tt.seg.Encode(&b, v))
		p, _ := NewPlan(v)
		pen, err := p.Penalties(Codewords(&b, v, tt.l), tt.l)
		require.NoError(t, err)
		for m, n := range pen {
			assert.LessOrEqual(t, pen[c.Mask], n, "mask %d", m)
		}

		// explicit mask builds the same symbol
		require.NoError(t, e.Write(tt.seg))
		c2, err := e.CodeMask(c.Mask)
		require.NoError(t, err)
		assert.Equal(t, c, c2)
	}
}

func TestEncoderReuse(t *testing.T) {
	e, err := NewEncoder(2, M)
	require.NoError(t, err)
	c1, err := e.Encode(Segment{"HELLO WORLD", Alphanumeric})
	require.NoError(t, err)
	assert.Zero(t, e.Bits())
	c2, err := e.Encode(Segment{"HELLO WORLD", Alphanumeric})
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
	assert.Equal(t, Mask(3), c1.Mask)
}
