// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var finderRows = [7]string{
	"1111111",
	"1000001",
	"1011101",
	"1011101",
	"1011101",
	"1000001",
	"1111111",
}

func checkFinder(t *testing.T, m *Matrix, row, col int) {
	t.Helper()
	for r, s := range finderRows {
		for c, ch := range s {
			assert.Equal(t, mod(ch == '1'), m.At(row+r, col+c),
				"finder at (%d, %d): (%d, %d)", row, col, r, c)
		}
	}
}

func TestPlanFunctionPatterns(t *testing.T) {
	for _, v := range []Version{1, 2, 7, 14, 40} {
		p, err := NewPlan(v)
		require.NoError(t, err)
		siz := v.Size()
		require.Equal(t, siz, p.Size)
		m := p.base
		checkFinder(t, m, 0, 0)
		checkFinder(t, m, siz-7, 0)
		checkFinder(t, m, 0, siz-7)
		// separators
		for i := 0; i < 8; i++ {
			assert.Equal(t, Light, m.At(7, i))
			assert.Equal(t, Light, m.At(i, 7))
			assert.Equal(t, Light, m.At(siz-8, i))
			assert.Equal(t, Light, m.At(7, siz-1-i))
		}
		// timing
		for i := 8; i < siz-8; i++ {
			assert.Equal(t, mod(i%2 == 0), m.At(6, i), "version %d", v)
			assert.Equal(t, mod(i%2 == 0), m.At(i, 6), "version %d", v)
		}
		// alignment patterns except those overlapping finders
		pos := v.Alignment()
		for _, r := range pos {
			for _, c := range pos {
				if r == 6 && (c == 6 || c == siz-7) || r == siz-7 && c == 6 {
					continue
				}
				assert.Equal(t, Dark, m.At(r, c), "centre (%d, %d)", r, c)
				assert.Equal(t, Light, m.At(r-1, c), "ring (%d, %d)", r, c)
				assert.Equal(t, Dark, m.At(r+2, c+2), "edge (%d, %d)", r, c)
			}
		}
		// data and format areas are left
		assert.Equal(t, Unset, m.At(8, 0))
		assert.Equal(t, Unset, m.At(siz-1, siz-1))
		assert.False(t, m.Complete())
	}

	p1, _ := NewPlan(1)
	p2, _ := NewPlan(1)
	assert.Same(t, p1, p2)

	_, err := NewPlan(0)
	assert.ErrorIs(t, err, ErrVersion)
	_, err = NewPlan(41)
	assert.ErrorIs(t, err, ErrVersion)
}

func TestBuild(t *testing.T) {
	p, err := NewPlan(7)
	require.NoError(t, err)
	data := make([]byte, Version(7).TotalBytes())
	siz := p.Size

	m, err := p.Build(data, M, 2, false)
	require.NoError(t, err)
	assert.True(t, m.Complete())
	assert.Equal(t, Dark, m.At(siz-8, 8))
	vb := VersionBits(7)
	for i := 0; i < 18; i++ {
		want := mod(vb>>i&1 != 0)
		assert.Equal(t, want, m.At(i/3, i%3+siz-11), "version bit %d", i)
		assert.Equal(t, want, m.At(i%3+siz-11, i/3), "version bit %d", i)
	}
	fb := FormatBits(M, 2)
	for i := 0; i < 8; i++ {
		assert.Equal(t, mod(fb>>i&1 != 0), m.At(8, siz-1-i), "format bit %d", i)
	}
	// zero data leaves only the mask
	assert.Equal(t, mod(Mask(2).Dark(siz-1, siz-1)), m.At(siz-1, siz-1))

	m, err = p.Build(data, M, 2, true)
	require.NoError(t, err)
	assert.True(t, m.Complete())
	assert.Equal(t, Light, m.At(siz-8, 8))
	for i := 0; i < 18; i++ {
		assert.Equal(t, Light, m.At(i/3, i%3+siz-11))
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, Light, m.At(8, siz-1-i))
	}

	for i := 0; i < 6; i++ {
		assert.Equal(t, Light, m.At(i, 8))
	}
	assert.Equal(t, Light, m.At(7, 8))
	assert.Equal(t, Light, m.At(8, 8))

	// the cached plan is unchanged
	assert.False(t, p.base.Complete())

	_, err = p.Build(data, M, 8, false)
	assert.Equal(t, MaskError(8), err)
	_, err = p.Build(data, Level(5), 0, false)
	assert.ErrorIs(t, err, ErrLevel)
}

func TestMaskDark(t *testing.T) {
	assert.True(t, Mask(0).Dark(0, 0))
	assert.False(t, Mask(0).Dark(0, 1))
	assert.True(t, Mask(1).Dark(2, 1))
	assert.True(t, Mask(2).Dark(1, 3))
	assert.False(t, Mask(2).Dark(1, 2))
	assert.True(t, Mask(4).Dark(1, 2))
	assert.False(t, Mask(4).Dark(2, 0))
	for m := Mask(0); m <= MaxMask; m++ {
		assert.True(t, m.Dark(0, 0), "mask %d", m)
	}
	assert.Panics(t, func() { Mask(-1).Dark(0, 0) })
}
