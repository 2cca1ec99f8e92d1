// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/unixdj/qrsym/coding"
)

func TestEncodeScenarios(t *testing.T) {
	c, err := Encode("HELLO WORLD", Alphanumeric, Q, AutoVersion)
	require.NoError(t, err)
	assert.Equal(t, Version(1), c.Version())
	assert.Equal(t, 21, c.Size())

	c, err = Encode("12345", Numeric, M, 1)
	require.NoError(t, err)
	require.Equal(t, 21, c.Size())
	for r := 0; r < c.Size(); r++ {
		for col := 0; col < c.Size(); col++ {
			_, err := c.IsDark(r, col)
			require.NoError(t, err)
		}
	}

	long := strings.Repeat("z", 2954)
	_, err = Encode(long, Byte, L, AutoVersion)
	assert.ErrorIs(t, err, coding.ErrNoVersion)
	_, err = Encode(long, Byte, L, -1)
	assert.ErrorIs(t, err, coding.ErrNoVersion)
	var ce *coding.CapacityError
	_, err = Encode(long, Byte, L, 40)
	assert.True(t, errors.As(err, &ce))

	var se *coding.SegmentError
	_, err = Encode("HELLO wORLD", Alphanumeric, Q, AutoVersion)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 6, se.Offset)
	assert.Equal(t, 'w', se.Rune)
}

func TestEncodeMaskChoice(t *testing.T) {
	for _, text := range []string{"HELLO WORLD", "0", "QR CODE $%*+-./:"} {
		c, err := Encode(text, Alphanumeric, H, AutoVersion)
		require.NoError(t, err)
		best := c.Mask()
		for m := Mask(0); m <= coding.MaxMask; m++ {
			mc, err := EncodeMask(text, Alphanumeric, H, c.Version(), m)
			require.NoError(t, err)
			assert.Equal(t, m, mc.Mask())
			if m == best {
				assert.Equal(t, c.Rows(), mc.Rows())
			}
		}
	}
	_, err := EncodeMask("1", Numeric, L, 1, 9)
	assert.Equal(t, coding.MaskError(9), err)
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode("1", Numeric, Level(7), 1)
	assert.ErrorIs(t, err, coding.ErrLevel)
	_, err = Encode("1", Numeric, Level(7), AutoVersion)
	assert.ErrorIs(t, err, coding.ErrLevel)
	_, err = Encode("1", Numeric, L, 41)
	assert.ErrorIs(t, err, coding.ErrVersion)
	_, err = Encode("1", Mode(5), L, AutoVersion)
	var me coding.ModeError
	assert.True(t, errors.As(err, &me))
}

func TestRows(t *testing.T) {
	c, err := Encode("HELLO WORLD", Alphanumeric, Q, 1)
	require.NoError(t, err)
	rows := c.Rows()
	require.Len(t, rows, 21)
	assert.Equal(t, "111111100001001111111", rows[0])
	for r, s := range rows {
		for col, ch := range s {
			d, err := c.IsDark(r, col)
			require.NoError(t, err)
			assert.Equal(t, d, ch == '1')
			assert.Equal(t, d, c.Black(col, r))
		}
	}
	assert.False(t, c.Black(-1, 0))
}

func TestSplit(t *testing.T) {
	for _, tt := range []struct {
		text  string
		modes []Mode
	}{
		{"", nil},
		{"0123456789", []Mode{Numeric}},
		{"HELLO WORLD", []Mode{Alphanumeric}},
		{"hello", []Mode{Byte}},
		{"HTTPS://EXAMPLE.COM/0123456789012345678901234567890123456789",
			[]Mode{Alphanumeric, Numeric}},
		{"A1", []Mode{Alphanumeric}},
		{"1A", []Mode{Alphanumeric}},
		{"żółw", []Mode{Byte}},
	} {
		segs, v, err := Split(tt.text, L)
		require.NoError(t, err, "%q", tt.text)
		var modes []Mode
		for _, s := range segs {
			modes = append(modes, s.Mode)
		}
		assert.Equal(t, tt.modes, modes, "%q", tt.text)
		assert.True(t, v.IsValid(), "%q", tt.text)
	}

	_, _, err := Split("x", Level(-1))
	assert.ErrorIs(t, err, coding.ErrLevel)
	_, _, err = Split(strings.Repeat("x", 3000), L)
	assert.ErrorIs(t, err, coding.ErrNoVersion)
}

func TestSplitProperties(t *testing.T) {
	alphabet := []rune("0123456789ABCXYZ $%*+-./:abcé€\x00")
	rapid.Check(t, func(t *rapid.T) {
		text := string(rapid.SliceOfN(rapid.SampledFrom(alphabet), 0, 300).Draw(t, "text"))
		level := Level(rapid.IntRange(0, 3).Draw(t, "level"))
		segs, v, err := Split(text, level)
		if err != nil {
			t.Fatalf("Split(%q): %v", text, err)
		}
		var b strings.Builder
		n := 0
		for _, s := range segs {
			if err := s.Validate(); err != nil {
				t.Fatalf("invalid segment: %v", err)
			}
			b.WriteString(s.Text)
			n += s.EncodedLength(v)
		}
		if b.String() != text {
			t.Fatalf("segments join to %q, want %q", b.String(), text)
		}
		if n > v.DataBits(level) {
			t.Fatalf("%d bits in version %d-%v", n, v, level)
		}
		if v > 1 && v != 10 && v != 27 && n <= (v-1).DataBits(level) {
			t.Fatalf("%d bits fit in version %d-%v", n, v-1, level)
		}
		if whole := (coding.Segment{Text: text, Mode: Byte}).EncodedLength(v); n > whole {
			t.Fatalf("split %d bits longer than byte mode %d", n, whole)
		}
		c, err := EncodeText(text, level)
		if err != nil {
			t.Fatalf("EncodeText(%q): %v", text, err)
		}
		if c.Version() != v {
			t.Fatalf("EncodeText version %d, Split %d", c.Version(), v)
		}
	})
}

func TestPenalties(t *testing.T) {
	seg := coding.Segment{Text: "HELLO WORLD", Mode: Alphanumeric}
	pen, err := Penalties(Q, 1, seg)
	require.NoError(t, err)
	assert.Equal(t, [8]int{1417, 1200, 1226, 1294, 1286, 1294, 1145, 1414}, pen)
	c, err := EncodeSegments(Q, 1, seg)
	require.NoError(t, err)
	for m, p := range pen {
		assert.LessOrEqual(t, pen[c.Mask()], p, "mask %d", m)
	}

	_, err = Penalties(Q, 0, seg)
	assert.ErrorIs(t, err, coding.ErrVersion)
	_, err = Penalties(H, 1, coding.Segment{Text: strings.Repeat("9", 100), Mode: Numeric})
	var ce *coding.CapacityError
	assert.True(t, errors.As(err, &ce))
}
