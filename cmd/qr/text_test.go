// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qr "github.com/unixdj/qrsym"
)

// grid is a symbol given as rows of '1' and '0'.
type grid []string

func (g grid) Size() int { return len(g) }

func (g grid) Black(x, y int) bool {
	return 0 <= y && y < len(g) && 0 <= x && x < len(g[y]) && g[y][x] == '1'
}

var diag = grid{
	"100",
	"010",
	"001",
}

func TestASCII(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, ascii(&b, diag, 1, false))
	assert.Equal(t, ""+
		"          \n"+
		"  ##      \n"+
		"    ##    \n"+
		"      ##  \n"+
		"          \n", b.String())

	b.Reset()
	require.NoError(t, ascii(&b, diag, 0, true))
	assert.Equal(t, "  ####\n##  ##\n####  \n", b.String())
}

func TestUTF8(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, utf8(&b, diag, 0, false))
	assert.Equal(t, "▀▄ \n  ▀\n", b.String())

	b.Reset()
	require.NoError(t, utf8(&b, diag, 1, false))
	assert.Equal(t, ""+
		" ▄   \n"+
		"  ▀▄ \n"+
		"     \n", b.String())

	b.Reset()
	require.NoError(t, utf8(&b, diag, 0, true))
	assert.Equal(t, "▄▀█\n▀▀ \n", b.String())
}

func TestBits(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, bits(&b, diag))
	assert.Equal(t, "100\n010\n001\n", b.String())
}

func TestWrite(t *testing.T) {
	c, err := qr.Encode("12345", qr.Numeric, qr.M, 1)
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, write(&b, c, "bits", 4))
	assert.Equal(t, strings.Join(c.Rows(), "\n")+"\n", b.String())

	for _, f := range []string{"utf8", "utf8i", "ascii", "asciii"} {
		b.Reset()
		require.NoError(t, write(&b, c, f, 4), f)
		lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
		want := 29
		if strings.HasPrefix(f, "utf8") {
			want = 15
		}
		assert.Len(t, lines, want, f)
	}

	assert.Error(t, write(&b, c, "png", 4))
}
