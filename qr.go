// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR code symbols.

Encode builds a symbol from text in a single encoding mode at an
explicit or automatically selected version.  EncodeText splits text
into numeric, alphanumeric and byte mode segments, choosing the split
with the shortest encoding.  The resulting Code reports the colour of
each module; rendering it is left to the caller.
*/
package qr // import "github.com/unixdj/qrsym"

import (
	"strings"

	"github.com/unixdj/qrsym/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // 20% redundant
	M = coding.M // 38% redundant
	Q = coding.Q // 55% redundant
	H = coding.H // 65% redundant
)

// A Mode is a segment encoding mode.
type Mode = coding.Mode

const (
	Numeric      = coding.Numeric      // digits 0-9
	Alphanumeric = coding.Alphanumeric // 0-9 A-Z SPACE $%*+-./:
	Byte         = coding.Byte         // any bytes
)

// A Version is a QR version from 1 to 40.  A code of version v has
// 4v+17 modules on a side.
type Version = coding.Version

// A Mask is a data mask pattern from 0 to 7.
type Mask = coding.Mask

// AutoVersion selects the lowest version that fits the data.
const AutoVersion Version = 0

// Encode returns a QR code holding text encoded in mode at the given
// error correction level.  If version is not positive, the lowest
// version that fits is used.
func Encode(text string, mode Mode, level Level, version Version) (*Code, error) {
	return EncodeMask(text, mode, level, version, coding.AutoMask)
}

// EncodeMask is like Encode but uses mask pattern m, unless m is
// coding.AutoMask.
func EncodeMask(text string, mode Mode, level Level, version Version, m Mask) (*Code, error) {
	return encode(version, level, m, coding.Segment{Text: text, Mode: mode})
}

// EncodeSegments returns a QR code holding segs at the given error
// correction level.  If version is not positive, the lowest version
// that fits is used.
func EncodeSegments(level Level, version Version, segs ...coding.Segment) (*Code, error) {
	return encode(version, level, coding.AutoMask, segs...)
}

func encode(v Version, l Level, m Mask, seg ...coding.Segment) (*Code, error) {
	if v <= 0 {
		var err error
		if v, err = coding.ChooseVersion(l, seg...); err != nil {
			return nil, err
		}
	}
	e, err := coding.NewEncoder(v, l)
	if err != nil {
		return nil, err
	}
	if err := e.Write(seg...); err != nil {
		return nil, err
	}
	c, err := e.CodeMask(m)
	if err != nil {
		return nil, err
	}
	return &Code{c}, nil
}

// A Code is a square grid of dark and light modules.
type Code struct {
	c *coding.Code
}

// Size returns the number of modules on a side.
func (c *Code) Size() int { return c.c.Size }

// Version returns the QR version of c.
func (c *Code) Version() Version { return c.c.Version }

// Level returns the error correction level of c.
func (c *Code) Level() Level { return c.c.Level }

// Mask returns the mask pattern applied to c.
func (c *Code) Mask() Mask { return c.c.Mask }

// IsDark reports whether the module at (row, col) is dark.  It
// returns *coding.RangeError for coordinates outside the code.
func (c *Code) IsDark(row, col int) (bool, error) { return c.c.IsDark(row, col) }

// Black reports whether the module at column x, row y is dark.
// Modules outside the code, such as the quiet zone, are light.
func (c *Code) Black(x, y int) bool { return c.c.Black(x, y) }

// Penalty returns the mask selection penalty of c.
func (c *Code) Penalty() int { return c.c.Penalty() }

// Rows returns the rows of c from top to bottom as strings of '1'
// for dark and '0' for light modules.
func (c *Code) Rows() []string {
	siz := c.c.Size
	rows := make([]string, siz)
	var b strings.Builder
	for y := range rows {
		b.Reset()
		b.Grow(siz)
		for x := 0; x < siz; x++ {
			b.WriteByte('0' + c.bit(x, y))
		}
		rows[y] = b.String()
	}
	return rows
}

func (c *Code) bit(x, y int) byte {
	if c.c.Black(x, y) {
		return 1
	}
	return 0
}

// Penalties returns the penalty of each mask pattern for segs in a
// code of the given version and level, as evaluated for mask
// selection.  The Encode functions choose the pattern with the lowest
// penalty, or the lowest numbered of those tied.
func Penalties(level Level, version Version, segs ...coding.Segment) ([coding.MaxMask + 1]int, error) {
	e, err := coding.NewEncoder(version, level)
	if err != nil {
		return [coding.MaxMask + 1]int{}, err
	}
	if err := e.Write(segs...); err != nil {
		return [coding.MaxMask + 1]int{}, err
	}
	return e.Penalties()
}
