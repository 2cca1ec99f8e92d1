// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Module is the state of a single matrix cell.
type Module int8

const (
	Unset Module = iota // not yet placed
	Light
	Dark
)

func mod(dark bool) Module {
	if dark {
		return Dark
	}
	return Light
}

// Matrix is a square grid of modules stored row by row.
type Matrix struct {
	Size int
	m    []Module
}

// NewMatrix returns an empty Matrix with size modules on a side.
func NewMatrix(size int) *Matrix {
	return &Matrix{Size: size, m: make([]Module, size*size)}
}

// At returns the module at (row, col).
func (m *Matrix) At(row, col int) Module { return m.m[row*m.Size+col] }

// Set sets the module at (row, col).
func (m *Matrix) Set(row, col int, v Module) { m.m[row*m.Size+col] = v }

func (m *Matrix) setDark(row, col int, dark bool) { m.Set(row, col, mod(dark)) }

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{Size: m.Size, m: append([]Module(nil), m.m...)}
}

// Complete reports whether every module of m is set.
func (m *Matrix) Complete() bool {
	for _, v := range m.m {
		if v == Unset {
			return false
		}
	}
	return true
}

// Code packs a complete m into a Code bitmap.
func (m *Matrix) Code() *Code {
	siz := m.Size
	stride := (siz + 7) >> 3
	c := &Code{Size: siz, Stride: stride, Bitmap: make([]byte, siz*stride)}
	for y := 0; y < siz; y++ {
		for x, v := range m.m[y*siz : (y+1)*siz] {
			if v == Dark {
				c.Bitmap[y*stride+x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return c
}

// A Plan describes how to construct a QR code of a specific version:
// the function patterns common to all codes of that version.
type Plan struct {
	Version Version
	Size    int     // number of modules on a side
	base    *Matrix // finder, alignment and timing patterns
}

// Pre-allocated Plans.  A Plan is created the first time a version
// is used and never modified.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for version v.
func NewPlan(v Version) (*Plan, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	p := &plans[v]
	p.once.Do(func() { p.p = vplan(v) })
	return p.p, nil
}

// vplan creates a Plan for the given version.
func vplan(v Version) *Plan {
	siz := v.Size()
	m := NewMatrix(siz)
	finder(m, 0, 0)
	finder(m, siz-7, 0)
	finder(m, 0, siz-7)

	pos := v.Alignment()
	for _, row := range pos {
		for _, col := range pos {
			if m.At(row, col) == Unset {
				alignBox(m, row, col)
			}
		}
	}

	for i := 8; i < siz-8; i++ {
		if m.At(i, 6) == Unset {
			m.setDark(i, 6, i%2 == 0)
		}
		if m.At(6, i) == Unset {
			m.setDark(6, i, i%2 == 0)
		}
	}
	return &Plan{Version: v, Size: siz, base: m}
}

// finder draws a position detection pattern with its separator, the
// pattern's top left corner at (row, col).
func finder(m *Matrix, row, col int) {
	for r := -1; r <= 7; r++ {
		if row+r < 0 || row+r >= m.Size {
			continue
		}
		for c := -1; c <= 7; c++ {
			if col+c < 0 || col+c >= m.Size {
				continue
			}
			dark := 0 <= r && r <= 6 && (c == 0 || c == 6) ||
				0 <= c && c <= 6 && (r == 0 || r == 6) ||
				2 <= r && r <= 4 && 2 <= c && c <= 4
			m.setDark(row+r, col+c, dark)
		}
	}
}

// alignBox draws an alignment pattern centred at (row, col).
func alignBox(m *Matrix, row, col int) {
	for r := -2; r <= 2; r++ {
		for c := -2; c <= 2; c++ {
			dark := r == -2 || r == 2 || c == -2 || c == 2 ||
				r == 0 && c == 0
			m.setDark(row+r, col+c, dark)
		}
	}
}

// formatInfo places the format information for level l and mask m
// and the dark module.  In test mode all of them are light.
func (p *Plan) formatInfo(mx *Matrix, l Level, m Mask, test bool) {
	siz := p.Size
	bits := FormatBits(l, m)
	for i := 0; i < 15; i++ {
		dark := !test && bits>>i&1 != 0
		switch {
		case i < 6:
			mx.setDark(i, 8, dark)
		case i < 8:
			mx.setDark(i+1, 8, dark)
		default:
			mx.setDark(siz-15+i, 8, dark)
		}
		switch {
		case i < 8:
			mx.setDark(8, siz-i-1, dark)
		case i < 9:
			mx.setDark(8, 15-i, dark)
		default:
			mx.setDark(8, 14-i, dark)
		}
	}
	mx.setDark(siz-8, 8, !test)
}

// versionInfo places the version information of versions 7 and up.
// In test mode the modules are light.
func (p *Plan) versionInfo(mx *Matrix, test bool) {
	if p.Version < 7 {
		return
	}
	siz := p.Size
	bits := VersionBits(p.Version)
	for i := 0; i < 18; i++ {
		dark := !test && bits>>i&1 != 0
		mx.setDark(i/3, i%3+siz-11, dark)
		mx.setDark(i%3+siz-11, i/3, dark)
	}
}

// serialise writes data into the unset modules of mx in zigzag scan
// order, starting at the bottom right corner and skipping the
// vertical timing column.  Bits past the end of data are 0.  Every
// bit is XORed with mask m.
func serialise(mx *Matrix, data []byte, m Mask) {
	siz := mx.Size
	inc, row := -1, siz-1
	pos := 0
	for col := siz - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for {
			for c := col; c > col-2; c-- {
				if mx.At(row, c) != Unset {
					continue
				}
				dark := false
				if i := pos >> 3; i < len(data) {
					dark = data[i]>>(7&^pos)&1 != 0
				}
				pos++
				mx.setDark(row, c, dark != m.Dark(row, c))
			}
			row += inc
			if row < 0 || row >= siz {
				row -= inc
				inc = -inc
				break
			}
		}
	}
}

// Build returns the matrix of a code with level l and mask m holding
// the interleaved codewords in data.  In test mode format and version
// information and the dark module are left light, as for penalty
// evaluation.
func (p *Plan) Build(data []byte, l Level, m Mask, test bool) (*Matrix, error) {
	if !l.IsValid() {
		return nil, ErrLevel
	}
	if !m.IsValid() {
		return nil, MaskError(m)
	}
	mx := p.base.Clone()
	p.formatInfo(mx, l, m, test)
	p.versionInfo(mx, test)
	serialise(mx, data, m)
	return mx, nil
}
