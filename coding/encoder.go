// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/unixdj/qrsym/gf256"
)

// A Code is a square module grid.
type Code struct {
	Bitmap []byte // 1 is dark, 0 is light
	Size   int    // number of modules on a side
	Stride int    // number of bytes per row

	Version Version
	Level   Level
	Mask    Mask
}

// Black reports whether the module at column x, row y is dark.
// Modules outside the code are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// IsDark reports whether the module at (row, col) is dark.
func (c *Code) IsDark(row, col int) (bool, error) {
	if row < 0 || row >= c.Size || col < 0 || col >= c.Size {
		return false, &RangeError{Row: row, Col: col, Size: c.Size}
	}
	return c.Black(col, row), nil
}

// Codewords returns the final codeword sequence for the data in b for
// a code with version v and level l: b is terminated and padded to
// the data capacity, split into blocks, extended with Reed-Solomon
// check codewords and interleaved.  b must not exceed the capacity.
func Codewords(b *Bits, v Version, l Level) []byte {
	b.Pad(v.DataBytes(l))
	data := b.Bytes()
	blocks := v.Blocks(l)
	dat := make([][]byte, len(blocks))
	chk := make([][]byte, len(blocks))
	maxData := 0
	for i, blk := range blocks {
		dat[i], data = data[:blk.Data], data[blk.Data:]
		chk[i] = make([]byte, blk.Check())
		gf256.NewRSEncoder(blk.Check()).ECC(dat[i], chk[i])
		maxData = max(maxData, blk.Data)
	}
	out := make([]byte, 0, v.TotalBytes())
	out = interleave(out, dat, maxData)
	return interleave(out, chk, len(chk[0]))
}

// interleave appends codewords column by column: the first codeword
// of every block, then the second, up to n.  Shorter blocks are
// skipped once exhausted.
func interleave(dst []byte, blocks [][]byte, n int) []byte {
	for i := 0; i < n; i++ {
		for _, b := range blocks {
			if i < len(b) {
				dst = append(dst, b[i])
			}
		}
	}
	return dst
}

// Encoder encodes a QR code.
type Encoder struct {
	v Version
	l Level
	b *Bits
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(version Version, level Level) (*Encoder, error) {
	if !version.IsValid() {
		return nil, ErrVersion
	}
	if !level.IsValid() {
		return nil, ErrLevel
	}
	return &Encoder{v: version, l: level, b: NewBits(version)}, nil
}

// Write adds text to e.
func (e *Encoder) Write(text ...Segment) error {
	for _, t := range text {
		if err := t.Encode(e.b, e.v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) Reset() { e.b.Reset() }

// Bits returns the number of data bits written to e.
func (e *Encoder) Bits() int { return e.b.Bits() }

// check returns *CapacityError if the data written to e does not fit.
func (e *Encoder) check() error {
	if nb := e.v.DataBits(e.l); e.b.Bits() > nb {
		return &CapacityError{
			Version: e.v, Level: e.l, Bits: e.b.Bits(), Max: nb,
		}
	}
	return nil
}

// Code returns a QR code containing data written to e, with the mask
// pattern of the lowest penalty.  e is reset.
func (e *Encoder) Code() (*Code, error) {
	defer e.Reset()
	if err := e.check(); err != nil {
		return nil, err
	}
	p, err := NewPlan(e.v)
	if err != nil {
		return nil, err
	}
	data := Codewords(e.b, e.v, e.l)
	mask, _, err := p.BestMask(data, e.l)
	if err != nil {
		return nil, err
	}
	return p.finish(data, e.l, mask)
}

// CodeMask is like Code but uses mask pattern m, unless m is
// AutoMask.
func (e *Encoder) CodeMask(m Mask) (*Code, error) {
	if m == AutoMask {
		return e.Code()
	}
	defer e.Reset()
	if err := e.check(); err != nil {
		return nil, err
	}
	if !m.IsValid() {
		return nil, MaskError(m)
	}
	p, err := NewPlan(e.v)
	if err != nil {
		return nil, err
	}
	return p.finish(Codewords(e.b, e.v, e.l), e.l, m)
}

// Penalties returns the penalty of each mask pattern for the data
// written to e.  e is not reset.
func (e *Encoder) Penalties() ([MaxMask + 1]int, error) {
	if err := e.check(); err != nil {
		return [MaxMask + 1]int{}, err
	}
	p, err := NewPlan(e.v)
	if err != nil {
		return [MaxMask + 1]int{}, err
	}
	b := &Bits{b: append([]byte(nil), e.b.b...), nbit: e.b.nbit}
	return p.Penalties(Codewords(b, e.v, e.l), e.l)
}

// finish builds the committed code with mask m.
func (p *Plan) finish(data []byte, l Level, m Mask) (*Code, error) {
	mx, err := p.Build(data, l, m, false)
	if err != nil {
		return nil, err
	}
	if !mx.Complete() {
		panic("qr: internal error: unset modules")
	}
	c := mx.Code()
	c.Version, c.Level, c.Mask = p.Version, l, m
	return c, nil
}

// Penalties returns the penalty of each mask pattern for the
// interleaved codewords in data, evaluated on test builds.  The
// patterns are evaluated concurrently.
func (p *Plan) Penalties(data []byte, l Level) ([MaxMask + 1]int, error) {
	var pen [MaxMask + 1]int
	var g errgroup.Group
	g.SetLimit(max(min(runtime.NumCPU(), int(MaxMask)+1), 1))
	for m := Mask(0); m <= MaxMask; m++ {
		m := m
		g.Go(func() error {
			mx, err := p.Build(data, l, m, true)
			if err != nil {
				return err
			}
			pen[m] = mx.Code().Penalty()
			return nil
		})
	}
	return pen, g.Wait()
}

// BestMask returns the mask pattern with the lowest penalty and the
// penalties of all patterns.  Ties go to the lowest pattern number.
func (p *Plan) BestMask(data []byte, l Level) (Mask, [MaxMask + 1]int, error) {
	pen, err := p.Penalties(data, l)
	if err != nil {
		return 0, pen, err
	}
	best := Mask(0)
	for m := Mask(1); m <= MaxMask; m++ {
		if pen[m] < pen[best] {
			best = m
		}
	}
	return best, pen, nil
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(text ...Segment) (*Code, error) {
	if err := e.Write(text...); err != nil {
		return nil, err
	}
	return e.Code()
}

// ChooseVersion returns the lowest version whose data capacity at
// level l holds text, or ErrNoVersion.
func ChooseVersion(l Level, text ...Segment) (Version, error) {
	if !l.IsValid() {
		return 0, ErrLevel
	}
	for _, t := range text {
		if err := t.Validate(); err != nil {
			return 0, err
		}
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		n := 0
		for _, t := range text {
			n += t.EncodedLength(v)
		}
		if n <= v.DataBits(l) {
			return v, nil
		}
	}
	return 0, ErrNoVersion
}

// Encode encodes text using an Encoder with the given version and
// level.  A version of 0 or less selects the lowest version that fits.
func Encode(version Version, level Level, text ...Segment) (*Code, error) {
	if version <= 0 {
		v, err := ChooseVersion(level, text...)
		if err != nil {
			return nil, err
		}
		version = v
	}
	e, err := NewEncoder(version, level)
	if err != nil {
		return nil, err
	}
	return e.Encode(text...)
}
