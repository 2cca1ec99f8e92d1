// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "unicode/utf8"

// A Segment is a string encoded in a single mode.
type Segment struct {
	Text string
	Mode Mode
}

// CharLength returns the number of characters in the segment as
// recorded in its character count field.  Numeric and alphanumeric
// characters are single bytes, byte mode counts bytes.
func (s Segment) CharLength() int { return len(s.Text) }

// Validate returns nil if every character of s is encodable in its
// mode, ModeError if the mode is invalid, or *SegmentError
// describing the first offending character.
func (s Segment) Validate() error {
	m := getMode(s.Mode)
	if m == nil {
		return ModeError(s.Mode)
	}
	if m.accepts == nil {
		return nil
	}
	for i := 0; i < len(s.Text); {
		r, n := utf8.DecodeRuneInString(s.Text[i:])
		if n == 1 && r == utf8.RuneError {
			r = rune(s.Text[i])
		}
		if !m.accepts(r) {
			return &SegmentError{Segment: s, Offset: i, Rune: r}
		}
		i += n
	}
	return nil
}

// EncodedLength returns the length in bits of the segment encoded in
// a code of version v, header included.
func (s Segment) EncodedLength(v Version) int {
	return s.Mode.Length(len(s.Text), v.SizeClass())
}

// Write appends the encoded characters of a valid segment to b,
// without the header.
func (s Segment) Write(b *Bits) {
	m := getMode(s.Mode)
	for t := s.Text; len(t) > 0; {
		n := min(m.chunk, len(t))
		b.Write(m.encode(t[:n]))
		t = t[n:]
	}
}

// Encode validates s and appends it to b for a code of version v:
// mode indicator, character count and data.
func (s Segment) Encode(b *Bits, v Version) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m := &modes[s.Mode]
	b.Write(uint32(m.indicator), 4)
	b.Write(uint32(len(s.Text)), int(m.countLength[v.SizeClass()]))
	s.Write(b)
	return nil
}
