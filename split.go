// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "github.com/unixdj/qrsym/coding"

var sizeClass = [3]struct {
	min, max coding.Version
}{
	{1, 9}, {10, 26}, {27, 40},
}

const (
	numMode   = iota // numeric
	alphaMode        // alphanumeric
	byteMode         // byte
	modes            // total number of modes

	numModes   = 1<<numMode | 1<<alphaMode | 1<<byteMode
	alphaModes = 1<<alphaMode | 1<<byteMode
	byteModes  = 1 << byteMode
)

// modeOf maps split modes to encoding modes.
var modeOf = [modes]coding.Mode{coding.Numeric, coding.Alphanumeric, coding.Byte}

// bits returns segment size in bits for a string of n bytes at QR
// version size class class encoded in mode m.
func bits(m byte, n, class int) int { return modeOf[m].Length(n, class) }

type (
	// segment describes a segment encoded in a certain mode.
	segment struct {
		next   *segment // link to next segment in the chain
		start  int      // start of string
		slen   int      // length of string in bytes
		weight int      // encoded size of all segments in the chain
		mode   byte     // encoding mode
	}

	// span describes a span of bytes encodable in the same modes.
	span struct {
		start int            // start of string
		slen  int            // length of string in bytes
		modes byte           // bit field of valid encoding modes
		seg   [modes]segment // segments
	}
)

// classify splits text into spans of bytes encodable in the same modes.
func classify(text string) []span {
	if text == "" {
		return nil
	}
	const (
		alpha = 0x07ff_fffe_07ff_ec31 // SPACE $% *+ -./ [0-9] : [A-Z]
		digit = 0x0000_0000_03ff_0000 // [0-9]
	)

	// Scan the string, detect valid encoding modes for each byte
	modes := make([]byte, len(text))
	common := ^byte(0) // bit field of modes common to all spans
	n := 0
	m := byte(0)
	for i, r := range text {
		old := m
		m = byteModes
		if bit := uint64(1) << (uint(r) - ' '); digit&bit != 0 {
			m = numModes
		} else if alpha&bit != 0 {
			m = alphaModes
		}
		modes[i] = m
		if m != old {
			common &= m
			n++
		}
	}

	mask := ^common | -common // Mask common modes except the lowest

	// Set spans
	sp := make([]span, n)
	old, n := byte(0), 0
	for i, v := range modes {
		if v != 0 && v != old {
			if i != 0 {
				sp[n].slen = i - sp[n].start
				n++
			}
			sp[n].start = i
			sp[n].modes = v & mask
			old = v
		}
	}
	sp[n].slen = len(modes) - sp[n].start
	return sp
}

/*
split returns the optimal split for the string described by sp at
the given QR version size class.

For last span, for each valid mode j:
  - Create a segment sp[len(sp)-1].seg[j] describing the span
    encoded in mode j.  Calculate the weight (encoded length in
    bits).

Then walk backwards through the rest of the spans.
For each span i, for each valid mode j:
  - For each mode k valid for span i+1, create a segment linking
    to next=sp[i+1].seg[k].  If k==j, merge the segments by
    adding the length of next and linking to next.next instead.
    Calculate the weight of the segment.  If next is not nil, add
    the weight of next to get the combined weight of the chain.
  - From those segments choose the one with the smallest weight.
    Assign it to sp[i].seg[j].

Return the address of the segment in sp[0].seg with the smallest
weight.
*/
func split(sp []span, class int) *segment {
	const Inf = 1 << 30
	// Process last span.  Create a segment for each valid mode.
	i := len(sp) - 1
	if i < 0 {
		return nil
	}
	for j := byte(0); j < modes; j++ {
		seg := &sp[i].seg[j]
		*seg = segment{weight: Inf}
		if sp[i].modes>>j&1 != 0 {
			*seg = segment{
				start:  sp[i].start,
				slen:   sp[i].slen,
				weight: bits(j, sp[i].slen, class),
				mode:   j,
			}
			if i == 0 {
				return seg
			}
		}
	}

	// Process the rest of the spans.
	for i--; i >= 0; i-- {
		v := &sp[i]
		for j := byte(0); j < modes; j++ {
			seg := &v.seg[j]
			*seg = segment{weight: Inf}
			if v.modes>>j&1 == 0 {
				continue
			}
			weight := bits(j, v.slen, class)
			ns := &sp[i+1].seg
			for k := byte(0); k < modes; k++ {
				next := &ns[k]
				if next.weight == Inf {
					continue
				}
				c := segment{
					next:   next,
					start:  v.start,
					slen:   v.slen,
					weight: weight,
					mode:   j,
				}
				if k == j {
					c.slen += c.next.slen
					c.next = c.next.next
					c.weight = bits(j, c.slen, class)
				}
				if c.next != nil {
					c.weight += c.next.weight
				}
				if c.weight < seg.weight {
					*seg = c
				}
			}
		}
	}

	// Choose the first segment with the smallest weight
	seg := &sp[0].seg[0]
	for j := 1; j < modes; j++ {
		if sp[0].seg[j].weight < seg.weight {
			seg = &sp[0].seg[j]
		}
	}
	return seg
}

// Split returns the shortest split of text into segments for a code
// at the given error correction level, and the lowest version that
// holds them.
func Split(text string, level Level) ([]coding.Segment, Version, error) {
	if !level.IsValid() {
		return nil, 0, coding.ErrLevel
	}
	l := level
	// Estimate minimum QR version size class in a crude manner.
	class := 0
	weight := bits(numMode, len(text), class)
	for class < 2 && sizeClass[class].max.DataBits(l) < weight {
		class++
	}
	// Split string into spans.
	sp := classify(text)
	// Split string into segments for the size class.
	seg := split(sp, class)
	if seg != nil { // seg is nil if text == ""
		weight = seg.weight
	}
	// If string is too big for the size class, increment class
	// and resplit.  The weight will change, hence the loop.
	for sizeClass[class].max.DataBits(l) < weight {
		class++
		for class < 3 && sizeClass[class].max.DataBits(l) < weight {
			class++
		}
		if class == 3 {
			return nil, 0, coding.ErrNoVersion
		}
		seg = split(sp, class)
		weight = seg.weight
	}

	// Find version in the size class.
	v := sizeClass[class].min
	for max := sizeClass[class].max; v < max; {
		if mid := (v + max) / 2; mid.DataBits(l) < weight {
			v = mid + 1
		} else {
			max = mid
		}
	}

	var segs []coding.Segment
	for ; seg != nil; seg = seg.next {
		segs = append(segs, coding.Segment{
			Text: text[seg.start : seg.start+seg.slen],
			Mode: modeOf[seg.mode],
		})
	}
	return segs, v, nil
}

// EncodeText returns a QR code holding text at the given error
// correction level, split into numeric, alphanumeric and byte mode
// segments to minimise the encoded length.
func EncodeText(text string, level Level) (*Code, error) {
	segs, v, err := Split(text, level)
	if err != nil {
		return nil, err
	}
	return encode(v, level, coding.AutoMask, segs...)
}
