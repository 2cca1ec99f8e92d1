// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

//go:generate sh -c "go run gen.go | gofmt > tables.go"

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version,
// the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is in [MinVersion, MaxVersion].
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// QR version size classes, in which the character count fields have
// the same length.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// Size returns the number of modules on a side of a code of version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q and H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// ParseLevel returns the Level named by s, in either case.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "l", "L":
		return L, nil
	case "m", "M":
		return M, nil
	case "q", "Q":
		return Q, nil
	case "h", "H":
		return H, nil
	}
	return 0, ErrLevel
}

// code returns the two bit level indicator used in format information:
// L=01, M=00, Q=11, H=10.
func (l Level) code() uint32 { return uint32(l ^ 1) }

// A group describes blocks of the same size.
type group struct {
	n     int // number of blocks
	total int // codewords per block
	data  int // data codewords per block
}

// A Block describes a Reed-Solomon block.
type Block struct {
	Data  int // number of data codewords
	Total int // number of data and check codewords
}

// Check returns the number of check codewords in the block.
func (b Block) Check() int { return b.Total - b.Data }

// Blocks returns the Reed-Solomon blocks of a code with version v and
// level l, in placement order.  Blocks returns nil if v or l is
// invalid.
func (v Version) Blocks(l Level) []Block {
	if !v.IsValid() || !l.IsValid() {
		return nil
	}
	var b []Block
	for _, g := range groupTab[v][l] {
		for i := 0; i < g.n; i++ {
			b = append(b, Block{Data: g.data, Total: g.total})
		}
	}
	return b
}

// DataBytes returns the number of data codewords that can be stored
// in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	if !v.IsValid() || !l.IsValid() {
		return 0
	}
	n := 0
	for _, g := range groupTab[v][l] {
		n += g.n * g.data
	}
	return n
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// TotalBytes returns the number of data and check codewords in a QR
// code with version v.
func (v Version) TotalBytes() int {
	if !v.IsValid() {
		return 0
	}
	n := 0
	for _, g := range groupTab[v][L] {
		n += g.n * g.total
	}
	return n
}

// Alignment returns the row and column coordinates of alignment pattern
// centres in a QR code with version v.  Version 1 has none.
func (v Version) Alignment() []int {
	if !v.IsValid() {
		return nil
	}
	return append([]int(nil), alignTab[v]...)
}

// BCH code generators and the format information mask.
const (
	G15     = 0x537  // x¹⁰+x⁸+x⁵+x⁴+x²+x+1, format information
	G18     = 0x1f25 // x¹²+x¹¹+x¹⁰+x⁹+x⁸+x⁵+x²+1, version information
	G15Mask = 0x5412 // XORed with format information
)

// bch returns data followed by the remainder of data·x^deg(g) divided
// by g, where deg(g) is the degree of g.
func bch(data, g uint32) uint32 {
	deg := 0
	for v := g >> 1; v != 0; v >>= 1 {
		deg++
	}
	rem := data << deg
	for i := 31; i >= deg; i-- {
		if rem>>i&1 != 0 {
			rem ^= g << (i - deg)
		}
	}
	return data<<deg | rem
}

// FormatBits returns the 15 bit format information for level l and
// mask pattern m.
func FormatBits(l Level, m Mask) uint32 {
	return bch(l.code()<<3|uint32(m), G15) ^ G15Mask
}

// VersionBits returns the 18 bit version information for v, or 0 if v
// is lower than 7.
func VersionBits(v Version) uint32 {
	if !v.IsValid() {
		return 0
	}
	return versionTab[v]
}
