// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mode is a QR segment encoding mode.
type Mode int

// Encoding modes.
const (
	Numeric      Mode = iota // numeric mode, digits 0-9
	Alphanumeric             // alphanumeric mode, 0-9 A-Z SPACE $%*+-./:
	Byte                     // byte mode, any data
)

// modeEncoder implements a QR segment encoding.
type modeEncoder struct {
	name      string // name for error reporting
	indicator byte   // 4 bit mode indicator

	// countLength lists lengths of the character count field in
	// the three QR version size classes.
	countLength [3]byte

	// encodedLength returns the encoded data length in bits of
	// a valid string of n bytes.
	encodedLength func(n int) int

	// accepts reports whether the mode accepts the rune.
	// If nil, any byte is accepted.
	accepts func(rune) bool

	// chunk is the number of bytes encode consumes at a time.
	chunk int

	// encode returns the encoding of up to chunk bytes and its
	// length in bits.
	encode func(string) (uint32, int)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table, indexed by the low 6 bits of the
// character.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

var modes = [...]modeEncoder{
	Numeric: {
		name:          "numeric",
		indicator:     1,
		countLength:   [3]byte{10, 12, 14},
		encodedLength: func(n int) int { return (10*n + 2) / 3 },
		accepts:       func(r rune) bool { return uint32(r-'0') < 10 },
		chunk:         3,
		encode: func(s string) (uint32, int) {
			var v uint32
			for i := 0; i < len(s); i++ {
				v = v*10 + uint32(s[i]-'0')
			}
			// 3 digits in 10 bits, 2 in 7, 1 in 4
			return v, len(s)*3 + 1
		},
	},
	Alphanumeric: {
		name:          "alphanumeric",
		indicator:     2,
		countLength:   [3]byte{9, 11, 13},
		encodedLength: func(n int) int { return (11*n + 1) / 2 },
		accepts: func(r rune) bool {
			return alphamask>>(uint32(r)-' ')&1 != 0
		},
		chunk: 2,
		encode: func(s string) (uint32, int) {
			if len(s) == 1 {
				return uint32(alpha[s[0]&0x3f]), 6
			}
			return uint32(alpha[s[0]&0x3f])*45 +
				uint32(alpha[s[1]&0x3f]), 11
		},
	},
	Byte: {
		name:          "byte",
		indicator:     4,
		countLength:   [3]byte{8, 16, 16},
		encodedLength: func(n int) int { return n * 8 },
		chunk:         1,
		encode:        func(s string) (uint32, int) { return uint32(s[0]), 8 },
	},
}

func getMode(mode Mode) *modeEncoder {
	if mode >= 0 && int(mode) < len(modes) {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.name
	}
	return strconv.Itoa(int(mode))
}

// IsValid reports whether mode is Numeric, Alphanumeric or Byte.
func (mode Mode) IsValid() bool { return getMode(mode) != nil }

// ParseMode returns the Mode with the given name, or ModeNameError if
// there is none.
func ParseMode(s string) (Mode, error) {
	for i := range modes {
		if modes[i].name == s {
			return Mode(i), nil
		}
	}
	return -1, ModeNameError(s)
}

// Indicator returns the 4 bit mode indicator, or 0 if mode is invalid.
func (mode Mode) Indicator() int {
	if m := getMode(mode); m != nil {
		return int(m.indicator)
	}
	return 0
}

// CountLength returns the length in bits of the character count field
// for mode in a code of the given version size class, or 0 if mode is
// invalid.
func (mode Mode) CountLength(class int) int {
	if m := getMode(mode); m != nil && 0 <= class && class <= Class2 {
		return int(m.countLength[class])
	}
	return 0
}

// Length returns the length in bits of a valid string of n bytes
// encoded in mode at the given QR version size class, including the
// header.  Length returns 0 if and only if mode is invalid.
func (mode Mode) Length(n, class int) int {
	if m := getMode(mode); m != nil {
		return 4 + int(m.countLength[class]) + m.encodedLength(n)
	}
	return 0
}

// Accepts reports whether r is encodable in mode.
func (mode Mode) Accepts(r rune) bool {
	m := getMode(mode)
	return m != nil && (m.accepts == nil || m.accepts(r))
}
