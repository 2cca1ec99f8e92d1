// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mask is a QR data mask pattern, 0 to 7.  Starting at the top
// left corner, the patterns invert these modules:
//
//	0: ▀▄▀▄▀▄▀▄▀▄▀▄  1: ▀▀▀▀▀▀▀▀▀▀▀▀  2: █  █  █  █    3: ▀ ▄▀ ▄▀ ▄▀ ▄
//	   ▀▄▀▄▀▄▀▄▀▄▀▄     ▀▀▀▀▀▀▀▀▀▀▀▀     █  █  █  █       ▄▀ ▄▀ ▄▀ ▄▀
//	   ▀▄▀▄▀▄▀▄▀▄▀▄     ▀▀▀▀▀▀▀▀▀▀▀▀     █  █  █  █        ▄▀ ▄▀ ▄▀ ▄▀
//	   ▀▄▀▄▀▄▀▄▀▄▀▄     ▀▀▀▀▀▀▀▀▀▀▀▀     █  █  █  █       ▀ ▄▀ ▄▀ ▄▀ ▄
//	   ▀▄▀▄▀▄▀▄▀▄▀▄     ▀▀▀▀▀▀▀▀▀▀▀▀     █  █  █  █       ▄▀ ▄▀ ▄▀ ▄▀
//	   ▀▄▀▄▀▄▀▄▀▄▀▄     ▀▀▀▀▀▀▀▀▀▀▀▀     █  █  █  █        ▄▀ ▄▀ ▄▀ ▄▀
//
//	4: ███   ███     5: █▀▀▀▀▀█▀▀▀▀▀  6: ███▀▀▀███▀▀▀  7: ▀ ▀▄█▄▀ ▀▄█▄
//	      ███   ███     █ ▄▀▄ █ ▄▀▄      █▀▄▀█ █▀▄▀█      ▀▄ ▄▀█▀▄ ▄▀█
//	   ███   ███        █  ▀  █  ▀       █ ▀▀▄██ ▀▀▄█     ▀██▄  ▀██▄
//	      ███   ███     █▀▀▀▀▀█▀▀▀▀▀     ███▀▀▀███▀▀▀     ▀ ▀▄█▄▀ ▀▄█▄
//	   ███   ███        █ ▄▀▄ █ ▄▀▄      █▀▄▀█ █▀▄▀█      ▀▄ ▄▀█▀▄ ▄▀█
//	      ███   ███     █  ▀  █  ▀       █ ▀▀▄██ ▀▀▄█     ▀██▄  ▀██▄
type Mask int

// MaxMask is the highest mask pattern.
const MaxMask Mask = 7

// AutoMask requests selection of the mask pattern with the lowest
// penalty.
const AutoMask Mask = -1

func (m Mask) String() string { return strconv.Itoa(int(m)) }

// IsValid reports whether m is a mask pattern from 0 to 7.
func (m Mask) IsValid() bool { return 0 <= m && m <= MaxMask }

// Dark reports whether the mask inverts the module at (row, col).
// Dark panics if m is invalid.
//
// Row i, column j:
//
//	0: (i+j) mod 2 = 0
//	1: i mod 2 = 0
//	2: j mod 3 = 0
//	3: (i+j) mod 3 = 0
//	4: (i/2 + j/3) mod 2 = 0
//	5: (i*j) mod 2 + (i*j) mod 3 = 0
//	6: ((i*j) mod 2 + (i*j) mod 3) mod 2 = 0
//	7: ((i*j) mod 3 + (i+j) mod 2) mod 2 = 0
func (m Mask) Dark(i, j int) bool {
	switch m {
	case 0:
		return (i+j)%2 == 0
	case 1:
		return i%2 == 0
	case 2:
		return j%3 == 0
	case 3:
		return (i+j)%3 == 0
	case 4:
		return (i/2+j/3)%2 == 0
	case 5:
		return i*j%2+i*j%3 == 0
	case 6:
		return (i*j%2+i*j%3)%2 == 0
	case 7:
		return (i*j%3+(i+j)%2)%2 == 0
	}
	panic(MaskError(m))
}
