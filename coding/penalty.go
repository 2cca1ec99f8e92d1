// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Penalty points.
const (
	NeighbourMin = 5  // rule 1: same-colour neighbours tolerated
	NeighbourPP  = 3  // rule 1: base points past NeighbourMin
	BoxPP        = 3  // rule 2: points per uniform 2×2 box
	FindPP       = 40 // rule 3: points per 1:1:3:1:1 pattern
	BalPP        = 10 // rule 4: points per 5% away from 50% dark
)

// Penalty returns the penalty value of c used for choosing the mask.
// Lower is better.  The total is the sum of:
//
//  1. for each module with n > 5 of its 8 neighbours the same colour,
//     3 + (n-5) points;
//  2. for each 2×2 box of the same colour, possibly overlapping,
//     3 points;
//  3. for each dark-light-dark-dark-dark-light-dark run in a row or
//     column, possibly overlapping, 40 points;
//  4. 10 points for every whole 5% the dark module ratio deviates
//     from 50%.
func (c *Code) Penalty() int {
	return c.neighbourPenalty() + c.boxPenalty() +
		c.finderPenalty() + c.balancePenalty()
}

// dark reports whether the module at (row, col) is dark.
func (c *Code) dark(row, col int) bool { return c.Black(col, row) }

func (c *Code) neighbourPenalty() int {
	siz, p := c.Size, 0
	for row := 0; row < siz; row++ {
		for col := 0; col < siz; col++ {
			d, same := c.dark(row, col), 0
			for r := max(row-1, 0); r <= min(row+1, siz-1); r++ {
				for cc := max(col-1, 0); cc <= min(col+1, siz-1); cc++ {
					if (r != row || cc != col) && c.dark(r, cc) == d {
						same++
					}
				}
			}
			if same > NeighbourMin {
				p += NeighbourPP + same - NeighbourMin
			}
		}
	}
	return p
}

func (c *Code) boxPenalty() int {
	siz, p := c.Size, 0
	for row := 0; row < siz-1; row++ {
		for col := 0; col < siz-1; col++ {
			n := 0
			for _, d := range [4]bool{
				c.dark(row, col), c.dark(row+1, col),
				c.dark(row, col+1), c.dark(row+1, col+1),
			} {
				if d {
					n++
				}
			}
			if n == 0 || n == 4 {
				p += BoxPP
			}
		}
	}
	return p
}

// finderRun is the 1:1:3:1:1 pattern, dark first.
var finderRun = [7]bool{true, false, true, true, true, false, true}

func (c *Code) finderPenalty() int {
	siz, p := c.Size, 0
	for i := 0; i < siz; i++ {
		for j := 0; j+len(finderRun) <= siz; j++ {
			h, v := true, true
			for k, d := range finderRun {
				h = h && c.dark(i, j+k) == d
				v = v && c.dark(j+k, i) == d
			}
			if h {
				p += FindPP
			}
			if v {
				p += FindPP
			}
		}
	}
	return p
}

func (c *Code) balancePenalty() int {
	dark := 0
	for _, b := range c.Bitmap {
		for ; b != 0; b &= b - 1 {
			dark++
		}
	}
	sq := c.Size * c.Size
	dev := 100*dark - 50*sq
	if dev < 0 {
		dev = -dev
	}
	return dev / (5 * sq) * BalPP
}
