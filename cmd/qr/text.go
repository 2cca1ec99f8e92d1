// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	qr "github.com/unixdj/qrsym"
)

// A symbol is a square grid of modules.
type symbol interface {
	Size() int
	Black(x, y int) bool
}

var writers = map[string]func(io.Writer, symbol, int) error{
	"utf8":   func(w io.Writer, c symbol, b int) error { return utf8(w, c, b, false) },
	"utf8i":  func(w io.Writer, c symbol, b int) error { return utf8(w, c, b, true) },
	"ascii":  func(w io.Writer, c symbol, b int) error { return ascii(w, c, b, false) },
	"asciii": func(w io.Writer, c symbol, b int) error { return ascii(w, c, b, true) },
	"bits":   func(w io.Writer, c symbol, _ int) error { return bits(w, c) },
}

func write(w io.Writer, c *qr.Code, format string, border int) error {
	f, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown format %q", format)
	}
	return f(w, c, border)
}

// utf8 writes two rows of modules per line using half block
// characters.  Dark modules are printed as ink unless inv is set.
func utf8(w io.Writer, c symbol, bord int, inv bool) error {
	siz := c.Size()
	blocks := [4]string{" ", "▄", "▀", "█"}
	var b strings.Builder
	for y := -bord; y < siz+bord; y += 2 {
		for x := -bord; x < siz+bord; x++ {
			n := 0
			if c.Black(x, y) != inv {
				n |= 2
			}
			if y+1 < siz+bord && c.Black(x, y+1) != inv {
				n |= 1
			}
			b.WriteString(blocks[n])
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ascii writes each module as two characters, "##" for dark and
// spaces for light, or the reverse if inv is set.
func ascii(w io.Writer, c symbol, bord int, inv bool) error {
	siz := c.Size()
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != inv {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}

// bits writes the rows of modules as '1' for dark and '0' for light,
// without a quiet zone.
func bits(w io.Writer, c symbol) error {
	siz := c.Size()
	b := make([]byte, 0, (siz+1)*siz)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			p := byte('0')
			if c.Black(x, y) {
				p = '1'
			}
			b = append(b, p)
		}
		b = append(b, '\n')
	}
	_, err := w.Write(b)
	return err
}
