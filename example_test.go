// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"fmt"
	"log"

	qr "github.com/unixdj/qrsym"
)

func ExampleEncode() {
	c, err := qr.Encode("HELLO WORLD", qr.Alphanumeric, qr.Q, qr.AutoVersion)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("%d-%v, mask %v, %d×%d\n",
		c.Version(), c.Level(), c.Mask(), c.Size(), c.Size())
	// Output:
	// 1-Q, mask 6, 21×21
}

func ExampleCode_Rows() {
	c, err := qr.Encode("12345", qr.Numeric, qr.M, 1)
	if err != nil {
		log.Fatalln(err)
	}
	for _, r := range c.Rows() {
		fmt.Println(r)
	}
	// Output:
	// 111111101001101111111
	// 100000100100001000001
	// 101110100010101011101
	// 101110101010001011101
	// 101110101110101011101
	// 100000101011001000001
	// 111111101010101111111
	// 000000001111100000000
	// 100010111101011111001
	// 111110001001100101100
	// 010011111001001110001
	// 101001011010011011111
	// 011101110000111000001
	// 000000001100111000111
	// 111111101000110001010
	// 100000100001100101010
	// 101110101001001110111
	// 101110100011100101011
	// 101110100011001111100
	// 100000100010011010110
	// 111111101100111000111
}

func ExampleSplit() {
	segs, v, err := qr.Split("hello 12345678901234567890", qr.M)
	if err != nil {
		log.Fatalln(err)
	}
	for _, s := range segs {
		fmt.Printf("%v %q\n", s.Mode, s.Text)
	}
	fmt.Println("version", v)
	// Output:
	// byte "hello "
	// numeric "12345678901234567890"
	// version 2
}

func ExampleCode_IsDark() {
	c, err := qr.Encode("HELLO WORLD", qr.Alphanumeric, qr.Q, 0)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(c.IsDark(0, 0))
	fmt.Println(c.IsDark(7, 7))
	fmt.Println(c.IsDark(21, 0))
	// Output:
	// true <nil>
	// false <nil>
	// false qr: module (21, 0) out of range [0, 21)
}
