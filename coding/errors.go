// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrLevel     = errors.New("qr: invalid level")
	ErrVersion   = errors.New("qr: invalid version")
	ErrNoVersion = errors.New("qr: text too long to encode as QR")
)

// SegmentError represents a segment containing a character its mode
// cannot encode.
type SegmentError struct {
	Segment
	Offset int  // byte offset of the first invalid character
	Rune   rune // the invalid character
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("qr: non-%s character %q at offset %d in %#q",
		e.Mode, e.Rune, e.Offset, e.Text)
}

// ModeError represents an invalid Mode.
type ModeError Mode

func (e ModeError) Error() string {
	return "qr: invalid mode " + strconv.Itoa(int(e))
}

// ModeNameError represents an unknown mode name.
type ModeNameError string

func (e ModeNameError) Error() string {
	return fmt.Sprintf("qr: unknown mode %q", string(e))
}

// MaskError represents an invalid Mask.
type MaskError Mask

func (e MaskError) Error() string {
	return "qr: invalid mask pattern " + strconv.Itoa(int(e))
}

// CapacityError represents data too long for a QR code version.
type CapacityError struct {
	Version Version
	Level   Level
	Bits    int // encoded data length
	Max     int // data capacity
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit %d-%s code",
		e.Bits, e.Max, e.Version, e.Level)
}

// RangeError represents module coordinates outside of a code.
type RangeError struct {
	Row, Col int
	Size     int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("qr: module (%d, %d) out of range [0, %d)",
		e.Row, e.Col, e.Size)
}
