/*
 * BCD - Six bit character codes.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package bcd describes the six bit internal code of the 1401 class
// machines. A code carries the bits B A 8 4 2 1; the check bit C and the
// word mark are not part of the character and are dropped by Mask.
package bcd

import "strconv"

// Code is one six bit character, 0 through 0o77.
type Code uint8

const (
	Mask     Code = 0o77  // Character bits.
	Check    Code = 0o100 // Parity bit.
	WordMark Code = 0o200 // Word mark on tape images.

	Size = 64 // Number of codes.

	Blank    Code = 0o00
	Zero     Code = 0o12
	TapeMark Code = 0o17
)

// Bit names from high to low.
var bitNames = [6]byte{'B', 'A', '8', '4', '2', '1'}

// Strip removes parity and word mark bits.
func (c Code) Strip() Code {
	return c &^ (Check | WordMark)
}

// Zone returns the B and A bits, 0 to 3.
func (c Code) Zone() int {
	return int(c&Mask) >> 4
}

// Digit returns the 8 4 2 1 bits.
func (c Code) Digit() int {
	return int(c & 0o17)
}

// Bits returns the code as "BA8421" with clear bits shown as '.'.
func (c Code) Bits() string {
	var b [6]byte
	for i := range 6 {
		if c&(1<<(5-i)) != 0 {
			b[i] = bitNames[i]
		} else {
			b[i] = '.'
		}
	}
	return string(b[:])
}

// String returns code as a two digit octal number.
func (c Code) String() string {
	s := strconv.FormatUint(uint64(c&Mask), 8)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}
