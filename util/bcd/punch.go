/*
 * BCD - Card punch conversion.
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

package bcd

import (
	"fmt"
	"strconv"
	"strings"
)

// Hollerith rows, one bit per row of a column.
const (
	Row12 uint16 = 0o4000
	Row11 uint16 = 0o2000
	Row0  uint16 = 0o1000

	noCode uint8 = 0xff
)

// Zone punch for B A bits.
var zoneRows = [4]uint16{0, Row0, Row11, Row12}

var holToBcdTable [4096]uint8

// Return row bit for digit rows 1 through 9.
func digitRow(n int) uint16 {
	return 1 << (9 - n)
}

// Hollerith returns the punches for a code.
func (c Code) Hollerith() uint16 {
	c &= Mask

	// Blank is no punch, zero is the 0 row alone.
	switch c {
	case Blank:
		return 0
	case Zero:
		return Row0
	case 0o20:
		return digitRow(8) | digitRow(2)
	}

	hol := zoneRows[c.Zone()]
	digit := c.Digit()

	// Plus zero and minus zero are the zone with the 0 row.
	if digit == 10 && c.Zone() >= 2 {
		return hol | Row0
	}

	if digit > 9 {
		hol |= digitRow(8)
		digit -= 8
	}
	if digit != 0 {
		hol |= digitRow(digit)
	}
	return hol
}

// FromHollerith returns the code punched as hol, or false if the
// combination of punches has no code.
func FromHollerith(hol uint16) (Code, bool) {
	if hol >= 4096 {
		return 0, false
	}
	b := holToBcdTable[hol]
	if b == noCode {
		return 0, false
	}
	return Code(b), true
}

// PunchString returns the rows punched in hol, like "12-8-4".
func PunchString(hol uint16) string {
	rows := []string{}
	if hol&Row12 != 0 {
		rows = append(rows, "12")
	}
	if hol&Row11 != 0 {
		rows = append(rows, "11")
	}
	if hol&Row0 != 0 {
		rows = append(rows, "0")
	}
	// The 8 row is written before the digit it combines with.
	if hol&digitRow(8) != 0 {
		rows = append(rows, "8")
	}
	for n := 1; n <= 9; n++ {
		if n != 8 && hol&digitRow(n) != 0 {
			rows = append(rows, strconv.Itoa(n))
		}
	}
	if len(rows) == 0 {
		return "none"
	}
	return strings.Join(rows, "-")
}

// Initialize back translation table.
func init() {
	for i := range holToBcdTable {
		holToBcdTable[i] = noCode
	}

	for i := range Size {
		hol := Code(i).Hollerith()
		if holToBcdTable[hol] != noCode {
			s := fmt.Sprintf("Translation error BCD %02o and %02o both punch %04o", holToBcdTable[hol], i, hol)
			panic(s)
		}
		holToBcdTable[hol] = uint8(i)
	}
}
