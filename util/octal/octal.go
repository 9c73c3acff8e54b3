/*
 * bcdconv - Octal formatting of codes.
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

package octal

import (
	"strings"

	"github.com/rcornwell/bcdconv/util/bcd"
)

var octMap = "01234567"

// Two digits per code, check bit and word mark dropped.
func FormatCodes(str *strings.Builder, space bool, codes []bcd.Code) {
	for i, c := range codes {
		if space && i != 0 {
			str.WriteByte(' ')
		}
		c = c.Strip()
		str.WriteByte(octMap[(c>>3)&0o7])
		str.WriteByte(octMap[c&0o7])
	}
}

// Four digits, one per three rows of a card column.
func FormatHol(str *strings.Builder, hol uint16) {
	shift := 9
	for range 4 {
		str.WriteByte(octMap[(hol>>shift)&0o7])
		shift -= 3
	}
}

// Codes returns codes as space separated octal.
func Codes(codes []bcd.Code) string {
	var str strings.Builder
	FormatCodes(&str, true, codes)
	return str.String()
}
