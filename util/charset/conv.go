/*
 * Charset - Text to BCD conversion.
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

package charset

import (
	"strings"

	"github.com/rcornwell/bcdconv/util/bcd"
)

// Encoding is one named character set. It is never changed after it is
// built and may be shared between goroutines.
type Encoding struct {
	name    string
	table   Table
	reverse ReverseMap
}

// Name returns the registry name.
func (e *Encoding) Name() string {
	return e.name
}

// Table returns a copy of the code to character table.
func (e *Encoding) Table() Table {
	return e.table
}

// Char returns the character for a code, parity is ignored.
func (e *Encoding) Char(c bcd.Code) rune {
	return e.table[c.Strip()]
}

// Code returns the code for a character.
func (e *Encoding) Code(r rune) (bcd.Code, bool) {
	c, ok := e.reverse[r]
	return c, ok
}

// Encode converts text to BCD codes.
func (e *Encoding) Encode(text string) ([]bcd.Code, error) {
	codes := make([]bcd.Code, 0, len(text))
	pos := 0
	for _, r := range text {
		c, ok := e.Code(r)
		if !ok {
			return nil, &UnencodableError{Char: r, Pos: pos, Encoding: e.name}
		}
		codes = append(codes, c)
		pos++
	}
	return codes, nil
}

// Decode converts BCD codes to text. Codes with no character give
// Unmapped.
func (e *Encoding) Decode(codes []bcd.Code) string {
	var b strings.Builder
	b.Grow(len(codes))
	for _, c := range codes {
		b.WriteRune(e.Char(c))
	}
	return b.String()
}

// Convert translates text in one encoding to another.
func Convert(text string, from, to *Encoding) (string, error) {
	codes, err := from.Encode(text)
	if err != nil {
		return "", err
	}
	return to.Decode(codes), nil
}
