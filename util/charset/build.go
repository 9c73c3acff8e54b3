/*
 * Charset - Table builders.
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
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rcornwell/bcdconv/util/bcd"
)

// Unmapped is the character for codes with no glyph.
const Unmapped = utf8.RuneError

// Table maps each BCD code to its character.
type Table [bcd.Size]rune

// ReverseMap maps characters back to BCD codes.
type ReverseMap map[rune]bcd.Code

// Override replaces the character of one code.
type Override struct {
	Code bcd.Code
	Char rune
}

// Alias adds an extra input character for a code.
type Alias struct {
	Char rune
	Code bcd.Code
}

// Codepage translates an eight bit code to a character.
// *charmap.Charmap from golang.org/x/text satisfies it.
type Codepage interface {
	DecodeByte(b byte) rune
}

// Derive returns a copy of base with overrides applied in order.
func Derive(base Table, overrides []Override) Table {
	table := base
	for _, o := range overrides {
		table[o.Code.Strip()] = o.Char
	}
	return table
}

// Compose builds a table by running each code through stage1 then
// stage2. Every intermediate byte must give a printable character.
func Compose(stage1 [bcd.Size]byte, stage2 Codepage) (Table, error) {
	var table Table
	for i, b := range stage1 {
		r := stage2.DecodeByte(b)
		if r == utf8.RuneError {
			return Table{}, fmt.Errorf("%w: code %02o byte %02x undefined", ErrComposition, i, b)
		}
		if unicode.IsControl(r) || !unicode.IsGraphic(r) {
			return Table{}, fmt.Errorf("%w: code %02o byte %02x not printable: %U", ErrComposition, i, b, r)
		}
		table[i] = r
	}
	return table, nil
}

// BuildReverse returns the character to code map for a table. When two
// codes share a character the higher code is kept.
func BuildReverse(table Table) ReverseMap {
	rev := make(ReverseMap, len(table))
	for i, r := range table {
		if r == Unmapped {
			continue
		}
		rev[r] = bcd.Code(i)
	}
	return rev
}

// Alias adds aliases to the map, replacing any existing entry.
func (rev ReverseMap) Alias(aliases []Alias) {
	for _, a := range aliases {
		rev[a.Char] = a.Code.Strip()
	}
}
