/*
 * Charset - Conversion errors.
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
	"errors"
	"fmt"
)

var (
	ErrUnsupportedEncoding = errors.New("unsupported encoding")  // Name not in registry.
	ErrUnencodable         = errors.New("unencodable character") // Character not in encoding.
	ErrComposition         = errors.New("bad composed table")    // Table data defect.
)

// UnsupportedEncodingError reports an unknown encoding name.
type UnsupportedEncodingError struct {
	Name string
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedEncoding, e.Name)
}

func (e *UnsupportedEncodingError) Is(target error) bool {
	return target == ErrUnsupportedEncoding
}

// UnencodableError reports a character with no code. Pos is the
// character index in the input, counting from zero.
type UnencodableError struct {
	Char     rune
	Pos      int
	Encoding string
}

func (e *UnencodableError) Error() string {
	return fmt.Sprintf("%s %q (%U) at position %d for %s", ErrUnencodable, e.Char, e.Char, e.Pos, e.Encoding)
}

func (e *UnencodableError) Is(target error) bool {
	return target == ErrUnencodable
}
