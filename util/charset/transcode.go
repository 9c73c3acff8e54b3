/*
 * Charset - Stream transcoder.
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
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transcoder converts a UTF-8 stream from one encoding's glyphs to
// another's. Line ends are copied as is.
type Transcoder struct {
	from *Encoding
	to   *Encoding
	pos  int // Characters seen since Reset.
}

var _ transform.Transformer = (*Transcoder)(nil)

// NewTranscoder returns a transformer from one encoding to another.
func NewTranscoder(from, to *Encoding) *Transcoder {
	return &Transcoder{from: from, to: to}
}

// Reset restarts position counting.
func (t *Transcoder) Reset() {
	t.pos = 0
}

// Transform implements transform.Transformer.
func (t *Transcoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}

		out := r
		if r != '\n' && r != '\r' {
			c, ok := t.from.Code(r)
			if !ok || (r == utf8.RuneError && size == 1) {
				return nDst, nSrc, &UnencodableError{Char: r, Pos: t.pos, Encoding: t.from.name}
			}
			out = t.to.Char(c)
		}

		if nDst+utf8.RuneLen(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], out)
		nSrc += size
		t.pos++
	}
	return nDst, nSrc, nil
}
