/*
 * Charset - Stream transcoder tests.
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
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"golang.org/x/text/transform"
)

func TestTranscodeString(t *testing.T) {
	card := mustResolve(t, Card)
	simh := mustResolve(t, SimhA)
	tc := NewTranscoder(card, simh)

	out, _, err := transform.String(tc, "A=B\nC⯒\r\n")
	if err != nil {
		t.Fatal(err)
	}
	if out != "A~B\nC}\r\n" {
		t.Errorf("Transcode got: %q expected: %q", out, "A~B\nC}\r\n")
	}
}

// Check position is counted from Reset.
func TestTranscodeError(t *testing.T) {
	card := mustResolve(t, Card)
	tc := NewTranscoder(card, card)

	_, _, err := transform.String(tc, "AB\nxy")
	var ue *UnencodableError
	if !errors.As(err, &ue) {
		t.Fatalf("Transcode got: %v expected UnencodableError", err)
	}
	if ue.Char != 'x' || ue.Pos != 3 {
		t.Errorf("Error got: %q at %d expected 'x' at 3", ue.Char, ue.Pos)
	}

	_, _, err = transform.String(tc, "z")
	if !errors.As(err, &ue) || ue.Pos != 0 {
		t.Errorf("Error after reset got: %v", err)
	}

	_, _, err = transform.String(tc, "A\xff")
	if !errors.Is(err, ErrUnencodable) {
		t.Errorf("Invalid UTF-8 got: %v", err)
	}
}

// Small buffers force short source and destination handling.
func TestTranscodeShortBuffers(t *testing.T) {
	card := mustResolve(t, Card)
	chain := mustResolve(t, Chain)
	tc := NewTranscoder(card, chain)

	in := strings.Repeat("⌑A⯒√1\n", 50)
	expect := strings.Repeat("⌑A\uFFFD\uFFFD1\n", 50)

	// One byte at a time through the reader.
	r := transform.NewReader(iotest.OneByteReader(strings.NewReader(in)), tc)
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != expect {
		t.Errorf("Transcode got: %q", string(b))
	}

	// Destination too short for a three byte character.
	tc.Reset()
	dst := make([]byte, 2)
	nDst, nSrc, err := tc.Transform(dst, []byte("⌑"), true)
	if err != transform.ErrShortDst || nDst != 0 || nSrc != 0 {
		t.Errorf("Short destination got: %d %d %v", nDst, nSrc, err)
	}

	// Partial character waits for more input.
	nDst, nSrc, err = tc.Transform(make([]byte, 16), []byte("A\xe2\x8c"), false)
	if err != transform.ErrShortSrc || nDst != 1 || nSrc != 1 {
		t.Errorf("Short source got: %d %d %v", nDst, nSrc, err)
	}
}
