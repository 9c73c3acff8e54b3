/*
 * bcdconv - Conversion loop.
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

package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rcornwell/bcdconv/command/reader"
	"github.com/rcornwell/bcdconv/util/charset"
	"github.com/rcornwell/bcdconv/util/octal"
	"golang.org/x/text/transform"
)

// What to do with a line holding an unencodable character.
type Policy int

const (
	Abort Policy = iota // Stop the run.
	Skip                // Log it, drop the line, keep going.
)

var policyNames = map[Policy]string{
	Abort: "abort",
	Skip:  "skip",
}

// ErrPolicy reports an error policy name that is not known.
var ErrPolicy = errors.New("unknown error policy")

func (p Policy) String() string {
	return policyNames[p]
}

// ParsePolicy converts a policy name.
func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return Abort, fmt.Errorf("%w: %q", ErrPolicy, name)
}

// ReadError is a failure of the line source.
type ReadError struct {
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading line %d: %v", e.Line, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// LineError is a conversion failure on one input line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Stats counts lines handled by Run.
type Stats struct {
	Lines   int // Lines read.
	Skipped int // Lines dropped under Skip.
}

// Converter translates lines from one encoding to another.
type Converter struct {
	From   *charset.Encoding
	To     *charset.Encoding
	Policy Policy
}

// Run converts each line from src and writes it to dst, one line out for
// each line in. It returns when src is exhausted or on the first error
// that ends the run.
func (c *Converter) Run(src reader.LineSource, dst io.Writer) (Stats, error) {
	var stats Stats

	for {
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		stats.Lines++
		if err != nil {
			return stats, &ReadError{Line: stats.Lines, Err: err}
		}

		out, err := charset.Convert(line, c.From, c.To)
		if err != nil {
			lerr := &LineError{Line: stats.Lines, Err: err}
			if c.Policy == Abort {
				return stats, lerr
			}
			stats.Skipped++
			slog.Warn("Line skipped", "error", lerr.Error())
			continue
		}
		if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
			codes, _ := c.From.Encode(line)
			slog.Debug("Line codes", "line", stats.Lines, "bcd", octal.Codes(codes))
		}

		if _, err := io.WriteString(dst, out+"\n"); err != nil {
			return stats, fmt.Errorf("write failed: %w", err)
		}
	}
}

// Stream converts all of r to w without splitting lines. Any unencodable
// character stops the copy, so only Abort is allowed.
func (c *Converter) Stream(r io.Reader, w io.Writer) (int64, error) {
	if c.Policy != Abort {
		return 0, fmt.Errorf("%w: stream mode supports only %s", ErrPolicy, Abort)
	}
	tr := transform.NewReader(r, charset.NewTranscoder(c.From, c.To))
	return io.Copy(w, tr)
}
