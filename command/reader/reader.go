/*
 * bcdconv - Line sources.
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

package reader

import (
	"bufio"
	"errors"
	"io"

	"github.com/peterh/liner"
)

// LineSource returns one line of text per call without the line end,
// and io.EOF when there are no more lines.
type LineSource interface {
	ReadLine() (string, error)
}

// Largest line accepted from a file.
const maxLine = 1024 * 1024

// Scanner reads lines from a stream.
type Scanner struct {
	scan *bufio.Scanner
}

// NewScanner returns a line source over r.
func NewScanner(r io.Reader) *Scanner {
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 4096), maxLine)
	return &Scanner{scan: scan}
}

func (s *Scanner) ReadLine() (string, error) {
	if s.scan.Scan() {
		return s.scan.Text(), nil
	}
	if err := s.scan.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Console reads lines typed at a terminal with editing and history.
type Console struct {
	line   *liner.State
	prompt string
}

// TerminalSupported reports whether a console can be used.
func TerminalSupported() bool {
	return liner.TerminalSupported()
}

// NewConsole starts terminal line editing. Close must be called to restore
// the terminal.
func NewConsole(prompt string) *Console {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &Console{line: line, prompt: prompt}
}

// ReadLine prompts for a line. Control-C or Control-D ends input.
func (c *Console) ReadLine() (string, error) {
	text, err := c.line.Prompt(c.prompt)
	if err == nil {
		if text != "" {
			c.line.AppendHistory(text)
		}
		return text, nil
	}

	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", io.EOF
	}
	return "", err
}

// Close restores the terminal.
func (c *Console) Close() error {
	return c.line.Close()
}
