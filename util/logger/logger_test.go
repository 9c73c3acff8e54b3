/*
 * bcdconv - slog wrapper tests.
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

package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// Writer that always fails.
type failWriter struct {
	err error
}

func (w failWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}

func TestLogFileAndConsole(t *testing.T) {
	var file, console bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelDebug)
	log := slog.New(NewHandler(&file, &console, &slog.HandlerOptions{Level: level}, false))

	log.Debug("table built", "name", "card")
	log.Warn("line skipped", "line", 3)

	f := file.String()
	if !strings.Contains(f, "DEBUG: table built name=card") {
		t.Errorf("Log file missing debug: %q", f)
	}
	if !strings.Contains(f, "WARN: line skipped line=3") {
		t.Errorf("Log file missing warning: %q", f)
	}
	c := console.String()
	if strings.Contains(c, "table built") {
		t.Errorf("Console got debug message: %q", c)
	}
	if !strings.Contains(c, "line skipped") {
		t.Errorf("Console missing warning: %q", c)
	}
}

func TestLogDebugConsole(t *testing.T) {
	var console bytes.Buffer
	h := NewHandler(nil, &console, nil, false)
	log := slog.New(h)

	log.Debug("hidden")
	if console.Len() != 0 {
		t.Errorf("Debug logged without debug set: %q", console.String())
	}

	h.SetDebug(true)
	log.Debug("shown")
	if !strings.Contains(console.String(), "DEBUG: shown") {
		t.Errorf("Debug not logged: %q", console.String())
	}
}

func TestLogAttrsAndGroups(t *testing.T) {
	var console bytes.Buffer
	log := slog.New(NewHandler(nil, &console, nil, false))
	log = log.With("from", "card").WithGroup("conv").With("to", "tape")
	log.Error("failed", "pos", 4)

	c := console.String()
	for _, want := range []string{"ERROR: failed", "from=card", "conv.to=tape", "conv.pos=4"} {
		if !strings.Contains(c, want) {
			t.Errorf("Log missing %q: %q", want, c)
		}
	}
}

// A failed log file write is reported even when the console works.
func TestLogFileError(t *testing.T) {
	fileErr := errors.New("disk full")
	var console bytes.Buffer
	h := NewHandler(failWriter{err: fileErr}, &console, nil, false)

	r := slog.NewRecord(time.Now(), slog.LevelWarn, "line skipped", 0)
	err := h.Handle(context.Background(), r)
	if !errors.Is(err, fileErr) {
		t.Errorf("Handle got: %v expected: %v", err, fileErr)
	}
	if !strings.Contains(console.String(), "line skipped") {
		t.Errorf("Console missing warning: %q", console.String())
	}

	consoleErr := errors.New("closed")
	h = NewHandler(failWriter{err: fileErr}, failWriter{err: consoleErr}, nil, false)
	if err := h.Handle(context.Background(), r); !errors.Is(err, fileErr) {
		t.Errorf("Handle got: %v expected: %v", err, fileErr)
	}
}
