/*
 * bcdconv - Main process.
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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	convert "github.com/rcornwell/bcdconv/command/convert"
	reader "github.com/rcornwell/bcdconv/command/reader"
	config "github.com/rcornwell/bcdconv/config/convconfig"
	bcd "github.com/rcornwell/bcdconv/util/bcd"
	charset "github.com/rcornwell/bcdconv/util/charset"
	logger "github.com/rcornwell/bcdconv/util/logger"
	octal "github.com/rcornwell/bcdconv/util/octal"
)

// Exit codes.
const (
	exitOK       = 0
	exitFatal    = 1 // Bad options, unknown encoding, I/O failure.
	exitBadInput = 2 // Unencodable characters in input.
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := getopt.New()
	optFrom := opts.StringLong("from", 'f', "", "Source encoding", "name")
	optTo := opts.StringLong("to", 't', "", "Destination encoding", "name")
	optConfig := opts.StringLong("config", 'c', "", "Configuration file", "file")
	optLogFile := opts.StringLong("log", 'l', "", "Log file", "file")
	optOnError := opts.StringLong("on-error", 'e', "", "abort or skip lines with unencodable characters", "policy")
	optList := opts.StringLong("list", 0, "", "Print the table of an encoding", "name")
	optDebug := opts.BoolLong("debug", 'd', "Log debug to console")
	optInteractive := opts.BoolLong("interactive", 'i', "Read lines from the terminal")
	optStream := opts.BoolLong("stream", 's', "Convert input as one stream")
	optHelp := opts.BoolLong("help", 'h', "Help")
	opts.SetParameters("")
	if err := opts.Getopt(args, nil); err != nil {
		fmt.Fprintln(stderr, err.Error())
		opts.PrintUsage(stderr)
		return exitFatal
	}
	if opts.NArgs() != 0 {
		fmt.Fprintln(stderr, "Unexpected arguments: "+strings.Join(opts.Args(), " "))
		opts.PrintUsage(stderr)
		return exitFatal
	}

	if *optHelp {
		opts.PrintUsage(stderr)
		fmt.Fprintln(stderr, "Encodings: "+strings.Join(charset.Names(), ", "))
		return exitOK
	}

	cfg, err := config.Load(*optConfig)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitFatal
	}
	if *optFrom != "" {
		cfg.From = *optFrom
	}
	if *optTo != "" {
		cfg.To = *optTo
	}
	if *optOnError != "" {
		cfg.OnError = *optOnError
	}
	if *optLogFile != "" {
		cfg.LogFile = *optLogFile
	}
	if *optDebug {
		cfg.Debug = true
	}

	var file *os.File
	if cfg.LogFile != "" {
		file, err = os.Create(cfg.LogFile)
		if err != nil {
			fmt.Fprintln(stderr, "Unable to create log file: "+err.Error())
			return exitFatal
		}
		defer file.Close()
	}
	programLevel := new(slog.LevelVar)
	if file != nil || cfg.Debug {
		programLevel.Set(slog.LevelDebug)
	}
	var out io.Writer
	if file != nil {
		out = file
	}
	Logger := slog.New(logger.NewHandler(out, stderr, &slog.HandlerOptions{Level: programLevel}, cfg.Debug))
	slog.SetDefault(Logger)

	if *optList != "" {
		return listTable(*optList, stdout)
	}

	if err := cfg.Validate(); err != nil {
		Logger.Error(err.Error())
		return exitFatal
	}
	policy := cfg.Policy()
	if *optStream && policy != convert.Abort {
		Logger.Error("Stream mode can not skip lines", "on_error", cfg.OnError)
		return exitFatal
	}

	// Validate has resolved both already.
	from, _ := charset.Resolve(cfg.From)
	to, _ := charset.Resolve(cfg.To)
	conv := &convert.Converter{From: from, To: to, Policy: policy}
	Logger.Debug("Converting", "from", from.Name(), "to", to.Name(), "on_error", policy.String())

	if *optStream {
		_, err := conv.Stream(stdin, stdout)
		if err != nil {
			Logger.Error(err.Error())
			if errors.Is(err, charset.ErrUnencodable) {
				return exitBadInput
			}
			return exitFatal
		}
		return exitOK
	}

	var src reader.LineSource
	if *optInteractive {
		if !reader.TerminalSupported() {
			Logger.Error("Terminal does not support line editing")
			return exitFatal
		}
		console := reader.NewConsole(from.Name() + "> ")
		defer console.Close()
		src = console
	} else {
		src = reader.NewScanner(stdin)
	}

	stats, err := conv.Run(src, stdout)
	Logger.Debug("Conversion done", "lines", stats.Lines, "skipped", stats.Skipped)
	if err != nil {
		Logger.Error(err.Error())
		if errors.Is(err, charset.ErrUnencodable) {
			return exitBadInput
		}
		return exitFatal
	}
	if stats.Skipped != 0 {
		Logger.Warn("Lines skipped", "count", stats.Skipped)
		return exitBadInput
	}
	return exitOK
}

// Print each code of an encoding with its bits and card punches.
func listTable(name string, w io.Writer) int {
	enc, err := charset.Resolve(name)
	if err != nil {
		slog.Error(err.Error())
		return exitFatal
	}

	fmt.Fprintf(w, "%-4s %-6s %-5s %-8s %s\n", "BCD", "Bits", "Hol", "Punch", "Char")
	for i, r := range enc.Table() {
		var hol strings.Builder
		c := bcd.Code(i)
		punch := c.Hollerith()
		if back, ok := bcd.FromHollerith(punch); !ok || back != c {
			slog.Error("Punch does not read back", "code", c.String(), "punch", bcd.PunchString(punch))
			return exitFatal
		}
		octal.FormatHol(&hol, punch)
		fmt.Fprintf(w, "%-4s %-6s %-5s %-8s %c\n", c.String(), c.Bits(), hol.String(), bcd.PunchString(punch), r)
	}
	return exitOK
}
