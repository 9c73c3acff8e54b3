/*
 * bcdconv - Conversion configuration tests.
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

package convconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rcornwell/bcdconv/command/convert"
	"github.com/rcornwell/bcdconv/util/charset"
)

// Write a configuration file in a temporary directory.
func writeConfig(t *testing.T, text string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "bcdconv.toml")
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

// Clear variables that may be set in the test environment.
func clearEnv(t *testing.T) {
	for _, v := range []string{ConfigEnv, "BCDCONV_FROM", "BCDCONV_TO", "BCDCONV_ON_ERROR", "BCDCONV_LOG", "BCDCONV_DEBUG"} {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestDefault(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OnError != "abort" || cfg.Policy() != convert.Abort {
		t.Errorf("Default policy got: %s expected: abort", cfg.OnError)
	}
	if cfg.From != "" || cfg.To != "" {
		t.Errorf("Default encodings got: %q %q", cfg.From, cfg.To)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrNoEncoding) {
		t.Errorf("Validate got: %v expected ErrNoEncoding", err)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	name := writeConfig(t, `
# Convert Fortran decks.
from = "card"
to = "simh-h"
on_error = "skip"
log = "conv.log"
debug = true
`)
	cfg, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.From != "card" || cfg.To != "simh-h" || cfg.Policy() != convert.Skip {
		t.Errorf("Load got: %+v", cfg)
	}
	if cfg.LogFile != "conv.log" || !cfg.Debug {
		t.Errorf("Load got: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

// Environment overrides the file.
func TestLoadEnvOverride(t *testing.T) {
	clearEnv(t)
	name := writeConfig(t, "from = \"card\"\nto = \"tape\"\n")
	t.Setenv(ConfigEnv, name)
	t.Setenv("BCDCONV_TO", "ebcdic")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.From != "card" {
		t.Errorf("From got: %s expected: card", cfg.From)
	}
	if cfg.To != "ebcdic" {
		t.Errorf("To got: %s expected: ebcdic", cfg.To)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Missing file did not fail")
	}
	if _, err := Load(writeConfig(t, "from = \n")); err == nil {
		t.Error("Bad syntax did not fail")
	}
	if _, err := Load(writeConfig(t, "form = \"card\"\n")); err == nil {
		t.Error("Unknown key did not fail")
	}
	t.Setenv("BCDCONV_DEBUG", "maybe")
	if _, err := Load(""); err == nil {
		t.Error("Bad boolean did not fail")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{From: "card", To: "nowhere", OnError: "abort"}
	err := cfg.Validate()
	if !errors.Is(err, charset.ErrUnsupportedEncoding) {
		t.Errorf("Validate got: %v expected ErrUnsupportedEncoding", err)
	}

	for _, policy := range []string{"retry", ""} {
		cfg = &Config{From: "card", To: "tape", OnError: policy}
		if err := cfg.Validate(); !errors.Is(err, convert.ErrPolicy) {
			t.Errorf("Policy %q got: %v expected ErrPolicy", policy, err)
		}
	}
}
