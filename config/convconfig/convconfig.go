/*
 * bcdconv - Conversion configuration.
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
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/rcornwell/bcdconv/command/convert"
	"github.com/rcornwell/bcdconv/util/charset"
)

/* Configuration file format (TOML), every key optional:
 *
 *  from     = "card"      # Source encoding.
 *  to       = "simh-h"    # Destination encoding.
 *  on_error = "abort"     # abort or skip on unencodable characters.
 *  log      = "conv.log"  # Log file.
 *  debug    = false       # Echo debug messages to console.
 *
 * Environment variables override the file, command line overrides both.
 */

// Environment variable holding the default configuration file.
const ConfigEnv = "BCDCONV_CONFIG"

var ErrNoEncoding = errors.New("source and destination encodings must be given")

// Config holds the settings for one run.
type Config struct {
	From    string `toml:"from" env:"BCDCONV_FROM"`
	To      string `toml:"to" env:"BCDCONV_TO"`
	OnError string `toml:"on_error" env:"BCDCONV_ON_ERROR"`
	LogFile string `toml:"log" env:"BCDCONV_LOG"`
	Debug   bool   `toml:"debug" env:"BCDCONV_DEBUG"`
}

// Default returns the built in settings.
func Default() *Config {
	return &Config{OnError: convert.Abort.String()}
}

// LoadFile reads settings from a TOML file over cfg.
func (cfg *Config) LoadFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("can't read configuration %s: %w", fileName, err)
	}

	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("parse error in %s: %w", fileName, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return fmt.Errorf("unknown option in %s: %s", fileName, undecoded[0].String())
	}
	return nil
}

// LoadEnv applies environment variables over cfg.
func (cfg *Config) LoadEnv() error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load builds a configuration from the defaults, the file if not empty
// and the environment. If fileName is empty BCDCONV_CONFIG is used.
func Load(fileName string) (*Config, error) {
	cfg := Default()
	if fileName == "" {
		fileName = os.Getenv(ConfigEnv)
	}
	if fileName != "" {
		if err := cfg.LoadFile(fileName); err != nil {
			return nil, err
		}
	}
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks both encodings exist and the error policy is known.
func (cfg *Config) Validate() error {
	if cfg.From == "" || cfg.To == "" {
		return ErrNoEncoding
	}
	if _, err := charset.Resolve(cfg.From); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if _, err := charset.Resolve(cfg.To); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	if _, err := convert.ParsePolicy(cfg.OnError); err != nil {
		return err
	}
	return nil
}

// Policy returns the error policy, Validate must have passed.
func (cfg *Config) Policy() convert.Policy {
	p, _ := convert.ParsePolicy(cfg.OnError)
	return p
}
