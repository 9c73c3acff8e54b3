/*
 * Charset - Registry of supported encodings.
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
	"log/slog"
	"sync"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names.
const (
	Card   = "card"   // Card reader chart.
	Chain  = "chain"  // 1403 A print chain.
	Tape   = "tape"   // Even parity tape.
	SimhA  = "simh-a" // SimH business set.
	SimhH  = "simh-h" // SimH Fortran set.
	EBCDIC = "ebcdic" // 360 compatibility through code page 037.
)

// How one encoding is made. Either build is set, or the table is
// base with overrides applied.
type definition struct {
	name      string
	build     func() (Table, error)
	base      string
	overrides []Override
	aliases   []Alias
	encoding  func() (*Encoding, error)
}

var definitions = []*definition{
	{name: Card, build: baseCard, aliases: cardAliases},
	{name: Chain, base: Card, overrides: chainOverrides, aliases: chainAliases},
	{name: Tape, base: Card, overrides: tapeOverrides, aliases: cardAliases},
	{name: SimhA, base: Card, overrides: simhAOverrides, aliases: simhAAliases},
	{name: SimhH, base: SimhA, overrides: simhHOverrides, aliases: simhHAliases},
	{name: EBCDIC, build: composeEBCDIC},
}

var registry = map[string]*definition{}

func baseCard() (Table, error) {
	return cardTable(), nil
}

func composeEBCDIC() (Table, error) {
	return Compose(bcdToEbcdic, charmap.CodePage037)
}

// Build the encoding for a definition.
func (def *definition) construct() (*Encoding, error) {
	var table Table

	if def.build != nil {
		t, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", def.name, err)
		}
		table = t
	} else {
		base, err := Resolve(def.base)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", def.name, err)
		}
		table = Derive(base.table, def.overrides)
	}

	rev := BuildReverse(table)
	rev.Alias(def.aliases)
	slog.Debug("Built encoding", "name", def.name, "characters", len(rev))
	return &Encoding{name: def.name, table: table, reverse: rev}, nil
}

// Register each definition, encodings are built on first use.
func init() {
	for _, def := range definitions {
		if _, ok := registry[def.name]; ok {
			panic("Duplicate encoding: " + def.name)
		}
		def.encoding = sync.OnceValues(def.construct)
		registry[def.name] = def
	}
}

// Resolve returns the named encoding.
func Resolve(name string) (*Encoding, error) {
	def, ok := registry[name]
	if !ok {
		return nil, &UnsupportedEncodingError{Name: name}
	}
	return def.encoding()
}

// Names returns the supported encoding names.
func Names() []string {
	names := make([]string, len(definitions))
	for i, def := range definitions {
		names[i] = def.name
	}
	return names
}
