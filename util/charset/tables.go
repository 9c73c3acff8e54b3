/*
 * Charset - BCD character set tables.
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

import "github.com/rcornwell/bcdconv/util/bcd"

// Character set tables.

// Card chart, from the 1401 reference manual A24-1403-5 page 170.
func cardTable() Table {
	return Table{
		/* 000 - 007 */
		' ', '1', '2', '3', '4', '5', '6', '7',
		/* 010 - 017, 017 is tape mark. It can not be read from a card, kept as charted. */
		'8', '9', '0', '#', '@', ':', '>', '√',
		/* 020 - 027 */
		'¢', '/', 'S', 'T', 'U', 'V', 'W', 'X',
		/* 030 - 037, 032 record mark, 035 word separator */
		'Y', 'Z', '⧧', ',', '%', '=', '\'', '"',
		/* 040 - 047 */
		'-', 'J', 'K', 'L', 'M', 'N', 'O', 'P',
		/* 050 - 057, 052 minus zero */
		'Q', 'R', '!', '$', '*', ')', ';', 'Δ',
		/* 060 - 067 */
		'&', 'A', 'B', 'C', 'D', 'E', 'F', 'G',
		/* 070 - 077, 072 plus zero, 074 lozenge, 077 group mark */
		'H', 'I', '?', '.', '⌑', '(', '<', '⯒',
	}
}

// Other glyphs seen in transcriptions of the special characters.
var cardAliases = []Alias{
	{'≢', 0o77}, // Group mark
	{'‡', 0o32}, // Record mark
	{'◊', 0o74}, // Lozenge
	{'∆', 0o57}, // Increment sign for delta
	{'−', 0o40}, // Minus sign
	{'+', 0o60}, // 12 punch is plus on Fortran cards
}

// 1403 A chain, 48 graphics. Everything else prints blank.
var chainOverrides = []Override{
	{0o15, Unmapped}, // :
	{0o16, Unmapped}, // >
	{bcd.TapeMark, Unmapped},
	{0o20, Unmapped}, // ¢
	{0o32, Unmapped}, // record mark
	{0o35, Unmapped}, // =
	{0o36, Unmapped}, // '
	{0o37, Unmapped}, // "
	{0o52, Unmapped}, // minus zero
	{0o55, Unmapped}, // )
	{0o56, Unmapped}, // ;
	{0o57, Unmapped}, // Δ
	{0o72, Unmapped}, // plus zero
	{0o75, Unmapped}, // (
	{0o76, Unmapped}, // <
	{0o77, Unmapped}, // group mark
	{bcd.TapeMark, Unmapped}, // Repeated, the later entry wins.
}

var chainAliases = []Alias{
	{'◊', 0o74},
	{'−', 0o40},
	{'+', 0o60},
}

// Even parity tape can not hold a zero frame, blank is written as 020.
// Both codes read as blank, writing blank gives 020.
var tapeOverrides = []Override{
	{0o20, ' '},
}

// SimH 1401 business character set.
var simhAOverrides = []Override{
	{bcd.TapeMark, '{'},
	{0o20, '^'},
	{0o32, '|'},
	{0o35, '~'},
	{0o36, '\\'},
	{0o55, ']'},
	{0o57, '_'},
	{0o74, ')'},
	{0o75, '['},
	{0o77, '}'},
}

// Fortran glyphs accepted on input.
var simhAAliases = []Alias{
	{'=', 0o13},
	{'\'', 0o14},
	{'(', 0o34},
}

// SimH 1401 Fortran character set, differs from business set in three places.
var simhHOverrides = []Override{
	{0o13, '='},
	{0o14, '\''},
	{0o34, '('},
}

// Business glyphs accepted on input.
var simhHAliases = []Alias{
	{'#', 0o13},
	{'@', 0o14},
	{'%', 0o34},
}

// BCD to EBCDIC, as used by 1401 compatibility on the 360.
var bcdToEbcdic = [64]byte{
	/*  000   001   002   003   004   005   006   007 */
	0x40, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7,
	/*  010   011   012   013   014   015   016   017 */
	0xf8, 0xf9, 0xf0, 0x7b, 0x7c, 0x7a, 0x6e, 0x6f,
	/*  020   021   022   023   024   025   026   027 */
	0x4a, 0x61, 0xe2, 0xe3, 0xe4, 0xe5, 0xe6, 0xe7,
	/*  030   031   032   033   034   035   036   037 */
	0xe8, 0xe9, 0xe0, 0x6b, 0x6c, 0x7e, 0x7d, 0x7f,
	/*  040   041   042   043   044   045   046   047 */
	0x60, 0xd1, 0xd2, 0xd3, 0xd4, 0xd5, 0xd6, 0xd7,
	/*  050   051   052   053   054   055   056   057 */
	0xd8, 0xd9, 0x5a, 0x5b, 0x5c, 0x5d, 0x5e, 0x5f,
	/*  060   061   062   063   064   065   066   067 */
	0x50, 0xc1, 0xc2, 0xc3, 0xc4, 0xc5, 0xc6, 0xc7,
	/*  070   071   072   073   074   075   076   077 */
	0xc8, 0xc9, 0xc0, 0x4b, 0x4e, 0x4d, 0x4c, 0x4f,
}
