/*
   BA67 web - keyboard, charset & cloud storage for the BA67 web app
   Copyright (c) 2025, the BA67 authors

   This file is part of BA67 web.

   BA67 web is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   BA67 web is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with BA67 web. If not, see <http://www.gnu.org/licenses/>.
*/

/*
	Package petscii holds the BA67 flavour of the PETSCII character set, i.e.
	the mapping between the emulator's 8-bit character codes and the Unicode
	code points used by the BA67 display fonts, and the translation of alt
	modified key presses into PETSCII graphics characters.
*/
package petscii

//
type mapping struct {
	code  byte
	point rune
}

/*
	BA67 mapping of PETSCII codes to Unicode, in authoring order. Codes not
	listed here map onto themselves, which covers ASCII 0x00-0x5B, the
	lowercase letters kept at 0x61-0x7a, and the control codes at 0x80-0xa0.
	Several codes share a code point, since the fonts have no separate glyphs
	for them.
*/
var mappings = []mapping{
	{0x5C, 0x00A3}, // pound sign, there's no backslash in PETSCII
	{0x5E, 0x2191}, // arrow up
	{0x5F, 0x2190}, // arrow left
	{0x60, 0x2501}, // box drawings light horizontal
	{0x7B, 0x253C}, // box drawings light vertical and horizontal
	{0x7C, 0xE011}, // left half hatched
	{0x7D, 0x2503}, // box drawings heavy vertical
	{0x7E, 0x03C0}, // greek small letter pi
	{0x7F, 0x25E5}, // black upper right triangle
	{0xA1, 0x258C}, // left half block
	{0xA2, 0x2584}, // lower half block
	{0xA4, 0x2581}, // lower one eighth block
	{0xA5, 0x258E}, // left one quarter block
	{0xA6, 0x2592}, // medium shade
	{0xA7, 0x1FB87}, // right one quarter block
	{0xA8, 0x1FB8F}, // lower half medium shade
	{0xA9, 0x25E4}, // black upper left triangle
	{0xAA, 0x1FB87}, // right one quarter block
	{0xAB, 0x2523}, // box drawings heavy vertical and right
	{0xAC, 0x2597}, // black small square lower right
	{0xAD, 0x2517}, // box drawings heavy up and right
	{0xAE, 0x2513}, // box drawings heavy down and left
	{0xAF, 0x2582}, // lower one quarter block
	{0xB0, 0x250F}, // box drawings heavy down and right
	{0xB1, 0x253B}, // box drawings heavy up and horizontal
	{0xB2, 0x2533}, // box drawings heavy down and horizontal
	{0xB3, 0x252B}, // box drawings heavy vertical and left
	{0xB4, 0x258E}, // left one quarter block
	{0xB5, 0x258D}, // left three eights block
	{0xB6, 0x1FB88}, // right three eighths block
	{0xB7, 0x1FB82}, // upper one quarter block
	{0xB8, 0x1FB83}, // upper three eighths block
	{0xB9, 0x2583}, // lower three eights block
	{0xBA, 0x1FB7F}, // bottom right corner
	{0xBB, 0x2596}, // black small square lower left
	{0xBC, 0x259D}, // black small square upper right
	{0xBD, 0x251B}, // box drawings heavy up and left
	{0xBE, 0x2598}, // black small square upper left
	{0xBF, 0x259A}, // two small black squares diagonal left to right
	{0xC0, 0x2501}, // box drawings light horizontal
	{0xC1, 0x2660}, // black spade suit
	{0xC2, 0x2758}, // light vertical bar
	{0xC3, 0x2501}, // box drawings heavy horizontal
	{0xC4, 0x1FB77}, // box drawings light horizontal one quarter up
	{0xC5, 0x1FB76}, // box drawings light horizontal two quarters up
	{0xC6, 0x1FB7A}, // box drawings light horizontal one quarter down
	{0xC7, 0x1FB71}, // box drawings light vertical one quarter left
	{0xC8, 0x1FB74}, // box drawings light vertical one quarter right
	{0xC9, 0x256E}, // box drawings light arc down and left
	{0xCA, 0x2570}, // box drawings light arc up and right
	{0xCB, 0x256F}, // box drawings light arc up and left
	{0xCC, 0x1FB7C}, // bottom left corner
	{0xCD, 0x2572}, // box drawings light diagonal upper left to lower right
	{0xCE, 0x2571}, // box drawings light diagonal upper right to lower left
	{0xCF, 0x1FB7D}, // top left corner
	{0xD0, 0x1FB7E}, // top right corner
	{0xD1, 0x25CF}, // black circle
	{0xD2, 0x1FB7B}, // box drawings light horizontal two quarters down
	{0xD3, 0x2665}, // black heart suit
	{0xD4, 0x1FB70}, // box drawings light vertical two quarters left
	{0xD5, 0x256D}, // box drawings light arc down and right
	{0xD6, 0x2573}, // box drawings light diagonal cross
	{0xD7, 0x25CB}, // donut
	{0xD8, 0x2663}, // black club suit
	{0xD9, 0x1FB75}, // box drawings light vertical two quarters right
	{0xDA, 0x2666}, // black diamond suit
	{0xDB, 0x253C}, // box drawings light vertical and horizontal
	{0xDC, 0x1FB8C}, // left half medium shade
	{0xDD, 0x2502}, // box drawings light vertical
	{0xDE, 0x03C0}, // greek small letter pi
	{0xDF, 0x1FB98}, // upper left to lower right fill '\\'
	{0xE0, 0x00A0}, // no-break space
	{0xE1, 0x258C}, // left half block
	{0xE2, 0x2584}, // lower half block
	{0xE3, 0x2594}, // upper one eighth block
	{0xE4, 0x2581}, // lower one eighth block
	{0xE5, 0x258E}, // left one quarter block
	{0xE6, 0x2592}, // medium shade
	{0xE5, 0x1FB87}, // right one quarter block
	// FIXME: duplicate of 0xE5, probably meant for 0xE7; data needs review.
	// As authored, the later definition wins and 0xE7 stays unmapped.
	{0xE8, 0x1FB8F}, // lower half medium shade
	{0xE9, 0x1FB99}, // upper right to lower left fill '//'
	{0xEA, 0x1FB87}, // right one quarter block
	{0xEB, 0x2523}, // box drawings heavy vertical and right
	{0xEC, 0x2597}, // black small square lower right
	{0xED, 0x2517}, // box drawings heavy up and right
	{0xEE, 0x2513}, // box drawings heavy down and left
	{0xEF, 0x2582}, // lower one quarter block
	{0xF0, 0x250F}, // box drawings heavy down and right
	{0xF1, 0x253B}, // box drawings heavy up and horizontal
	{0xF2, 0x2533}, // box drawings heavy down and horizontal
	{0xF3, 0x252B}, // box drawings heavy vertical and left
	{0xF4, 0x258E}, // left one quarter block
	{0xF5, 0x258D}, // left three eights block
	{0xF6, 0x1FB88}, // right three eights block
	{0xF7, 0x1FB82}, // upper one quarter block
	{0xF8, 0x1FB83}, // upper three eights block
	{0xF9, 0x2583}, // lower three eights block
	{0xFA, 0x2713}, // check mark
	{0xFB, 0x2596}, // black small square lower left
	{0xFC, 0x259D}, // black small square upper right
	{0xFD, 0x251B}, // box drawings heavy up and left
	{0xFE, 0x2598}, // black small square upper left
	{0xFF, 0x2592}, // medium shade
}

//
var (
	toUnicode   [256]rune
	fromUnicode map[rune]byte
	overrides   []byte
)

//
func init() {

	for ix := range toUnicode {
		toUnicode[ix] = rune(ix)
	}

	seen := make(map[byte]bool, len(mappings))
	for _, m := range mappings {
		if seen[m.code] {
			overrides = append(overrides, m.code)
		}
		seen[m.code] = true
		toUnicode[m.code] = m.point
	}

	fromUnicode = make(map[rune]byte, len(toUnicode))
	for ix, r := range toUnicode {
		fromUnicode[r] = byte(ix)
	}
}

// ToUnicode returns the code point registered for PETSCII code b. Codes
// without a registration are returned unchanged.
func ToUnicode(b byte) rune {
	return toUnicode[b]
}

/*
	FromUnicode returns the PETSCII code for code point r, or fallback if no
	code maps onto r. When several codes share a code point, the highest of
	them is returned.
*/
func FromUnicode(r rune, fallback byte) byte {
	if b, ok := fromUnicode[r]; ok {
		return b
	}
	return fallback
}

// Overrides lists the codes that are defined more than once in the mapping
// data, in the order in which the overriding definitions appear.
func Overrides() []byte {
	return append([]byte(nil), overrides...)
}

// Decode converts a string of PETSCII codes into displayable text.
func Decode(data []byte) string {
	ret := make([]rune, len(data))
	for ix, b := range data {
		ret[ix] = toUnicode[b]
	}
	return string(ret)
}
