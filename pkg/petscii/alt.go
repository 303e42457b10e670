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

package petscii

/*
	PoundKey stands in for the pound sign when translating alt key presses.
	Host keyboards usually have no pound key, so the key that sits where the
	pound key is on the C64, gets used instead.
*/
const PoundKey = '/'

// PETSCII codes for Alt+key, following the graphics printed on the front of
// the C64 keys for the C= key
var altCodes = map[rune]byte{
	'a': 0xb0, 'b': 0xbf, 'c': 0xbc, 'd': 0xac, 'e': 0xb1,
	'f': 0xbb, 'g': 0xa5, 'h': 0xb4, 'i': 0xa2, 'j': 0xb5,
	'k': 0xa1, 'l': 0xb6, 'm': 0xa7, 'n': 0xaa, 'o': 0xb9,
	'p': 0xaf, 'q': 0xab, 'r': 0xb2, 's': 0xae, 't': 0xa3,
	'u': 0xb8, 'v': 0xbe, 'w': 0xb3, 'x': 0xbd, 'y': 0xb7,
	'z': 0xad,
	'+':      0x7f,
	'-':      0xa6,
	'@':      0x7c,
	'*':      0x5f,
	PoundKey: 0xa8,
}

// PETSCII codes for Shift+Alt+key on non-letter keys; letters are computed
var shiftedAltCodes = map[rune]byte{
	'+':      0x7b,
	'-':      0x7d,
	'@':      0xba,
	'*':      0x60,
	PoundKey: 0xa9,
}

/*
	AltKeyCode returns the PETSCII code produced by pressing the key for c
	while holding Alt, and Shift if shift is set. Alt plays the role of Shift
	on the C64, and Shift+Alt that of the C= key. The lookup ignores the case
	of ASCII letters. If the key has no graphics character, ok is false.
*/
func AltKeyCode(c rune, shift bool) (code byte, ok bool) {

	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}

	if !shift {
		code, ok = altCodes[c]
		return
	}

	if 'a' <= c && c <= 'z' {
		return byte(c-'a') + 0xc1, true
	}
	code, ok = shiftedAltCodes[c]
	return
}

/*
	TranslateAltKey returns the code point of the graphics character produced
	by pressing the key for c with Alt, and Shift if shift is set. If there is
	no such character, ok is false and the returned code point is 0. Callers
	then keep the original character.
*/
func TranslateAltKey(c rune, shift bool) (r rune, ok bool) {
	if code, found := AltKeyCode(c, shift); found {
		return ToUnicode(code), true
	}
	return 0, false
}
