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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUnicodeIdentityForUnmappedCodes(t *testing.T) {

	mapped := map[byte]bool{}
	for _, m := range mappings {
		mapped[m.code] = true
	}

	for ix := 0; ix < 256; ix++ {
		if !mapped[byte(ix)] {
			assert.Equal(t, rune(ix), ToUnicode(byte(ix)), "code 0x%02x", ix)
		}
	}
}

func TestToUnicodeMappedCodes(t *testing.T) {
	assert.Equal(t, rune(0x00a3), ToUnicode(0x5c))
	assert.Equal(t, rune(0x2660), ToUnicode(0xc1))
	assert.Equal(t, rune(0x2523), ToUnicode(0xab))
	assert.Equal(t, rune(0x2592), ToUnicode(0xff))
	assert.Equal(t, 'a', ToUnicode(0x61))
	assert.Equal(t, 'A', ToUnicode(0x41))
}

func TestDuplicateDefinitionLastWins(t *testing.T) {
	assert.Equal(t, rune(0x1fb87), ToUnicode(0xe5))
	assert.Equal(t, rune(0xe7), ToUnicode(0xe7))
	assert.Equal(t, []byte{0xe5}, Overrides())
}

func TestOverridesReturnsCopy(t *testing.T) {
	o := Overrides()
	o[0] = 0
	assert.Equal(t, []byte{0xe5}, Overrides())
}

func TestFromUnicode(t *testing.T) {

	for ix := 0; ix < 256; ix++ {
		r := ToUnicode(byte(ix))
		assert.Equal(t, r, ToUnicode(FromUnicode(r, 0)), "code 0x%02x", ix)
	}

	// shared code points resolve to the highest code
	assert.Equal(t, byte(0xf4), FromUnicode(0x258e, 0))
	assert.Equal(t, byte(0xff), FromUnicode(0x2592, 0))

	assert.Equal(t, byte(0x3f), FromUnicode(0x1f600, 0x3f))
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "HI♠♥", Decode([]byte{0x48, 0x49, 0xc1, 0xd3}))
	assert.Equal(t, "", Decode(nil))
}
