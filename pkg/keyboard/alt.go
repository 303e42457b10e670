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

package keyboard

import (
	"github.com/KungPhoo/ba67web/pkg/petscii"
)

/*
	BuildAltTables derives the alt and shifted alt tables from base. Keys that
	produce text get the PETSCII graphics character for Alt+key and
	Shift+Alt+key respectively as label and event code, provided there is one.
	The input stays the same, the emulator does the conversion itself when it
	sees the Alt modifier. All other keys are taken over unchanged. Entries in
	the derived tables are at the same positions as in base.
*/
func BuildAltTables(base []Key) (alt, shiftedAlt []Key) {

	alt = make([]Key, len(base))
	shiftedAlt = make([]Key, len(base))

	for ix, k := range base {
		alt[ix] = altKey(k, false)
		shiftedAlt[ix] = altKey(k, true)
	}

	return alt, shiftedAlt
}

//
func altKey(k Key, shift bool) Key {

	if k.IsCode() {
		return k
	}

	// only single character inputs can be translated
	in := []rune(k.Input)
	if len(in) != 1 {
		return k
	}

	if r, ok := petscii.TranslateAltKey(in[0], shift); ok {
		k.Label = string(r)
		k.Code = k.Label
	}

	return k
}
