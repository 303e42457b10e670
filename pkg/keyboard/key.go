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
	Package keyboard models the BA67 on-screen keyboard: the key definition
	tables for the plain, shifted, alt, and shifted alt states, the modifier
	keys that switch between them, and the dispatch of key presses to the
	emulator, either as text input or as replayed raw key events.
*/
package keyboard

import (
	"fmt"
	"strings"
)

/*
	InputCode is the input of keys that do not produce text. Pressing them
	replays a raw key event with the key's event code instead.
*/
const InputCode = "code"

// event codes of the modifier keys
const (
	CodeShift = "ShiftLeft"
	CodeAlt   = "AltLeft"
	CodeCtrl  = "ControlLeft"
)

// Key is a single key definition. Key values are never modified once a
// table has been set up.
type Key struct {
	// shown on the button
	Label string `json:"label"`
	// text sent to the emulator, or InputCode
	Input string `json:"input"`
	// key event code, see
	// https://developer.mozilla.org/en-US/docs/Web/API/UI_Events/Keyboard_event_code_values
	Code string `json:"code"`
}

//
func (k Key) IsCode() bool {
	return k.Input == InputCode
}

// Tip returns the tool tip for the key's button.
func (k Key) Tip() string {
	return strings.TrimPrefix(k.Code, "Key")
}

//
func (k Key) String() string {
	if k.IsCode() {
		return fmt.Sprintf("%s <%s>", k.Label, k.Code)
	}
	return fmt.Sprintf("%s %q", k.Label, k.Input)
}

// Modifiers is a snapshot of the modifier key states.
type Modifiers struct {
	Shift bool `json:"shift"`
	Alt   bool `json:"alt"`
	Ctrl  bool `json:"ctrl"`
}

//
func (m Modifiers) String() string {
	var mods []string
	if m.Shift {
		mods = append(mods, "shift")
	}
	if m.Alt {
		mods = append(mods, "alt")
	}
	if m.Ctrl {
		mods = append(mods, "ctrl")
	}
	if len(mods) == 0 {
		return "none"
	}
	return strings.Join(mods, "+")
}
