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
	"fmt"

	log "github.com/sirupsen/logrus"
)

// KeyEvent is a raw key event to replay on the emulator.
type KeyEvent struct {
	Code string
	Down bool
	Modifiers
}

/*
	Host is the emulator side of the keyboard. TextInput delivers a character
	as text input, KeyEvent a single raw key event.
*/
type Host interface {
	TextInput(text string, m Modifiers) error
	KeyEvent(ev KeyEvent) error
}

//
func NewKeyboard(l *Layout, h Host) *Keyboard {
	return &Keyboard{layout: l, host: h}
}

/*
	Keyboard is the state of an on-screen keyboard: the active modifiers,
	and via them the active key table. It's not safe for concurrent use.
*/
type Keyboard struct {
	layout    *Layout
	host      Host
	modifiers Modifiers
}

//
func (k *Keyboard) Modifiers() Modifiers {
	return k.modifiers
}

// Current returns the key table for the current modifier state.
func (k *Keyboard) Current() []Key {
	return k.layout.Table(k.modifiers)
}

// PressAt presses the key at index ix of the current table.
func (k *Keyboard) PressAt(ix int) error {
	keys := k.Current()
	if ix < 0 || ix >= len(keys) {
		return fmt.Errorf("invalid key index: %d; valid range is 0 through %d",
			ix, len(keys)-1)
	}
	return k.Press(keys[ix])
}

/*
	Press handles a press of key. Modifier keys toggle their modifier. Other
	keys are sent to the host, together with the current modifier state. Keys
	with input InputCode are replayed as a key down/key up pair, all others
	are sent as text.
*/
func (k *Keyboard) Press(key Key) error {

	switch key.Code {
	case CodeShift:
		k.modifiers.Shift = !k.modifiers.Shift
		k.logToggle(key)
		return nil
	case CodeAlt:
		k.modifiers.Alt = !k.modifiers.Alt
		k.logToggle(key)
		return nil
	case CodeCtrl:
		k.modifiers.Ctrl = !k.modifiers.Ctrl
		k.logToggle(key)
		return nil
	}

	if key.IsCode() {
		return k.replay(key.Code)
	}

	log.WithFields(log.Fields{
		"text":      key.Input,
		"modifiers": k.modifiers,
	}).Debug("text input")

	return k.host.TextInput(key.Input, k.modifiers)
}

//
func (k *Keyboard) replay(code string) error {

	log.WithFields(log.Fields{
		"code":      code,
		"modifiers": k.modifiers,
	}).Debug("replaying key")

	ev := KeyEvent{Code: code, Down: true, Modifiers: k.modifiers}
	if err := k.host.KeyEvent(ev); err != nil {
		return fmt.Errorf("key down for %s failed: %v", code, err)
	}

	ev.Down = false
	if err := k.host.KeyEvent(ev); err != nil {
		return fmt.Errorf("key up for %s failed: %v", code, err)
	}

	return nil
}

//
func (k *Keyboard) logToggle(key Key) {
	log.WithField("modifiers", k.modifiers).Debugf("toggled %s", key.Code)
}
