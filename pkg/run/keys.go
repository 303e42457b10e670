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

package run

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/KungPhoo/ba67web/pkg/keyboard"
)

//
func NewKeys() *Keys {

	k := &Keys{}
	k.Command = *NewCommand(
		`keys [--shift] [--alt] [-l|--layout {file}] [-p|--press {index,...}]`,
		"show keyboard tables & try out key presses",
		`
Use the keys command to show the key table of the on-screen keyboard for the
given modifier state. With --press, the keys at the given positions are pressed
one after another, starting with the modifier state given via --shift and --alt,
and what the emulator would receive is shown.`,
		"", runnerHelpEpilogue, k.Run)

	k.AddSetting(&k.Shift, "shift", "", "", false, "shift modifier", false)
	k.AddSetting(&k.Alt, "alt", "", "", false, "alt modifier", false)
	k.AddSetting(&k.Layout, "layout", "l", "BA67_LAYOUT", nil,
		"keyboard layout file (TOML)", false)
	k.AddSetting(&k.Press, "press", "p", "", nil,
		"positions of keys to press", false)

	return k
}

//
type Keys struct {
	//
	Command
	//
	Shift  bool
	Alt    bool
	Layout string
	Press  []string
}

//
func (k *Keys) Run() error {

	if err := k.ParseSettings(); err != nil {
		return err
	}

	layout, err := loadLayout(k.Layout)
	if err != nil {
		return err
	}

	kb := keyboard.NewKeyboard(layout, &printingHost{out: os.Stdout})

	// bring keyboard into requested modifier state
	for _, m := range []struct {
		on   bool
		code string
	}{{k.Shift, keyboard.CodeShift}, {k.Alt, keyboard.CodeAlt}} {
		if m.on {
			if err := kb.Press(keyboard.Key{Input: keyboard.InputCode,
				Code: m.code}); err != nil {
				return err
			}
		}
	}

	if len(k.Press) == 0 {
		printTable(os.Stdout, kb)
		return nil
	}

	for _, p := range k.Press {
		ix, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid key position: %s", p)
		}
		if err := kb.PressAt(ix); err != nil {
			return err
		}
	}

	return nil
}

//
func printTable(out io.Writer, kb *keyboard.Keyboard) {
	fmt.Fprintf(out, "\nmodifiers: %s\n\n", kb.Modifiers())
	for ix, key := range kb.Current() {
		fmt.Fprintf(out, "%2d  %-20s %s\n", ix, key, key.Tip())
	}
	fmt.Fprintln(out)
}

// printingHost shows what the emulator would receive
type printingHost struct {
	out io.Writer
}

//
func (h *printingHost) TextInput(text string, m keyboard.Modifiers) error {
	_, err := fmt.Fprintf(h.out, "text  %q [%s]\n", text, m)
	return err
}

//
func (h *printingHost) KeyEvent(ev keyboard.KeyEvent) error {
	dir := "up  "
	if ev.Down {
		dir = "down"
	}
	_, err := fmt.Fprintf(h.out, "%s  %s [%s]\n", dir, ev.Code, ev.Modifiers)
	return err
}
