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
	"unicode/utf8"

	"github.com/KungPhoo/ba67web/pkg/petscii"
)

//
func NewPETSCII() *PETSCII {

	p := &PETSCII{}
	p.Command = *NewCommand(
		`petscii [--shift] [-c|--codes {code,...}] [--overrides] [{key} ...]`,
		"look up PETSCII characters",
		`
Use the petscii command to look up the graphics characters produced by Alt+key,
or Shift+Alt+key when --shift is given, for each of the given keys. Use --codes
to show the characters for PETSCII codes.`,
		"", `- Codes can be given in decimal, or in hex with a 0x prefix.
- Use / for the pound key.

`+runnerHelpEpilogue, p.Run)

	p.AddSetting(&p.Shift, "shift", "", "", false, "shift modifier", false)
	p.AddSetting(&p.Codes, "codes", "c", "", nil, "PETSCII codes to show", false)
	p.AddSetting(&p.Overrides, "overrides", "", "", false,
		"list codes that are defined more than once in the character table",
		false)

	return p
}

//
type PETSCII struct {
	//
	Command
	//
	Shift     bool
	Codes     []string
	Overrides bool
}

//
func (p *PETSCII) Run() error {

	if err := p.ParseSettings(); err != nil {
		return err
	}

	out := os.Stdout

	if p.Overrides {
		for _, code := range petscii.Overrides() {
			fmt.Fprintf(out, "0x%02x defined more than once, now U+%04X\n",
				code, petscii.ToUnicode(code))
		}
	}

	if len(p.Codes) > 0 {
		codes := make([]byte, len(p.Codes))
		for ix, c := range p.Codes {
			code, err := strconv.ParseUint(c, 0, 8)
			if err != nil {
				return fmt.Errorf("invalid PETSCII code: %s", c)
			}
			codes[ix] = byte(code)
		}
		fmt.Fprintf(out, "%s\n", petscii.Decode(codes))
	}

	for _, arg := range p.Args {
		if err := printAltKey(out, arg, p.Shift); err != nil {
			return err
		}
	}

	return nil
}

//
func printAltKey(out io.Writer, key string, shift bool) error {

	if utf8.RuneCountInString(key) != 1 {
		return fmt.Errorf("not a single key: '%s'", key)
	}

	r, _ := utf8.DecodeRuneInString(key)
	code, ok := petscii.AltKeyCode(r, shift)
	if !ok {
		fmt.Fprintf(out, "%s  -\n", key)
		return nil
	}

	u := petscii.ToUnicode(code)
	fmt.Fprintf(out, "%s  0x%02x U+%04X %c\n", key, code, u, u)
	return nil
}
