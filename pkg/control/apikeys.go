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

package control

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/KungPhoo/ba67web/pkg/keyboard"
	"github.com/KungPhoo/ba67web/pkg/petscii"
)

// Char describes a PETSCII character.
type Char struct {
	Code    byte   `json:"code"`
	Unicode string `json:"unicode"`
	Char    string `json:"char"`
}

//
func newChar(code byte) *Char {
	r := petscii.ToUnicode(code)
	return &Char{Code: code, Unicode: fmt.Sprintf("U+%04X", r), Char: string(r)}
}

//
func (c *Char) String() string {
	return fmt.Sprintf("0x%02x %s %s", c.Code, c.Unicode, c.Char)
}

/*
	keys sends the keyboard tables. JSON requests without any of the flags
	shift or alt get all four tables, all other requests the table for the
	requested modifier state.
*/
func (a *api) keys(w http.ResponseWriter, req *http.Request) {

	mods := keyboard.Modifiers{
		Shift: isFlagSet(req, "shift"),
		Alt:   isFlagSet(req, "alt"),
	}

	if wantsJSON(req) {
		if !mods.Shift && !mods.Alt {
			sendJSONReply(a.layout, http.StatusOK, w)
		} else {
			sendJSONReply(a.layout.Table(mods), http.StatusOK, w)
		}
		return
	}

	var b strings.Builder
	for ix, k := range a.layout.Table(mods) {
		fmt.Fprintf(&b, "%2d  %s\n", ix, k)
	}
	sendReply([]byte(b.String()), http.StatusOK, w)
}

// altKey sends the character produced by Alt+key, or Shift+Alt+key.
func (a *api) altKey(w http.ResponseWriter, req *http.Request) {

	arg := getArg(req, "key")

	if utf8.RuneCountInString(arg) != 1 {
		handleError(fmt.Errorf("need a single character key, got '%s'", arg),
			http.StatusUnprocessableEntity, w)
		return
	}

	r, _ := utf8.DecodeRuneInString(arg)
	code, ok := petscii.AltKeyCode(r, isFlagSet(req, "shift"))
	if !ok {
		handleError(fmt.Errorf("no alt character for key '%s'", arg),
			http.StatusNotFound, w)
		return
	}

	a.sendChar(newChar(code), w, req)
}

//
func (a *api) petscii(w http.ResponseWriter, req *http.Request) {
	code, err := strconv.ParseUint(mux.Vars(req)["code"], 16, 8)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}
	a.sendChar(newChar(byte(code)), w, req)
}

//
func (a *api) sendChar(c *Char, w http.ResponseWriter, req *http.Request) {
	if wantsJSON(req) {
		sendJSONReply(c, http.StatusOK, w)
	} else {
		sendReply([]byte(c.String()), http.StatusOK, w)
	}
}
