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
	"io"

	"github.com/BurntSushi/toml"
)

/*
	Record defines a key for both the plain and the shifted table. Shifted
	fields left empty are taken from their plain counterparts.
*/
type Record struct {
	Label        string `toml:"label"`
	Input        string `toml:"input"`
	Code         string `toml:"code"`
	ShiftedLabel string `toml:"shifted_label"`
	ShiftedInput string `toml:"shifted_input"`
	ShiftedCode  string `toml:"shifted_code"`
}

//
func (r *Record) plain() Key {
	return Key{Label: r.Label, Input: r.Input, Code: r.Code}
}

//
func (r *Record) shifted() Key {
	ret := r.plain()
	if r.ShiftedLabel != "" {
		ret.Label = r.ShiftedLabel
	}
	if r.ShiftedInput != "" {
		ret.Input = r.ShiftedInput
	}
	if r.ShiftedCode != "" {
		ret.Code = r.ShiftedCode
	}
	return ret
}

//
func (r *Record) validate() error {
	switch {
	case r.Label == "":
		return fmt.Errorf("missing label")
	case r.Input == "":
		return fmt.Errorf("missing input")
	case r.Code == "":
		return fmt.Errorf("missing event code")
	}
	return nil
}

/*
	Layout holds the four key tables of a keyboard. All tables have the same
	length, and the key at a given index in one table is the same physical
	key as at that index in the others. A layout must not be modified once
	created.
*/
type Layout struct {
	Plain      []Key `json:"plain"`
	Shifted    []Key `json:"shifted"`
	Alt        []Key `json:"alt"`
	ShiftedAlt []Key `json:"shiftedAlt"`
}

// NewLayout creates a layout from the given key records. The alt tables are
// derived from the plain table.
func NewLayout(records []Record) (*Layout, error) {

	if len(records) == 0 {
		return nil, fmt.Errorf("layout has no keys")
	}

	ret := &Layout{
		Plain:   make([]Key, len(records)),
		Shifted: make([]Key, len(records)),
	}

	for ix := range records {
		r := &records[ix]
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("key %d: %v", ix+1, err)
		}
		ret.Plain[ix] = r.plain()
		ret.Shifted[ix] = r.shifted()
	}

	ret.Alt, ret.ShiftedAlt = BuildAltTables(ret.Plain)
	return ret, nil
}

//
type layoutFile struct {
	Keys []Record `toml:"key"`
}

/*
	LoadLayout reads a layout from TOML. Each key is given as a [[key]] table
	with the fields of a Record, e.g.:

		[[key]]
		label = "a"
		input = "a"
		code = "A"
		shifted_label = "A"
		shifted_input = "A"
*/
func LoadLayout(r io.Reader) (*Layout, error) {

	var f layoutFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("cannot parse layout: %v", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown layout field: %s", undecoded[0])
	}

	return NewLayout(f.Keys)
}

// DefaultLayout returns the built-in BA67 keyboard layout.
func DefaultLayout() *Layout {
	ret, err := NewLayout(defaultRecords)
	if err != nil {
		panic(fmt.Sprintf("invalid default layout: %v", err))
	}
	return ret
}

// Table returns the table that is active for modifier state m. Ctrl has no
// table of its own.
func (l *Layout) Table(m Modifiers) []Key {
	switch {
	case m.Alt && m.Shift:
		return l.ShiftedAlt
	case m.Alt:
		return l.Alt
	case m.Shift:
		return l.Shifted
	}
	return l.Plain
}
