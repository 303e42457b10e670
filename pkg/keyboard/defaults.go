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

// The built-in layout, 7 rows of 10 keys. Fields are label, input, and event
// code for the plain key, followed by the same for the shifted key. The '/'
// key doubles as the pound key when used with Alt.
var defaultRecords = []Record{
	{"☒", "\x1b", "Escape", "☒", "'", "Escape"},
	{"↑", "code", "ArrowUp", "↑", "code", "ArrowUp"},
	{"↓", "code", "ArrowDown", "↓", "code", "ArrowDown"},
	{"←", "code", "ArrowLeft", "←", "code", "ArrowLeft"},
	{"→", "code", "ArrowRight", "→", "code", "ArrowRight"},
	{"F1", "code", "F1", "F2", "code", "F2"},
	{"F3", "code", "F3", "F4", "code", "F4"},
	{"F5", "code", "F5", "F6", "code", "F6"},
	{"F7", "code", "F7", "F8", "code", "F8"},
	{"⌫", "\b", "Backspace", "⌫", "\b", "Backspace"},

	{"1", "1", "1", "!", "!", "Exclamation"},
	{"2", "2", "2", `"`, `"`, "Quotes"},
	{"3", "3", "3", "#", "#", "Hash"},
	{"4", "4", "4", "$", "$", "Dollar"},
	{"5", "5", "5", "%", "%", "Percent"},
	{"6", "6", "6", "&", "&", "Ampersand"},
	{"7", "7", "7", "/", "/", "Divide"},
	{"8", "8", "8", "(", "(", "("},
	{"9", "9", "9", ")", ")", ")"},
	{"0", "0", "0", "0", "0", "0"},

	{"q", "q", "Q", "Q", "Q", "Q"},
	{"w", "w", "W", "W", "W", "W"},
	{"e", "e", "E", "E", "E", "E"},
	{"r", "r", "R", "R", "R", "R"},
	{"t", "t", "T", "T", "T", "T"},
	{"y", "y", "Y", "Y", "Y", "Y"},
	{"u", "u", "U", "U", "U", "U"},
	{"i", "i", "I", "I", "I", "I"},
	{"o", "o", "O", "O", "O", "O"},
	{"p", "p", "P", "P", "P", "P"},

	{"a", "a", "A", "A", "A", "A"},
	{"s", "s", "S", "S", "S", "S"},
	{"d", "d", "D", "D", "D", "D"},
	{"f", "f", "F", "F", "F", "F"},
	{"g", "g", "G", "G", "G", "G"},
	{"h", "h", "H", "H", "H", "H"},
	{"j", "j", "J", "J", "J", "J"},
	{"k", "k", "K", "K", "K", "K"},
	{"l", "l", "L", "L", "L", "L"},
	{"↲", "\r", "Enter", "↲", "\r", "Enter"},

	{"⇧", "code", "ShiftLeft", "⇧", "code", "ShiftLeft"},
	{"z", "z", "Z", "Z", "Z", "Z"},
	{"x", "x", "X", "X", "X", "X"},
	{"c", "c", "C", "C", "C", "C"},
	{"v", "v", "V", "V", "V", "V"},
	{"b", "b", "B", "B", "B", "B"},
	{"n", "n", "N", "N", "N", "N"},
	{"m", "m", "M", "M", "M", "M"},
	{":", ":", "Colon", "[", "[", "["},
	{";", ";", "Semicolon", "]", "]", "]"},

	{"<", "<", "Less", "{", "{", "{"},
	{">", ">", "Greater", "}", "}", "}"},
	{"=", "=", "Equals", "=", "=", "Equals"},
	{" ", " ", "Space", " ", " ", "Space"},
	{" ", " ", "Space", " ", " ", "Space"},
	{" ", " ", "Space", " ", " ", "Space"},
	{"@", "@", "At", "£", "£", "Pound"},
	{",", ",", "Comma", "<", "<", "Less"},
	{".", ".", "Period", ">", ">", "Greater"},
	{"?", "?", "Question Mark", "~", "~", "Question Mark"},

	{"⎈", "code", "ControlLeft", "⎈", "code", "ControlLeft"},
	{"⎇", "code", "AltLeft", "⎇", "code", "AltLeft"},
	{"⇤", "code", "Home", "⇤", "code", "Home"},
	{"⇥", "code", "End", "⇥", "code", "End"},
	{"⎀", "code", "Insert", "⎀", "code", "Insert"},
	{"+", "+", "Plus", "+", "+", "Plus"},
	{"-", "-", "Minus", "-", "-", "Minus"},
	{"∗", "*", "Multiply", "∗", "*", "Multiply"},
	{"/", "/", "Slash", "/", "/", "Slash"},
	{"^", "^", "Power", "^", "^", "Power"},
}
