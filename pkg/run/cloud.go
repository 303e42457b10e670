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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/KungPhoo/ba67web/pkg/cloud"
	"github.com/KungPhoo/ba67web/pkg/control"
)

//
func NewList() *List {

	l := &List{}
	l.Runner = *NewRunner(
		"ls [-s|--server {URL}] -t|--token {token}",
		"list files on the cloud drive",
		"\nUse the ls command to list the BASIC programs stored on the cloud drive.",
		"", runnerHelpEpilogue, l.Run)

	l.AddBaseSettings()

	return l
}

//
type List struct {
	Runner
}

//
func (l *List) Run() error {

	if err := l.ParseSettings(); err != nil {
		return err
	}

	resp, err := l.cloudCall("LIST", "", nil, "")
	if err != nil {
		return err
	}

	return printReply(resp)
}

//
func NewLoad() *Load {

	l := &Load{}
	l.Runner = *NewRunner(
		`load [-s|--server {URL}] -t|--token {token} -n|--name {name}
      [-o|--output {file}] [-f|--force]`,
		"get a file from the cloud drive",
		"\nUse the load command to download a BASIC program from the cloud drive.",
		"", `- When no output file is given, the program is saved under its cloud name in
  the current folder.

`+runnerHelpEpilogue, l.Run)

	l.AddBaseSettings()
	l.AddSetting(&l.Name, "name", "n", "", nil, "name of the program", true)
	l.AddSetting(&l.File, "output", "o", "", nil, "output file", false)
	l.AddSetting(&l.Force, "force", "f", "", false,
		"force overwriting output file", false)

	return l
}

//
type Load struct {
	//
	Runner
	//
	Name  string
	File  string
	Force bool
}

//
func (l *Load) Run() error {

	if err := l.ParseSettings(); err != nil {
		return err
	}

	name, err := cloud.NormalizeName(l.Name)
	if err != nil {
		return err
	}

	file := l.File
	if file == "" {
		file = name
	}

	if !l.Force {
		if _, err := os.Stat(file); err == nil &&
			!GetUserConfirmation("File exists, overwrite?") {
			return nil
		}
	}

	resp, err := l.cloudCall("GET", name, nil, "")
	if err != nil {
		return err
	}
	defer resp.Close()

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	out := bufio.NewWriter(f)
	if _, err := io.Copy(out, resp); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}

	fmt.Printf("loaded %s into %s\n", name, file)
	return nil
}

//
func NewSave() *Save {

	s := &Save{}
	s.Runner = *NewRunner(
		`save [-s|--server {URL}] -t|--token {token} -i|--input {file}
      [-n|--name {name}]`,
		"put a file onto the cloud drive",
		"\nUse the save command to upload a BASIC program to the cloud drive.",
		"", `- When no name is given, the program is stored under the name of the input
  file. Names need to end in .bas, and are converted to upper case.

`+runnerHelpEpilogue, s.Run)

	s.AddBaseSettings()
	s.AddSetting(&s.File, "input", "i", "", nil, "program file to upload", true)
	s.AddSetting(&s.Name, "name", "n", "", nil, "name on the cloud drive", false)

	return s
}

//
type Save struct {
	//
	Runner
	//
	File string
	Name string
}

//
func (s *Save) Run() error {

	if err := s.ParseSettings(); err != nil {
		return err
	}

	name := s.Name
	if name == "" {
		name = filepath.Base(s.File)
	}

	name, err := cloud.NormalizeName(name)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(s.File)
	if err != nil {
		return err
	}
	if len(data) > cloud.MaxFileSize {
		return cloud.ErrTooLarge
	}

	// same form upload as done by BA67
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(control.FieldFile, name)
	if err != nil {
		return err
	}
	if _, err := fw.Write(data); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	resp, err := s.cloudCall("POST", name, &body, mw.FormDataContentType())
	if err != nil {
		return err
	}

	return printReply(resp)
}

//
func NewRemove() *Remove {

	r := &Remove{}
	r.Runner = *NewRunner(
		"rm [-s|--server {URL}] -t|--token {token} -n|--name {name} [-f|--force]",
		"delete a file from the cloud drive",
		"\nUse the rm command to delete a BASIC program from the cloud drive.",
		"", runnerHelpEpilogue, r.Run)

	r.AddBaseSettings()
	r.AddSetting(&r.Name, "name", "n", "", nil, "name of the program", true)
	r.AddSetting(&r.Force, "force", "f", "", false,
		"delete without asking", false)

	return r
}

//
type Remove struct {
	//
	Runner
	//
	Name  string
	Force bool
}

//
func (r *Remove) Run() error {

	if err := r.ParseSettings(); err != nil {
		return err
	}

	name, err := cloud.NormalizeName(r.Name)
	if err != nil {
		return err
	}

	if !r.Force && !GetUserConfirmation(fmt.Sprintf("Delete %s?", name)) {
		return nil
	}

	resp, err := r.cloudCall("DELETE", name, nil, "")
	if err != nil {
		return err
	}

	return printReply(resp)
}
