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

package main

import (
	"fmt"
	"os"

	"github.com/KungPhoo/ba67web/pkg/run"
)

// set during build
var BA67WebVersion string

//
func synopsis() {
	fmt.Print(`
synopsis: ba67ctl {serve|ls|load|save|rm|keys|petscii|version} ...

run 'ba67ctl {action} -h|--help' to see detailed info

`)
}

//
func version() {
	fmt.Printf("\nBA67 web %s\n\n", BA67WebVersion)
}

//
func main() {

	var action string
	var args []string

	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	if len(os.Args) > 2 {
		args = os.Args[2:]
	}

	switch action {

	case "serve":
		version()
		run.DieOnError(run.NewServe().Execute(args))

	case "ls":
		run.DieOnError(run.NewList().Execute(args))

	case "load":
		run.DieOnError(run.NewLoad().Execute(args))

	case "save":
		run.DieOnError(run.NewSave().Execute(args))

	case "rm":
		run.DieOnError(run.NewRemove().Execute(args))

	case "keys":
		run.DieOnError(run.NewKeys().Execute(args))

	case "petscii":
		run.DieOnError(run.NewPETSCII().Execute(args))

	case "version":
		version()

	case "", "-h", "--help":
		synopsis()

	default:
		run.Die("unknown action: %s\n", action)
	}
}
