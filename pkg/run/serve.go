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
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/KungPhoo/ba67web/pkg/cloud"
	"github.com/KungPhoo/ba67web/pkg/control"
	"github.com/KungPhoo/ba67web/pkg/keyboard"
)

//
func NewServe() *Serve {

	s := &Serve{}
	s.Command = *NewCommand(
		`serve [-a|--address {address}] [-c|--cloud {folder}] [-w|--web {folder}]
      [-l|--layout {file}]`,
		"run the BA67 web server",
		`Use the serve command for running the BA67 server. It provides the cloud drive
for saving and loading BASIC programs, the keyboard tables for the on-screen
keyboard, and optionally the static files of the web app.`,
		"", `- Logging can be configured with these environment variables:

  LOG_FORMAT		set to 'json' for JSON logging
  LOG_FORCE_COLORS	set to non-empty for forcing colorized log entries
  LOG_METHODS		set to non-empty for including methods in log
  LOG_LEVEL		panic, fatal, error, warn, info, debug, trace

`+runnerHelpEpilogue, s.Run)

	s.AddSetting(&s.Address, "address", "a", "BA67_ADDRESS",
		fmt.Sprintf(":%d", control.DefaultPort), "listen address", false)
	s.AddSetting(&s.Cloud, "cloud", "c", "BA67_CLOUD", "./cloud",
		"base folder of the cloud drive", false)
	s.AddSetting(&s.Web, "web", "w", "BA67_WEB", nil,
		"folder with the web app; when omitted, only the API is served", false)
	s.AddSetting(&s.Layout, "layout", "l", "BA67_LAYOUT", nil,
		"keyboard layout file (TOML); when omitted, the built-in layout is used",
		false)

	return s
}

//
type Serve struct {
	//
	Command
	//
	Address string
	Cloud   string
	Web     string
	Layout  string
}

//
func (s *Serve) Run() error {

	if err := s.ParseSettings(); err != nil {
		return err
	}

	layout, err := loadLayout(s.Layout)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.Cloud, 0775); err != nil {
		return fmt.Errorf("cannot create cloud folder: %v", err)
	}

	api := control.NewAPIServer(
		s.Address, cloud.NewStore(s.Cloud), layout, s.Web)

	done := make(chan error, 1)
	go func() {
		done <- api.Serve()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {

		case sig := <-sigs:
			log.WithField("signal", sig).Info("signal received")
			if err := api.Stop(); err != nil {
				log.Errorf("API server stopped with error: %v", err)
			}

		case err := <-done:
			if err != nil {
				return fmt.Errorf("API server closed with error: %v", err)
			}
			log.Info("API server stopped")
			return nil
		}
	}
}

//
func loadLayout(file string) (*keyboard.Layout, error) {

	if file == "" {
		return keyboard.DefaultLayout(), nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.WithField("file", file).Info("loading keyboard layout")
	return keyboard.LoadLayout(f)
}
