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
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/KungPhoo/ba67web/pkg/control"
)

//
const runnerHelpEpilogue = `- When a flag can be set via environment variable, the variable name is given
  in parenthesis at the end of the flag explanation. Note however that a flag,
  when specified overrides an environment variable.
`

/*
	NewRunner creates a base runner for commands to use. The parameters are
	passed to the base command wrapped by this runner.
*/
func NewRunner(use, short, long, helpPrologue, helpEpilogue string,
	exec func() error) *Runner {
	return &Runner{
		Command: *NewCommand(
			use, short, long, helpPrologue, helpEpilogue, exec),
		client: &http.Client{},
	}
}

//
type Runner struct {
	//
	Command
	//
	Server string
	Token  string
	//
	client *http.Client
}

// AddBaseSettings adds the settings needed for talking to the cloud drive.
// Call this from the top level command type, not from NewRunner, otherwise
// Cobra & Viper will not fill in the values.
func (r *Runner) AddBaseSettings() {
	r.AddSetting(&r.Server, "server", "s", "BA67_SERVER",
		fmt.Sprintf("http://127.0.0.1:%d", control.DefaultPort),
		"base URL of the BA67 server", false)
	r.AddSetting(&r.Token, "token", "t", "BA67_TOKEN", nil,
		"cloud drive token, at least 16 characters", true)
}

/*
	cloudCall sends a request to the cloud drive, for file if not empty. The
	reply body is returned on success. For any status other than 200, the
	body is read and returned as error, since it carries the error message.
*/
func (r *Runner) cloudCall(method, file string, body io.Reader,
	contentType string) (io.ReadCloser, error) {

	path := "/cloud"
	if file != "" {
		path = fmt.Sprintf("%s?file=%s", path, url.QueryEscape(file))
	}

	req, err := http.NewRequest(
		method, strings.TrimSuffix(r.Server, "/")+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set(control.HeaderAuth, r.Token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		msg, err := ioutil.ReadAll(resp.Body)
		if err != nil || len(msg) == 0 {
			return nil, fmt.Errorf("server replied with %s", resp.Status)
		}
		return nil, fmt.Errorf("%s", strings.TrimSpace(string(msg)))
	}

	return resp.Body, nil
}

//
func printReply(rc io.ReadCloser) error {
	defer rc.Close()
	msg, err := ioutil.ReadAll(rc)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", strings.TrimSpace(string(msg)))
	return nil
}
