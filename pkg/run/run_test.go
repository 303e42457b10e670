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
	"bytes"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KungPhoo/ba67web/pkg/keyboard"
)

const testToken = "b503a69f442c66ea9a788ea3f8f1170f"

func TestConfigureLogging(t *testing.T) {

	defer log.SetLevel(log.GetLevel())
	defer log.SetFormatter(log.StandardLogger().Formatter)

	env := map[string]string{"LOG_FORMAT": "JSON", "LOG_LEVEL": "debug"}
	configureLogging(func(k string) string { return env[k] })

	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)
}

func TestSettings(t *testing.T) {

	var name string
	var count int
	var force bool
	var list []string

	c := NewCommand("test", "", "", "", "", func() error { return nil })
	c.AddSetting(&name, "name", "n", "BA67_TEST_NAME", nil, "", true)
	c.AddSetting(&count, "count", "c", "", 3, "", false)
	c.AddSetting(&force, "force", "f", "", false, "", false)
	c.AddSetting(&list, "list", "l", "", nil, "", false)

	require.NoError(t, c.Execute([]string{"-n", "hello", "-f", "-l", "a,b", "rest"}))
	require.NoError(t, c.ParseSettings())

	assert.Equal(t, "hello", name)
	assert.Equal(t, 3, count)
	assert.True(t, force)
	assert.Equal(t, []string{"a", "b"}, list)
	assert.Equal(t, []string{"rest"}, c.Args)
}

func TestRequiredSettingFromEnv(t *testing.T) {

	var name string

	c := NewCommand("test", "", "", "", "", func() error { return nil })
	c.AddSetting(&name, "name", "n", "BA67_TEST_NAME", nil, "", true)

	require.NoError(t, c.Execute([]string{"x"}))
	assert.EqualError(t, c.ParseSettings(), "you need to specify the --name "+
		"command line flag or the BA67_TEST_NAME environment variable")

	os.Setenv("BA67_TEST_NAME", "from-env")
	defer os.Unsetenv("BA67_TEST_NAME")

	require.NoError(t, c.ParseSettings())
	assert.Equal(t, "from-env", name)
}

func TestCloudCall(t *testing.T) {

	var gotMethod, gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, req *http.Request) {
			gotMethod = req.Method
			gotAuth = req.Header.Get("X-Auth")
			gotQuery = req.URL.RawQuery
			if req.URL.Query().Get("file") == "MISSING.BAS" {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte("?CLOUD FILE NOT FOUND ERROR"))
				return
			}
			w.Write([]byte("10 PRINT"))
		}))
	defer srv.Close()

	r := NewRunner("test", "", "", "", "", nil)
	r.Server = srv.URL + "/"
	r.Token = testToken

	rc, err := r.cloudCall("GET", "HELLO.BAS", nil, "")
	require.NoError(t, err)
	data, err := ioutil.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)

	assert.Equal(t, "10 PRINT", string(data))
	assert.Equal(t, "GET", gotMethod)
	assert.Equal(t, testToken, gotAuth)
	assert.Equal(t, "file=HELLO.BAS", gotQuery)

	_, err = r.cloudCall("GET", "MISSING.BAS", nil, "")
	assert.EqualError(t, err, "?CLOUD FILE NOT FOUND ERROR")

	rc, err = r.cloudCall("LIST", "", nil, "")
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "LIST", gotMethod)
	assert.Equal(t, "", gotQuery)
}

func TestLoadLayout(t *testing.T) {

	l, err := loadLayout("")
	require.NoError(t, err)
	assert.Equal(t, keyboard.DefaultLayout(), l)

	file := filepath.Join(t.TempDir(), "layout.toml")
	require.NoError(t, ioutil.WriteFile(file, []byte(
		"[[key]]\nlabel = \"x\"\ninput = \"x\"\ncode = \"KeyX\"\n"), 0644))

	l, err = loadLayout(file)
	require.NoError(t, err)
	assert.Equal(t, []keyboard.Key{{Label: "x", Input: "x", Code: "KeyX"}}, l.Plain)

	_, err = loadLayout(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestPrintAltKey(t *testing.T) {

	var out bytes.Buffer

	require.NoError(t, printAltKey(&out, "a", true))
	require.NoError(t, printAltKey(&out, "5", false))
	assert.Error(t, printAltKey(&out, "ab", false))

	assert.Equal(t, "a  0xc1 U+2660 ♠\n5  -\n", out.String())
}

func TestPrintingHost(t *testing.T) {

	var out bytes.Buffer
	kb := keyboard.NewKeyboard(keyboard.DefaultLayout(), &printingHost{out: &out})

	require.NoError(t, kb.PressAt(1))
	require.NoError(t, kb.PressAt(10))

	assert.Equal(t, "down  ArrowUp [none]\nup    ArrowUp [none]\ntext  \"1\" [none]\n",
		out.String())
}
