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
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KungPhoo/ba67web/pkg/cloud"
	"github.com/KungPhoo/ba67web/pkg/keyboard"
)

const token = "b503a69f442c66ea9a788ea3f8f1170f"

func newTestAPI(t *testing.T) *api {
	return &api{
		store:  cloud.NewStore(t.TempDir()),
		layout: keyboard.DefaultLayout(),
	}
}

func call(a *api, method, target, auth string, body io.Reader,
	header map[string]string) *httptest.ResponseRecorder {

	req := httptest.NewRequest(method, target, body)
	if auth != "" {
		req.Header.Set(HeaderAuth, auth)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	a.router().ServeHTTP(rec, req)
	return rec
}

func TestCloudRoundTrip(t *testing.T) {

	a := newTestAPI(t)

	rec := call(a, "POST", "/cloud.php?file=hello.bas", token,
		strings.NewReader(`10 PRINT "HI"`), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SAVED TO CLOUD", rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = call(a, "GET", "/cloud?file=HELLO.BAS", token, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, `10 PRINT "HI"`, rec.Body.String())

	rec = call(a, "LIST", "/cloud.php", token, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "13 HELLO.BAS\n", rec.Body.String())

	rec = call(a, "LIST", "/cloud.php", token, nil,
		map[string]string{"Accept": "application/json"})
	assert.Equal(t, http.StatusOK, rec.Code)
	var list []*cloud.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, []*cloud.Entry{{Name: "HELLO.BAS", Size: 13}}, list)

	rec = call(a, "DELETE", "/cloud.php?file=hello.bas", token, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DELETED CLOUD FILE", rec.Body.String())

	rec = call(a, "GET", "/cloud.php?file=hello.bas", token, nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "?CLOUD FILE NOT FOUND ERROR", rec.Body.String())
}

func TestCloudMultipartUpload(t *testing.T) {

	a := newTestAPI(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(FieldFile, "game.bas")
	require.NoError(t, err)
	_, err = fw.Write([]byte("10 GOTO 10"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	rec := call(a, "POST", "/cloud.php?file=game.bas", token, &body,
		map[string]string{"Content-Type": mw.FormDataContentType()})
	assert.Equal(t, http.StatusOK, rec.Code)

	data, err := os.ReadFile(filepath.Join(a.store.Dir(), token, "GAME.BAS"))
	require.NoError(t, err)
	assert.Equal(t, "10 GOTO 10", string(data))
}

func TestCloudErrors(t *testing.T) {

	a := newTestAPI(t)

	var big bytes.Buffer
	mw := multipart.NewWriter(&big)
	fw, err := mw.CreateFormFile(FieldFile, "big.bas")
	require.NoError(t, err)
	_, err = fw.Write(make([]byte, 2*maxUploadSize))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	form := map[string]string{"Content-Type": mw.FormDataContentType()}

	tests := []struct {
		name   string
		method string
		target string
		auth   string
		body   io.Reader
		header map[string]string
		status int
		reply  string
	}{
		{"no token", "LIST", "/cloud.php", "", nil, nil,
			http.StatusBadRequest, "?CLOUD BAD USERNAME ERROR"},
		{"short token", "GET", "/cloud.php?file=a.bas", "abc", nil, nil,
			http.StatusBadRequest, "?CLOUD BAD USERNAME ERROR"},
		{"short token and bad name", "GET", "/cloud.php?file=a.prg", "abc",
			nil, nil, http.StatusBadRequest, "?CLOUD BAD USERNAME ERROR"},
		{"bad name", "GET", "/cloud.php?file=a.prg", token, nil, nil,
			http.StatusBadRequest, "?CLOUD INVALID FILENAME ERROR"},
		{"bad name on list", "LIST", "/cloud.php?file=a.prg", token, nil, nil,
			http.StatusBadRequest, "?CLOUD INVALID FILENAME ERROR"},
		{"double encoded name", "POST", "/cloud.php?file=X%252Ebas", token,
			strings.NewReader("x"), nil,
			http.StatusBadRequest, "?CLOUD INVALID FILENAME ERROR"},
		{"no name on get", "GET", "/cloud.php", token, nil, nil,
			http.StatusNotFound, "?CLOUD FILE NOT FOUND ERROR"},
		{"no name on save", "POST", "/cloud.php", token, strings.NewReader("x"),
			nil, http.StatusBadRequest, "?CLOUD FILENAME REQUIRED ERROR"},
		{"no name on delete", "DELETE", "/cloud.php", token, nil, nil,
			http.StatusBadRequest, "?CLOUD FILENAME NOT GIVEN ERROR"},
		{"too large", "POST", "/cloud.php?file=big.bas", token,
			bytes.NewReader(make([]byte, cloud.MaxFileSize+1)), nil,
			http.StatusRequestEntityTooLarge, "?CLOUD FILE SIZE LIMIT ERROR"},
		{"too large form", "POST", "/cloud.php?file=big.bas", token,
			&big, form,
			http.StatusRequestEntityTooLarge, "?CLOUD FILE SIZE LIMIT ERROR"},
		{"unknown method", "PUT", "/cloud.php", token, nil, nil,
			http.StatusMethodNotAllowed, "?CLOUD METHOD NOT FOUND ERROR. METHOD PUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(a, tt.method, tt.target, tt.auth, tt.body, tt.header)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.reply, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCloudFormTooLargeUnknownLength(t *testing.T) {

	a := newTestAPI(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(FieldFile, "big.bas")
	require.NoError(t, err)
	_, err = fw.Write(make([]byte, 2*maxUploadSize))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/cloud.php?file=big.bas",
		io.NopCloser(&body))
	req.ContentLength = -1
	req.Header.Set(HeaderAuth, token)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	a.router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "?CLOUD FILE SIZE LIMIT ERROR", rec.Body.String())
}

func TestCloudLockedName(t *testing.T) {

	a := newTestAPI(t)

	rec := call(a, "POST", "/cloud.php?file=hello.bas", token,
		strings.NewReader("10 PRINT"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(a, "GET", "/cloud.php?file="+url.QueryEscape("HELLO.BAS🔒"),
		token, nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10 PRINT", rec.Body.String())
}

func TestCloudPreflight(t *testing.T) {
	rec := call(newTestAPI(t), "OPTIONS", "/cloud.php", "", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "GET, POST, LIST, DELETE, OPTIONS",
		rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestKeys(t *testing.T) {

	a := newTestAPI(t)
	jsonHeader := map[string]string{"Accept": "application/json"}

	rec := call(a, "GET", "/keys", "", nil, jsonHeader)
	require.Equal(t, http.StatusOK, rec.Code)
	var l keyboard.Layout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &l))
	assert.Equal(t, *a.layout, l)

	rec = call(a, "GET", "/keys?shift=true&alt=true", "", nil, jsonHeader)
	require.Equal(t, http.StatusOK, rec.Code)
	var table []keyboard.Key
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.Equal(t, a.layout.ShiftedAlt, table)

	rec = call(a, "GET", "/keys?shift=true", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `20  Q "Q"`)
}

func TestAltKey(t *testing.T) {

	a := newTestAPI(t)

	rec := call(a, "GET", "/altkey?key=a&shift=true", "", nil,
		map[string]string{"Accept": "application/json"})
	require.Equal(t, http.StatusOK, rec.Code)
	var c Char
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, Char{Code: 0xc1, Unicode: "U+2660", Char: "♠"}, c)

	rec = call(a, "GET", "/altkey?key=5", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(a, "GET", "/altkey?key=ab", "", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// query values are decoded once, "%25" is the percent key
	rec = call(a, "GET", "/altkey?key=%25", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(a, "GET", "/altkey?key=%252B", "", nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPETSCII(t *testing.T) {

	a := newTestAPI(t)

	rec := call(a, "GET", "/petscii/d3", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0xd3 U+2665 ♥\n", rec.Body.String())

	rec = call(a, "GET", "/petscii/41", "", nil, nil)
	assert.Equal(t, "0x41 U+0041 A\n", rec.Body.String())

	rec = call(a, "GET", "/petscii/100", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebApp(t *testing.T) {

	a := newTestAPI(t)
	a.web = t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(a.web, "BA67.html"), []byte("<html></html>"), 0644))

	rec := call(a, "GET", "/BA67.html", "", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html></html>", rec.Body.String())
}
