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
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/KungPhoo/ba67web/pkg/cloud"
)

// header carrying the user's token, and multipart field carrying uploads
const (
	HeaderAuth = "X-Auth"
	FieldFile  = "filedata1"
)

// replies
const (
	msgSaved   = "SAVED TO CLOUD"
	msgDeleted = "DELETED CLOUD FILE"
	msgFailed  = "?CLOUD FAILED TO READ INPUT DATA ERROR"
)

// upper limit for request bodies, leaving room for multipart overhead
const maxUploadSize = 1048576

//
func cors(inner http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, LIST, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "*")
		inner(w, req)
	}
}

//
func preflight(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(http.StatusOK)
}

//
func methodNotFound(w http.ResponseWriter, req *http.Request) {
	sendCloudReply(fmt.Sprintf("?CLOUD METHOD NOT FOUND ERROR. METHOD %s",
		req.Method), http.StatusMethodNotAllowed, w)
}

//
func (a *api) cloudGet(w http.ResponseWriter, req *http.Request) {

	name, ok := getFile(w, req)
	if !ok {
		return
	}

	rc, err := a.store.Get(req.Header.Get(HeaderAuth), name)
	if handleCloudError(err, w) {
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		log.Errorf("problem sending file: %v", err)
	}
}

//
func (a *api) cloudList(w http.ResponseWriter, req *http.Request) {

	if _, ok := getFile(w, req); !ok {
		return
	}

	list, err := a.store.List(req.Header.Get(HeaderAuth))
	if handleCloudError(err, w) {
		return
	}

	if wantsJSON(req) {
		sendJSONReply(list, http.StatusOK, w)
		return
	}

	var b strings.Builder
	for _, e := range list {
		fmt.Fprintf(&b, "%s\n", e)
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, b.String()); err != nil {
		log.Errorf("problem sending list: %v", err)
	}
}

//
func (a *api) cloudSave(w http.ResponseWriter, req *http.Request) {

	name, ok := getFile(w, req)
	if !ok {
		return
	}

	if req.ContentLength > maxUploadSize {
		handleCloudError(cloud.ErrTooLarge, w)
		return
	}

	token := req.Header.Get(HeaderAuth)
	req.Body = http.MaxBytesReader(w, req.Body, maxUploadSize)

	var in io.Reader = req.Body

	if strings.HasPrefix(req.Header.Get("Content-Type"), "multipart/form-data") {
		f, _, err := req.FormFile(FieldFile)
		if err != nil {
			if isBodyTooLarge(err) {
				handleCloudError(cloud.ErrTooLarge, w)
				return
			}
			log.Errorf("cannot get upload from form: %v", err)
			sendCloudReply(msgFailed, http.StatusInternalServerError, w)
			return
		}
		defer f.Close()
		in = f
	}

	if handleCloudError(a.store.Put(token, name, in), w) {
		return
	}

	sendCloudReply(msgSaved, http.StatusOK, w)
}

//
func (a *api) cloudDelete(w http.ResponseWriter, req *http.Request) {

	name, ok := getFile(w, req)
	if !ok {
		return
	}

	if handleCloudError(a.store.Delete(req.Header.Get(HeaderAuth), name), w) {
		return
	}

	sendCloudReply(msgDeleted, http.StatusOK, w)
}

/*
	getFile validates the token and the file argument, if one is given, for
	any method, in that order.
*/
func getFile(w http.ResponseWriter, req *http.Request) (string, bool) {
	if handleCloudError(cloud.ValidateToken(req.Header.Get(HeaderAuth)), w) {
		return "", false
	}
	name, err := cloud.NormalizeName(getArg(req, "file"))
	if handleCloudError(err, w) {
		return "", false
	}
	return name, true
}

// isBodyTooLarge checks whether err stems from exceeding the limit of the
// http.MaxBytesReader wrapping a request body. There's no exported error
// type for this before Go 1.19.
func isBodyTooLarge(err error) bool {
	return err != nil && strings.Contains(err.Error(), "request body too large")
}

/*
	handleCloudError sends the reply for a failed cloud operation, if e is not
	nil. Store errors are passed on as they are, since clients show them to
	the user. Anything else is only logged.
*/
func handleCloudError(e error, w http.ResponseWriter) bool {

	if e == nil {
		return false
	}

	status := http.StatusInternalServerError
	msg := msgFailed

	switch {
	case errors.Is(e, cloud.ErrBadToken),
		errors.Is(e, cloud.ErrInvalidName),
		errors.Is(e, cloud.ErrNameRequired),
		errors.Is(e, cloud.ErrNameMissing):
		status = http.StatusBadRequest
	case errors.Is(e, cloud.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(e, cloud.ErrTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(e, cloud.ErrReadFailed):
	default:
		log.Errorf("cloud operation failed: %v", e)
		sendCloudReply(msg, status, w)
		return true
	}

	log.Warnf("%v", e)
	sendCloudReply(e.Error(), status, w)
	return true
}

// sendCloudReply sends msg verbatim, BA67 shows it as is.
func sendCloudReply(msg string, statusCode int, w http.ResponseWriter) {
	setHeaders(w.Header(), false)
	w.WriteHeader(statusCode)
	if _, err := io.WriteString(w, msg); err != nil {
		log.Errorf("problem sending reply: %v", err)
	}
}
