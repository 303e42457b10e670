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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/KungPhoo/ba67web/pkg/cloud"
	"github.com/KungPhoo/ba67web/pkg/keyboard"
)

//
const DefaultPort = 8888

//
type APIServer interface {
	Serve() error
	Stop() error
}

/*
	NewAPIServer creates the API server for the BA67 web app. It serves the
	cloud drive backed by store, the keyboard tables of layout, and, if web is
	not empty, the static files of the web app found in folder web.
*/
func NewAPIServer(addr string, store *cloud.Store, layout *keyboard.Layout,
	web string) APIServer {
	return &api{address: addr, store: store, layout: layout, web: web}
}

//
type api struct {
	address string
	store   *cloud.Store
	layout  *keyboard.Layout
	web     string
	server  *http.Server
}

//
func (a *api) Serve() error {

	addr := a.address
	if len(strings.Split(addr, ":")) < 2 {
		addr = fmt.Sprintf("%s:%d", a.address, DefaultPort)
	}

	log.Infof("BA67 API starts listening on %s", addr)
	a.server = &http.Server{Addr: addr, Handler: a.router()}

	err := a.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

//
func (a *api) Stop() error {
	if a.server != nil {
		log.Info("API server stopping...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := a.server.Shutdown(ctx)
		a.server = nil
		return err
	}
	return nil
}

//
func (a *api) router() *mux.Router {

	router := mux.NewRouter().StrictSlash(true)

	// the web app still uses the PHP era path
	for _, path := range []string{"/cloud", "/cloud.php"} {
		addRoute(router, "cloud-get", "GET", path, cors(a.cloudGet))
		addRoute(router, "cloud-list", "LIST", path, cors(a.cloudList))
		addRoute(router, "cloud-save", "POST", path, cors(a.cloudSave))
		addRoute(router, "cloud-delete", "DELETE", path, cors(a.cloudDelete))
		addRoute(router, "cloud-preflight", "OPTIONS", path, cors(preflight))
		router.Path(path).Name("cloud-other").Handler(
			requestLogger(cors(methodNotFound), "cloud-other"))
	}

	addRoute(router, "keys", "GET", "/keys", a.keys)
	addRoute(router, "altkey", "GET", "/altkey", a.altKey)
	addRoute(router, "petscii", "GET", "/petscii/{code:[0-9a-fA-F]{1,2}}",
		a.petscii)

	if a.web != "" {
		router.PathPrefix("/").Handler(
			requestLogger(http.FileServer(http.Dir(a.web)), "webapp"))
	}

	return router
}

//
func addRoute(r *mux.Router, name, method, pattern string,
	handler http.HandlerFunc) {
	r.Methods(method).
		Path(pattern).
		Name(name).
		Handler(requestLogger(handler, name))
}

//
func requestLogger(inner http.Handler, name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		log.WithFields(log.Fields{
			"remote": r.RemoteAddr,
			"method": r.Method,
			"path":   r.RequestURI,
		}).Debugf("API BEGIN | %s", name)

		start := time.Now()
		inner.ServeHTTP(w, r)

		log.WithFields(log.Fields{
			"remote":   r.RemoteAddr,
			"method":   r.Method,
			"path":     r.RequestURI,
			"duration": time.Since(start),
		}).Debugf("API END   | %s", name)
	})
}

//
func isFlagSet(req *http.Request, flag string) bool {
	return getArg(req, flag) == "true"
}

// getArg returns the decoded query parameter arg
func getArg(req *http.Request, arg string) string {
	return req.URL.Query().Get(arg)
}

//
func setHeaders(h http.Header, json bool) {
	if json {
		h.Set("Content-Type", "application/json; charset=UTF-8")
	} else {
		h.Set("Content-Type", "text/plain; charset=UTF-8")
	}
}

//
func handleError(e error, statusCode int, w http.ResponseWriter) bool {

	if e == nil {
		return false
	}

	log.Errorf("%v", e)

	setHeaders(w.Header(), false)
	w.WriteHeader(statusCode)
	if _, err := w.Write([]byte(fmt.Sprintf("%v\n", e))); err != nil {
		log.Errorf("problem writing error: %v", err)
	}

	return true
}

//
func sendReply(body []byte, statusCode int, w http.ResponseWriter) {
	setHeaders(w.Header(), false)
	w.WriteHeader(statusCode)
	if _, err := fmt.Fprintf(w, "%s\n", body); err != nil {
		log.Errorf("problem sending reply: %v", err)
	}
}

//
func sendJSONReply(obj interface{}, statusCode int, w http.ResponseWriter) {
	setHeaders(w.Header(), true)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		log.Errorf("problem writing reply: %v", err)
	}
}

//
func wantsJSON(req *http.Request) bool {
	for _, h := range []string{"Accept", "Content-Type"} {
		if strings.HasPrefix(req.Header.Get(h), "application/json") {
			return true
		}
	}
	return false
}
