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

/*
	Package cloud implements the BA67 cloud drive, a simple file store for
	BASIC programs. Each user gets a folder of their own, named after the
	opaque token the user presents. There are no user accounts; whoever knows
	a token has access to its files.
*/
package cloud

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// limits
const (
	MinTokenLength = 16
	MaxTokenLength = 512
	MaxFileSize    = 128 * 1024
	Extension      = ".BAS"
)

// Errors returned by the store. Their messages are what BA67 shows to the
// user, so they follow the BASIC error message style.
var (
	ErrBadToken     = errors.New("?CLOUD BAD USERNAME ERROR")
	ErrInvalidName  = errors.New("?CLOUD INVALID FILENAME ERROR")
	ErrNameRequired = errors.New("?CLOUD FILENAME REQUIRED ERROR")
	ErrNameMissing  = errors.New("?CLOUD FILENAME NOT GIVEN ERROR")
	ErrNotFound     = errors.New("?CLOUD FILE NOT FOUND ERROR")
	ErrTooLarge     = errors.New("?CLOUD FILE SIZE LIMIT ERROR")
	ErrReadFailed   = errors.New("?CLOUD FAILED TO READ INPUT DATA ERROR")
)

//
var validName = regexp.MustCompile(`(?i)^[a-z0-9._-]+\.bas$`)

// Lock marks password protected files in listings. Clients may send it back
// as part of a file name.
const Lock = "🔒"

/*
	NormalizeName checks whether name is acceptable as a file name, and
	returns it in its stored form, i.e. in upper case without any trailing
	lock symbols. An empty name is
	returned as is, since whether a name is needed depends on the operation.
*/
func NormalizeName(name string) (string, error) {
	name = strings.TrimRight(name, Lock)
	if name == "" {
		return "", nil
	}
	if !validName.MatchString(name) {
		return "", ErrInvalidName
	}
	return strings.ToUpper(name), nil
}

// ValidateToken checks whether token is acceptable as a user token.
func ValidateToken(token string) error {
	if len(token) < MinTokenLength || len(token) > MaxTokenLength ||
		strings.ContainsAny(token, `/\`) || strings.Trim(token, ".") == "" {
		return ErrBadToken
	}
	return nil
}

// Entry is a file in a user's folder.
type Entry struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

//
func (e *Entry) String() string {
	return fmt.Sprintf("%d %s", e.Size, e.Name)
}

//
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Store keeps the users' folders below a base directory.
type Store struct {
	dir string
}

//
func (s *Store) Dir() string {
	return s.dir
}

// userDir returns the folder for token, creating it if needed.
func (s *Store) userDir(token string) (string, error) {

	if err := ValidateToken(token); err != nil {
		return "", err
	}

	dir := filepath.Join(s.dir, token)
	if err := os.MkdirAll(dir, 0775); err != nil {
		return "", fmt.Errorf("cannot create user folder: %v", err)
	}

	return dir, nil
}

//
func (s *Store) filePath(token, name string, missing error) (string, error) {

	dir, err := s.userDir(token)
	if err != nil {
		return "", err
	}

	if name, err = NormalizeName(name); err != nil {
		return "", err
	}
	if name == "" {
		return "", missing
	}

	return filepath.Join(dir, name), nil
}

//
type fileSource struct {
	file   *os.File
	reader io.Reader
}

//
func (fs *fileSource) Read(p []byte) (n int, err error) {
	return fs.reader.Read(p)
}

//
func (fs *fileSource) Close() error {
	return fs.file.Close()
}

// Get opens file name of the user identified by token.
func (s *Store) Get(token, name string) (io.ReadCloser, error) {

	path, err := s.filePath(token, name, ErrNotFound)
	if err != nil {
		return nil, err
	}

	log.WithField("file", path).Debug("opening cloud file")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &fileSource{file: f, reader: bufio.NewReader(f)}, nil
}

// List returns the BASIC files of the user identified by token, sorted by
// name.
func (s *Store) List(token string) ([]*Entry, error) {

	dir, err := s.userDir(token)
	if err != nil {
		return nil, err
	}

	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	ret := []*Entry{}
	for _, fi := range infos {
		if fi.Mode().IsRegular() && strings.HasSuffix(fi.Name(), Extension) {
			ret = append(ret, &Entry{Name: fi.Name(), Size: fi.Size()})
		}
	}

	sort.Slice(ret, func(i, j int) bool { return ret[i].Name < ret[j].Name })
	return ret, nil
}

/*
	Put stores the contents of r as file name of the user identified by
	token, replacing any existing file of that name. Contents larger than
	MaxFileSize are rejected, and leave an existing file untouched.
*/
func (s *Store) Put(token, name string, r io.Reader) error {

	path, err := s.filePath(token, name, ErrNameRequired)
	if err != nil {
		return err
	}

	data, err := ioutil.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		log.Errorf("reading upload for %s failed: %v", path, err)
		return ErrReadFailed
	}
	if len(data) > MaxFileSize {
		return ErrTooLarge
	}

	log.WithFields(log.Fields{
		"file": path,
		"size": len(data),
	}).Debug("saving cloud file")

	tmp, err := ioutil.TempFile(filepath.Dir(path), ".upload-")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Delete removes file name of the user identified by token.
func (s *Store) Delete(token, name string) error {

	path, err := s.filePath(token, name, ErrNameMissing)
	if err != nil {
		return err
	}

	log.WithField("file", path).Debug("deleting cloud file")

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}

	return nil
}
