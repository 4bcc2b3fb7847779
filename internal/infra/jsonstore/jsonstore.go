// Package jsonstore keeps the roster in a single JSON file.
package jsonstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/ports"
)

// JSONStore keeps the whole roster in a single JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

var _ ports.TrackOStore = (*JSONStore)(nil)

func (s *JSONStore) Path() string { return s.path }

// ReadTrackO loads the file. A missing file is not an error; anything else
// that stops the roster from loading is reported as an I/O error.
func (s *JSONStore) ReadTrackO() (domain.TrackO, bool, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewTrackO(), false, nil
	}
	if err != nil {
		return domain.TrackO{}, false, s.readErr(err)
	}

	var doc adaptedTrackO
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.TrackO{}, false, s.readErr(err)
	}
	r, err := doc.toModel()
	if err != nil {
		return domain.TrackO{}, false, s.readErr(err)
	}
	return r, true, nil
}

// SaveTrackO writes to a temporary file and renames it over the target.
func (s *JSONStore) SaveTrackO(r domain.TrackO) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "jsonstore.mkdir",
			Kind: domain.KindIO,
			Path: dir,
			Err:  err,
		}
	}

	doc, err := newAdaptedTrackO(r)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &domain.OpError{
			Op:   "jsonstore.marshal",
			Kind: domain.KindIO,
			Path: s.path,
			Err:  err,
		}
	}
	b = append(b, '\n')

	// Atomic-ish write: tmp then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "jsonstore.write",
			Kind: domain.KindIO,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "jsonstore.rename",
			Kind: domain.KindIO,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}

func (s *JSONStore) readErr(err error) error {
	return &domain.OpError{
		Op:   "jsonstore.read",
		Kind: domain.KindIO,
		Path: s.path,
		Err:  err,
	}
}
