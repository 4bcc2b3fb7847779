// Package config reads the workspace configuration file, tracko.yaml.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/atyhamos/tp/internal/domain"
	"github.com/atyhamos/tp/internal/ports"
)

// FileName is the config file that also marks a workspace root.
const FileName = "tracko.yaml"

// Loader reads UserPrefs from tracko.yaml.
type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.PrefsLoader = (*Loader)(nil)

// LoadPrefs reads tracko.yaml under root and applies it on top of the
// defaults. A missing file yields the defaults. The returned data file path
// is absolute.
func (l *Loader) LoadPrefs(root string) (domain.UserPrefs, error) {
	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return MapPrefs(root, path, yamlConfig{})
	}
	if err != nil {
		return domain.DefaultUserPrefs(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultUserPrefs(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return MapPrefs(root, path, dto)
}
