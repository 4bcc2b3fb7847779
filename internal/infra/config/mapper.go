package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atyhamos/tp/internal/domain"
)

// MapPrefs applies dto over the defaults and resolves the data file against root.
func MapPrefs(root, path string, dto yamlConfig) (domain.UserPrefs, error) {
	prefs := domain.DefaultUserPrefs()

	if df := strings.TrimSpace(dto.Tracko.DataFile); df != "" {
		if strings.HasSuffix(df, "/") || strings.HasSuffix(df, string(filepath.Separator)) {
			return domain.DefaultUserPrefs(), invalidField(path, "tracko.data_file", "must name a file, not a directory")
		}
		if !strings.EqualFold(filepath.Ext(df), ".json") {
			return domain.DefaultUserPrefs(), invalidField(path, "tracko.data_file", "must be a .json file")
		}
		prefs.DataFile = df
	}
	if dto.Tracko.Debug != nil {
		prefs.Debug = *dto.Tracko.Debug
	}

	if !filepath.IsAbs(prefs.DataFile) {
		prefs.DataFile = filepath.Join(root, prefs.DataFile)
	}
	return prefs, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
