package ports

import "github.com/atyhamos/tp/internal/domain"

// WorkspaceInitializer scaffolds a new workspace on disk.
type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}

// PrefsLoader reads the workspace configuration.
type PrefsLoader interface {
	LoadPrefs(root string) (domain.UserPrefs, error)
}
